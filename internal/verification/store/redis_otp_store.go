package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOtpStore keeps at most one outstanding code per email. SET with
// an expiry is the whole upsert: a resend replaces the previous code and
// resets its clock in one store operation, and native TTL expiry makes
// an expired code indistinguishable from an absent one.
type RedisOtpStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisOtpStore(rdb *redis.Client, ttl time.Duration) *RedisOtpStore {
	return &RedisOtpStore{rdb: rdb, ttl: ttl}
}

func key(email string) string {
	return "otp:" + email
}

func (s *RedisOtpStore) Put(ctx context.Context, email, code string) error {
	if err := s.rdb.Set(ctx, key(email), code, s.ttl).Err(); err != nil {
		return fmt.Errorf("storing otp: %w", err)
	}
	return nil
}

func (s *RedisOtpStore) Get(ctx context.Context, email string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key(email)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading otp: %w", err)
	}
	return val, true, nil
}

func (s *RedisOtpStore) Delete(ctx context.Context, email string) error {
	if err := s.rdb.Del(ctx, key(email)).Err(); err != nil {
		return fmt.Errorf("deleting otp: %w", err)
	}
	return nil
}
