package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"orchid/internal/errors"
)

type OtpStore interface {
	Put(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (string, bool, error)
	Delete(ctx context.Context, email string) error
}

type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	MarkVerified(ctx context.Context, email string) error
}

type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type OtpService struct {
	store      OtpStore
	users      UserRepository
	sender     Sender
	ttl        time.Duration
	codeLength int
	logger     *zap.Logger
}

func NewOtpService(
	store OtpStore,
	users UserRepository,
	sender Sender,
	ttl time.Duration,
	codeLength int,
	logger *zap.Logger,
) *OtpService {
	return &OtpService{
		store:      store,
		users:      users,
		sender:     sender,
		ttl:        ttl,
		codeLength: codeLength,
		logger:     logger,
	}
}

// Issue generates a fresh code for the email and stores it, replacing
// any outstanding one. A code sent before a resend can never be used
// after the resend, even if its TTL has not elapsed.
func (s *OtpService) Issue(ctx context.Context, email string) error {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return errors.NewInternalError("looking up account", err)
	}
	if !exists {
		return errors.NewNotFoundError("no account with this email")
	}

	code, err := generateCode(s.codeLength)
	if err != nil {
		return errors.NewInternalError("generating verification code", err)
	}

	if err := s.store.Put(ctx, email, code); err != nil {
		return errors.NewInternalError("storing verification code", err)
	}

	body := fmt.Sprintf(
		"Your verification code is %s. It expires in %d minutes.",
		code, int(s.ttl.Minutes()),
	)
	if err := s.sender.Send(ctx, email, "Verify your email", body); err != nil {
		s.logger.Error("sending verification mail failed", zap.String("email", email), zap.Error(err))
		return errors.NewInternalError("sending verification mail", err)
	}

	s.logger.Info("verification code issued", zap.String("email", email))
	return nil
}

// Verify consumes the outstanding code for the email. The stored record
// is deleted on a match before the account is flagged, so a code can
// never be redeemed twice.
func (s *OtpService) Verify(ctx context.Context, email, submitted string) error {
	stored, ok, err := s.store.Get(ctx, email)
	if err != nil {
		return errors.NewInternalError("reading verification code", err)
	}
	if !ok {
		return errors.NewNotFoundError("no verification code for this email")
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) != 1 {
		s.logger.Warn("verification code mismatch", zap.String("email", email))
		return errors.NewMismatchError("verification code does not match")
	}

	if err := s.store.Delete(ctx, email); err != nil {
		return errors.NewInternalError("consuming verification code", err)
	}

	if err := s.users.MarkVerified(ctx, email); err != nil {
		return err
	}

	s.logger.Info("email verified", zap.String("email", email))
	return nil
}

// generateCode draws each digit from crypto/rand.
func generateCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
