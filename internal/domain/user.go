package domain

import "time"

type User struct {
	ID         int
	Email      string
	IsVerified bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
