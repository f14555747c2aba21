package domain

import "time"

type Product struct {
	ID        int
	Name      string
	Price     int64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
