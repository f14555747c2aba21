package repository

import (
	"context"
	"database/sql"
	"fmt"

	"orchid/internal/domain"
	"orchid/internal/errors"
)

type MySQLDiscountRepository struct {
	db *sql.DB
}

func NewMySQLDiscountRepository(db *sql.DB) *MySQLDiscountRepository {
	return &MySQLDiscountRepository{db: db}
}

func (r *MySQLDiscountRepository) FindByCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	query := `
		SELECT id, code, description, discount_percent, discount_amount,
		       start_date, end_date
		FROM discount_codes
		WHERE code = ?
	`

	var dc domain.DiscountCode
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&dc.ID, &dc.Code, &dc.Description,
		&dc.DiscountPercent, &dc.DiscountAmount,
		&dc.StartDate, &dc.EndDate,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("discount code %s not found", code))
	}
	if err != nil {
		return nil, fmt.Errorf("querying discount code: %w", err)
	}

	return &dc, nil
}
