package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"orchid/internal/domain"
	"orchid/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// CreateWithItems inserts the order and its items in one transaction
// and fills in the generated ids.
func (r *MySQLOrderRepository) CreateWithItems(ctx context.Context, order *domain.Order) error {
	txCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	// Rollback is a no-op after a successful commit.
	defer tx.Rollback()

	insertOrder := `
		INSERT INTO orders (
			code, user_id, recipient_name, recipient_phone, recipient_address,
			payment_method, payment_status, order_status,
			shipping_fee, discount_amount, discount_code, total_amount,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`

	result, err := tx.ExecContext(txCtx, insertOrder,
		order.Code, order.UserID,
		order.RecipientName, order.RecipientPhone, order.RecipientAddress,
		order.PaymentMethod, order.PaymentStatus, order.OrderStatus,
		order.ShippingFee, order.DiscountAmount, order.DiscountCode, order.TotalAmount,
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	orderID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting order id: %w", err)
	}
	order.ID = uint(orderID)

	insertItem := `
		INSERT INTO order_items (order_id, product_id, product_name, unit_price, quantity)
		VALUES (?, ?, ?, ?, ?)
	`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		result, err := tx.ExecContext(txCtx, insertItem,
			item.OrderID, item.ProductID, item.ProductName, item.UnitPrice, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("inserting order item: %w", err)
		}

		itemID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting order item id: %w", err)
		}
		item.ID = uint(itemID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing order: %w", err)
	}

	return nil
}

const orderColumns = `
	id, code, user_id, recipient_name, recipient_phone, recipient_address,
	payment_method, payment_status, order_status,
	shipping_fee, discount_amount, discount_code, total_amount,
	created_at, updated_at
`

func (r *MySQLOrderRepository) scanOrder(row *sql.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.Code, &order.UserID,
		&order.RecipientName, &order.RecipientPhone, &order.RecipientAddress,
		&order.PaymentMethod, &order.PaymentStatus, &order.OrderStatus,
		&order.ShippingFee, &order.DiscountAmount, &order.DiscountCode, &order.TotalAmount,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`

	order, err := r.scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *MySQLOrderRepository) FindByCode(ctx context.Context, code string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE code = ?`

	order, err := r.scanOrder(r.db.QueryRowContext(ctx, query, code))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with code %s not found", code))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by code: %w", err)
	}

	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *MySQLOrderRepository) loadItems(ctx context.Context, order *domain.Order) error {
	query := `
		SELECT id, order_id, product_id, product_name, unit_price, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, order.ID)
	if err != nil {
		return fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID,
			&item.ProductName, &item.UnitPrice, &item.Quantity,
		); err != nil {
			return fmt.Errorf("scanning order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}

	return rows.Err()
}

// ApplyGatewayOutcome settles a gateway payment with one conditional
// update: it only takes effect while payment_status is still
// pending_gateway, and it only advances the fulfillment status when the
// order is still pending, leaving a cancelled order cancelled. Returns
// false when the precondition no longer held.
func (r *MySQLOrderRepository) ApplyGatewayOutcome(
	ctx context.Context,
	orderID uint,
	payment domain.PaymentStatus,
	nextWhenPending domain.OrderStatus,
) (bool, error) {
	query := `
		UPDATE orders
		SET payment_status = ?,
		    order_status = CASE WHEN order_status = 'pending' THEN ? ELSE order_status END,
		    updated_at = NOW()
		WHERE id = ? AND payment_status = 'pending_gateway'
	`

	result, err := r.db.ExecContext(ctx, query, payment, nextWhenPending, orderID)
	if err != nil {
		return false, fmt.Errorf("applying gateway outcome: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// UpdateStatus moves the fulfillment status, optionally settling the
// payment in the same statement (cash collection on delivery). The
// update is conditional on the status observed by the caller, so a
// concurrent transition makes it a no-op rather than an overwrite.
func (r *MySQLOrderRepository) UpdateStatus(
	ctx context.Context,
	orderID uint,
	expected, next domain.OrderStatus,
	payment *domain.PaymentStatus,
) (bool, error) {
	var result sql.Result
	var err error

	if payment != nil {
		query := `
			UPDATE orders
			SET order_status = ?, payment_status = ?, updated_at = NOW()
			WHERE id = ? AND order_status = ?
		`
		result, err = r.db.ExecContext(ctx, query, next, *payment, orderID, expected)
	} else {
		query := `
			UPDATE orders
			SET order_status = ?, updated_at = NOW()
			WHERE id = ? AND order_status = ?
		`
		result, err = r.db.ExecContext(ctx, query, next, orderID, expected)
	}
	if err != nil {
		return false, fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *MySQLOrderRepository) Delete(ctx context.Context, orderID uint) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, orderID)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", orderID))
	}

	return nil
}
