package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodCOD     PaymentMethod = "cod"
	PaymentMethodGateway PaymentMethod = "gateway"
)

type PaymentStatus string

const (
	PaymentStatusPending        PaymentStatus = "pending"
	PaymentStatusPendingGateway PaymentStatus = "pending_gateway"
	PaymentStatusSuccess        PaymentStatus = "success"
	PaymentStatusFailed         PaymentStatus = "failed"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipping  OrderStatus = "shipping"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsTerminal reports whether no further fulfillment transition may leave
// this status.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// next holds the single legal forward step of the fulfillment chain.
var next = map[OrderStatus]OrderStatus{
	OrderStatusPending:   OrderStatusConfirmed,
	OrderStatusConfirmed: OrderStatusShipping,
	OrderStatusShipping:  OrderStatusCompleted,
}

// CanTransition reports whether an order may move from one fulfillment
// status to another. The chain is linear; cancellation is reachable from
// any non-terminal status; terminal statuses are never left.
func CanTransition(from, to OrderStatus) bool {
	if from.IsTerminal() {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	return next[from] == to
}

type OrderItem struct {
	ID          uint
	OrderID     uint
	ProductID   int
	ProductName string
	UnitPrice   int64
	Quantity    int
}

// Subtotal is the unit price at order time multiplied by quantity.
func (i OrderItem) Subtotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

type Order struct {
	ID               uint
	Code             string
	UserID           int
	RecipientName    string
	RecipientPhone   string
	RecipientAddress string
	Items            []OrderItem
	PaymentMethod    PaymentMethod
	PaymentStatus    PaymentStatus
	OrderStatus      OrderStatus
	ShippingFee      int64
	DiscountAmount   int64
	DiscountCode     *string
	TotalAmount      int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (o Order) Subtotal() int64 {
	var subtotal int64
	for _, item := range o.Items {
		subtotal += item.Subtotal()
	}
	return subtotal
}

// ComputeTotal derives the order total from its parts:
// sum of item subtotals plus shipping fee minus discount.
func (o *Order) ComputeTotal() {
	o.TotalAmount = o.Subtotal() + o.ShippingFee - o.DiscountAmount
}
