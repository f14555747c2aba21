package dto

import "time"

type CheckoutRequest struct {
	UserID           int            `json:"userId"`
	RecipientName    string         `json:"recipientName"`
	RecipientPhone   string         `json:"recipientPhone"`
	RecipientAddress string         `json:"recipientAddress"`
	Items            []CheckoutItem `json:"items"`
	ShippingFee      int64          `json:"shippingFee"`
	PaymentMethod    string         `json:"paymentMethod"`
	DiscountCode     string         `json:"discountCode,omitempty"`
}

type CheckoutItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type CheckoutResponse struct {
	TraceID        string    `json:"traceId"`
	OrderID        uint      `json:"orderId"`
	OrderCode      string    `json:"orderCode"`
	Subtotal       int64     `json:"subtotal"`
	ShippingFee    int64     `json:"shippingFee"`
	DiscountAmount int64     `json:"discountAmount"`
	TotalAmount    int64     `json:"totalAmount"`
	OrderStatus    string    `json:"orderStatus"`
	PaymentStatus  string    `json:"paymentStatus"`
	PaymentURL     string    `json:"paymentUrl,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}
