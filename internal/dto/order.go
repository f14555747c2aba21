package dto

import "time"

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	OrderID          uint                `json:"orderId"`
	Code             string              `json:"code"`
	UserID           int                 `json:"userId"`
	RecipientName    string              `json:"recipientName"`
	RecipientPhone   string              `json:"recipientPhone"`
	RecipientAddress string              `json:"recipientAddress"`
	Items            []OrderItemResponse `json:"items"`
	PaymentMethod    string              `json:"paymentMethod"`
	PaymentStatus    string              `json:"paymentStatus"`
	OrderStatus      string              `json:"orderStatus"`
	ShippingFee      int64               `json:"shippingFee"`
	DiscountAmount   int64               `json:"discountAmount"`
	DiscountCode     *string             `json:"discountCode,omitempty"`
	TotalAmount      int64               `json:"totalAmount"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

type OrderItemResponse struct {
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
}

// GatewayAck is the acknowledgment body the gateway expects from the
// return endpoint.
type GatewayAck struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}
