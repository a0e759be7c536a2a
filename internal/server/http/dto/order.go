package dto

import "time"

// OrderItemRequest is one client-supplied order line. Only the product
// reference and quantity are read; prices are resolved server-side.
type OrderItemRequest struct {
	Product  int64 `json:"product"`
	Quantity int64 `json:"quantity"`
}

// OrderRequest is the shared payload of the COD and online checkout
// routes.
type OrderRequest struct {
	Items   []OrderItemRequest `json:"items"`
	Address int64              `json:"address"`
}

// VerifyRequest carries the gateway checkout callback fields together
// with the internal order the payment belongs to.
type VerifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	OrderID           int64  `json:"orderId"`
}

// GatewayOrderResponse describes the opened payment session the client
// hands to the gateway's checkout widget.
type GatewayOrderResponse struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	DBOrderID int64  `json:"dbOrderId"`
}

// GatewayOrderEnvelope wraps a payment session.
type GatewayOrderEnvelope struct {
	Success bool                 `json:"success"`
	Order   GatewayOrderResponse `json:"order"`
}

// OrderItemResponse is an order line with its product snapshot.
type OrderItemResponse struct {
	Product   *ProductResponse `json:"product,omitempty"`
	Quantity  int64            `json:"quantity"`
	UnitPrice int64            `json:"unitPrice"`
}

// OrderResponse is a confirmed order as shown in order history.
type OrderResponse struct {
	ID          int64               `json:"id"`
	Items       []OrderItemResponse `json:"items"`
	Amount      int64               `json:"amount"`
	PaymentType string              `json:"paymentType"`
	IsPaid      bool                `json:"isPaid"`
	Status      string              `json:"status"`
	Address     *AddressResponse    `json:"address,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// OrderListEnvelope wraps order history listings.
type OrderListEnvelope struct {
	Success bool            `json:"success"`
	Orders  []OrderResponse `json:"orders"`
}

// KeyEnvelope exposes the public gateway key id for checkout.
type KeyEnvelope struct {
	Success bool   `json:"success"`
	Key     string `json:"key"`
}
