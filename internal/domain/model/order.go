package model

import "time"

// PaymentType distinguishes how an order is settled.
type PaymentType string

const (
	PaymentTypeCOD    PaymentType = "COD"
	PaymentTypeOnline PaymentType = "Online"
)

// OrderStatus is an informational overlay over the paid flag.
type OrderStatus string

const (
	OrderStatusPlaced           OrderStatus = "Order Placed"
	OrderStatusPaymentPending   OrderStatus = "Payment Pending"
	OrderStatusPaymentCompleted OrderStatus = "Payment Completed"
)

// OrderItem is a single line of an order with the unit price captured
// at placement time.
type OrderItem struct {
	ProductID int64
	Quantity  int64
	UnitPrice int64
	Product   *Product
}

// Order describes one checkout attempt. Amount is the server-computed
// total in whole currency units, including the surcharge; client totals
// are never trusted.
type Order struct {
	ID               int64
	UserID           int64
	AddressID        int64
	Items            []OrderItem
	Amount           int64
	PaymentType      PaymentType
	IsPaid           bool
	GatewayOrderID   *string
	GatewayPaymentID *string
	Status           OrderStatus
	Address          *Address
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Confirmed reports whether the order should appear in order listings:
// COD orders immediately, online orders only once paid.
func (o *Order) Confirmed() bool {
	return o.PaymentType == PaymentTypeCOD || o.IsPaid
}
