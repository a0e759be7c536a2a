package model

// GatewaySessionStatus mirrors payment gateway order lifecycle.
type GatewaySessionStatus string

const (
	GatewaySessionCreated   GatewaySessionStatus = "created"
	GatewaySessionAttempted GatewaySessionStatus = "attempted"
	GatewaySessionPaid      GatewaySessionStatus = "paid"
)

// GatewaySession is the gateway-side object representing an authorized
// payment amount. Amount is in the currency's smallest unit.
type GatewaySession struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   GatewaySessionStatus
}

// GatewayPayment is a payment attempt recorded against a session.
type GatewayPayment struct {
	ID     string
	Status string
	Amount int64
}

// Captured reports whether the payment actually settled.
func (p GatewayPayment) Captured() bool {
	return p.Status == "captured"
}
