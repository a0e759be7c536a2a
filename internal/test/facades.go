package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/greencart/storefront/internal/domain/model"
	pkgAuth "github.com/greencart/storefront/internal/pkg/auth"
	"github.com/greencart/storefront/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn           func(context.Context, string, string, string) (*model.User, string, error)
	AuthenticateFn       func(context.Context, string, string) (*model.User, string, error)
	AuthenticateSellerFn func(context.Context, string, string) (string, error)
	ParseFn              func(string) (int64, pkgAuth.Audience, error)
	UserFn               func(context.Context, int64) (*model.User, error)
}

// Register returns a user and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.User{ID: 1, Name: name, Email: email}, "token", nil
}

// Authenticate returns a user and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email}, "token", nil
}

// AuthenticateSeller returns a seller token.
func (s AuthFacadeStub) AuthenticateSeller(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateSellerFn != nil {
		return s.AuthenticateSellerFn(ctx, email, password)
	}
	return "seller-token", nil
}

// ParseToken returns stored claims for the authenticated caller.
func (s AuthFacadeStub) ParseToken(token string) (int64, pkgAuth.Audience, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, pkgAuth.AudienceUser, nil
}

// User returns the stored user.
func (s AuthFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Name: "user", Email: "user@example.com"}, nil
}

// CatalogFacadeStub provides controllable catalog behaviour.
type CatalogFacadeStub struct {
	ProductsFn   func(context.Context) ([]model.Product, error)
	ProductFn    func(context.Context, int64) (*model.Product, error)
	AddProductFn func(context.Context, *model.Product) (*model.Product, error)
	SetStockFn   func(context.Context, int64, bool) error
}

// Products returns the configured catalog.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "Apples", Category: "Fruits", Price: 120, OfferPrice: 100, InStock: true}}, nil
}

// Product returns a single configured product.
func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Apples", Category: "Fruits", Price: 120, OfferPrice: 100, InStock: true}, nil
}

// AddProduct delegates or echoes the product back with an id.
func (s CatalogFacadeStub) AddProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.AddProductFn != nil {
		return s.AddProductFn(ctx, product)
	}
	product.ID = 1
	return product, nil
}

// SetProductStock records the stock toggle.
func (s CatalogFacadeStub) SetProductStock(ctx context.Context, id int64, inStock bool) error {
	if s.SetStockFn != nil {
		return s.SetStockFn(ctx, id, inStock)
	}
	return nil
}

// CartFacadeStub persists the client cart for tests.
type CartFacadeStub struct {
	UpdateCartFn func(context.Context, int64, map[string]int64) error
}

// UpdateCart delegates to the override or succeeds.
func (s CartFacadeStub) UpdateCart(ctx context.Context, userID int64, cart map[string]int64) error {
	if s.UpdateCartFn != nil {
		return s.UpdateCartFn(ctx, userID, cart)
	}
	return nil
}

// AddressFacadeStub simulates address book operations.
type AddressFacadeStub struct {
	AddAddressFn func(context.Context, *model.Address) (*model.Address, error)
	AddressesFn  func(context.Context, int64) ([]model.Address, error)
}

// AddAddress delegates or echoes the address back with an id.
func (s AddressFacadeStub) AddAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	if s.AddAddressFn != nil {
		return s.AddAddressFn(ctx, address)
	}
	address.ID = 1
	return address, nil
}

// Addresses returns the configured address book.
func (s AddressFacadeStub) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.AddressesFn != nil {
		return s.AddressesFn(ctx, userID)
	}
	return []model.Address{{ID: 1, UserID: userID, FirstName: "Alice", City: "Pune"}}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceCODFn    func(context.Context, int64, []usecase.LineItem, int64) (*model.Order, error)
	PlaceOnlineFn func(context.Context, int64, []usecase.LineItem, int64) (*model.Order, *model.GatewaySession, error)
	VerifyFn      func(context.Context, string, string, string, int64) (*model.Order, error)
	UserOrdersFn  func(context.Context, int64) ([]model.Order, error)
	AllOrdersFn   func(context.Context) ([]model.Order, error)
	KeyIDVal      string
}

// PlaceCODOrder delegates or returns a placed order.
func (s OrderFacadeStub) PlaceCODOrder(ctx context.Context, userID int64, items []usecase.LineItem, addressID int64) (*model.Order, error) {
	if s.PlaceCODFn != nil {
		return s.PlaceCODFn(ctx, userID, items, addressID)
	}
	return &model.Order{ID: 1, UserID: userID, AddressID: addressID, Amount: 204, PaymentType: model.PaymentTypeCOD, Status: model.OrderStatusPlaced}, nil
}

// PlaceOnlineOrder delegates or returns a pending order with a session.
func (s OrderFacadeStub) PlaceOnlineOrder(ctx context.Context, userID int64, items []usecase.LineItem, addressID int64) (*model.Order, *model.GatewaySession, error) {
	if s.PlaceOnlineFn != nil {
		return s.PlaceOnlineFn(ctx, userID, items, addressID)
	}
	sessionID := "order_stub"
	order := &model.Order{ID: 1, UserID: userID, AddressID: addressID, Amount: 204, PaymentType: model.PaymentTypeOnline, GatewayOrderID: &sessionID, Status: model.OrderStatusPaymentPending}
	session := &model.GatewaySession{ID: sessionID, Amount: 20400, Currency: "INR", Receipt: "receipt_stub", Status: model.GatewaySessionCreated}
	return order, session, nil
}

// VerifyPayment delegates or returns a paid order.
func (s OrderFacadeStub) VerifyPayment(ctx context.Context, sessionID, paymentID, signature string, orderID int64) (*model.Order, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, sessionID, paymentID, signature, orderID)
	}
	return &model.Order{ID: orderID, IsPaid: true, Status: model.OrderStatusPaymentCompleted}, nil
}

// UserOrders returns predefined orders for the given user.
func (s OrderFacadeStub) UserOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.UserOrdersFn != nil {
		return s.UserOrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID, Amount: 204, PaymentType: model.PaymentTypeCOD, Status: model.OrderStatusPlaced}}, nil
}

// AllOrders returns predefined orders for the seller view.
func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return []model.Order{{ID: 1, Amount: 204, PaymentType: model.PaymentTypeCOD, Status: model.OrderStatusPlaced}}, nil
}

// GatewayKeyID returns the configured public key id.
func (s OrderFacadeStub) GatewayKeyID() string {
	if s.KeyIDVal != "" {
		return s.KeyIDVal
	}
	return "rzp_test_stub"
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	AddressFacadeStub
	OrderFacadeStub
}

// PaymentConfirmation stores information about ConfirmGatewayPayment invocations.
type PaymentConfirmation struct {
	OrderID   int64
	PaymentID string
}

// WorkerFacadeStub mimics reconciler interactions with the storefront facade.
type WorkerFacadeStub struct {
	Batches        [][]model.Order
	PendingFn      func(context.Context, time.Time, int) ([]model.Order, error)
	SessionFn      func(context.Context, string) (*model.GatewaySession, error)
	PaymentsFn     func(context.Context, string) ([]model.GatewayPayment, error)
	ConfirmFn      func(context.Context, int64, string) (*model.Order, error)
	Confirmations  []PaymentConfirmation
	mu             sync.Mutex
	pendingCallSeq int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// PendingOnlineOrders returns batches from the configured queue.
func (s *WorkerFacadeStub) PendingOnlineOrders(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx, cutoff, limit)
	}
	call := atomic.AddInt32(&s.pendingCallSeq, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// GatewaySession returns configured session data.
func (s *WorkerFacadeStub) GatewaySession(ctx context.Context, sessionID string) (*model.GatewaySession, error) {
	if s.SessionFn != nil {
		return s.SessionFn(ctx, sessionID)
	}
	return &model.GatewaySession{ID: sessionID, Status: model.GatewaySessionPaid}, nil
}

// SessionPayments returns configured payment attempts.
func (s *WorkerFacadeStub) SessionPayments(ctx context.Context, sessionID string) ([]model.GatewayPayment, error) {
	if s.PaymentsFn != nil {
		return s.PaymentsFn(ctx, sessionID)
	}
	return []model.GatewayPayment{{ID: "pay_stub", Status: "captured"}}, nil
}

// ConfirmGatewayPayment records confirmation requests.
func (s *WorkerFacadeStub) ConfirmGatewayPayment(ctx context.Context, orderID int64, paymentID string) (*model.Order, error) {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, orderID, paymentID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Confirmations = append(s.Confirmations, PaymentConfirmation{OrderID: orderID, PaymentID: paymentID})
	return &model.Order{ID: orderID, IsPaid: true, Status: model.OrderStatusPaymentCompleted}, nil
}
