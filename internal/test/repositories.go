package test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/greencart/storefront/internal/adapter/events"
	domainErrors "github.com/greencart/storefront/internal/domain/errors"
	"github.com/greencart/storefront/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
	Carts map[int64]map[string]int64
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Carts: make(map[int64]map[string]int64),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{ID: s.Next, Name: name, Email: email, PasswordHash: passwordHash}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateCart stores the replacement cart.
func (s *UserRepositoryStub) UpdateCart(ctx context.Context, userID int64, cart map[string]int64) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Carts == nil {
		s.Carts = make(map[int64]map[string]int64)
	}
	s.Carts[userID] = cart
	return nil
}

// ProductRepositoryStub keeps a fixed catalog for tests.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	Next     int64
	Err      error
}

// NewProductRepositoryStub constructs the stub with an initialized map.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product), Next: 1}
}

// Create stores the product and assigns an identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *product
	stored.ID = s.Next
	s.Next++
	s.Products[stored.ID] = &stored
	return &stored, nil
}

// GetByID returns the stored product or not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if product, ok := s.Products[id]; ok {
		return product, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored product.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	list := make([]model.Product, 0, len(s.Products))
	for _, product := range s.Products {
		list = append(list, *product)
	}
	return list, nil
}

// SetStock toggles availability on the stored product.
func (s *ProductRepositoryStub) SetStock(ctx context.Context, id int64, inStock bool) error {
	if s.Err != nil {
		return s.Err
	}
	product, ok := s.Products[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	product.InStock = inStock
	return nil
}

// AddressRepositoryStub stores addresses scoped by user.
type AddressRepositoryStub struct {
	Addresses map[int64]*model.Address
	Next      int64
	Err       error
}

// NewAddressRepositoryStub constructs the stub with an initialized map.
func NewAddressRepositoryStub() *AddressRepositoryStub {
	return &AddressRepositoryStub{Addresses: make(map[int64]*model.Address), Next: 1}
}

// Create stores the address and assigns an identifier.
func (s *AddressRepositoryStub) Create(ctx context.Context, address *model.Address) (*model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *address
	stored.ID = s.Next
	s.Next++
	s.Addresses[stored.ID] = &stored
	return &stored, nil
}

// ListByUser returns addresses owned by the user.
func (s *AddressRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	list := make([]model.Address, 0)
	for _, address := range s.Addresses {
		if address.UserID == userID {
			list = append(list, *address)
		}
	}
	return list, nil
}

// GetForUser returns the address only when the user owns it.
func (s *AddressRepositoryStub) GetForUser(ctx context.Context, id, userID int64) (*model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	address, ok := s.Addresses[id]
	if !ok || address.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return address, nil
}

// OrderRepositoryStub allows tests to customize order persistence.
type OrderRepositoryStub struct {
	CreateFn   func(context.Context, *model.Order) (*model.Order, error)
	MarkPaidFn func(context.Context, int64, string) error

	Orders map[int64]*model.Order
	Next   int64
	Err    error
}

// NewOrderRepositoryStub constructs the stub with an initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[int64]*model.Order), Next: 1}
}

// Create stores the order with its items.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *order
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	s.Next++
	s.Orders[stored.ID] = &stored
	return &stored, nil
}

// GetByID returns the stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		return order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListConfirmedByUser returns the user's COD and paid orders.
func (s *OrderRepositoryStub) ListConfirmedByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	list := make([]model.Order, 0)
	for _, order := range s.Orders {
		if order.UserID == userID && order.Confirmed() {
			list = append(list, *order)
		}
	}
	return list, nil
}

// ListConfirmed returns every confirmed order.
func (s *OrderRepositoryStub) ListConfirmed(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	list := make([]model.Order, 0)
	for _, order := range s.Orders {
		if order.Confirmed() {
			list = append(list, *order)
		}
	}
	return list, nil
}

// MarkPaid applies the paid transition in place.
func (s *OrderRepositoryStub) MarkPaid(ctx context.Context, orderID int64, paymentID string) error {
	if s.MarkPaidFn != nil {
		return s.MarkPaidFn(ctx, orderID, paymentID)
	}
	if s.Err != nil {
		return s.Err
	}
	order, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.IsPaid = true
	order.GatewayPaymentID = &paymentID
	order.Status = model.OrderStatusPaymentCompleted
	return nil
}

// ListPendingOnline returns unpaid online orders created before cutoff.
func (s *OrderRepositoryStub) ListPendingOnline(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	list := make([]model.Order, 0)
	for _, order := range s.Orders {
		if order.PaymentType == model.PaymentTypeOnline && !order.IsPaid && order.GatewayOrderID != nil && order.CreatedAt.Before(cutoff) {
			list = append(list, *order)
			if len(list) == limit {
				break
			}
		}
	}
	return list, nil
}

// GatewayStub simulates the payment gateway client.
type GatewayStub struct {
	CreateSessionFn   func(context.Context, int64, string, string) (*model.GatewaySession, error)
	FetchSessionFn    func(context.Context, string) (*model.GatewaySession, error)
	SessionPaymentsFn func(context.Context, string) ([]model.GatewayPayment, error)
	VerifyFn          func(string, string, string) bool
	KeyIDVal          string
}

// CreateSession opens a deterministic session.
func (s GatewayStub) CreateSession(ctx context.Context, amount int64, currency, receipt string) (*model.GatewaySession, error) {
	if s.CreateSessionFn != nil {
		return s.CreateSessionFn(ctx, amount, currency, receipt)
	}
	return &model.GatewaySession{ID: "order_stub", Amount: amount, Currency: currency, Receipt: receipt, Status: model.GatewaySessionCreated}, nil
}

// FetchSession returns a paid session by default.
func (s GatewayStub) FetchSession(ctx context.Context, sessionID string) (*model.GatewaySession, error) {
	if s.FetchSessionFn != nil {
		return s.FetchSessionFn(ctx, sessionID)
	}
	return &model.GatewaySession{ID: sessionID, Status: model.GatewaySessionPaid}, nil
}

// SessionPayments returns a captured payment by default.
func (s GatewayStub) SessionPayments(ctx context.Context, sessionID string) ([]model.GatewayPayment, error) {
	if s.SessionPaymentsFn != nil {
		return s.SessionPaymentsFn(ctx, sessionID)
	}
	return []model.GatewayPayment{{ID: "pay_stub", Status: "captured"}}, nil
}

// VerifySignature accepts signatures prefixed with "valid" by default.
func (s GatewayStub) VerifySignature(sessionID, paymentID, signature string) bool {
	if s.VerifyFn != nil {
		return s.VerifyFn(sessionID, paymentID, signature)
	}
	return strings.HasPrefix(signature, "valid")
}

// KeyID returns the configured public key.
func (s GatewayStub) KeyID() string {
	if s.KeyIDVal != "" {
		return s.KeyIDVal
	}
	return "rzp_test_stub"
}

// PublisherStub records published order events.
type PublisherStub struct {
	Err    error
	mu     sync.Mutex
	Events []events.OrderEvent
}

// PublishOrderEvent records the event or fails with the configured error.
func (s *PublisherStub) PublishOrderEvent(ctx context.Context, event events.OrderEvent) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, event)
	return nil
}

// Close is a no-op.
func (s *PublisherStub) Close() error { return nil }

// Published returns a copy of the recorded events.
func (s *PublisherStub) Published() []events.OrderEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]events.OrderEvent(nil), s.Events...)
}
