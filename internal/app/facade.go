package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/greencart/storefront/internal/adapter/events"
	"github.com/greencart/storefront/internal/adapter/razorpay"
	"github.com/greencart/storefront/internal/domain/model"
	pkgAuth "github.com/greencart/storefront/internal/pkg/auth"
	"github.com/greencart/storefront/internal/usecase"
)

// StorefrontFacade aggregates use cases behind the surface the HTTP
// layer and the reconciliation worker consume. Order lifecycle events
// are published from here, best effort.
type StorefrontFacade struct {
	auth      *usecase.AuthUseCase
	catalog   *usecase.CatalogUseCase
	cart      *usecase.CartUseCase
	addresses *usecase.AddressUseCase
	orders    *usecase.OrderUseCase
	gateway   razorpay.Client
	publisher events.Publisher
	logger    *slog.Logger
}

// NewStorefrontFacade constructs the facade.
func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	addresses *usecase.AddressUseCase,
	orders *usecase.OrderUseCase,
	gateway razorpay.Client,
	publisher events.Publisher,
	logger *slog.Logger,
) *StorefrontFacade {
	return &StorefrontFacade{
		auth:      auth,
		catalog:   catalog,
		cart:      cart,
		addresses: addresses,
		orders:    orders,
		gateway:   gateway,
		publisher: publisher,
		logger:    logger,
	}
}

func (f *StorefrontFacade) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StorefrontFacade) AuthenticateSeller(ctx context.Context, email, password string) (string, error) {
	return f.auth.AuthenticateSeller(ctx, email, password)
}

func (f *StorefrontFacade) ParseToken(token string) (int64, pkgAuth.Audience, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *StorefrontFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StorefrontFacade) AddProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.Add(ctx, product)
}

func (f *StorefrontFacade) SetProductStock(ctx context.Context, id int64, inStock bool) error {
	return f.catalog.SetStock(ctx, id, inStock)
}

func (f *StorefrontFacade) UpdateCart(ctx context.Context, userID int64, cart map[string]int64) error {
	return f.cart.Update(ctx, userID, cart)
}

func (f *StorefrontFacade) AddAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	return f.addresses.Add(ctx, address)
}

func (f *StorefrontFacade) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	return f.addresses.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) PlaceCODOrder(ctx context.Context, userID int64, items []usecase.LineItem, addressID int64) (*model.Order, error) {
	order, err := f.orders.PlaceCOD(ctx, userID, items, addressID)
	if err != nil {
		return nil, err
	}
	f.publish(ctx, events.TypeOrderPlaced, order)
	return order, nil
}

func (f *StorefrontFacade) PlaceOnlineOrder(ctx context.Context, userID int64, items []usecase.LineItem, addressID int64) (*model.Order, *model.GatewaySession, error) {
	order, session, err := f.orders.PlaceOnline(ctx, userID, items, addressID)
	if err != nil {
		return nil, nil, err
	}
	f.publish(ctx, events.TypeOrderPlaced, order)
	return order, session, nil
}

func (f *StorefrontFacade) VerifyPayment(ctx context.Context, sessionID, paymentID, signature string, orderID int64) (*model.Order, error) {
	order, err := f.orders.VerifyPayment(ctx, sessionID, paymentID, signature, orderID)
	if err != nil {
		return nil, err
	}
	f.publish(ctx, events.TypeOrderPaid, order)
	return order, nil
}

func (f *StorefrontFacade) UserOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *StorefrontFacade) GatewayKeyID() string {
	return f.gateway.KeyID()
}

func (f *StorefrontFacade) PendingOnlineOrders(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	return f.orders.PendingOnline(ctx, cutoff, limit)
}

func (f *StorefrontFacade) GatewaySession(ctx context.Context, sessionID string) (*model.GatewaySession, error) {
	return f.gateway.FetchSession(ctx, sessionID)
}

func (f *StorefrontFacade) SessionPayments(ctx context.Context, sessionID string) ([]model.GatewayPayment, error) {
	return f.gateway.SessionPayments(ctx, sessionID)
}

func (f *StorefrontFacade) ConfirmGatewayPayment(ctx context.Context, orderID int64, paymentID string) (*model.Order, error) {
	order, err := f.orders.ConfirmPayment(ctx, orderID, paymentID)
	if err != nil {
		return nil, err
	}
	f.publish(ctx, events.TypeOrderPaid, order)
	return order, nil
}

func (f *StorefrontFacade) publish(ctx context.Context, eventType events.Type, order *model.Order) {
	if err := f.publisher.PublishOrderEvent(ctx, events.NewOrderEvent(eventType, order)); err != nil {
		f.logger.Warn("order event publish failed",
			slog.String("type", string(eventType)),
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}
}
