package handlers

import (
	"context"

	"github.com/greencart/storefront/internal/domain/model"
	pkgAuth "github.com/greencart/storefront/internal/pkg/auth"
	"github.com/greencart/storefront/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	AuthenticateSeller(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (int64, pkgAuth.Audience, error)
	User(ctx context.Context, id int64) (*model.User, error)
}

// CatalogFacade exposes product catalog operations.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	AddProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	SetProductStock(ctx context.Context, id int64, inStock bool) error
}

// CartFacade persists the client cart.
type CartFacade interface {
	UpdateCart(ctx context.Context, userID int64, cart map[string]int64) error
}

// AddressFacade manages the user's address book.
type AddressFacade interface {
	AddAddress(ctx context.Context, address *model.Address) (*model.Address, error)
	Addresses(ctx context.Context, userID int64) ([]model.Address, error)
}

// OrderFacade encapsulates checkout and payment operations exposed via
// HTTP.
type OrderFacade interface {
	PlaceCODOrder(ctx context.Context, userID int64, items []usecase.LineItem, addressID int64) (*model.Order, error)
	PlaceOnlineOrder(ctx context.Context, userID int64, items []usecase.LineItem, addressID int64) (*model.Order, *model.GatewaySession, error)
	VerifyPayment(ctx context.Context, sessionID, paymentID, signature string, orderID int64) (*model.Order, error)
	UserOrders(ctx context.Context, userID int64) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	GatewayKeyID() string
}

// StorefrontFacade aggregates the full set of operations used across
// handlers.
type StorefrontFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	AddressFacade
	OrderFacade
}
