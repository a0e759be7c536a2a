package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/greencart/storefront/internal/adapter/events"
	domainErrors "github.com/greencart/storefront/internal/domain/errors"
	"github.com/greencart/storefront/internal/domain/model"
	testhelpers "github.com/greencart/storefront/internal/test"
	"github.com/greencart/storefront/internal/usecase"
)

type facadeFixture struct {
	facade    *StorefrontFacade
	users     *testhelpers.UserRepositoryStub
	products  *testhelpers.ProductRepositoryStub
	addresses *testhelpers.AddressRepositoryStub
	orders    *testhelpers.OrderRepositoryStub
	publisher *testhelpers.PublisherStub
}

func newFacade(gateway testhelpers.GatewayStub, publisher *testhelpers.PublisherStub) facadeFixture {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	users := testhelpers.NewUserRepositoryStub()
	products := testhelpers.NewProductRepositoryStub()
	addresses := testhelpers.NewAddressRepositoryStub()
	orders := testhelpers.NewOrderRepositoryStub()

	seller := usecase.SellerCredentials{Email: "seller@example.com", Password: "sellerpass"}
	authUC := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, seller)
	catalogUC := usecase.NewCatalogUseCase(products)
	cartUC := usecase.NewCartUseCase(users)
	addressUC := usecase.NewAddressUseCase(addresses)
	orderUC := usecase.NewOrderUseCase(orders, products, addresses, gateway, logger)

	facade := NewStorefrontFacade(authUC, catalogUC, cartUC, addressUC, orderUC, gateway, publisher, logger)
	return facadeFixture{facade: facade, users: users, products: products, addresses: addresses, orders: orders, publisher: publisher}
}

func seedCheckout(t *testing.T, f facadeFixture) (productID, addressID int64) {
	t.Helper()
	product, err := f.products.Create(context.Background(), &model.Product{Name: "Apples", Category: "Fruits", Price: 120, OfferPrice: 100, InStock: true})
	if err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	address, err := f.addresses.Create(context.Background(), &model.Address{UserID: 7, FirstName: "Alice", Street: "1 Main St", City: "Pune", Zipcode: "411001", Country: "India", Phone: "9999999999"})
	if err != nil {
		t.Fatalf("failed to seed address: %v", err)
	}
	return product.ID, address.ID
}

func TestStorefrontFacadeAuth(t *testing.T) {
	f := newFacade(testhelpers.GatewayStub{}, &testhelpers.PublisherStub{})

	usr, token, err := f.facade.Register(context.Background(), "Alice", "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if usr.Email != "alice@example.com" || token != "user-token" {
		t.Fatalf("unexpected register result: %+v %q", usr, token)
	}

	if _, _, err := f.facade.Authenticate(context.Background(), "alice@example.com", "secret"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}

	if _, err := f.facade.AuthenticateSeller(context.Background(), "seller@example.com", "sellerpass"); err != nil {
		t.Fatalf("seller authenticate returned error: %v", err)
	}

	id, _, err := f.facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}
}

func TestStorefrontFacadeCODCheckout(t *testing.T) {
	f := newFacade(testhelpers.GatewayStub{}, &testhelpers.PublisherStub{})
	productID, addressID := seedCheckout(t, f)

	order, err := f.facade.PlaceCODOrder(context.Background(), 7, []usecase.LineItem{{ProductID: productID, Quantity: 2}}, addressID)
	if err != nil {
		t.Fatalf("cod checkout returned error: %v", err)
	}
	if order.Amount != 204 {
		t.Fatalf("expected amount 204, got %d", order.Amount)
	}

	published := f.publisher.Published()
	if len(published) != 1 || published[0].Type != events.TypeOrderPlaced {
		t.Fatalf("expected one order.placed event, got %+v", published)
	}
}

func TestStorefrontFacadeOnlineCheckoutAndVerify(t *testing.T) {
	f := newFacade(testhelpers.GatewayStub{}, &testhelpers.PublisherStub{})
	productID, addressID := seedCheckout(t, f)

	order, session, err := f.facade.PlaceOnlineOrder(context.Background(), 7, []usecase.LineItem{{ProductID: productID, Quantity: 2}}, addressID)
	if err != nil {
		t.Fatalf("online checkout returned error: %v", err)
	}
	if session.Amount != 20400 {
		t.Fatalf("expected gateway amount 20400, got %d", session.Amount)
	}
	if order.Status != model.OrderStatusPaymentPending {
		t.Fatalf("unexpected status %q", order.Status)
	}

	if _, err := f.facade.VerifyPayment(context.Background(), session.ID, "pay_1", "bad", order.ID); !errors.Is(err, domainErrors.ErrVerificationFailed) {
		t.Fatalf("expected verification failed error, got %v", err)
	}

	paid, err := f.facade.VerifyPayment(context.Background(), session.ID, "pay_1", "valid-sig", order.ID)
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	if !paid.IsPaid || paid.Status != model.OrderStatusPaymentCompleted {
		t.Fatalf("unexpected paid order %+v", paid)
	}
	if paid.GatewayPaymentID == nil || *paid.GatewayPaymentID != "pay_1" {
		t.Fatalf("expected payment id to be attached, got %v", paid.GatewayPaymentID)
	}

	published := f.publisher.Published()
	if len(published) != 2 {
		t.Fatalf("expected placed and paid events, got %+v", published)
	}
	if published[1].Type != events.TypeOrderPaid {
		t.Fatalf("expected order.paid event, got %s", published[1].Type)
	}
}

func TestStorefrontFacadePublishFailureDoesNotFailCheckout(t *testing.T) {
	f := newFacade(testhelpers.GatewayStub{}, &testhelpers.PublisherStub{Err: errors.New("broker down")})
	productID, addressID := seedCheckout(t, f)

	if _, err := f.facade.PlaceCODOrder(context.Background(), 7, []usecase.LineItem{{ProductID: productID, Quantity: 1}}, addressID); err != nil {
		t.Fatalf("expected checkout to succeed despite publish failure, got %v", err)
	}
}

func TestStorefrontFacadeConfirmGatewayPayment(t *testing.T) {
	f := newFacade(testhelpers.GatewayStub{}, &testhelpers.PublisherStub{})
	productID, addressID := seedCheckout(t, f)

	order, _, err := f.facade.PlaceOnlineOrder(context.Background(), 7, []usecase.LineItem{{ProductID: productID, Quantity: 1}}, addressID)
	if err != nil {
		t.Fatalf("online checkout returned error: %v", err)
	}

	paid, err := f.facade.ConfirmGatewayPayment(context.Background(), order.ID, "pay_rec")
	if err != nil {
		t.Fatalf("confirm returned error: %v", err)
	}
	if !paid.IsPaid {
		t.Fatal("expected order to be paid")
	}
}

func TestStorefrontFacadeWorkerSurface(t *testing.T) {
	gateway := testhelpers.GatewayStub{KeyIDVal: "rzp_test_key"}
	f := newFacade(gateway, &testhelpers.PublisherStub{})
	productID, addressID := seedCheckout(t, f)

	order, _, err := f.facade.PlaceOnlineOrder(context.Background(), 7, []usecase.LineItem{{ProductID: productID, Quantity: 1}}, addressID)
	if err != nil {
		t.Fatalf("online checkout returned error: %v", err)
	}

	pending, err := f.facade.PendingOnlineOrders(context.Background(), time.Now().Add(time.Minute), 10)
	if err != nil {
		t.Fatalf("pending returned error: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != order.ID {
		t.Fatalf("expected the pending order, got %+v", pending)
	}

	session, err := f.facade.GatewaySession(context.Background(), *order.GatewayOrderID)
	if err != nil || session.Status != model.GatewaySessionPaid {
		t.Fatalf("unexpected session %+v err %v", session, err)
	}

	payments, err := f.facade.SessionPayments(context.Background(), *order.GatewayOrderID)
	if err != nil || len(payments) != 1 {
		t.Fatalf("unexpected payments %+v err %v", payments, err)
	}

	if f.facade.GatewayKeyID() != "rzp_test_key" {
		t.Fatalf("unexpected key id %q", f.facade.GatewayKeyID())
	}
}
