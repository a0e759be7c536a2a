package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/greencart/storefront/internal/domain/errors"
	"github.com/greencart/storefront/internal/domain/model"
	"github.com/greencart/storefront/internal/domain/repository"
)

const (
	// surchargePercent is the fixed-rate handling fee added to every
	// order subtotal, floored to whole currency units.
	surchargePercent = 2

	gatewayCurrency = "INR"

	// subunitFactor converts whole currency units to the gateway's
	// smallest unit.
	subunitFactor = 100
)

// PaymentGateway is the slice of gateway functionality the order flow needs.
type PaymentGateway interface {
	CreateSession(ctx context.Context, amount int64, currency, receipt string) (*model.GatewaySession, error)
	VerifySignature(sessionID, paymentID, signature string) bool
}

// LineItem is a client-supplied order line. Prices never come from the
// client; only the product reference and quantity are trusted inputs.
type LineItem struct {
	ProductID int64
	Quantity  int64
}

// OrderUseCase encapsulates checkout and payment verification logic.
type OrderUseCase struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	addresses repository.AddressRepository
	gateway   PaymentGateway
	logger    *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	addresses repository.AddressRepository,
	gateway PaymentGateway,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, addresses: addresses, gateway: gateway, logger: logger}
}

// PlaceCOD places a cash-on-delivery order. The order is terminal
// immediately; no payment step follows.
func (u *OrderUseCase) PlaceCOD(ctx context.Context, userID int64, items []LineItem, addressID int64) (*model.Order, error) {
	if err := validateOrderRequest(items, addressID); err != nil {
		return nil, err
	}
	if _, err := u.addresses.GetForUser(ctx, addressID, userID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidOrder
		}
		return nil, err
	}

	amount, orderItems, err := u.priceItems(ctx, items)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		UserID:      userID,
		AddressID:   addressID,
		Items:       orderItems,
		Amount:      amount,
		PaymentType: model.PaymentTypeCOD,
		Status:      model.OrderStatusPlaced,
	}
	return u.orders.Create(ctx, order)
}

// PlaceOnline opens a gateway session for the computed amount and
// persists a pending order carrying the session id. The gateway call
// strictly precedes persistence so a gateway failure never leaves a
// partial order behind; a persistence failure after session creation is
// logged as an orphaned session (unpaid sessions expire on their own).
func (u *OrderUseCase) PlaceOnline(ctx context.Context, userID int64, items []LineItem, addressID int64) (*model.Order, *model.GatewaySession, error) {
	if err := validateOrderRequest(items, addressID); err != nil {
		return nil, nil, err
	}
	if _, err := u.addresses.GetForUser(ctx, addressID, userID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, nil, domainErrors.ErrInvalidOrder
		}
		return nil, nil, err
	}

	amount, orderItems, err := u.priceItems(ctx, items)
	if err != nil {
		return nil, nil, err
	}

	receipt := "receipt_" + uuid.NewString()
	session, err := u.gateway.CreateSession(ctx, amount*subunitFactor, gatewayCurrency, receipt)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domainErrors.ErrGatewayUnavailable, err)
	}

	order := &model.Order{
		UserID:         userID,
		AddressID:      addressID,
		Items:          orderItems,
		Amount:         amount,
		PaymentType:    model.PaymentTypeOnline,
		GatewayOrderID: &session.ID,
		Status:         model.OrderStatusPaymentPending,
	}
	stored, err := u.orders.Create(ctx, order)
	if err != nil {
		u.logger.Error("order persistence failed after gateway session was opened, session orphaned",
			slog.String("gateway_order_id", session.ID),
			slog.Int64("user_id", userID),
		)
		return nil, nil, err
	}
	return stored, session, nil
}

// VerifyPayment recomputes the callback signature and applies the paid
// transition on a match. Verifying an already paid order again with a
// valid signature re-applies the same terminal state and is safe.
func (u *OrderUseCase) VerifyPayment(ctx context.Context, sessionID, paymentID, signature string, orderID int64) (*model.Order, error) {
	if !u.gateway.VerifySignature(sessionID, paymentID, signature) {
		return nil, domainErrors.ErrVerificationFailed
	}
	return u.ConfirmPayment(ctx, orderID, paymentID)
}

// ConfirmPayment marks the order paid and returns the updated order.
// Shared by callback verification and gateway reconciliation.
func (u *OrderUseCase) ConfirmPayment(ctx context.Context, orderID int64, paymentID string) (*model.Order, error) {
	if err := u.orders.MarkPaid(ctx, orderID, paymentID); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, orderID)
}

// ListByUser returns the user's confirmed orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListConfirmedByUser(ctx, userID)
}

// ListAll returns every confirmed order for the seller dashboard.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListConfirmed(ctx)
}

// PendingOnline returns unpaid online orders created before the cutoff.
func (u *OrderUseCase) PendingOnline(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	return u.orders.ListPendingOnline(ctx, cutoff, limit)
}

func validateOrderRequest(items []LineItem, addressID int64) error {
	if addressID <= 0 || len(items) == 0 {
		return domainErrors.ErrInvalidOrder
	}
	for _, item := range items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return domainErrors.ErrInvalidOrder
		}
	}
	return nil
}

// priceItems resolves authoritative offer prices and computes the total
// including the surcharge. Line items referencing unknown products are
// skipped from the total; an order where nothing resolves is rejected.
func (u *OrderUseCase) priceItems(ctx context.Context, items []LineItem) (int64, []model.OrderItem, error) {
	var subtotal int64
	resolved := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		product, err := u.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				u.logger.Warn("skipping unknown product in order", slog.Int64("product_id", item.ProductID))
				continue
			}
			return 0, nil, err
		}
		subtotal += product.OfferPrice * item.Quantity
		resolved = append(resolved, model.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.OfferPrice,
		})
	}
	if len(resolved) == 0 {
		return 0, nil, domainErrors.ErrEmptyOrder
	}

	amount := subtotal + subtotal*surchargePercent/100
	return amount, resolved, nil
}
