package repository

import (
	"context"
	"time"

	"github.com/greencart/storefront/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create persists the order together with its line items in one
	// transaction and returns the stored copy.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	// ListConfirmedByUser returns the user's COD and paid orders,
	// newest first, with items, product and address populated.
	ListConfirmedByUser(ctx context.Context, userID int64) ([]model.Order, error)
	// ListConfirmed returns every confirmed order for the seller view.
	ListConfirmed(ctx context.Context) ([]model.Order, error)
	// MarkPaid applies the terminal paid transition. Re-applying the
	// same values to an already paid order is a no-op.
	MarkPaid(ctx context.Context, orderID int64, paymentID string) error
	// ListPendingOnline returns unpaid online orders created before
	// the cutoff, oldest first, for gateway reconciliation.
	ListPendingOnline(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error)
}
