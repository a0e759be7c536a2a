package repository

import (
	"context"

	"github.com/greencart/storefront/internal/domain/model"
)

// AddressRepository manages shipping addresses. Lookups are scoped by
// owning user so one customer can never reference another's address.
type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) (*model.Address, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Address, error)
	GetForUser(ctx context.Context, id, userID int64) (*model.Address, error)
}
