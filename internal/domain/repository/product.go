package repository

import (
	"context"

	"github.com/greencart/storefront/internal/domain/model"
)

// ProductRepository provides read/write access to the catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	SetStock(ctx context.Context, id int64, inStock bool) error
}
