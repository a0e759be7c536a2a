package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/greencart/storefront/internal/domain/errors"
	"github.com/greencart/storefront/internal/domain/model"
	"github.com/greencart/storefront/internal/domain/repository"
)

// CatalogUseCase manages the product catalog.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// Add validates and stores a new catalog entry.
func (u *CatalogUseCase) Add(ctx context.Context, product *model.Product) (*model.Product, error) {
	if strings.TrimSpace(product.Name) == "" || strings.TrimSpace(product.Category) == "" {
		return nil, domainErrors.ErrInvalidProduct
	}
	if product.Price <= 0 || product.OfferPrice <= 0 || product.OfferPrice > product.Price {
		return nil, domainErrors.ErrInvalidProduct
	}
	return u.products.Create(ctx, product)
}

// List returns the catalog, newest first.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Get returns a single product.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// SetStock toggles product availability.
func (u *CatalogUseCase) SetStock(ctx context.Context, id int64, inStock bool) error {
	return u.products.SetStock(ctx, id, inStock)
}
