package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/greencart/storefront/internal/domain/errors"
	"github.com/greencart/storefront/internal/domain/model"
	"github.com/greencart/storefront/internal/domain/repository"
)

// AddressUseCase manages shipping addresses.
type AddressUseCase struct {
	addresses repository.AddressRepository
}

// NewAddressUseCase constructs AddressUseCase.
func NewAddressUseCase(addresses repository.AddressRepository) *AddressUseCase {
	return &AddressUseCase{addresses: addresses}
}

// Add validates and stores a shipping address for the user.
func (u *AddressUseCase) Add(ctx context.Context, address *model.Address) (*model.Address, error) {
	required := []string{
		address.FirstName,
		address.Street,
		address.City,
		address.Zipcode,
		address.Country,
		address.Phone,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return nil, domainErrors.ErrInvalidAddress
		}
	}
	return u.addresses.Create(ctx, address)
}

// ListByUser returns the user's stored addresses.
func (u *AddressUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	return u.addresses.ListByUser(ctx, userID)
}
