package usecase

import (
	"context"

	"github.com/greencart/storefront/internal/domain/repository"
)

// CartUseCase persists the client-side cart between sessions.
type CartUseCase struct {
	users repository.UserRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(users repository.UserRepository) *CartUseCase {
	return &CartUseCase{users: users}
}

// Update replaces the stored cart. Entries with non-positive quantities
// are dropped rather than rejected; the cart is advisory client state.
func (u *CartUseCase) Update(ctx context.Context, userID int64, cart map[string]int64) error {
	cleaned := make(map[string]int64, len(cart))
	for productID, quantity := range cart {
		if quantity > 0 {
			cleaned[productID] = quantity
		}
	}
	return u.users.UpdateCart(ctx, userID, cleaned)
}
