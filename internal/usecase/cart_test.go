package usecase

import (
	"context"
	"testing"
)

func TestCartUseCaseUpdateDropsNonPositiveQuantities(t *testing.T) {
	var stored map[string]int64
	users := stubUserRepository{updateCartFn: func(_ context.Context, userID int64, cart map[string]int64) error {
		if userID != 7 {
			t.Fatalf("unexpected user id %d", userID)
		}
		stored = cart
		return nil
	}}
	uc := NewCartUseCase(users)

	err := uc.Update(context.Background(), 7, map[string]int64{"1": 2, "2": 0, "3": -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 1 || stored["1"] != 2 {
		t.Fatalf("unexpected stored cart %v", stored)
	}
}

func TestCartUseCaseUpdateEmptyCart(t *testing.T) {
	var stored map[string]int64
	users := stubUserRepository{updateCartFn: func(_ context.Context, _ int64, cart map[string]int64) error {
		stored = cart
		return nil
	}}
	uc := NewCartUseCase(users)

	if err := uc.Update(context.Background(), 7, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected empty cart, got %v", stored)
	}
}
