package model

import "time"

// User represents a registered storefront customer. CartItems maps
// product id to quantity and mirrors the client-side cart.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CartItems    map[string]int64
	CreatedAt    time.Time
}
