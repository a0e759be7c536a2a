package model

import "time"

// Product is a catalog entry. OfferPrice is the authoritative unit
// price used when computing order totals.
type Product struct {
	ID         int64
	Name       string
	Category   string
	Price      int64
	OfferPrice int64
	Images     []string
	InStock    bool
	CreatedAt  time.Time
}
