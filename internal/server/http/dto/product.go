package dto

import "time"

// ProductPayload describes the seller's product creation request.
type ProductPayload struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Price      int64    `json:"price"`
	OfferPrice int64    `json:"offerPrice"`
	Images     []string `json:"images"`
	InStock    *bool    `json:"inStock"`
}

// StockRequest toggles product availability.
type StockRequest struct {
	ID      int64 `json:"id"`
	InStock bool  `json:"inStock"`
}

// ProductResponse is a catalog entry.
type ProductResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Price      int64     `json:"price"`
	OfferPrice int64     `json:"offerPrice"`
	Images     []string  `json:"images"`
	InStock    bool      `json:"inStock"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ProductEnvelope wraps a single product.
type ProductEnvelope struct {
	Success bool            `json:"success"`
	Product ProductResponse `json:"product"`
}

// ProductListEnvelope wraps the catalog listing.
type ProductListEnvelope struct {
	Success  bool              `json:"success"`
	Products []ProductResponse `json:"products"`
}
