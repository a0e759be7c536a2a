package dto

// CartUpdateRequest replaces the stored cart wholesale.
type CartUpdateRequest struct {
	CartItems map[string]int64 `json:"cartItems"`
}
