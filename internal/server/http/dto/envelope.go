package dto

// Envelope is the uniform response wrapper. Business failures travel
// as success=false with a human-readable message, never as bare
// transport errors.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
