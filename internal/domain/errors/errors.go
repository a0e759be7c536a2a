package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOrder       = errors.New("invalid order data")
	ErrInvalidAddress     = errors.New("invalid address data")
	ErrInvalidProduct     = errors.New("invalid product data")
	ErrEmptyOrder         = errors.New("no purchasable items in order")
	ErrVerificationFailed = errors.New("payment verification failed")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)
