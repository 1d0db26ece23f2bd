package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrSessionExpired indicates an unknown or expired session token.
	ErrSessionExpired = errors.New("session expired")
	// ErrEmptyCart indicates a checkout attempt with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOrderPlaced indicates the session already placed its order.
	ErrOrderPlaced = errors.New("order already placed")
	// ErrSubmitInFlight indicates a submission is already running for the session.
	ErrSubmitInFlight = errors.New("submission in flight")
)
