package services

import "errors"

// Sentinel errors the endpoints branch on. NotFound maps to 404, the
// conflict/empty cases to 4xx, gateway trouble to 502.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrOrderNotFound    = errors.New("order not found")
	// ErrAlreadyConfirmed means the confirmation matched no pending order:
	// either the number is unknown or a previous callback already finalized
	// it. Callers treat it as a no-op, not a failure.
	ErrAlreadyConfirmed   = errors.New("order already confirmed")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)
