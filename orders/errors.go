package orders

import "errors"

// Failures reported by the order core. Controllers map these onto HTTP
// status codes with errors.Is.
var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrNoItems         = errors.New("no items provided")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidSource   = errors.New("invalid source")
	ErrInvalidPayment  = errors.New("invalid payment")
	ErrOrderNotFound   = errors.New("order not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrNotCancellable  = errors.New("order cannot be cancelled")
	ErrNegativeRate    = errors.New("rates must not be negative")
)
