package errors

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every input validation failure; specific
// validation errors wrap it so callers can test with errors.Is.
var ErrValidation = errors.New("validation failed")

var (
	ErrEmptyUserID      = fmt.Errorf("%w: user_id should not be empty", ErrValidation)
	ErrEmptyProductID   = fmt.Errorf("%w: product_id should not be empty", ErrValidation)
	ErrInvalidQuantity  = fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	ErrNegativePrice    = fmt.Errorf("%w: price must not be negative", ErrValidation)
	ErrEmptyStatus      = fmt.Errorf("%w: status should not be empty", ErrValidation)
	ErrEmptyOrderID     = fmt.Errorf("%w: order_id should not be empty", ErrValidation)
	ErrInvalidPage      = fmt.Errorf("%w: page must not be negative", ErrValidation)
	ErrInvalidPageSize  = fmt.Errorf("%w: size is out of range", ErrValidation)
	ErrEventMalformed   = fmt.Errorf("%w: malformed order event", ErrValidation)
	ErrUnknownEventType = fmt.Errorf("%w: unknown event type", ErrValidation)
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrConflict reports a uniqueness violation on insert.
	ErrConflict = errors.New("unique constraint violation")

	// ErrStaleTransition reports a conditional status write that matched no
	// row because another writer moved the payment first.
	ErrStaleTransition   = errors.New("payment status changed concurrently")
	ErrInvalidTransition = errors.New("invalid payment status transition")

	// ErrPaymentNotProvisioned means settlement was requested for an order
	// whose payment was never provisioned.
	ErrPaymentNotProvisioned = errors.New("payment is not provisioned for order")

	ErrPoolSaturated = errors.New("settlement queue is full")
	ErrPoolClosed    = errors.New("settlement pool is stopped")
)
