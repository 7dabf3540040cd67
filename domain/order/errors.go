package order

import (
	"fmt"
	"strconv"

	"storefront/domain/shared"
)

// Sentinel errors of the order subdomain. Each wraps one of the shared
// families so callers can match either level with errors.Is().
var (
	// ErrOrderNotFound covers the whole read path of the repository: a
	// missing row and a failed reconstruction are deliberately the same
	// condition to callers.
	ErrOrderNotFound = fmt.Errorf("%w: order", shared.ErrNotFound)

	ErrEmptyOrderItems = fmt.Errorf("%w: order must have at least one item", shared.ErrInvalidAggregateState)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be positive", shared.ErrInvalidAggregateState)
	ErrInvalidPrice    = fmt.Errorf("%w: price must not be negative", shared.ErrInvalidAggregateState)
	ErrInvalidOrder    = fmt.Errorf("%w: order", shared.ErrInvalidAggregateState)
)

// NewOrderNotFoundError builds the uniform not-found error with a stack
// from the caller's position.
func NewOrderNotFoundError(orderID string) error {
	return &orderError{
		sentinel: ErrOrderNotFound,
		message:  "order not found: " + orderID,
		stack:    shared.CaptureStack(3),
	}
}

// NewPersistenceError wraps a storage-origin write failure.
func NewPersistenceError(op string, cause error) error {
	return &orderError{
		sentinel: shared.ErrPersistence,
		message:  op + ": " + cause.Error(),
		stack:    shared.CaptureStack(3),
	}
}

func NewEmptyItemsError() error {
	return &orderError{
		sentinel: ErrEmptyOrderItems,
		message:  "order must have at least one item",
		stack:    shared.CaptureStack(3),
	}
}

func NewInvalidQuantityError(quantity int) error {
	return &orderError{
		sentinel: ErrInvalidQuantity,
		message:  "quantity must be positive, got " + strconv.Itoa(quantity),
		stack:    shared.CaptureStack(3),
	}
}

func NewInvalidPriceError(price float64) error {
	return &orderError{
		sentinel: ErrInvalidPrice,
		message:  fmt.Sprintf("price must not be negative, got %v", price),
		stack:    shared.CaptureStack(3),
	}
}

func NewInvalidOrderError(reason string) error {
	return &orderError{
		sentinel: ErrInvalidOrder,
		message:  reason,
		stack:    shared.CaptureStack(3),
	}
}

// orderError carries the sentinel, a human message and the creation
// stack. Unwrap exposes the sentinel chain for errors.Is().
type orderError struct {
	sentinel error
	message  string
	stack    []uintptr
}

func (e *orderError) Error() string {
	return e.message
}

func (e *orderError) Unwrap() error {
	return e.sentinel
}

// Stack implements shared.Stacker.
func (e *orderError) Stack() []string {
	return shared.FormatStack(e.stack)
}
