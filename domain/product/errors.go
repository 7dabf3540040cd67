package product

import (
	"fmt"

	"storefront/domain/shared"
)

var (
	ErrProductNotFound = fmt.Errorf("%w: product", shared.ErrNotFound)
	ErrInvalidProduct  = fmt.Errorf("%w: product", shared.ErrInvalidAggregateState)
)

func NewProductNotFoundError(productID string) error {
	return &productError{
		sentinel: ErrProductNotFound,
		message:  "product not found: " + productID,
		stack:    shared.CaptureStack(3),
	}
}

func NewInvalidProductError(reason string) error {
	return &productError{
		sentinel: ErrInvalidProduct,
		message:  reason,
		stack:    shared.CaptureStack(3),
	}
}

func NewPersistenceError(op string, cause error) error {
	return &productError{
		sentinel: shared.ErrPersistence,
		message:  op + ": " + cause.Error(),
		stack:    shared.CaptureStack(3),
	}
}

type productError struct {
	sentinel error
	message  string
	stack    []uintptr
}

func (e *productError) Error() string   { return e.message }
func (e *productError) Unwrap() error   { return e.sentinel }
func (e *productError) Stack() []string { return shared.FormatStack(e.stack) }
