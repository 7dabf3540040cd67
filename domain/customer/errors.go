package customer

import (
	"fmt"

	"storefront/domain/shared"
)

var (
	ErrCustomerNotFound = fmt.Errorf("%w: customer", shared.ErrNotFound)
	ErrInvalidCustomer  = fmt.Errorf("%w: customer", shared.ErrInvalidAggregateState)
)

func NewCustomerNotFoundError(customerID string) error {
	return &customerError{
		sentinel: ErrCustomerNotFound,
		message:  "customer not found: " + customerID,
		stack:    shared.CaptureStack(3),
	}
}

func NewInvalidCustomerError(reason string) error {
	return &customerError{
		sentinel: ErrInvalidCustomer,
		message:  reason,
		stack:    shared.CaptureStack(3),
	}
}

func NewPersistenceError(op string, cause error) error {
	return &customerError{
		sentinel: shared.ErrPersistence,
		message:  op + ": " + cause.Error(),
		stack:    shared.CaptureStack(3),
	}
}

type customerError struct {
	sentinel error
	message  string
	stack    []uintptr
}

func (e *customerError) Error() string   { return e.message }
func (e *customerError) Unwrap() error   { return e.sentinel }
func (e *customerError) Stack() []string { return shared.FormatStack(e.stack) }
