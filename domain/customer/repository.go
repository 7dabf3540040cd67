package customer

import "context"

// Repository persists and reconstructs Customer aggregates. Find returns
// ErrCustomerNotFound for a missing id.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	Find(ctx context.Context, id string) (*Customer, error)
	FindAll(ctx context.Context) ([]*Customer, error)
}
