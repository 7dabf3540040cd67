package order

import "context"

// Repository translates Order aggregates to and from their persisted
// rows. Atomicity of the multi-row write in Create belongs to the
// implementation; row-to-aggregate reconstruction must stay pure.
type Repository interface {
	// Create writes the order row (with a denormalized total snapshot
	// taken at creation time) and all item rows atomically.
	Create(ctx context.Context, o *Order) error

	// Find loads the order row and its item rows and reconstructs the
	// aggregate. Any failure on this path, missing row or otherwise,
	// surfaces as ErrOrderNotFound.
	Find(ctx context.Context, id string) (*Order, error)

	// FindAll reconstructs every persisted order. An empty store yields
	// an empty slice, never an error.
	FindAll(ctx context.Context) ([]*Order, error)

	// Update persists the customer reassignment for the matching row.
	// It touches ONLY the customer_id column: item rows and the total
	// snapshot written by Create are left as they were, even when the
	// in-memory aggregate has grown new items since. Known, documented
	// asymmetry of this operation.
	Update(ctx context.Context, o *Order) error
}
