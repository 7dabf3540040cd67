package gormdb_test

import (
	"context"
	"testing"

	"storefront/domain/order"
	"storefront/domain/shared"
	"storefront/infrastructure/persistence/gormdb"
	"storefront/infrastructure/persistence/gormdb/po"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, id, customerID string, items ...order.OrderItem) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, customerID, items)
	require.NoError(t, err)
	return o
}

func newTestItem(t *testing.T, id, name string, price float64, productID string, quantity int) order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(id, name, price, productID, quantity)
	require.NoError(t, err)
	return item
}

func TestOrderRepository_CreateAndFind(t *testing.T) {
	repo := gormdb.NewOrderRepository(openTestDB(t))
	ctx := context.Background()

	item := newTestItem(t, "1", "Product 1", 10, "123", 2)
	require.NoError(t, repo.Create(ctx, newTestOrder(t, "123", "123", item)))

	found, err := repo.Find(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "123", found.ID())
	assert.Equal(t, "123", found.CustomerID())
	assert.Equal(t, 20.0, found.Total())
	require.Len(t, found.Items(), 1)
	assert.Equal(t, "Product 1", found.Items()[0].Name())
	assert.Equal(t, 2, found.Items()[0].Quantity())
}

func TestOrderRepository_FindMissing(t *testing.T) {
	repo := gormdb.NewOrderRepository(openTestDB(t))

	_, err := repo.Find(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestOrderRepository_CreateIsAtomic(t *testing.T) {
	repo := gormdb.NewOrderRepository(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx,
		newTestOrder(t, "123", "123", newTestItem(t, "1", "Product 1", 10, "123", 2))))

	// The second order reuses item id "1"; the item insert fails, and
	// the already-written order row must roll back with it.
	err := repo.Create(ctx,
		newTestOrder(t, "456", "123", newTestItem(t, "1", "Product 1", 10, "123", 1)))
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrPersistence)

	_, err = repo.Find(ctx, "456")
	assert.ErrorIs(t, err, order.ErrOrderNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestOrderRepository_FindAll(t *testing.T) {
	repo := gormdb.NewOrderRepository(openTestDB(t))
	ctx := context.Background()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	require.NoError(t, repo.Create(ctx,
		newTestOrder(t, "1", "c1", newTestItem(t, "i1", "Product 1", 10, "p1", 1))))
	require.NoError(t, repo.Create(ctx,
		newTestOrder(t, "2", "c2",
			newTestItem(t, "i2", "Product 2", 20, "p2", 2),
			newTestItem(t, "i3", "Product 3", 5, "p3", 1))))

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	byID := map[string]*order.Order{}
	for _, o := range all {
		byID[o.ID()] = o
	}
	assert.Equal(t, 10.0, byID["1"].Total())
	assert.Equal(t, 45.0, byID["2"].Total())
	assert.Len(t, byID["2"].Items(), 2)
}

// Update reassigns the customer and nothing else: items added to the
// aggregate after Create never reach the store, and the persisted total
// keeps its creation-time value.
func TestOrderRepository_UpdateWritesOnlyCustomer(t *testing.T) {
	db := openTestDB(t)
	repo := gormdb.NewOrderRepository(db)
	ctx := context.Background()

	o := newTestOrder(t, "123", "123", newTestItem(t, "1", "Product 1", 10, "123", 2))
	require.NoError(t, repo.Create(ctx, o))

	o.AddItem(newTestItem(t, "2", "Product 2", 20, "234", 1))
	require.NoError(t, o.ChangeCustomer("456"))
	assert.Equal(t, 40.0, o.Total())

	require.NoError(t, repo.Update(ctx, o))

	found, err := repo.Find(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "456", found.CustomerID())
	assert.Len(t, found.Items(), 1)
	assert.Equal(t, 20.0, found.Total())

	var row po.OrderPO
	require.NoError(t, db.First(&row, "id = ?", "123").Error)
	assert.Equal(t, 20.0, row.Total)
}

func TestOrderRepository_UpdateMissing(t *testing.T) {
	repo := gormdb.NewOrderRepository(openTestDB(t))

	o := newTestOrder(t, "ghost", "123", newTestItem(t, "1", "Product 1", 10, "123", 1))
	err := repo.Update(context.Background(), o)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}
