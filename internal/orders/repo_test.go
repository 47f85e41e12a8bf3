package orders

import (
	"context"
	"testing"
	"time"

	"github.com/foodapp-labs/foodapp-core/pkg/enums"
	pkgerrors "github.com/foodapp-labs/foodapp-core/pkg/errors"
	"github.com/foodapp-labs/foodapp-core/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(number string, placedAt time.Time) Order {
	return Order{
		ID:             uuid.New(),
		Number:         number,
		PlacedAt:       placedAt,
		RestaurantName: "Pizza Palace",
		Status:         enums.OrderStatusConfirmed,
		Items: []OrderItem{
			{Name: "Margherita Pizza", Quantity: 1, UnitPrice: decimal.RequireFromString("12.99")},
		},
		Total: decimal.RequireFromString("12.99"),
	}
}

func TestRepositoryNewestFirst(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	repo := NewRepository([]Order{
		testOrder("FD000000001", base),
		testOrder("FD000000003", base.Add(2*time.Hour)),
		testOrder("FD000000002", base.Add(time.Hour)),
	})

	rows, next, err := repo.List(context.Background(), pagination.Params{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Empty(t, next)
	assert.Equal(t, "FD000000003", rows[0].Number)
	assert.Equal(t, "FD000000002", rows[1].Number)
	assert.Equal(t, "FD000000001", rows[2].Number)
}

func TestRepositoryInsertDuplicate(t *testing.T) {
	t.Parallel()

	order := testOrder("FD000000001", time.Now().UTC())
	repo := NewRepository([]Order{order})

	err := repo.Insert(context.Background(), order)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
}

func TestRepositoryFindByNumber(t *testing.T) {
	t.Parallel()

	repo := NewRepository(SeedOrders())

	order, err := repo.FindByNumber(context.Background(), "FD00789ABC")
	require.NoError(t, err)
	assert.Equal(t, "Luigi's Pizzeria", order.RestaurantName)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("35.99")))

	_, err = repo.FindByNumber(context.Background(), "FD404NOTFND")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestRepositoryListPagination(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	var seed []Order
	for i := 0; i < 5; i++ {
		seed = append(seed, testOrder(
			"FD00000000"+string(rune('A'+i)),
			base.Add(time.Duration(i)*time.Hour),
		))
	}
	repo := NewRepository(seed)

	first, next, err := repo.List(context.Background(), pagination.Params{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.NotEmpty(t, next)
	assert.Equal(t, "FD00000000E", first[0].Number)
	assert.Equal(t, "FD00000000D", first[1].Number)

	second, next, err := repo.List(context.Background(), pagination.Params{Limit: 2, Cursor: next})
	require.NoError(t, err)
	require.Len(t, second, 2)
	require.NotEmpty(t, next)
	assert.Equal(t, "FD00000000C", second[0].Number)
	assert.Equal(t, "FD00000000B", second[1].Number)

	last, next, err := repo.List(context.Background(), pagination.Params{Limit: 2, Cursor: next})
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Empty(t, next)
	assert.Equal(t, "FD00000000A", last[0].Number)
}

func TestRepositoryListBadCursor(t *testing.T) {
	t.Parallel()

	repo := NewRepository(nil)

	_, _, err := repo.List(context.Background(), pagination.Params{Cursor: "not-base64!"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestRepositoryUpdateStatus(t *testing.T) {
	t.Parallel()

	repo := NewRepository([]Order{testOrder("FD000000001", time.Now().UTC())})

	err := repo.UpdateStatus(context.Background(), "FD000000001", func(order *Order) error {
		order.Status = enums.OrderStatusPreparing
		return nil
	})
	require.NoError(t, err)

	order, err := repo.FindByNumber(context.Background(), "FD000000001")
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPreparing, order.Status)

	err = repo.UpdateStatus(context.Background(), "FD404NOTFND", func(order *Order) error { return nil })
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
