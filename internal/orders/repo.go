package orders

import (
	"context"
	"sort"
	"sync"

	pkgerrors "github.com/foodapp-labs/foodapp-core/pkg/errors"
	"github.com/foodapp-labs/foodapp-core/pkg/pagination"
)

// Repository stores placed orders in memory, newest first. It is the mock
// data provider behind order history; nothing is persisted across runs.
type Repository struct {
	mu     sync.RWMutex
	orders []Order
}

// NewRepository builds a repository preloaded with the given orders.
func NewRepository(seed []Order) *Repository {
	repo := &Repository{orders: append([]Order(nil), seed...)}
	repo.sortLocked()
	return repo
}

// Insert adds a placed order and keeps the newest-first ordering.
func (r *Repository) Insert(ctx context.Context, order Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if existing.ID == order.ID {
			return pkgerrors.New(pkgerrors.CodeConflict, "order already recorded")
		}
	}
	r.orders = append(r.orders, order)
	r.sortLocked()
	return nil
}

// FindByNumber returns the order with the given shopper-facing number.
func (r *Repository) FindByNumber(ctx context.Context, number string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.Number == number {
			found := order
			return &found, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

// UpdateStatus replaces the status of the identified order.
func (r *Repository) UpdateStatus(ctx context.Context, number string, apply func(*Order) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].Number == number {
			return apply(&r.orders[i])
		}
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

// List returns one page of orders, newest first, plus the cursor for the
// next page when more rows remain.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]Order, string, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(params.Limit)
	buffered := pagination.LimitWithBuffer(params.Limit)

	r.mu.RLock()
	defer r.mu.RUnlock()

	page := make([]Order, 0, limit)
	for _, order := range r.orders {
		if cursor != nil && !isBeforeCursor(order, cursor) {
			continue
		}
		page = append(page, order)
		if len(page) == buffered {
			break
		}
	}

	next := ""
	if len(page) > limit {
		page = page[:limit]
		last := page[len(page)-1]
		next = pagination.EncodeCursor(pagination.Cursor{PlacedAt: last.PlacedAt, ID: last.ID})
	}
	return page, next, nil
}

// isBeforeCursor reports whether the order sorts strictly after the cursor
// position in the newest-first ordering.
func isBeforeCursor(order Order, cursor *pagination.Cursor) bool {
	if order.PlacedAt.Before(cursor.PlacedAt) {
		return true
	}
	if order.PlacedAt.Equal(cursor.PlacedAt) {
		return order.ID.String() < cursor.ID.String()
	}
	return false
}

func (r *Repository) sortLocked() {
	sort.SliceStable(r.orders, func(i, j int) bool {
		if !r.orders[i].PlacedAt.Equal(r.orders[j].PlacedAt) {
			return r.orders[i].PlacedAt.After(r.orders[j].PlacedAt)
		}
		return r.orders[i].ID.String() > r.orders[j].ID.String()
	})
}
