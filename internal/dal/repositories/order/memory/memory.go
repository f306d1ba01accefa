package memoryrepo

import (
	"context"
	"sync"

	"github.com/jyothi044/ShopEase-ecommerce/internal/dal/interfaces/iorderrepo"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/order"
)

// OrderRepository keeps orders in process memory. Stored orders are never modified.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]order.Order
	ids    []string
}

// NewOrderRepository creates an empty store.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[string]order.Order),
	}
}

// Append stores a copy of o.
func (r *OrderRepository) Append(ctx context.Context, o order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; ok {
		return iorderrepo.ErrDuplicateOrder
	}
	r.orders[o.ID] = o.Clone()
	r.ids = append(r.ids, o.ID)

	return nil
}

// GetByID returns a copy of the stored order or iorderrepo.ErrOrderNotFound.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (order.Order, error) {
	if err := ctx.Err(); err != nil {
		return order.Order{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return order.Order{}, iorderrepo.ErrOrderNotFound
	}

	return o.Clone(), nil
}

// Len returns the number of stored orders.
func (r *OrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.ids)
}
