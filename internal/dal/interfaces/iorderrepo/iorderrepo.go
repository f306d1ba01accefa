package iorderrepo

import (
	"context"
	"errors"

	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/order"
)

var (
	// ErrOrderNotFound is returned when no order has the requested id.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrder is returned when an order id is appended twice.
	ErrDuplicateOrder = errors.New("order already exists")
)

// IOrderRepository is an interface for the append-only order store.
type IOrderRepository interface {
	Append(ctx context.Context, o order.Order) error
	GetByID(ctx context.Context, id string) (order.Order, error)
}
