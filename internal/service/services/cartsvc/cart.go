package cartsvc

import (
	"sync"

	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/cart"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/product"
)

// Cart holds at most one item. Adding replaces whatever was there.
type Cart struct {
	mu   sync.RWMutex
	item *cart.Item
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add overwrites the cart with a snapshot of p. Quantity is taken as given.
func (c *Cart) Add(p product.Product, quantity int, variantName, variantValue string) cart.Item {
	item := cart.Item{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  quantity,
		SelectedVariant: cart.SelectedVariant{
			Name:  variantName,
			Value: variantValue,
		},
	}

	c.mu.Lock()
	c.item = &item
	c.mu.Unlock()

	return item
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.item = nil
	c.mu.Unlock()
}

// ClearIf empties the cart only while it still holds item and reports whether it did.
func (c *Cart) ClearIf(item cart.Item) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.item == nil || !c.item.Equal(item) {
		return false
	}
	c.item = nil

	return true
}

// Item returns the current item; ok is false when the cart is empty.
func (c *Cart) Item() (cart.Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.item == nil {
		return cart.Item{}, false
	}

	return *c.item, true
}
