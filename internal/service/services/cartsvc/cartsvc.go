package cartsvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jyothi044/ShopEase-ecommerce/internal/dal/interfaces/iproductrepo"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/cart"
	"go.opentelemetry.io/otel"
)

var (
	// ErrUnknownVariant is returned when the chosen option is not offered by the product.
	ErrUnknownVariant = errors.New("unknown variant option")
	// ErrOutOfStock is returned when the product has no inventory.
	ErrOutOfStock = errors.New("product is out of stock")
)

// CartService keeps one Cart per browsing session.
type CartService struct {
	mu          sync.Mutex
	carts       map[string]*Cart
	productRepo iproductrepo.IProductRepository
}

// option is a function that configures the CartService.
type option func(*CartService)

// MustNewCartService creates a new CartService.
func MustNewCartService(opts ...option) *CartService {
	s := &CartService{
		carts: make(map[string]*Cart),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.productRepo == nil {
		panic("cartsvc: product repository is required")
	}

	return s
}

// WithProductRepository sets the product repository for the CartService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductRepository(productRepo iproductrepo.IProductRepository) option {
	return func(s *CartService) {
		s.productRepo = productRepo
	}
}

// Cart returns the cart of the session, creating it on first use.
func (s *CartService) Cart(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = NewCart()
		s.carts[sessionID] = c
	}

	return c
}

// GetItem returns the item in the session's cart without creating a cart.
func (s *CartService) GetItem(sessionID string) (cart.Item, bool) {
	s.mu.Lock()
	c, ok := s.carts[sessionID]
	s.mu.Unlock()

	if !ok {
		return cart.Item{}, false
	}

	return c.Item()
}

// AddProduct puts a product into the session's cart the way the product page does:
// quantity is clamped to [1, inventory] and an empty variant selects the first option
// of the first variant.
func (s *CartService) AddProduct(
	ctx context.Context,
	sessionID string,
	productID string,
	quantity int,
	variantName string,
	variantValue string,
) (cart.Item, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "CartService.AddProduct")
	defer span.End()

	p, err := s.productRepo.GetByID(productID)
	if err != nil {
		return cart.Item{}, fmt.Errorf("add product %q: %w", productID, err)
	}
	if p.Inventory == 0 {
		return cart.Item{}, ErrOutOfStock
	}

	if variantName == "" && variantValue == "" {
		variantName, variantValue = p.DefaultVariant()
	} else if !p.HasOption(variantName, variantValue) {
		return cart.Item{}, fmt.Errorf("%w: %s=%s", ErrUnknownVariant, variantName, variantValue)
	}

	item := s.Cart(sessionID).Add(p, p.ClampQuantity(quantity), variantName, variantValue)

	slog.InfoContext(ctx, "Product added to cart",
		"product_id", item.ProductID,
		"quantity", item.Quantity,
		"variant", item.SelectedVariant.Value)

	return item, nil
}

// Clear empties the session's cart.
func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	c, ok := s.carts[sessionID]
	s.mu.Unlock()

	if ok {
		c.Clear()
	}
}

// ClearIf empties the session's cart if it still holds item. A newer add survives.
func (s *CartService) ClearIf(sessionID string, item cart.Item) bool {
	s.mu.Lock()
	c, ok := s.carts[sessionID]
	s.mu.Unlock()

	if !ok {
		return false
	}

	return c.ClearIf(item)
}
