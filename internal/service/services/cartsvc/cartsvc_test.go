package cartsvc

import (
	"context"
	"sync"
	"testing"

	"github.com/jyothi044/ShopEase-ecommerce/internal/dal/interfaces/iproductrepo"
	staticrepo "github.com/jyothi044/ShopEase-ecommerce/internal/dal/repositories/product/static"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
products:
  - id: "1"
    title: Widget
    price: "10.00"
    image: widget.png
    category: Gadgets
    variants:
      - id: color
        name: Color
        options: [Red, Blue]
    inventory: 5
  - id: "2"
    title: Sold Out
    price: "3.00"
    category: Gadgets
    inventory: 0
`

func setupService(t *testing.T) *CartService {
	t.Helper()

	repo, err := staticrepo.NewProductRepository([]byte(testCatalog))
	require.NoError(t, err)

	return MustNewCartService(WithProductRepository(repo))
}

func widget() product.Product {
	return product.Product{
		ID:        "1",
		Title:     "Widget",
		Price:     decimal.RequireFromString("10.00"),
		Image:     "widget.png",
		Inventory: 5,
	}
}

func TestCart_Add_SnapshotsProduct(t *testing.T) {
	c := NewCart()

	item := c.Add(widget(), 2, "Color", "Red")

	got, ok := c.Item()
	require.True(t, ok)
	assert.Equal(t, item, got)
	assert.Equal(t, "1", got.ProductID)
	assert.Equal(t, "Widget", got.Title)
	assert.True(t, decimal.RequireFromString("10.00").Equal(got.Price))
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, "Red", got.SelectedVariant.Value)
}

func TestCart_Add_ReplacesPreviousItem(t *testing.T) {
	c := NewCart()
	other := widget()
	other.ID = "2"
	other.Title = "Gizmo"

	c.Add(widget(), 1, "Color", "Red")
	c.Add(other, 3, "Size", "M")

	got, ok := c.Item()
	require.True(t, ok)
	assert.Equal(t, "2", got.ProductID)
	assert.Equal(t, 3, got.Quantity)
}

func TestCart_Add_DoesNotAliasProduct(t *testing.T) {
	c := NewCart()
	p := widget()

	c.Add(p, 1, "", "")
	p.Title = "Renamed"

	got, _ := c.Item()
	assert.Equal(t, "Widget", got.Title)
}

func TestCart_Clear(t *testing.T) {
	c := NewCart()
	c.Add(widget(), 1, "", "")

	c.Clear()

	_, ok := c.Item()
	assert.False(t, ok)
}

func TestCart_ClearIf(t *testing.T) {
	c := NewCart()
	ordered := c.Add(widget(), 2, "Color", "Red")

	assert.False(t, NewCart().ClearIf(ordered))

	c.Add(widget(), 4, "Color", "Red")
	assert.False(t, c.ClearIf(ordered))
	_, ok := c.Item()
	assert.True(t, ok)

	current, _ := c.Item()
	assert.True(t, c.ClearIf(current))
	_, ok = c.Item()
	assert.False(t, ok)
}

func TestCartService_ClearIf(t *testing.T) {
	svc := setupService(t)

	assert.False(t, svc.ClearIf("nobody", NewCart().Add(widget(), 1, "", "")))

	item, err := svc.AddProduct(context.Background(), "s", "1", 2, "", "")
	require.NoError(t, err)
	assert.True(t, svc.ClearIf("s", item))

	_, ok := svc.GetItem("s")
	assert.False(t, ok)
}

func TestCartService_AddProduct_DefaultsVariantAndClamps(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	item, err := s.AddProduct(ctx, "sess", "1", 99, "", "")
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, "Color", item.SelectedVariant.Name)
	assert.Equal(t, "Red", item.SelectedVariant.Value)

	item, err = s.AddProduct(ctx, "sess", "1", 0, "Color", "Blue")
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, "Blue", item.SelectedVariant.Value)

	got, ok := s.GetItem("sess")
	require.True(t, ok)
	assert.Equal(t, item, got)
}

func TestCartService_AddProduct_Errors(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	_, err := s.AddProduct(ctx, "sess", "404", 1, "", "")
	assert.ErrorIs(t, err, iproductrepo.ErrProductNotFound)

	_, err = s.AddProduct(ctx, "sess", "1", 1, "Color", "Green")
	assert.ErrorIs(t, err, ErrUnknownVariant)

	_, err = s.AddProduct(ctx, "sess", "2", 1, "", "")
	assert.ErrorIs(t, err, ErrOutOfStock)

	_, ok := s.GetItem("sess")
	assert.False(t, ok)
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	_, err := s.AddProduct(ctx, "alice", "1", 1, "", "")
	require.NoError(t, err)

	_, ok := s.GetItem("bob")
	assert.False(t, ok)

	s.Clear("alice")
	_, ok = s.GetItem("alice")
	assert.False(t, ok)

	s.Clear("nobody")
}

func TestCartService_ConcurrentAdds(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(q int) {
			defer wg.Done()
			_, err := s.AddProduct(ctx, "sess", "1", q, "", "")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, ok := s.GetItem("sess")
	require.True(t, ok)
	assert.GreaterOrEqual(t, got.Quantity, 1)
	assert.LessOrEqual(t, got.Quantity, 5)
}
