package staticrepo

import (
	"testing"

	"github.com/jyothi044/ShopEase-ecommerce/internal/dal/interfaces/iproductrepo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustNewProductRepository_EmbeddedCatalog(t *testing.T) {
	repo := MustNewProductRepository()

	products := repo.List()
	require.Len(t, products, 15)

	for i, p := range products {
		assert.NotEmpty(t, p.Title, "product %d", i)
		assert.True(t, p.Price.IsPositive(), "product %s", p.ID)
		assert.NotEmpty(t, p.Variants, "product %s", p.ID)
		assert.GreaterOrEqual(t, p.Inventory, 0)
	}
}

func TestProductRepository_GetByID(t *testing.T) {
	repo := MustNewProductRepository()

	p, err := repo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Premium Wireless Headphones", p.Title)
	assert.True(t, decimal.RequireFromString("299.99").Equal(p.Price))
	assert.Equal(t, "Electronics", p.Category)
	assert.Equal(t, 50, p.Inventory)
	require.Len(t, p.Variants, 1)
	assert.Equal(t, "Color", p.Variants[0].Name)
	assert.Equal(t, "Midnight Black", p.Variants[0].Options[0])

	tv, err := repo.GetByID("11")
	require.NoError(t, err)
	assert.Equal(t, []string{`55"`, `65"`, `75"`}, tv.Variants[0].Options)

	_, err = repo.GetByID("999")
	assert.ErrorIs(t, err, iproductrepo.ErrProductNotFound)
}

func TestProductRepository_ListReturnsCopy(t *testing.T) {
	repo := MustNewProductRepository()

	list := repo.List()
	list[0].Title = "changed"

	p, err := repo.GetByID(list[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", p.Title)
}

func TestNewProductRepository_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "products: [\n"},
		{"missing id", "products:\n  - title: x\n"},
		{"duplicate id", "products:\n  - id: \"1\"\n  - id: \"1\"\n"},
		{"negative inventory", "products:\n  - id: \"1\"\n    inventory: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProductRepository([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
