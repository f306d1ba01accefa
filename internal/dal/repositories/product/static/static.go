// Package staticrepo serves the product catalog from a YAML document embedded in the binary.
package staticrepo

import (
	_ "embed"
	"fmt"

	"github.com/jyothi044/ShopEase-ecommerce/internal/dal/interfaces/iproductrepo"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/product"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var defaultCatalog []byte

type catalogDocument struct {
	Products []product.Product `yaml:"products"`
}

// ProductRepository is an immutable, in-memory product catalog.
type ProductRepository struct {
	products []product.Product
	byID     map[string]int
}

// MustNewProductRepository loads the embedded catalog and panics if it is malformed.
func MustNewProductRepository() *ProductRepository {
	repo, err := NewProductRepository(defaultCatalog)
	if err != nil {
		panic(err)
	}

	return repo
}

// NewProductRepository decodes a catalog document.
func NewProductRepository(data []byte) (*ProductRepository, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	byID := make(map[string]int, len(doc.Products))
	for i, p := range doc.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if _, ok := byID[p.ID]; ok {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.Inventory < 0 {
			return nil, fmt.Errorf("product %q has negative inventory", p.ID)
		}
		byID[p.ID] = i
	}

	return &ProductRepository{
		products: doc.Products,
		byID:     byID,
	}, nil
}

// List returns a copy of the catalog in document order.
func (r *ProductRepository) List() []product.Product {
	out := make([]product.Product, len(r.products))
	copy(out, r.products)

	return out
}

// GetByID returns the product with the given id or iproductrepo.ErrProductNotFound.
func (r *ProductRepository) GetByID(id string) (product.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return product.Product{}, iproductrepo.ErrProductNotFound
	}

	return r.products[i], nil
}
