package iproductrepo

import (
	"errors"

	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/product"
)

// ErrProductNotFound is returned when no product has the requested id.
var ErrProductNotFound = errors.New("product not found")

// IProductRepository is an interface for the read-only product catalog.
type IProductRepository interface {
	// List returns every product in catalog order.
	List() []product.Product
	GetByID(id string) (product.Product, error)
}
