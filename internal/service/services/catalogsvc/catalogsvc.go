package catalogsvc

import (
	"github.com/jyothi044/ShopEase-ecommerce/internal/dal/interfaces/iproductrepo"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/product"
)

// CatalogService is a read-only view over the product catalog.
type CatalogService struct {
	productRepo iproductrepo.IProductRepository
}

// option is a function that configures the CatalogService.
type option func(*CatalogService)

// MustNewCatalogService creates a new CatalogService.
func MustNewCatalogService(opts ...option) *CatalogService {
	s := &CatalogService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.productRepo == nil {
		panic("catalogsvc: product repository is required")
	}

	return s
}

// WithProductRepository sets the product repository for the CatalogService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductRepository(productRepo iproductrepo.IProductRepository) option {
	return func(s *CatalogService) {
		s.productRepo = productRepo
	}
}

// GetAllProducts returns the whole catalog.
func (s *CatalogService) GetAllProducts() []product.Product {
	return s.productRepo.List()
}

// GetProductsByCategory returns the products whose category matches exactly, in catalog order.
func (s *CatalogService) GetProductsByCategory(category string) []product.Product {
	out := make([]product.Product, 0)
	for _, p := range s.productRepo.List() {
		if p.Category == category {
			out = append(out, p)
		}
	}

	return out
}

// GetProduct returns the product with the given id; ok is false when there is none.
func (s *CatalogService) GetProduct(id string) (*product.Product, bool) {
	p, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, false
	}

	return &p, true
}

// GetAllCategories returns each category once, in order of first appearance.
func (s *CatalogService) GetAllCategories() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range s.productRepo.List() {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}

	return out
}
