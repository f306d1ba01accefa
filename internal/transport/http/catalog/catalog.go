package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/product"
	"github.com/jyothi044/ShopEase-ecommerce/internal/transport/http/response"
)

type service interface {
	GetAllProducts() []product.Product
	GetProductsByCategory(category string) []product.Product
	GetProduct(id string) (*product.Product, bool)
	GetAllCategories() []string
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

type productsResponse struct {
	Products []product.Product `json:"products"`
}

// ListCategories godoc
//
//	@Summary	List product categories in catalog order
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{object}	categoriesResponse
//	@Router		/categories [get]
func ListCategories(w http.ResponseWriter, _ *http.Request, service service) {
	response.JSON(w, http.StatusOK, categoriesResponse{Categories: service.GetAllCategories()})
}

// ListProducts godoc
//
//	@Summary	List products, optionally filtered by category
//	@Tags		catalog
//	@Produce	json
//	@Param		category	query		string	false	"exact category name"
//	@Success	200			{object}	productsResponse
//	@Router		/products [get]
func ListProducts(w http.ResponseWriter, r *http.Request, service service) {
	var products []product.Product
	if category := r.URL.Query().Get("category"); category != "" {
		products = service.GetProductsByCategory(category)
	} else {
		products = service.GetAllProducts()
	}

	response.JSON(w, http.StatusOK, productsResponse{Products: products})
}

// GetProduct godoc
//
//	@Summary	Get a product
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path		string	true	"product id"
//	@Success	200	{object}	product.Product
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/products/{id} [get]
func GetProduct(w http.ResponseWriter, r *http.Request, service service) {
	id := chi.URLParam(r, "id")

	p, ok := service.GetProduct(id)
	if !ok {
		response.Error(w, http.StatusNotFound, "product_not_found", "Product not found")

		return
	}

	response.JSON(w, http.StatusOK, p)
}
