package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jyothi044/ShopEase-ecommerce/internal/dal/interfaces/iproductrepo"
	cartmodel "github.com/jyothi044/ShopEase-ecommerce/internal/service/models/cart"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/services/cartsvc"
	"github.com/jyothi044/ShopEase-ecommerce/internal/transport/http/response"
	"github.com/jyothi044/ShopEase-ecommerce/pkg/http/middleware/session"
)

type service interface {
	GetItem(sessionID string) (cartmodel.Item, bool)
	AddProduct(
		ctx context.Context,
		sessionID string,
		productID string,
		quantity int,
		variantName string,
		variantValue string,
	) (cartmodel.Item, error)
	Clear(sessionID string)
}

// cartResponse holds the single cart item, null when empty.
type cartResponse struct {
	Item *cartmodel.Item `json:"item"`
}

// addToCartRequest represents an add-to-cart request.
type addToCartRequest struct {
	ProductID    string `json:"productId"    validate:"required"`
	Quantity     int    `json:"quantity"`
	VariantName  string `json:"variantName"  validate:"required_with=VariantValue"`
	VariantValue string `json:"variantValue" validate:"required_with=VariantName"`
}

// Validate validates the add-to-cart request.
func (r *addToCartRequest) Validate() error {
	return validator.New().Struct(r)
}

// GetCart godoc
//
//	@Summary	Get the session's cart
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	cartResponse
//	@Router		/cart [get]
func GetCart(w http.ResponseWriter, r *http.Request, service service) {
	resp := cartResponse{}
	if item, ok := service.GetItem(session.IDFromContext(r.Context())); ok {
		resp.Item = &item
	}

	response.JSON(w, http.StatusOK, resp)
}

// AddToCart godoc
//
//	@Summary		Put a product in the cart
//	@Description	Replaces any item already in the cart. Quantity is clamped to [1, inventory];
//	@Description	an empty variant selects the product's first option.
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		addToCartRequest	true	"product to add"
//	@Success		200		{object}	cartResponse
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		404		{object}	response.ErrorResponse
//	@Failure		409		{object}	response.ErrorResponse
//	@Router			/cart [post]
func AddToCart(w http.ResponseWriter, r *http.Request, service service) {
	req := addToCartRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, err)
		slog.Error("Error decoding request body for add to cart", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(w, err)
		slog.Error("Error validating request body for add to cart", "error", err)

		return
	}

	item, err := service.AddProduct(
		r.Context(),
		session.IDFromContext(r.Context()),
		req.ProductID,
		req.Quantity,
		req.VariantName,
		req.VariantValue,
	)
	switch {
	case errors.Is(err, iproductrepo.ErrProductNotFound):
		response.Error(w, http.StatusNotFound, "product_not_found", "Product not found")

		return
	case errors.Is(err, cartsvc.ErrUnknownVariant):
		response.Error(w, http.StatusBadRequest, "unknown_variant", err.Error())

		return
	case errors.Is(err, cartsvc.ErrOutOfStock):
		response.Error(w, http.StatusConflict, "out_of_stock", "Product is out of stock")

		return
	case err != nil:
		response.Error(w, http.StatusInternalServerError, "internal_error", "internal server error")
		slog.Error("Error adding product to cart", "error", err)

		return
	}

	response.JSON(w, http.StatusOK, cartResponse{Item: &item})
}

// ClearCart godoc
//
//	@Summary	Empty the cart
//	@Tags		cart
//	@Success	204
//	@Router		/cart [delete]
func ClearCart(w http.ResponseWriter, r *http.Request, service service) {
	service.Clear(session.IDFromContext(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}
