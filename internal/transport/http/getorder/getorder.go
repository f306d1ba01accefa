package getorder

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/cart"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/order"
	"github.com/jyothi044/ShopEase-ecommerce/internal/transport/http/response"
	"github.com/shopspring/decimal"
)

type service interface {
	GetOrder(ctx context.Context, id string) (*order.Order, error)
}

// orderResponse is the confirmation view of an order.
type orderResponse struct {
	ID            string             `json:"id"`
	OrderNumber   string             `json:"orderNumber"`
	Status        order.Status       `json:"status"`
	StatusTitle   string             `json:"statusTitle"`
	StatusMessage string             `json:"statusMessage"`
	Customer      order.CustomerInfo `json:"customer"`
	CardNumber    string             `json:"cardNumber"`
	Items         []cart.Item        `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Total         decimal.Decimal    `json:"total"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func fromModel(o *order.Order) orderResponse {
	return orderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		Status:        o.Status,
		StatusTitle:   o.Status.Title(),
		StatusMessage: o.Status.Message(),
		Customer:      o.Customer,
		CardNumber:    o.Payment.CardNumber,
		Items:         o.Items,
		Subtotal:      o.Subtotal,
		Total:         o.Total,
		CreatedAt:     o.CreatedAt,
	}
}

// GetOrder godoc
//
//	@Summary	Get an order for the confirmation page
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"order id"
//	@Success	200	{object}	orderResponse
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/orders/{id} [get]
func GetOrder(w http.ResponseWriter, r *http.Request, service service) {
	o, err := service.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "internal_error", "internal server error")
		slog.Error("Error getting order", "error", err)

		return
	}
	if o == nil {
		response.Error(w, http.StatusNotFound, "order_not_found", "We couldn't find the order you're looking for.")

		return
	}

	response.JSON(w, http.StatusOK, fromModel(o))
}
