package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/order"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/services/checkoutsvc"
	"github.com/jyothi044/ShopEase-ecommerce/internal/transport/http/response"
	"github.com/jyothi044/ShopEase-ecommerce/pkg/http/middleware/session"
)

type service interface {
	Form(sessionID string) checkoutsvc.Form
	SetField(sessionID, field, value string) (checkoutsvc.Form, error)
	BlurField(sessionID, field string) (checkoutsvc.Form, error)
	Fill(sessionID string, customer order.CustomerInfo, payment order.PaymentInfo) (checkoutsvc.Form, error)
	Submit(ctx context.Context, sessionID string) (checkoutsvc.Result, error)
}

// setFieldRequest carries the new raw value of one field.
type setFieldRequest struct {
	Value string `json:"value"`
}

// submitRequest optionally fills the whole form before submitting.
type submitRequest struct {
	Customer order.CustomerInfo `json:"customer"`
	Payment  order.PaymentInfo  `json:"payment"`
}

type submitResponse struct {
	OrderID  string `json:"orderId,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// GetForm godoc
//
//	@Summary	Get the session's checkout form
//	@Tags		checkout
//	@Produce	json
//	@Success	200	{object}	checkoutsvc.Form
//	@Router		/checkout [get]
func GetForm(w http.ResponseWriter, r *http.Request, service service) {
	response.JSON(w, http.StatusOK, service.Form(session.IDFromContext(r.Context())))
}

// SetField godoc
//
//	@Summary	Edit one checkout field
//	@Tags		checkout
//	@Accept		json
//	@Produce	json
//	@Param		field	path		string			true	"field name"
//	@Param		request	body		setFieldRequest	true	"raw value"
//	@Success	200		{object}	checkoutsvc.Form
//	@Failure	404		{object}	response.ErrorResponse
//	@Failure	409		{object}	response.ErrorResponse
//	@Router		/checkout/fields/{field} [patch]
func SetField(w http.ResponseWriter, r *http.Request, service service) {
	req := setFieldRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, err)
		slog.Error("Error decoding request body for set field", "error", err)

		return
	}

	form, err := service.SetField(session.IDFromContext(r.Context()), chi.URLParam(r, "field"), req.Value)
	if err != nil {
		writeFormError(w, err)

		return
	}

	response.JSON(w, http.StatusOK, form)
}

// BlurField godoc
//
//	@Summary	Validate one checkout field as the shopper leaves it
//	@Tags		checkout
//	@Produce	json
//	@Param		field	path		string	true	"field name"
//	@Success	200		{object}	checkoutsvc.Form
//	@Failure	404		{object}	response.ErrorResponse
//	@Router		/checkout/fields/{field}/blur [post]
func BlurField(w http.ResponseWriter, r *http.Request, service service) {
	form, err := service.BlurField(session.IDFromContext(r.Context()), chi.URLParam(r, "field"))
	if err != nil {
		writeFormError(w, err)

		return
	}

	response.JSON(w, http.StatusOK, form)
}

// Submit godoc
//
//	@Summary		Place the order
//	@Description	An optional body fills every field first. An empty cart answers with a redirect
//	@Description	to the store and places nothing.
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body		submitRequest	false	"complete form"
//	@Success		201		{object}	submitResponse
//	@Success		200		{object}	submitResponse
//	@Failure		409		{object}	response.ErrorResponse
//	@Failure		422		{object}	response.ErrorResponse
//	@Failure		502		{object}	response.ErrorResponse
//	@Router			/checkout [post]
func Submit(w http.ResponseWriter, r *http.Request, service service) {
	sessionID := session.IDFromContext(r.Context())

	req := submitRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	switch {
	case errors.Is(err, io.EOF):
	case err != nil:
		response.BadRequest(w, err)
		slog.Error("Error decoding request body for checkout", "error", err)

		return
	default:
		if _, err := service.Fill(sessionID, req.Customer, req.Payment); err != nil {
			writeFormError(w, err)

			return
		}
	}

	res, err := service.Submit(r.Context(), sessionID)
	if err != nil {
		writeFormError(w, err)

		return
	}

	switch {
	case res.Redirect:
		response.JSON(w, http.StatusOK, submitResponse{Redirect: "/"})
	case len(res.Errors) > 0:
		response.ValidationError(w, res.Errors)
	case res.FormError != "":
		response.Error(w, http.StatusBadGateway, "order_failed", res.FormError)
	default:
		response.JSON(w, http.StatusCreated, submitResponse{OrderID: res.OrderID})
	}
}

func writeFormError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkoutsvc.ErrUnknownField):
		response.Error(w, http.StatusNotFound, "unknown_field", err.Error())
	case errors.Is(err, checkoutsvc.ErrSubmissionInProgress):
		response.Error(w, http.StatusConflict, "submission_in_progress", "Your order is already being processed")
	default:
		response.Error(w, http.StatusInternalServerError, "internal_error", "internal server error")
		slog.Error("Error handling checkout request", "error", err)
	}
}
