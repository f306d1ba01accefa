package contact

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	contactmodel "github.com/jyothi044/ShopEase-ecommerce/internal/service/models/contact"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/services/contactsvc"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/validation"
	"github.com/jyothi044/ShopEase-ecommerce/internal/transport/http/response"
)

type service interface {
	Submit(ctx context.Context, msg contactmodel.Message) (validation.FieldErrors, error)
}

type contactResponse struct {
	Status string `json:"status"`
}

// Submit godoc
//
//	@Summary	Send a message to the store
//	@Tags		contact
//	@Accept		json
//	@Produce	json
//	@Param		request	body		contactmodel.Message	true	"message"
//	@Success	202		{object}	contactResponse
//	@Failure	422		{object}	response.ErrorResponse
//	@Failure	502		{object}	response.ErrorResponse
//	@Router		/contact [post]
func Submit(w http.ResponseWriter, r *http.Request, service service) {
	msg := contactmodel.Message{}
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		response.BadRequest(w, err)
		slog.Error("Error decoding request body for contact", "error", err)

		return
	}

	fields, err := service.Submit(r.Context(), msg)
	if err != nil {
		response.Error(w, http.StatusBadGateway, "send_failed", contactsvc.FormErrorMessage)
		slog.Error("Error sending contact message", "error", err)

		return
	}
	if len(fields) > 0 {
		response.ValidationError(w, fields)

		return
	}

	response.JSON(w, http.StatusAccepted, contactResponse{Status: "sent"})
}
