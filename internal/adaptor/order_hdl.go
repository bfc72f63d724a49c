package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"vetrox-backend/internal/dto/request"
	"vetrox-backend/internal/usecase"
	"vetrox-backend/pkg/utils"

	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// PlaceOrder handles POST /order/place-order
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	// Confirmations go to the email claim of the session. Phone-channel
	// sessions have none, so they cannot reach this flow.
	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Invalid token. Email not found.")
		return
	}

	var req request.PlaceOrderRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
		if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
			utils.ResponseBadRequest(w, "Validation failed", validationErrors)
			return
		}
	}

	if err := h.service.PlaceOrder(r.Context(), email, req.Mobile); err != nil {
		h.handleServiceError(w, err, "place order")
		return
	}

	utils.ResponseMessage(w, "Order placed successfully. Confirmation email sent!")
}

// BookConsultation handles POST /order/booking-consultation
func (h *OrderHandler) BookConsultation(w http.ResponseWriter, r *http.Request) {
	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Invalid token. Email not found.")
		return
	}

	if err := h.service.BookConsultation(r.Context(), email); err != nil {
		h.handleServiceError(w, err, "book consultation")
		return
	}

	utils.ResponseMessage(w, "Consultation booked successfully. Confirmation email sent!")
}

func (h *OrderHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrDeliveryFailed):
		h.log.Error(operation+" failed - delivery", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to send confirmation notification.")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
