package wire

import (
	"vetrox-backend/internal/adaptor"
	"vetrox-backend/pkg/middleware"
	"vetrox-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Confirmation flows require a valid bearer token
	r.Route("/order", func(r chi.Router) {
		r.Use(middleware.AuthToken(config.JWT.Secret, log))

		r.Post("/place-order", orderHandler.PlaceOrder)
		r.Post("/booking-consultation", orderHandler.BookConsultation)
	})
}
