// internal/wire/wire.go
package wire

import (
	"net/http"

	"vetrox-backend/internal/adaptor"
	"vetrox-backend/internal/usecase"
	"vetrox-backend/pkg/middleware"
	"vetrox-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired-up router
type App struct {
	Router *chi.Mux
}

// Wiring initializes handlers and routes
func Wiring(service *usecase.Service, config *utils.Config, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireOrder(r, handler.Order, config, logger)
	wireProduct(r, handler.Product)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
