package wire

import (
	"vetrox-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler) {
	// Public catalog
	r.Get("/products", productHandler.ListProducts)
}
