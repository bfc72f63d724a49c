package adaptor

import (
	"net/http"

	"vetrox-backend/internal/dto/response"
	"vetrox-backend/internal/usecase"
	"vetrox-backend/pkg/utils"

	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.log.Error("Failed to list products", zap.Error(err))
		utils.ResponseInternalError(w, "Error fetching products")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.ProductListResponse{
		Message:  "Product data fetched successfully",
		Products: products,
	})
}
