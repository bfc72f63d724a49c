package adaptor

import (
	"vetrox-backend/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Order   *OrderHandler
	Product *ProductHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Order:   NewOrderHandler(service.Order, log),
		Product: NewProductHandler(service.Product, log),
	}
}
