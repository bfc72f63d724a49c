package usecase

import (
	"vetrox-backend/internal/data/repository"
	"vetrox-backend/pkg/notification"
	"vetrox-backend/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Order   OrderService
	Product ProductService
}

func NewService(repo *repository.Repository, sender notification.Sender, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, sender, config, log),
		Order:   NewOrderService(sender, log),
		Product: NewProductService(repo.Product, log),
	}
}
