package usecase

import (
	"context"
	"fmt"

	"vetrox-backend/internal/data/repository"
	"vetrox-backend/internal/dto/response"

	"go.uber.org/zap"
)

type ProductService interface {
	ListProducts(ctx context.Context) ([]response.ProductResponse, error)
}

type productService struct {
	repo repository.ProductRepository
	log  *zap.Logger
}

func NewProductService(repo repository.ProductRepository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log,
	}
}

func (s *productService) ListProducts(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}

	return response.ProductsToResponse(products), nil
}
