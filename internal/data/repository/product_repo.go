package repository

import (
	"context"
	"fmt"

	"vetrox-backend/internal/data/entity"
	"vetrox-backend/pkg/database"

	"go.uber.org/zap"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]*entity.Product, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

func (pr *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, product_id, product_name, price, currency, image_url,
		       description, created_at, updated_at
		FROM products
		ORDER BY product_name
	`

	rows, err := pr.db.Query(ctx, query)
	if err != nil {
		pr.log.Error("Failed to get products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.ProductID,
			&product.ProductName,
			&product.Price,
			&product.Currency,
			&product.ImageURL,
			&product.Description,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			pr.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}
