package response

import (
	"vetrox-backend/internal/data/entity"
)

type ProductResponse struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description"`
}

type ProductListResponse struct {
	Message  string            `json:"message"`
	Products []ProductResponse `json:"products"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ProductID:   product.ProductID,
		ProductName: product.ProductName,
		Price:       product.Price,
		Currency:    product.Currency,
		ImageURL:    product.ImageURL,
		Description: product.Description,
	}
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductToResponse(p))
	}
	return out
}
