package entity

type Product struct {
	Base
	ProductID   string  `db:"product_id"`
	ProductName string  `db:"product_name"`
	Price       float64 `db:"price"`
	Currency    string  `db:"currency"`
	ImageURL    string  `db:"image_url"`
	Description string  `db:"description"`
}
