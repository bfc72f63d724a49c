package repository

import (
	"vetrox-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Product ProductRepository
	OTP     OTPRegistry
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Product: NewProductRepository(db, log),
		OTP:     NewOTPRegistry(log),
	}
}
