package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vetrox-backend/internal/data/entity"
	"vetrox-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicateEmail is returned by Create when the email is already taken.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error
	ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, name, email, password, reset_token, reset_token_expiration,
		       created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.ResetToken,
		&user.ResetTokenExpiration,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return &user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password, reset_token, reset_token_expiration,
		       created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.ResetToken,
		&user.ResetTokenExpiration,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

// SetResetToken stores a new reset grant, replacing any grant already in
// flight. Token and expiration are written in one statement.
func (ur *userRepository) SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	query := `
		UPDATE users
		SET reset_token = $2, reset_token_expiration = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query, id, token, expiresAt)
	if err != nil {
		ur.log.Error("Failed to set reset token",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("set reset token for %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}

// ResetPassword swaps the password hash and clears the reset grant in a
// single statement, so the grant can never outlive its consumption.
func (ur *userRepository) ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `
		UPDATE users
		SET password = $2, reset_token = NULL, reset_token_expiration = NULL,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		ur.log.Error("Failed to reset password",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("reset password for %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	ur.log.Info("Password reset", zap.String("user_id", id.String()))
	return nil
}
