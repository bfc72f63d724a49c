package entity

import (
	"time"
)

// User is an email-identified account. The reset-grant pair (token +
// expiration) is either fully set or fully absent; both fields change
// together in a single statement.
type User struct {
	Base
	Name                 string     `db:"name"`
	Email                string     `db:"email"`
	PasswordHash         string     `db:"password"`
	ResetToken           *string    `db:"reset_token"`
	ResetTokenExpiration *time.Time `db:"reset_token_expiration"`
}
