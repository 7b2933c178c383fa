package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleBorrower UserRole = "BORROWER"
	RoleAdmin    UserRole = "ADMIN"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         UserRole  `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// BusinessProfile is created alongside borrower accounts.
type BusinessProfile struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	BusinessName string    `db:"business_name"`
	Sector       string    `db:"sector"`
	Location     string    `db:"location"`
	CreatedAt    time.Time `db:"created_at"`
}
