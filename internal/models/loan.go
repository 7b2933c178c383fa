package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// LoanProduct is read-only catalog data; constraints gate matching.
type LoanProduct struct {
	ID             uuid.UUID `db:"id"`
	LenderName     string    `db:"lender_name"`
	MinAmount      float64   `db:"min_amount"`
	MaxAmount      float64   `db:"max_amount"`
	InterestRate   float64   `db:"interest_rate"` // percent per annum
	MinTenure      int       `db:"min_tenure"`    // months
	MaxTenure      int       `db:"max_tenure"`
	MinIncome      float64   `db:"min_income"`
	MaxDebtRatio   float64   `db:"max_debt_ratio"`
	MinHealthScore int       `db:"min_health_score"`
	CreatedAt      time.Time `db:"created_at"`
}

type LoanApplication struct {
	ID              uuid.UUID         `db:"id"`
	UserID          uuid.UUID         `db:"user_id"`
	LoanProductID   uuid.UUID         `db:"loan_product_id"`
	RequestedAmount float64           `db:"requested_amount"`
	Tenure          int               `db:"tenure"`
	Status          ApplicationStatus `db:"status"`
	CreatedAt       time.Time         `db:"created_at"`

	// Joined from loan_products on reads.
	LenderName   string  `db:"lender_name"`
	InterestRate float64 `db:"interest_rate"`
}
