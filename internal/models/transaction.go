package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Date        time.Time       `db:"date"`
	Amount      float64         `db:"amount"`
	Type        TransactionType `db:"type"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}
