package models

import (
	"time"

	"github.com/google/uuid"
)

// ModelScore is the latest persisted scoring snapshot for a user.
type ModelScore struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	EligibilityScore int       `db:"eligibility_score"`
	RiskLevel        string    `db:"risk_level"`
	HealthScore      int       `db:"health_score"`
	CreatedAt        time.Time `db:"created_at"`
}

// RiskFlag is an append-only risk analysis record; prior flags are
// never updated or replaced.
type RiskFlag struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	RiskLevel string    `db:"risk_level"`
	Reasons   []string  `db:"reasons"`
	CreatedAt time.Time `db:"created_at"`
}
