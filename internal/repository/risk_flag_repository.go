package repository

import (
	"context"

	"finbridge/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type RiskFlagRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRiskFlagRepository(db *pgxpool.Pool, logger *zap.Logger) *RiskFlagRepository {
	return &RiskFlagRepository{
		db:     db,
		logger: logger,
	}
}

// Append records a new flag. Flags are never updated or deleted.
func (r *RiskFlagRepository) Append(ctx context.Context, flag *models.RiskFlag) error {
	query := squirrel.Insert("risk_flags").
		Columns("id", "user_id", "risk_level", "reasons", "created_at").
		Values(flag.ID, flag.UserID, flag.RiskLevel, flag.Reasons, flag.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// List returns all recorded flags, newest first.
func (r *RiskFlagRepository) List(ctx context.Context) ([]models.RiskFlag, error) {
	query := squirrel.Select("id", "user_id", "risk_level", "reasons", "created_at").
		From("risk_flags").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flags []models.RiskFlag
	for rows.Next() {
		var flag models.RiskFlag
		if err := rows.Scan(&flag.ID, &flag.UserID, &flag.RiskLevel, &flag.Reasons, &flag.CreatedAt); err != nil {
			return nil, err
		}
		flags = append(flags, flag)
	}

	return flags, rows.Err()
}
