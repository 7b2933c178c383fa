package repository

import (
	"context"
	"errors"
	"time"

	"finbridge/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrNoScores is returned when a user has never been scored.
var ErrNoScores = errors.New("no scores recorded")

type ScoreRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewScoreRepository(db *pgxpool.Pool, logger *zap.Logger) *ScoreRepository {
	return &ScoreRepository{
		db:     db,
		logger: logger,
	}
}

// RecordEligibility appends a new score row for the user.
func (r *ScoreRepository) RecordEligibility(ctx context.Context, userID uuid.UUID, score int, riskLevel string) error {
	query := squirrel.Insert("model_scores").
		Columns("id", "user_id", "eligibility_score", "risk_level", "health_score", "created_at").
		Values(uuid.New(), userID, score, riskLevel, 0, time.Now()).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// RecordHealth updates the user's most recent score row in place; a
// health score is always computed on top of an eligibility run.
func (r *ScoreRepository) RecordHealth(ctx context.Context, userID uuid.UUID, healthScore int) error {
	sub := squirrel.Select("id").
		From("model_scores").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(1)

	query := squirrel.Update("model_scores").
		Set("health_score", healthScore).
		Where(squirrel.Expr("id = (?)", sub)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// Latest returns the newest score snapshot for the user, or ErrNoScores.
func (r *ScoreRepository) Latest(ctx context.Context, userID uuid.UUID) (*models.ModelScore, error) {
	query := squirrel.Select("id", "user_id", "eligibility_score", "risk_level", "health_score", "created_at").
		From("model_scores").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var score models.ModelScore
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&score.ID, &score.UserID, &score.EligibilityScore, &score.RiskLevel, &score.HealthScore, &score.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoScores
	}
	if err != nil {
		return nil, err
	}

	return &score, nil
}
