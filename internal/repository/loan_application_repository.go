package repository

import (
	"context"

	"finbridge/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type LoanApplicationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewLoanApplicationRepository(db *pgxpool.Pool, logger *zap.Logger) *LoanApplicationRepository {
	return &LoanApplicationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *LoanApplicationRepository) Create(ctx context.Context, app *models.LoanApplication) error {
	query := squirrel.Insert("loan_applications").
		Columns("id", "user_id", "loan_product_id", "requested_amount", "tenure", "status", "created_at").
		Values(app.ID, app.UserID, app.LoanProductID, app.RequestedAmount, app.Tenure, app.Status, app.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListByUser returns the user's applications newest first, joined with
// the lender name and rate of the product applied for.
func (r *LoanApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LoanApplication, error) {
	query := squirrel.Select(
		"la.id", "la.user_id", "la.loan_product_id", "la.requested_amount",
		"la.tenure", "la.status", "la.created_at", "lp.lender_name", "lp.interest_rate",
	).
		From("loan_applications la").
		Join("loan_products lp ON la.loan_product_id = lp.id").
		Where(squirrel.Eq{"la.user_id": userID}).
		OrderBy("la.created_at DESC").
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

	var applications []models.LoanApplication
	for rows.Next() {
		var app models.LoanApplication
		if err := rows.Scan(
			&app.ID, &app.UserID, &app.LoanProductID, &app.RequestedAmount,
			&app.Tenure, &app.Status, &app.CreatedAt, &app.LenderName, &app.InterestRate,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}

	return applications, rows.Err()
}
