package repository

import (
	"context"

	"finbridge/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type LoanProductRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewLoanProductRepository(db *pgxpool.Pool, logger *zap.Logger) *LoanProductRepository {
	return &LoanProductRepository{
		db:     db,
		logger: logger,
	}
}

var loanProductColumns = []string{
	"id", "lender_name", "min_amount", "max_amount", "interest_rate",
	"min_tenure", "max_tenure", "min_income", "max_debt_ratio", "min_health_score", "created_at",
}

func (r *LoanProductRepository) Create(ctx context.Context, p *models.LoanProduct) error {
	query := squirrel.Insert("loan_products").
		Columns(loanProductColumns...).
		Values(p.ID, p.LenderName, p.MinAmount, p.MaxAmount, p.InterestRate,
			p.MinTenure, p.MaxTenure, p.MinIncome, p.MaxDebtRatio, p.MinHealthScore, p.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// List returns the catalog ordered by interest rate ascending.
func (r *LoanProductRepository) List(ctx context.Context) ([]models.LoanProduct, error) {
	query := squirrel.Select(loanProductColumns...).
		From("loan_products").
		OrderBy("interest_rate ASC").
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

	var products []models.LoanProduct
	for rows.Next() {
		var p models.LoanProduct
		if err := rows.Scan(
			&p.ID, &p.LenderName, &p.MinAmount, &p.MaxAmount, &p.InterestRate,
			&p.MinTenure, &p.MaxTenure, &p.MinIncome, &p.MaxDebtRatio, &p.MinHealthScore, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *LoanProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LoanProduct, error) {
	query := squirrel.Select(loanProductColumns...).
		From("loan_products").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var p models.LoanProduct
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.ID, &p.LenderName, &p.MinAmount, &p.MaxAmount, &p.InterestRate,
		&p.MinTenure, &p.MaxTenure, &p.MinIncome, &p.MaxDebtRatio, &p.MinHealthScore, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
