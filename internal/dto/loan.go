package dto

type LoanProductResponse struct {
	ID             string  `json:"id"`
	LenderName     string  `json:"lender_name"`
	MinAmount      float64 `json:"min_amount"`
	MaxAmount      float64 `json:"max_amount"`
	InterestRate   float64 `json:"interest_rate"`
	MinTenure      int     `json:"min_tenure"`
	MaxTenure      int     `json:"max_tenure"`
	MinIncome      float64 `json:"min_income"`
	MaxDebtRatio   float64 `json:"max_debt_ratio"`
	MinHealthScore int     `json:"min_health_score"`
}

type MatchLoansRequest struct {
	RequestedAmount float64 `json:"requested_amount" validate:"required,gt=0"`
	Tenure          int     `json:"tenure" validate:"required,gt=0"`
}

type LoanApplicationRequest struct {
	LoanProductID   string  `json:"loan_product_id" validate:"required,uuid"`
	RequestedAmount float64 `json:"requested_amount" validate:"required,gt=0"`
	Tenure          int     `json:"tenure" validate:"required,gt=0"`
}

type LoanApplicationResponse struct {
	ID              string  `json:"id"`
	LoanProductID   string  `json:"loan_product_id"`
	LenderName      string  `json:"lender_name"`
	InterestRate    float64 `json:"interest_rate"`
	RequestedAmount float64 `json:"requested_amount"`
	Tenure          int     `json:"tenure"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}
