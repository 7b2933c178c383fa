package dto

type CreateTransactionRequest struct {
	Date        string  `json:"date"` // YYYY-MM-DD, defaults to today
	Amount      float64 `json:"amount" validate:"required,gte=0"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

type BulkUploadRequest struct {
	Transactions []CreateTransactionRequest `json:"transactions" validate:"required"`
}

type BulkUploadResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}
