package dto

type RiskFlagResponse struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	RiskLevel string   `json:"risk_level"`
	Reasons   []string `json:"reasons"`
	CreatedAt string   `json:"created_at"`
}

type LatestScoresResponse struct {
	EligibilityScore int    `json:"eligibility_score"`
	RiskLevel        string `json:"risk_level"`
	HealthScore      int    `json:"health_score"`
	CreatedAt        string `json:"created_at"`
}
