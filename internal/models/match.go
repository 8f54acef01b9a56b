package models

import "time"

type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// ProductMatch ties one profile evaluation to one product. Created fresh
// per matching run and never mutated afterwards; a profile change means
// re-evaluating, not patching.
type ProductMatch struct {
	Product FinancialProduct `json:"product"`

	CompatibilityScore  int      `json:"compatibility_score"`
	MeetsRequirements   bool     `json:"meets_requirements"`
	MissingRequirements []string `json:"missing_requirements,omitempty"`
	EstimatedRate       float64  `json:"estimated_rate"`
	RecommendedAmount   float64  `json:"recommended_amount"`
	RiskTier            RiskTier `json:"risk_tier"`

	EvaluatedAt time.Time `json:"evaluated_at"`
}
