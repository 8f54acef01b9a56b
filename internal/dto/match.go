package dto

import "credimatch/internal/models"

type MatchRequest struct {
	Profile     ProfileRequest `json:"profile"`
	ProductType string         `json:"product_type,omitempty"`
}

type MatchResponse struct {
	EntityName          string   `json:"entity_name"`
	ProductName         string   `json:"product_name"`
	ProductType         string   `json:"product_type"`
	CompatibilityScore  int      `json:"compatibility_score"`
	MeetsRequirements   bool     `json:"meets_requirements"`
	MissingRequirements []string `json:"missing_requirements,omitempty"`
	EstimatedRate       float64  `json:"estimated_rate"`
	RecommendedAmount   float64  `json:"recommended_amount"`
	RiskTier            string   `json:"risk_tier"`
	Source              string   `json:"source"`
}

type MatchListResponse struct {
	ProfileID string          `json:"profile_id"`
	Matches   []MatchResponse `json:"matches"`
	Eligible  int             `json:"eligible"`
}

func NewMatchResponse(m *models.ProductMatch) MatchResponse {
	return MatchResponse{
		EntityName:          m.Product.EntityName,
		ProductName:         m.Product.Name,
		ProductType:         string(m.Product.Type),
		CompatibilityScore:  m.CompatibilityScore,
		MeetsRequirements:   m.MeetsRequirements,
		MissingRequirements: m.MissingRequirements,
		EstimatedRate:       m.EstimatedRate,
		RecommendedAmount:   m.RecommendedAmount,
		RiskTier:            string(m.RiskTier),
		Source:              string(m.Product.Source),
	}
}
