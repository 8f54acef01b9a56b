package engine

import (
	"math"

	"credimatch/internal/models"
)

// EstimateRate derives the estimated annual rate for a profile from the
// midpoint of the product's base range plus additive risk adjustments, in
// percentage points. Adjustments may raise the rate freely but can never
// pull it below the product's own minimum.
func EstimateRate(p *models.UserProfile, prod *models.FinancialProduct) float64 {
	rate := prod.Conditions.Rate
	base := (rate.Min + rate.Max) / 2

	adj := 0.0
	if p.CreditScore != nil {
		switch score := *p.CreditScore; {
		case score < 350:
			adj += 3.0
		case score < 400:
			adj += 1.5
		case score > 500:
			adj -= 1.0
		}
	}
	if p.DebtToIncome != nil {
		switch dti := *p.DebtToIncome; {
		case dti > 40:
			adj += 2.0
		case dti < 20:
			adj -= 0.5
		}
	}
	switch {
	case p.QualityScore < 70:
		adj += 1.0
	case p.QualityScore > 90:
		adj -= 0.5
	}

	return round2(math.Max(rate.Min, base+adj))
}

// RecommendAmount derives a principal bounded by affordability and the
// product's amount limits. Affordability assumes 30% of monthly income is
// available for debt service, reduced by the existing debt load, across
// the product's maximum term. Unknown income falls back to the product
// minimum.
func RecommendAmount(p *models.UserProfile, prod *models.FinancialProduct) float64 {
	amount := prod.Conditions.Amount
	if p.MonthlyIncome == nil {
		return amount.Min
	}

	dti := 0.0
	if p.DebtToIncome != nil {
		dti = *p.DebtToIncome
	}
	available := *p.MonthlyIncome * 0.30 * (1 - dti/100)
	byAffordability := available * float64(prod.Conditions.Term.MaxMonths)

	return math.Min(math.Max(byAffordability, amount.Min), amount.Max)
}

// ClassifyRisk maps profile signals to a coarse default-risk tier.
func ClassifyRisk(p *models.UserProfile) models.RiskTier {
	score := 0

	switch {
	case p.CreditScore != nil && *p.CreditScore > 450:
		score += 3
	case p.CreditScore != nil && *p.CreditScore > 350:
		score += 2
	default:
		score++
	}

	if p.DebtToIncome != nil {
		switch {
		case *p.DebtToIncome < 30:
			score += 2
		case *p.DebtToIncome < 50:
			score++
		}
	}

	if p.QualityScore > 80 {
		score++
	}

	switch {
	case score >= 5:
		return models.RiskLow
	case score >= 3:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
