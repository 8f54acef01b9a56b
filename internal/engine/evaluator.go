// Package engine implements the matching and dynamic auction core: profile
// evaluation, rate and amount estimation, risk classification, per-entity
// deduplication, and the time-boxed rate auction.
package engine

import (
	"fmt"
	"math"
	"strings"

	"credimatch/internal/models"
)

// Score contributions of the individual eligibility checks.
const (
	agePoints    = 20.0
	incomeCap    = 2.5
	tenurePoints = 15.0
	creditCap    = 2.0
	debtPoints   = 15.0

	qualityBonusFactor = 0.05
	missingDocsPenalty = 0.7
)

// Evaluation is the outcome of scoring one profile against one product.
type Evaluation struct {
	Score             int
	MeetsRequirements bool
	Missing           []string
}

// EvaluateProfile scores a (profile, product) pair. Each check contributes
// only when the corresponding profile field is present; an absent field is
// skipped, not failed. Missing required documents degrade the score without
// flipping eligibility.
func EvaluateProfile(p *models.UserProfile, prod *models.FinancialProduct) Evaluation {
	score := 0.0
	meets := true
	var missing []string

	req := prod.Requirements

	if p.Age != nil {
		if *p.Age >= req.MinAge && (req.MaxAge == 0 || *p.Age <= req.MaxAge) {
			score += agePoints
		} else {
			meets = false
			missing = append(missing, fmt.Sprintf("age out of range (%d-%d years)", req.MinAge, req.MaxAge))
		}
	}

	if p.MonthlyIncome != nil {
		switch {
		case req.MinIncome <= 0:
			// No income requirement: trivially satisfied at the full cap.
			score += incomeCap * 10
		case *p.MonthlyIncome >= req.MinIncome:
			score += math.Min(incomeCap, *p.MonthlyIncome/req.MinIncome) * 10
		default:
			meets = false
			missing = append(missing, fmt.Sprintf("monthly income below minimum: S/. %.0f", req.MinIncome))
		}
	}

	if p.TenureMonths != nil {
		if *p.TenureMonths >= req.MinWorkMonths {
			score += tenurePoints
		} else {
			meets = false
			missing = append(missing, fmt.Sprintf("work tenure below %d months", req.MinWorkMonths))
		}
	}

	if p.CreditScore != nil {
		switch {
		case req.MinCreditScore <= 0:
			score += creditCap * 10
		case *p.CreditScore >= req.MinCreditScore:
			score += math.Min(creditCap, float64(*p.CreditScore)/float64(req.MinCreditScore)) * 10
		default:
			meets = false
			missing = append(missing, fmt.Sprintf("credit score below minimum of %d", req.MinCreditScore))
		}
	}

	if p.DebtToIncome != nil && req.MaxDebtToIncome > 0 {
		if *p.DebtToIncome <= req.MaxDebtToIncome {
			score += debtPoints
		} else {
			meets = false
			missing = append(missing, fmt.Sprintf("debt-to-income above %.0f%%", req.MaxDebtToIncome))
		}
	}

	// Document quality contributes regardless of the checks above.
	score += p.QualityScore * qualityBonusFactor

	if absent := missingDocuments(p, req.RequiredDocuments); len(absent) > 0 {
		missing = append(missing, "missing documents: "+strings.Join(absent, ", "))
		score *= missingDocsPenalty
	}

	return Evaluation{
		Score:             clampScore(score),
		MeetsRequirements: meets,
		Missing:           missing,
	}
}

func missingDocuments(p *models.UserProfile, required []models.DocumentType) []string {
	var absent []string
	for _, doc := range required {
		if !p.HasDocument(doc) {
			absent = append(absent, string(doc))
		}
	}
	return absent
}

func clampScore(s float64) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return int(math.Round(s))
}
