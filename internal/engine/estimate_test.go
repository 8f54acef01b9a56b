package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"credimatch/internal/models"
)

func TestEstimateRate_ReferenceScenario(t *testing.T) {
	// credit 420 and debt 25% sit in the neutral bands, quality 75 adds
	// nothing: the estimate is the plain midpoint of [16.5, 24.0].
	rate := EstimateRate(testProfile(), testProduct())

	assert.Equal(t, 20.25, rate)
	assert.GreaterOrEqual(t, rate, 16.5)
	assert.LessOrEqual(t, rate, 21.0)
}

func TestEstimateRate_RiskAdjustments(t *testing.T) {
	tests := []struct {
		name         string
		creditScore  int
		debtToIncome float64
		quality      float64
		want         float64
	}{
		{"very low credit", 300, 25, 75, 23.25},     // base 20.25 + 3.0
		{"low credit", 380, 25, 75, 21.75},          // + 1.5
		{"good credit", 520, 25, 75, 19.25},         // - 1.0
		{"high debt load", 420, 45, 75, 22.25},      // + 2.0
		{"light debt load", 420, 15, 75, 19.75},     // - 0.5
		{"poor documents", 420, 25, 60, 21.25},      // + 1.0
		{"excellent documents", 420, 25, 95, 19.75}, // - 0.5
		{"stacked penalties", 300, 45, 60, 26.25},   // + 3.0 + 2.0 + 1.0
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfile()
			p.CreditScore = intPtr(tt.creditScore)
			p.DebtToIncome = floatPtr(tt.debtToIncome)
			p.QualityScore = tt.quality

			assert.Equal(t, tt.want, EstimateRate(p, testProduct()))
		})
	}
}

func TestEstimateRate_NeverBelowProductMinimum(t *testing.T) {
	p := testProfile()
	p.CreditScore = intPtr(800)
	p.DebtToIncome = floatPtr(5)
	p.QualityScore = 100

	prod := testProduct()
	prod.Conditions.Rate = models.RateRange{Min: 20.0, Max: 21.0}

	// Midpoint 20.5 minus 2.0 of discounts would undercut the product
	// floor; the clamp holds it at the range minimum.
	assert.Equal(t, 20.0, EstimateRate(p, prod))
}

func TestRecommendAmount_BoundedByAffordability(t *testing.T) {
	amount := RecommendAmount(testProfile(), testProduct())

	// 3000 * 0.30 * 0.75 = 675 monthly, across 60 months.
	assert.Equal(t, 40500.0, amount)
	assert.GreaterOrEqual(t, amount, 1000.0)
	assert.LessOrEqual(t, amount, 50000.0)
}

func TestRecommendAmount_ClampedToProductLimits(t *testing.T) {
	t.Run("high income hits product max", func(t *testing.T) {
		p := testProfile()
		p.MonthlyIncome = floatPtr(50000)
		assert.Equal(t, 50000.0, RecommendAmount(p, testProduct()))
	})

	t.Run("low income hits product min", func(t *testing.T) {
		p := testProfile()
		p.MonthlyIncome = floatPtr(50)
		p.DebtToIncome = floatPtr(90)
		assert.Equal(t, 1000.0, RecommendAmount(p, testProduct()))
	})

	t.Run("unknown income falls back to product min", func(t *testing.T) {
		p := testProfile()
		p.MonthlyIncome = nil
		assert.Equal(t, 1000.0, RecommendAmount(p, testProduct()))
	})
}

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name         string
		creditScore  *int
		debtToIncome *float64
		quality      float64
		want         models.RiskTier
	}{
		{"strong profile", intPtr(500), floatPtr(20), 90, models.RiskLow},               // 3+2+1
		{"reference profile", intPtr(420), floatPtr(25), 75, models.RiskMedium},         // 2+2
		{"fair credit moderate debt", intPtr(360), floatPtr(45), 75, models.RiskMedium}, // 2+1
		{"weak profile", intPtr(300), floatPtr(60), 50, models.RiskHigh},                // 1
		{"no signals", nil, nil, 50, models.RiskHigh},                                   // 1
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfile()
			p.CreditScore = tt.creditScore
			p.DebtToIncome = tt.debtToIncome
			p.QualityScore = tt.quality

			assert.Equal(t, tt.want, ClassifyRisk(p))
		})
	}
}
