package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProfile() *UserProfile {
	age := 30
	income := 3000.0
	return &UserProfile{Age: &age, MonthlyIncome: &income, QualityScore: 80}
}

func validProduct() *FinancialProduct {
	return &FinancialProduct{
		Name:         "Préstamo Personal",
		Requirements: Requirements{MinAge: 18, MaxAge: 70, MinIncome: 1500, MaxDebtToIncome: 60},
		Conditions: Conditions{
			Amount: AmountRange{Min: 1000, Max: 50000},
			Term:   TermRange{MinMonths: 6, MaxMonths: 60},
			Rate:   RateRange{Min: 16.5, Max: 24.0},
		},
	}
}

func TestValidateProfile(t *testing.T) {
	assert.NoError(t, ValidateProfile(validProfile()))

	t.Run("nil profile", func(t *testing.T) {
		assert.ErrorIs(t, ValidateProfile(nil), ErrInvalidProfile)
	})

	t.Run("NaN income", func(t *testing.T) {
		p := validProfile()
		nan := math.NaN()
		p.MonthlyIncome = &nan
		assert.ErrorIs(t, ValidateProfile(p), ErrInvalidProfile)
	})

	t.Run("negative income", func(t *testing.T) {
		p := validProfile()
		neg := -500.0
		p.MonthlyIncome = &neg
		assert.ErrorIs(t, ValidateProfile(p), ErrInvalidProfile)
	})

	t.Run("debt ratio above 100", func(t *testing.T) {
		p := validProfile()
		dti := 140.0
		p.DebtToIncome = &dti
		assert.ErrorIs(t, ValidateProfile(p), ErrInvalidProfile)
	})

	t.Run("absent optional fields are fine", func(t *testing.T) {
		p := &UserProfile{QualityScore: 50}
		assert.NoError(t, ValidateProfile(p))
	})
}

func TestValidateProduct(t *testing.T) {
	assert.NoError(t, ValidateProduct(validProduct()))

	t.Run("inverted amount range", func(t *testing.T) {
		prod := validProduct()
		prod.Conditions.Amount = AmountRange{Min: 50000, Max: 1000}
		assert.ErrorIs(t, ValidateProduct(prod), ErrInvalidProduct)
	})

	t.Run("inverted rate range", func(t *testing.T) {
		prod := validProduct()
		prod.Conditions.Rate = RateRange{Min: 24.0, Max: 16.5}
		assert.ErrorIs(t, ValidateProduct(prod), ErrInvalidProduct)
	})

	t.Run("NaN rate", func(t *testing.T) {
		prod := validProduct()
		prod.Conditions.Rate.Min = math.NaN()
		assert.ErrorIs(t, ValidateProduct(prod), ErrInvalidProduct)
	})

	t.Run("inverted age range", func(t *testing.T) {
		prod := validProduct()
		prod.Requirements.MinAge = 80
		assert.ErrorIs(t, ValidateProduct(prod), ErrInvalidProduct)
	})
}
