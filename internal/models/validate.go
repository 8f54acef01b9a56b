package models

import (
	"errors"
	"fmt"
	"math"
)

// Boundary validation errors. Scoring never sees a profile or product that
// failed validation: a NaN or an inverted range would silently corrupt
// comparisons and sort order downstream.
var (
	ErrInvalidProfile = errors.New("invalid profile")
	ErrInvalidProduct = errors.New("invalid product")
)

// ValidateProfile rejects malformed numeric inputs before they reach the
// matching engine. Absent optional fields are fine; present ones must be
// finite and in range.
func ValidateProfile(p *UserProfile) error {
	if p == nil {
		return fmt.Errorf("%w: nil profile", ErrInvalidProfile)
	}
	if p.Age != nil && (*p.Age < 0 || *p.Age > 120) {
		return fmt.Errorf("%w: age %d out of range", ErrInvalidProfile, *p.Age)
	}
	if p.MonthlyIncome != nil {
		if !isFinite(*p.MonthlyIncome) || *p.MonthlyIncome < 0 {
			return fmt.Errorf("%w: monthly income %v", ErrInvalidProfile, *p.MonthlyIncome)
		}
	}
	if p.TenureMonths != nil && *p.TenureMonths < 0 {
		return fmt.Errorf("%w: tenure %d months", ErrInvalidProfile, *p.TenureMonths)
	}
	if p.CreditScore != nil && *p.CreditScore < 0 {
		return fmt.Errorf("%w: credit score %d", ErrInvalidProfile, *p.CreditScore)
	}
	if p.DebtToIncome != nil {
		if !isFinite(*p.DebtToIncome) || *p.DebtToIncome < 0 || *p.DebtToIncome > 100 {
			return fmt.Errorf("%w: debt-to-income %v", ErrInvalidProfile, *p.DebtToIncome)
		}
	}
	if !isFinite(p.QualityScore) || p.QualityScore < 0 || p.QualityScore > 100 {
		return fmt.Errorf("%w: quality score %v", ErrInvalidProfile, p.QualityScore)
	}
	return nil
}

// ValidateProduct rejects catalog entries with malformed or
// self-contradictory ranges. Such entries are a data-integrity error in the
// catalog provider and must not reach the matcher.
func ValidateProduct(prod *FinancialProduct) error {
	if prod == nil {
		return fmt.Errorf("%w: nil product", ErrInvalidProduct)
	}
	if prod.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidProduct)
	}
	r := prod.Requirements
	if r.MinAge < 0 || r.MaxAge < 0 || (r.MaxAge > 0 && r.MinAge > r.MaxAge) {
		return fmt.Errorf("%w %q: age range [%d,%d]", ErrInvalidProduct, prod.Name, r.MinAge, r.MaxAge)
	}
	if !isFinite(r.MinIncome) || r.MinIncome < 0 {
		return fmt.Errorf("%w %q: min income %v", ErrInvalidProduct, prod.Name, r.MinIncome)
	}
	if !isFinite(r.MaxDebtToIncome) || r.MaxDebtToIncome < 0 {
		return fmt.Errorf("%w %q: max debt-to-income %v", ErrInvalidProduct, prod.Name, r.MaxDebtToIncome)
	}
	if r.MinWorkMonths < 0 || r.MinCreditScore < 0 {
		return fmt.Errorf("%w %q: negative requirement", ErrInvalidProduct, prod.Name)
	}
	c := prod.Conditions
	if !isFinite(c.Amount.Min) || !isFinite(c.Amount.Max) || c.Amount.Min < 0 || c.Amount.Min > c.Amount.Max {
		return fmt.Errorf("%w %q: amount range [%v,%v]", ErrInvalidProduct, prod.Name, c.Amount.Min, c.Amount.Max)
	}
	if c.Term.MinMonths < 0 || c.Term.MinMonths > c.Term.MaxMonths {
		return fmt.Errorf("%w %q: term range [%d,%d]", ErrInvalidProduct, prod.Name, c.Term.MinMonths, c.Term.MaxMonths)
	}
	if !isFinite(c.Rate.Min) || !isFinite(c.Rate.Max) || c.Rate.Min < 0 || c.Rate.Min > c.Rate.Max {
		return fmt.Errorf("%w %q: rate range [%v,%v]", ErrInvalidProduct, prod.Name, c.Rate.Min, c.Rate.Max)
	}
	if c.DownPaymentPct != nil && (!isFinite(*c.DownPaymentPct) || *c.DownPaymentPct < 0 || *c.DownPaymentPct > 100) {
		return fmt.Errorf("%w %q: down payment %v%%", ErrInvalidProduct, prod.Name, *c.DownPaymentPct)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
