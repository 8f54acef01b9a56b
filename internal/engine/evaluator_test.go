package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credimatch/internal/models"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

// testProfile is the reference applicant: employed, S/. 3000 income, fair
// credit, low debt load.
func testProfile() *models.UserProfile {
	return &models.UserProfile{
		ID:            uuid.New(),
		FullName:      "Maria Quispe",
		Age:           intPtr(30),
		Employment:    models.EmploymentEmployee,
		MonthlyIncome: floatPtr(3000),
		TenureMonths:  intPtr(24),
		CreditScore:   intPtr(420),
		DebtToIncome:  floatPtr(25),
		QualityScore:  75,
		Documents: map[models.DocumentType]models.DocumentAnalysis{
			models.DocumentDNI:     {FileName: "dni.jpg", Verified: true, Confidence: 0.97, AnalyzedAt: time.Now()},
			models.DocumentPayslip: {FileName: "boleta.pdf", Verified: true, Confidence: 0.91, AnalyzedAt: time.Now()},
		},
	}
}

func testProduct() *models.FinancialProduct {
	return &models.FinancialProduct{
		ID:     uuid.New(),
		Name:   "Préstamo Personal",
		Type:   models.ProductPersonalLoan,
		Source: models.SourceCatalog,
		Requirements: models.Requirements{
			MinAge:            18,
			MaxAge:            70,
			MinIncome:         1500,
			MinWorkMonths:     6,
			MinCreditScore:    350,
			MaxDebtToIncome:   60,
			RequiredDocuments: []models.DocumentType{models.DocumentDNI, models.DocumentPayslip},
		},
		Conditions: models.Conditions{
			Amount: models.AmountRange{Min: 1000, Max: 50000},
			Term:   models.TermRange{MinMonths: 6, MaxMonths: 60},
			Rate:   models.RateRange{Min: 16.5, Max: 24.0},
		},
	}
}

func TestEvaluateProfile_Eligible(t *testing.T) {
	eval := EvaluateProfile(testProfile(), testProduct())

	assert.True(t, eval.MeetsRequirements)
	assert.Empty(t, eval.Missing)
	// age 20 + income 20 + tenure 15 + credit 12 + debt 15 + quality 3.75
	assert.Equal(t, 86, eval.Score)
}

func TestEvaluateProfile_IncomeBelowMinimum(t *testing.T) {
	p := testProfile()
	p.MonthlyIncome = floatPtr(800)

	eval := EvaluateProfile(p, testProduct())

	assert.False(t, eval.MeetsRequirements)
	require.Len(t, eval.Missing, 1)
	assert.Contains(t, eval.Missing[0], "S/. 1500")
}

func TestEvaluateProfile_AbsentFieldsAreSkipped(t *testing.T) {
	p := testProfile()
	p.Age = nil
	p.CreditScore = nil

	eval := EvaluateProfile(p, testProduct())

	// Skipped checks contribute nothing but do not fail eligibility.
	assert.True(t, eval.MeetsRequirements)
	assert.Empty(t, eval.Missing)
	// income 20 + tenure 15 + debt 15 + quality 3.75
	assert.Equal(t, 54, eval.Score)
}

func TestEvaluateProfile_AgeOutOfRange(t *testing.T) {
	p := testProfile()
	p.Age = intPtr(75)

	eval := EvaluateProfile(p, testProduct())

	assert.False(t, eval.MeetsRequirements)
	require.Len(t, eval.Missing, 1)
	assert.Contains(t, eval.Missing[0], "age out of range")
}

func TestEvaluateProfile_MissingDocumentsDegradeScore(t *testing.T) {
	p := testProfile()
	delete(p.Documents, models.DocumentPayslip)

	eval := EvaluateProfile(p, testProduct())

	// The penalty lowers the ranking but does not flip eligibility.
	assert.True(t, eval.MeetsRequirements)
	require.Len(t, eval.Missing, 1)
	assert.Contains(t, eval.Missing[0], "missing documents")
	assert.Contains(t, eval.Missing[0], "payslip")
	assert.Equal(t, 60, eval.Score) // 85.75 * 0.7
}

func TestEvaluateProfile_ScoreClampedTo100(t *testing.T) {
	p := testProfile()
	p.MonthlyIncome = floatPtr(20000)
	p.CreditScore = intPtr(900)
	p.QualityScore = 100

	eval := EvaluateProfile(p, testProduct())

	assert.True(t, eval.MeetsRequirements)
	assert.LessOrEqual(t, eval.Score, 100)
	assert.GreaterOrEqual(t, eval.Score, 0)
}

func TestEvaluateProfile_HighDebtToIncomeFails(t *testing.T) {
	p := testProfile()
	p.DebtToIncome = floatPtr(65)

	eval := EvaluateProfile(p, testProduct())

	assert.False(t, eval.MeetsRequirements)
	require.Len(t, eval.Missing, 1)
	assert.Contains(t, eval.Missing[0], "debt-to-income")
}
