package dto

import (
	"time"

	"github.com/google/uuid"

	"credimatch/internal/models"
)

// DocumentResult is what the document-analysis collaborator reports for
// one uploaded document.
type DocumentResult struct {
	FileName   string  `json:"file_name"`
	Verified   bool    `json:"verified"`
	Confidence float64 `json:"confidence"`
}

type ProfileRequest struct {
	FullName        string   `json:"full_name"`
	DocumentNumber  string   `json:"document_number"`
	Age             *int     `json:"age,omitempty"`
	Employment      string   `json:"employment,omitempty"`
	MonthlyIncome   *float64 `json:"monthly_income,omitempty"`
	TenureMonths    *int     `json:"tenure_months,omitempty"`
	CreditScore     *int     `json:"credit_score,omitempty"`
	DebtToIncome    *float64 `json:"debt_to_income,omitempty"`
	NegativeHistory bool     `json:"negative_history"`
	BureauStatus    string   `json:"bureau_status,omitempty"`
	QualityScore    float64  `json:"quality_score"`

	Documents map[string]DocumentResult `json:"documents,omitempty"`
}

// ToModel assembles the engine-facing profile from the request.
func (r *ProfileRequest) ToModel() *models.UserProfile {
	now := time.Now().UTC()
	p := &models.UserProfile{
		ID:              uuid.New(),
		FullName:        r.FullName,
		DocumentNumber:  r.DocumentNumber,
		Age:             r.Age,
		Employment:      models.EmploymentType(r.Employment),
		MonthlyIncome:   r.MonthlyIncome,
		TenureMonths:    r.TenureMonths,
		CreditScore:     r.CreditScore,
		DebtToIncome:    r.DebtToIncome,
		NegativeHistory: r.NegativeHistory,
		BureauStatus:    r.BureauStatus,
		QualityScore:    r.QualityScore,
		CreatedAt:       now,
	}
	if len(r.Documents) > 0 {
		p.Documents = make(map[models.DocumentType]models.DocumentAnalysis, len(r.Documents))
		for docType, res := range r.Documents {
			p.Documents[models.DocumentType(docType)] = models.DocumentAnalysis{
				FileName:   res.FileName,
				Verified:   res.Verified,
				Confidence: res.Confidence,
				AnalyzedAt: now,
			}
		}
	}
	return p
}
