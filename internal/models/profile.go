package models

import (
	"time"

	"github.com/google/uuid"
)

type EmploymentType string

const (
	EmploymentEmployee      EmploymentType = "employee"
	EmploymentSelfEmployed  EmploymentType = "self-employed"
	EmploymentBusinessOwner EmploymentType = "business-owner"
	EmploymentRetired       EmploymentType = "retired"
)

type DocumentType string

const (
	DocumentDNI           DocumentType = "dni"
	DocumentPayslip       DocumentType = "payslip"
	DocumentBankStatement DocumentType = "bank_statement"
	DocumentTaxReturn     DocumentType = "tax_return"
	DocumentUtilityBill   DocumentType = "utility_bill"
)

// DocumentAnalysis is the result the document-processing collaborator
// attaches to a profile for one document type.
type DocumentAnalysis struct {
	FileName   string    `json:"file_name"`
	Verified   bool      `json:"verified"`
	Confidence float64   `json:"confidence"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// UserProfile is the financial profile the matching engine scores against
// the product catalog. Optional numeric fields are pointers: a nil field
// means the signal was never collected and its check is skipped, which is
// different from a zero value.
type UserProfile struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	DocumentNumber string    `json:"document_number"`

	Age           *int           `json:"age,omitempty"`
	Employment    EmploymentType `json:"employment,omitempty"`
	MonthlyIncome *float64       `json:"monthly_income,omitempty"`
	TenureMonths  *int           `json:"tenure_months,omitempty"`

	CreditScore     *int     `json:"credit_score,omitempty"`
	DebtToIncome    *float64 `json:"debt_to_income,omitempty"`
	NegativeHistory bool     `json:"negative_history"`
	BureauStatus    string   `json:"bureau_status,omitempty"`

	Documents    map[DocumentType]DocumentAnalysis `json:"documents,omitempty"`
	QualityScore float64                           `json:"quality_score"`

	CreatedAt time.Time `json:"created_at"`
}

// HasDocument reports whether the profile carries an analysis result for
// the given document type.
func (p *UserProfile) HasDocument(t DocumentType) bool {
	_, ok := p.Documents[t]
	return ok
}
