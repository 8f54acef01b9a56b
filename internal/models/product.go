package models

import (
	"time"

	"github.com/google/uuid"
)

type ProductType string

const (
	ProductPersonalLoan ProductType = "personal_loan"
	ProductVehicleLoan  ProductType = "vehicle_loan"
	ProductMortgage     ProductType = "mortgage"
	ProductCreditCard   ProductType = "credit_card"
)

// ProductSource distinguishes products loaded from the static catalog from
// products ingested through the live bank-API feed.
type ProductSource string

const (
	SourceCatalog ProductSource = "catalog"
	SourceLive    ProductSource = "live"
)

// FinancialEntity is a bank or lender offering products in the catalog.
type FinancialEntity struct {
	ID       uuid.UUID          `json:"id"`
	Code     string             `json:"code"`
	Name     string             `json:"name"`
	Products []FinancialProduct `json:"products"`

	CreatedAt time.Time `json:"created_at"`
}

// Requirements is the eligibility gate of a product. Zero-valued bounds
// mean the product does not constrain that signal.
type Requirements struct {
	MinAge            int            `json:"min_age"`
	MaxAge            int            `json:"max_age"`
	MinIncome         float64        `json:"min_income"`
	MinWorkMonths     int            `json:"min_work_months"`
	MinCreditScore    int            `json:"min_credit_score"`
	MaxDebtToIncome   float64        `json:"max_debt_to_income"`
	RequiredDocuments []DocumentType `json:"required_documents"`
}

type AmountRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type TermRange struct {
	MinMonths int `json:"min_months"`
	MaxMonths int `json:"max_months"`
}

type RateRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Conditions are the commercial terms of a product.
type Conditions struct {
	Amount         AmountRange `json:"amount"`
	Term           TermRange   `json:"term"`
	DownPaymentPct *float64    `json:"down_payment_pct,omitempty"`
	Rate           RateRange   `json:"rate"`
}

// FinancialProduct is one offering of a FinancialEntity. Reference data:
// immutable during a matching run.
type FinancialProduct struct {
	ID           uuid.UUID     `json:"id"`
	EntityID     uuid.UUID     `json:"entity_id"`
	EntityName   string        `json:"entity_name"`
	Name         string        `json:"name"`
	Type         ProductType   `json:"type"`
	Requirements Requirements  `json:"requirements"`
	Conditions   Conditions    `json:"conditions"`
	Source       ProductSource `json:"source"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
