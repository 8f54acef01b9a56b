package service

import (
	"time"

	"credimatch/internal/models"

	"github.com/google/uuid"
)

// DefaultRegistry is the built-in catalog of lenders and products, used to
// seed the database and as a fallback when the catalog tables are empty.
// IDs are derived from the entity/product codes so repeated seeding is
// stable.
func DefaultRegistry() []models.FinancialEntity {
	now := time.Now().UTC()

	entities := []models.FinancialEntity{
		{
			Code: "bcn",
			Name: "Banco Central del Norte",
			Products: []models.FinancialProduct{
				personalLoan("bcn", 1500, models.RateRange{Min: 16.5, Max: 24.0}, models.AmountRange{Min: 1000, Max: 50000}),
				vehicleLoan("bcn", 2500, models.RateRange{Min: 10.5, Max: 15.5}, models.AmountRange{Min: 15000, Max: 150000}),
				mortgage("bcn", 4000, models.RateRange{Min: 7.8, Max: 10.2}, models.AmountRange{Min: 80000, Max: 600000}),
			},
		},
		{
			Code: "fds",
			Name: "Financiera del Sur",
			Products: []models.FinancialProduct{
				personalLoan("fds", 1200, models.RateRange{Min: 18.0, Max: 28.0}, models.AmountRange{Min: 500, Max: 30000}),
				creditCard("fds", 1000, models.RateRange{Min: 32.0, Max: 45.0}, models.AmountRange{Min: 1000, Max: 15000}),
			},
		},
		{
			Code: "cma",
			Name: "Caja Municipal Andina",
			Products: []models.FinancialProduct{
				personalLoan("cma", 1000, models.RateRange{Min: 20.0, Max: 32.0}, models.AmountRange{Min: 500, Max: 20000}),
				vehicleLoan("cma", 2000, models.RateRange{Min: 12.0, Max: 17.0}, models.AmountRange{Min: 10000, Max: 90000}),
			},
		},
		{
			Code: "bip",
			Name: "Banco Interprovincial",
			Products: []models.FinancialProduct{
				personalLoan("bip", 2000, models.RateRange{Min: 14.5, Max: 22.0}, models.AmountRange{Min: 2000, Max: 80000}),
				mortgage("bip", 5000, models.RateRange{Min: 7.2, Max: 9.8}, models.AmountRange{Min: 100000, Max: 800000}),
				creditCard("bip", 1500, models.RateRange{Min: 28.0, Max: 42.0}, models.AmountRange{Min: 2000, Max: 25000}),
			},
		},
	}

	for i := range entities {
		e := &entities[i]
		e.ID = registryID("entity:" + e.Code)
		e.CreatedAt = now
		for j := range e.Products {
			p := &e.Products[j]
			p.EntityID = e.ID
			p.EntityName = e.Name
			p.Source = models.SourceCatalog
			p.CreatedAt = now
			p.UpdatedAt = now
		}
	}
	return entities
}

func registryID(code string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("credimatch:"+code))
}

func personalLoan(entityCode string, minIncome float64, rate models.RateRange, amount models.AmountRange) models.FinancialProduct {
	return models.FinancialProduct{
		ID:   registryID(entityCode + ":personal_loan"),
		Name: "Préstamo Personal",
		Type: models.ProductPersonalLoan,
		Requirements: models.Requirements{
			MinAge:            18,
			MaxAge:            70,
			MinIncome:         minIncome,
			MinWorkMonths:     6,
			MinCreditScore:    350,
			MaxDebtToIncome:   60,
			RequiredDocuments: []models.DocumentType{models.DocumentDNI, models.DocumentPayslip},
		},
		Conditions: models.Conditions{
			Amount: amount,
			Term:   models.TermRange{MinMonths: 6, MaxMonths: 60},
			Rate:   rate,
		},
	}
}

func vehicleLoan(entityCode string, minIncome float64, rate models.RateRange, amount models.AmountRange) models.FinancialProduct {
	downPayment := 20.0
	return models.FinancialProduct{
		ID:   registryID(entityCode + ":vehicle_loan"),
		Name: "Crédito Vehicular",
		Type: models.ProductVehicleLoan,
		Requirements: models.Requirements{
			MinAge:            21,
			MaxAge:            65,
			MinIncome:         minIncome,
			MinWorkMonths:     12,
			MinCreditScore:    380,
			MaxDebtToIncome:   50,
			RequiredDocuments: []models.DocumentType{models.DocumentDNI, models.DocumentPayslip, models.DocumentBankStatement},
		},
		Conditions: models.Conditions{
			Amount:         amount,
			Term:           models.TermRange{MinMonths: 12, MaxMonths: 72},
			DownPaymentPct: &downPayment,
			Rate:           rate,
		},
	}
}

func mortgage(entityCode string, minIncome float64, rate models.RateRange, amount models.AmountRange) models.FinancialProduct {
	downPayment := 10.0
	return models.FinancialProduct{
		ID:   registryID(entityCode + ":mortgage"),
		Name: "Crédito Hipotecario",
		Type: models.ProductMortgage,
		Requirements: models.Requirements{
			MinAge:            23,
			MaxAge:            65,
			MinIncome:         minIncome,
			MinWorkMonths:     24,
			MinCreditScore:    420,
			MaxDebtToIncome:   40,
			RequiredDocuments: []models.DocumentType{models.DocumentDNI, models.DocumentPayslip, models.DocumentBankStatement, models.DocumentTaxReturn},
		},
		Conditions: models.Conditions{
			Amount:         amount,
			Term:           models.TermRange{MinMonths: 60, MaxMonths: 300},
			DownPaymentPct: &downPayment,
			Rate:           rate,
		},
	}
}

func creditCard(entityCode string, minIncome float64, rate models.RateRange, amount models.AmountRange) models.FinancialProduct {
	return models.FinancialProduct{
		ID:   registryID(entityCode + ":credit_card"),
		Name: "Tarjeta de Crédito",
		Type: models.ProductCreditCard,
		Requirements: models.Requirements{
			MinAge:            18,
			MaxAge:            75,
			MinIncome:         minIncome,
			MinWorkMonths:     3,
			MinCreditScore:    330,
			MaxDebtToIncome:   65,
			RequiredDocuments: []models.DocumentType{models.DocumentDNI},
		},
		Conditions: models.Conditions{
			Amount: amount,
			Term:   models.TermRange{MinMonths: 1, MaxMonths: 36},
			Rate:   rate,
		},
	}
}
