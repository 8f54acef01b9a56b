package engine

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credimatch/internal/models"
)

func testCatalog() []models.FinancialEntity {
	personal := *testProduct()
	personal.ID = uuid.New()

	demanding := *testProduct()
	demanding.ID = uuid.New()
	demanding.Name = "Préstamo Preferente"
	demanding.Requirements.MinIncome = 5000
	demanding.Conditions.Rate = models.RateRange{Min: 12.0, Max: 18.0}

	vehicle := *testProduct()
	vehicle.ID = uuid.New()
	vehicle.Name = "Crédito Vehicular"
	vehicle.Type = models.ProductVehicleLoan
	vehicle.Conditions.Rate = models.RateRange{Min: 10.5, Max: 15.0}

	return []models.FinancialEntity{
		{ID: uuid.New(), Code: "bcr", Name: "Banco Central del Norte", Products: []models.FinancialProduct{personal, vehicle}},
		{ID: uuid.New(), Code: "fnz", Name: "Financiera del Sur", Products: []models.FinancialProduct{demanding}},
	}
}

func TestMatch_RanksByScoreThenRate(t *testing.T) {
	matches, err := Match(testProfile(), testCatalog(), "")
	require.NoError(t, err)
	require.Len(t, matches, 3)

	for i := 1; i < len(matches); i++ {
		prev, cur := matches[i-1], matches[i]
		if prev.CompatibilityScore == cur.CompatibilityScore {
			assert.LessOrEqual(t, prev.EstimatedRate, cur.EstimatedRate)
		} else {
			assert.Greater(t, prev.CompatibilityScore, cur.CompatibilityScore)
		}
	}

	for _, m := range matches {
		assert.GreaterOrEqual(t, m.CompatibilityScore, 0)
		assert.LessOrEqual(t, m.CompatibilityScore, 100)
		assert.GreaterOrEqual(t, m.EstimatedRate, m.Product.Conditions.Rate.Min)
		assert.GreaterOrEqual(t, m.RecommendedAmount, m.Product.Conditions.Amount.Min)
		assert.LessOrEqual(t, m.RecommendedAmount, m.Product.Conditions.Amount.Max)
		assert.NotEmpty(t, m.Product.EntityName)
	}
}

func TestMatch_FiltersByProductType(t *testing.T) {
	matches, err := Match(testProfile(), testCatalog(), models.ProductVehicleLoan)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, models.ProductVehicleLoan, matches[0].Product.Type)
}

func TestMatch_IsIdempotent(t *testing.T) {
	p := testProfile()
	catalog := testCatalog()

	first, err := Match(p, catalog, "")
	require.NoError(t, err)
	second, err := Match(p, catalog, "")
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].CompatibilityScore, second[i].CompatibilityScore)
		assert.Equal(t, first[i].EstimatedRate, second[i].EstimatedRate)
		assert.Equal(t, first[i].MeetsRequirements, second[i].MeetsRequirements)
	}
}

func TestMatch_RejectsMalformedProfile(t *testing.T) {
	p := testProfile()
	p.MonthlyIncome = floatPtr(math.NaN())

	_, err := Match(p, testCatalog(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidProfile)
}

func TestMatch_RejectsContradictoryProductRanges(t *testing.T) {
	catalog := testCatalog()
	catalog[0].Products[0].Conditions.Amount = models.AmountRange{Min: 50000, Max: 1000}

	_, err := Match(testProfile(), catalog, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidProduct)
}

func TestDedupe_OneOfferPerEntity(t *testing.T) {
	entityA, entityB := uuid.New(), uuid.New()
	prod := func(entity uuid.UUID) models.FinancialProduct {
		p := *testProduct()
		p.ID = uuid.New()
		p.EntityID = entity
		return p
	}

	matches := []models.ProductMatch{
		{Product: prod(entityA), CompatibilityScore: 85, EstimatedRate: 19.5, MeetsRequirements: true},
		{Product: prod(entityA), CompatibilityScore: 70, EstimatedRate: 17.0, MeetsRequirements: true},
		{Product: prod(entityB), CompatibilityScore: 60, EstimatedRate: 22.0, MeetsRequirements: true},
	}

	deduped := Dedupe(matches)
	require.Len(t, deduped, 2)

	seen := map[uuid.UUID]models.ProductMatch{}
	for _, m := range deduped {
		_, dup := seen[m.Product.EntityID]
		require.False(t, dup, "two matches for entity %s", m.Product.EntityID)
		seen[m.Product.EntityID] = m
	}
	assert.Equal(t, 85, seen[entityA].CompatibilityScore)
}

func TestDedupe_TieBrokenByLowerRate(t *testing.T) {
	entity := uuid.New()
	prod := *testProduct()
	prod.EntityID = entity

	matches := []models.ProductMatch{
		{Product: prod, CompatibilityScore: 80, EstimatedRate: 21.0},
		{Product: prod, CompatibilityScore: 80, EstimatedRate: 18.5},
	}

	deduped := Dedupe(matches)
	require.Len(t, deduped, 1)
	assert.Equal(t, 18.5, deduped[0].EstimatedRate)
}
