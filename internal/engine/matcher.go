package engine

import (
	"fmt"
	"sort"
	"time"

	"credimatch/internal/models"
)

// Match evaluates the profile against every (entity, product) pair in the
// catalog, optionally filtered by product type, and returns the matches
// sorted by descending compatibility score with ties broken by ascending
// estimated rate.
//
// Match is a pure function of its inputs: it allocates fresh results, never
// mutates the catalog, and is safe to call from any number of goroutines.
func Match(p *models.UserProfile, entities []models.FinancialEntity, productType models.ProductType) ([]models.ProductMatch, error) {
	if err := models.ValidateProfile(p); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var matches []models.ProductMatch
	for i := range entities {
		entity := &entities[i]
		for j := range entity.Products {
			prod := entity.Products[j]
			if productType != "" && prod.Type != productType {
				continue
			}
			if err := models.ValidateProduct(&prod); err != nil {
				return nil, fmt.Errorf("catalog entry for %s: %w", entity.Name, err)
			}
			prod.EntityID = entity.ID
			prod.EntityName = entity.Name

			eval := EvaluateProfile(p, &prod)
			matches = append(matches, models.ProductMatch{
				Product:             prod,
				CompatibilityScore:  eval.Score,
				MeetsRequirements:   eval.MeetsRequirements,
				MissingRequirements: eval.Missing,
				EstimatedRate:       EstimateRate(p, &prod),
				RecommendedAmount:   RecommendAmount(p, &prod),
				RiskTier:            ClassifyRisk(p),
				EvaluatedAt:         now,
			})
		}
	}

	sortMatches(matches)
	return matches, nil
}

// Dedupe collapses multiple matches from the same entity into the single
// best one: highest compatibility score, ties broken by lower estimated
// rate. The result preserves the ranking order of the input.
func Dedupe(matches []models.ProductMatch) []models.ProductMatch {
	best := make(map[string]models.ProductMatch, len(matches))
	for _, m := range matches {
		key := m.Product.EntityID.String()
		cur, ok := best[key]
		if !ok || betterMatch(m, cur) {
			best[key] = m
		}
	}

	deduped := make([]models.ProductMatch, 0, len(best))
	for _, m := range best {
		deduped = append(deduped, m)
	}
	sortMatches(deduped)
	return deduped
}

func betterMatch(a, b models.ProductMatch) bool {
	if a.CompatibilityScore != b.CompatibilityScore {
		return a.CompatibilityScore > b.CompatibilityScore
	}
	return a.EstimatedRate < b.EstimatedRate
}

func sortMatches(matches []models.ProductMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return betterMatch(matches[i], matches[j])
	})
}
