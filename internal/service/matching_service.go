package service

import (
	"context"

	"credimatch/internal/engine"
	"credimatch/internal/models"

	"go.uber.org/zap"
)

// MatchingService runs the full scoring pipeline for one profile: static
// catalog plus live feed, evaluated and ranked by the engine. The feed is
// best-effort: when it fails, matching degrades to the static catalog
// rather than failing the call.
type MatchingService struct {
	catalog *CatalogService
	feed    *FeedClient
	logger  *zap.Logger
}

// NewMatchingService wires the matcher. feed may be nil when the bank API
// is disabled.
func NewMatchingService(catalog *CatalogService, feed *FeedClient, logger *zap.Logger) *MatchingService {
	return &MatchingService{
		catalog: catalog,
		feed:    feed,
		logger:  logger,
	}
}

func (s *MatchingService) Match(ctx context.Context, profile *models.UserProfile, productType models.ProductType) ([]models.ProductMatch, error) {
	if err := models.ValidateProfile(profile); err != nil {
		return nil, err
	}

	entities := s.catalog.Catalog(ctx)

	if s.feed != nil {
		live, err := s.feed.ProductsByProfile(ctx, profile)
		if err != nil {
			s.logger.Warn("Live feed unavailable, matching against static catalog only", zap.Error(err))
		} else if len(live) > 0 {
			combined := make([]models.FinancialEntity, 0, len(entities)+len(live))
			combined = append(combined, entities...)
			combined = append(combined, live...)
			entities = combined
		}
	}

	matches, err := engine.Match(profile, entities, productType)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Matching run completed",
		zap.String("profile_id", profile.ID.String()),
		zap.Int("matches", len(matches)),
		zap.Int("eligible", countEligible(matches)),
	)
	return matches, nil
}

// Dedupe collapses the match list to the best offer per lending entity.
func (s *MatchingService) Dedupe(matches []models.ProductMatch) []models.ProductMatch {
	return engine.Dedupe(matches)
}

func countEligible(matches []models.ProductMatch) int {
	n := 0
	for _, m := range matches {
		if m.MeetsRequirements {
			n++
		}
	}
	return n
}
