package service

import (
	"context"
	"sync"
	"time"

	"credimatch/internal/models"
	"credimatch/internal/repository"

	"go.uber.org/zap"
)

const catalogCacheTTL = 5 * time.Minute

// CatalogService supplies the validated product catalog for matching runs.
// The database catalog is cached in memory for a few minutes; when the
// tables are empty or unreachable the built-in registry takes over so the
// marketplace keeps serving matches.
type CatalogService struct {
	repo   *repository.ProductRepository
	logger *zap.Logger

	mu       sync.RWMutex
	cached   []models.FinancialEntity
	loadedAt time.Time
}

func NewCatalogService(repo *repository.ProductRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logger,
	}
}

// Catalog returns the current entity list. The slice is shared between
// callers and must be treated as read-only; the matcher never mutates it.
func (s *CatalogService) Catalog(ctx context.Context) []models.FinancialEntity {
	s.mu.RLock()
	if s.cached != nil && time.Since(s.loadedAt) < catalogCacheTTL {
		cached := s.cached
		s.mu.RUnlock()
		return cached
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil && time.Since(s.loadedAt) < catalogCacheTTL {
		return s.cached
	}

	entities := s.load(ctx)
	s.cached = entities
	s.loadedAt = time.Now()
	return entities
}

// Invalidate drops the in-memory catalog so the next run reloads it, e.g.
// after re-seeding.
func (s *CatalogService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *CatalogService) load(ctx context.Context) []models.FinancialEntity {
	if s.repo != nil {
		entities, err := s.repo.ListEntities(ctx)
		if err != nil {
			s.logger.Warn("Catalog load failed, using built-in registry", zap.Error(err))
		} else if len(entities) > 0 {
			return s.validate(entities)
		} else {
			s.logger.Warn("Catalog tables empty, using built-in registry")
		}
	}
	return s.validate(DefaultRegistry())
}

// validate drops self-contradictory catalog entries before they can reach
// the matcher.
func (s *CatalogService) validate(entities []models.FinancialEntity) []models.FinancialEntity {
	valid := make([]models.FinancialEntity, 0, len(entities))
	for _, e := range entities {
		products := make([]models.FinancialProduct, 0, len(e.Products))
		for _, p := range e.Products {
			if err := models.ValidateProduct(&p); err != nil {
				s.logger.Warn("Skipping invalid catalog product",
					zap.String("entity", e.Name),
					zap.String("product", p.Name),
					zap.Error(err),
				)
				continue
			}
			products = append(products, p)
		}
		if len(products) == 0 {
			continue
		}
		e.Products = products
		valid = append(valid, e)
	}
	return valid
}
