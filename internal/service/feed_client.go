package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"credimatch/internal/models"
	"credimatch/internal/repository"
	"credimatch/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FeedClient pulls live product quotes from the external bank API. The API
// is already authenticated and rate-limited upstream; its output is still
// untrusted input here and gets the same validation as static catalog
// data. Responses are cached in Redis keyed by the profile signals the API
// quotes on.
type FeedClient struct {
	baseURL    string
	httpClient *http.Client
	cache      repository.Cache
	logger     *zap.Logger
}

func NewFeedClient(cfg *config.BankAPIConfig, cache repository.Cache, logger *zap.Logger) *FeedClient {
	return &FeedClient{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      cache,
		logger:     logger,
	}
}

type feedProduct struct {
	EntityCode      string   `json:"entity_code"`
	EntityName      string   `json:"entity_name"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	MinAge          int      `json:"min_age"`
	MaxAge          int      `json:"max_age"`
	MinIncome       float64  `json:"min_income"`
	MinWorkMonths   int      `json:"min_work_months"`
	MinCreditScore  int      `json:"min_credit_score"`
	MaxDebtToIncome float64  `json:"max_debt_to_income"`
	AmountMin       float64  `json:"amount_min"`
	AmountMax       float64  `json:"amount_max"`
	TermMinMonths   int      `json:"term_min_months"`
	TermMaxMonths   int      `json:"term_max_months"`
	DownPaymentPct  *float64 `json:"down_payment_pct,omitempty"`
	RateMin         float64  `json:"rate_min"`
	RateMax         float64  `json:"rate_max"`
}

type feedResponse struct {
	Products []feedProduct `json:"products"`
}

// ProductsByProfile fetches the products the external API quotes for this
// profile, grouped by entity. Invalid entries are skipped, not fatal: one
// malformed quote must not cost the user the rest of the feed.
func (c *FeedClient) ProductsByProfile(ctx context.Context, p *models.UserProfile) ([]models.FinancialEntity, error) {
	key := c.cacheKey(p)

	if raw, ok := c.cache.Get(ctx, key); ok {
		var cached feedResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			return c.toEntities(cached.Products), nil
		}
		c.logger.Warn("Discarding corrupt feed cache entry", zap.String("key", key))
	}

	feed, err := c.fetch(ctx, p)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(feed); err == nil {
		c.cache.Set(ctx, key, raw)
	}

	return c.toEntities(feed.Products), nil
}

func (c *FeedClient) fetch(ctx context.Context, p *models.UserProfile) (*feedResponse, error) {
	query := url.Values{}
	if p.MonthlyIncome != nil {
		query.Set("income", fmt.Sprintf("%.0f", *p.MonthlyIncome))
	}
	if p.CreditScore != nil {
		query.Set("credit_score", fmt.Sprintf("%d", *p.CreditScore))
	}

	endpoint := c.baseURL + "/products?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	c.logger.Info("Live product feed fetched", zap.Int("products", len(feed.Products)))
	return &feed, nil
}

// cacheKey is a signature of the profile signals the API quotes on, not of
// the whole profile: two users with the same income and score share the
// same quote set.
func (c *FeedClient) cacheKey(p *models.UserProfile) string {
	income, score := 0, 0
	if p.MonthlyIncome != nil {
		income = int(*p.MonthlyIncome)
	}
	if p.CreditScore != nil {
		score = *p.CreditScore
	}
	return fmt.Sprintf("feed:v1:income:%d:score:%d", income, score)
}

func (c *FeedClient) toEntities(products []feedProduct) []models.FinancialEntity {
	now := time.Now().UTC()
	byCode := map[string]*models.FinancialEntity{}
	var order []string

	for _, fp := range products {
		prod := models.FinancialProduct{
			ID:         uuid.New(),
			Name:       fp.Name,
			Type:       models.ProductType(fp.Type),
			EntityName: fp.EntityName,
			Source:     models.SourceLive,
			Requirements: models.Requirements{
				MinAge:          fp.MinAge,
				MaxAge:          fp.MaxAge,
				MinIncome:       fp.MinIncome,
				MinWorkMonths:   fp.MinWorkMonths,
				MinCreditScore:  fp.MinCreditScore,
				MaxDebtToIncome: fp.MaxDebtToIncome,
			},
			Conditions: models.Conditions{
				Amount:         models.AmountRange{Min: fp.AmountMin, Max: fp.AmountMax},
				Term:           models.TermRange{MinMonths: fp.TermMinMonths, MaxMonths: fp.TermMaxMonths},
				DownPaymentPct: fp.DownPaymentPct,
				Rate:           models.RateRange{Min: fp.RateMin, Max: fp.RateMax},
			},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := models.ValidateProduct(&prod); err != nil {
			c.logger.Warn("Skipping invalid feed product",
				zap.String("entity", fp.EntityName),
				zap.String("product", fp.Name),
				zap.Error(err),
			)
			continue
		}

		entity, ok := byCode[fp.EntityCode]
		if !ok {
			entity = &models.FinancialEntity{
				ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte("credimatch:feed:"+fp.EntityCode)),
				Code:      fp.EntityCode,
				Name:      fp.EntityName,
				CreatedAt: now,
			}
			byCode[fp.EntityCode] = entity
			order = append(order, fp.EntityCode)
		}
		prod.EntityID = entity.ID
		entity.Products = append(entity.Products, prod)
	}

	entities := make([]models.FinancialEntity, 0, len(order))
	for _, code := range order {
		entities = append(entities, *byCode[code])
	}
	return entities
}
