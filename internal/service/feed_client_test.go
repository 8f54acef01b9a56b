package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"credimatch/internal/models"
	"credimatch/internal/repository"
	"credimatch/pkg/config"
)

const feedBody = `{
	"products": [
		{
			"entity_code": "bdx", "entity_name": "Banco Digital Express",
			"name": "Préstamo Online", "type": "personal_loan",
			"min_age": 18, "max_age": 70, "min_income": 1200,
			"min_work_months": 3, "min_credit_score": 340, "max_debt_to_income": 55,
			"amount_min": 1000, "amount_max": 40000,
			"term_min_months": 6, "term_max_months": 48,
			"rate_min": 15.0, "rate_max": 21.0
		},
		{
			"entity_code": "bdx", "entity_name": "Banco Digital Express",
			"name": "Producto Roto", "type": "personal_loan",
			"amount_min": 40000, "amount_max": 1000,
			"term_min_months": 6, "term_max_months": 48,
			"rate_min": 15.0, "rate_max": 21.0
		}
	]
}`

func newFeedClient(t *testing.T, baseURL string, cache repository.Cache) *FeedClient {
	t.Helper()
	return NewFeedClient(&config.BankAPIConfig{
		Enabled: true,
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	}, cache, zap.NewNop())
}

func feedProfile() *models.UserProfile {
	income := 3000.0
	score := 420
	return &models.UserProfile{MonthlyIncome: &income, CreditScore: &score, QualityScore: 75}
}

func TestFeedClient_FetchesValidatesAndTags(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedBody))
	}))
	defer srv.Close()

	client := newFeedClient(t, srv.URL, repository.NewMockCache())
	entities, err := client.ProductsByProfile(context.Background(), feedProfile())
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "income=3000")
	assert.Contains(t, gotQuery, "credit_score=420")

	// The inverted-range product is dropped; the valid one survives with
	// the live source tag.
	require.Len(t, entities, 1)
	require.Len(t, entities[0].Products, 1)
	assert.Equal(t, "Banco Digital Express", entities[0].Name)
	assert.Equal(t, models.SourceLive, entities[0].Products[0].Source)
	assert.Equal(t, entities[0].ID, entities[0].Products[0].EntityID)
}

func TestFeedClient_ServesSecondCallFromCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedBody))
	}))
	defer srv.Close()

	client := newFeedClient(t, srv.URL, repository.NewMockCache())

	_, err := client.ProductsByProfile(context.Background(), feedProfile())
	require.NoError(t, err)
	second, err := client.ProductsByProfile(context.Background(), feedProfile())
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	require.Len(t, second, 1)
}

func TestFeedClient_UpstreamErrorIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newFeedClient(t, srv.URL, repository.NewMockCache())
	_, err := client.ProductsByProfile(context.Background(), feedProfile())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
