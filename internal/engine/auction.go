package engine

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"credimatch/internal/models"
)

// Config bounds the auction simulation. Decay amounts are percentage
// points per tick; live-feed offers decay inside a tighter band than
// catalog-simulated ones.
type Config struct {
	DecayMin     float64
	DecayMax     float64
	LiveDecayMin float64
	LiveDecayMax float64

	// RateFloor is the global floor no offer drops below, whatever the
	// product range says.
	RateFloor float64

	ExpiryMin time.Duration
	ExpiryMax time.Duration

	// MinTickInterval makes Advance idempotent with respect to time: a
	// tick closer than this to an offer's previous one does not decay it.
	MinTickInterval time.Duration
}

// DefaultConfig returns the reference auction behavior.
func DefaultConfig() Config {
	return Config{
		DecayMin:        0.1,
		DecayMax:        0.6,
		LiveDecayMin:    0.05,
		LiveDecayMax:    0.3,
		RateFloor:       8.0,
		ExpiryMin:       30 * time.Minute,
		ExpiryMax:       90 * time.Minute,
		MinTickInterval: 10 * time.Second,
	}
}

// Simulator produces and advances competing auction offers. Randomness and
// the clock are injected so decay sequences and expiry windows are
// reproducible under test.
//
// A Simulator is not safe for concurrent use; the auction runner
// serializes access to it.
type Simulator struct {
	cfg Config
	rng *rand.Rand
	now func() time.Time
}

func NewSimulator(cfg Config, rng *rand.Rand, now func() time.Time) *Simulator {
	if now == nil {
		now = time.Now
	}
	return &Simulator{cfg: cfg, rng: rng, now: now}
}

// StartAuction creates one offer per eligible match. Matches that do not
// meet requirements never enter the auction.
func (s *Simulator) StartAuction(matches []models.ProductMatch) []models.AuctionOffer {
	now := s.now().UTC()

	var offers []models.AuctionOffer
	for _, m := range matches {
		if !m.MeetsRequirements {
			continue
		}

		window := s.cfg.ExpiryMax - s.cfg.ExpiryMin
		expiry := s.cfg.ExpiryMin + time.Duration(s.rng.Float64()*float64(window))

		offers = append(offers, models.AuctionOffer{
			ID:           uuid.New(),
			Match:        m,
			CurrentRate:  m.EstimatedRate,
			OriginalRate: m.EstimatedRate,
			Conditions:   specialConditions(m),
			Status:       models.OfferActive,
			ExpiresAt:    now.Add(expiry),
			CreatedAt:    now,
			LastTickAt:   now,
		})
	}

	rankOffers(offers)
	return offers
}

// Advance computes the next auction snapshot at the given instant: active
// offers past their expiry transition to expired, the rest decay inside
// the configured band and are re-ranked by ascending current rate. The
// input slice is not mutated; callers publish the returned snapshot
// atomically.
func (s *Simulator) Advance(offers []models.AuctionOffer, now time.Time) []models.AuctionOffer {
	now = now.UTC()
	next := make([]models.AuctionOffer, len(offers))
	copy(next, offers)

	for i := range next {
		offer := &next[i]
		if offer.Status != models.OfferActive {
			continue
		}
		if now.After(offer.ExpiresAt) {
			offer.Status = models.OfferExpired
			continue
		}
		if now.Sub(offer.LastTickAt) < s.cfg.MinTickInterval {
			continue
		}

		decayMin, decayMax := s.cfg.DecayMin, s.cfg.DecayMax
		if offer.Match.Product.Source == models.SourceLive {
			decayMin, decayMax = s.cfg.LiveDecayMin, s.cfg.LiveDecayMax
		}
		decay := decayMin + s.rng.Float64()*(decayMax-decayMin)

		offer.CurrentRate = round2(maxFloat(offer.CurrentRate-decay, s.cfg.RateFloor))
		offer.LastTickAt = now
	}

	rankOffers(next)
	return next
}

// Withdraw returns a snapshot with the given offer pulled out of the
// active ranking.
func (s *Simulator) Withdraw(offers []models.AuctionOffer, id string) []models.AuctionOffer {
	next := make([]models.AuctionOffer, len(offers))
	copy(next, offers)

	for i := range next {
		if next[i].ID.String() == id && next[i].Status == models.OfferActive {
			next[i].Status = models.OfferWithdrawn
		}
	}

	rankOffers(next)
	return next
}

func specialConditions(m models.ProductMatch) []string {
	var conds []string
	if m.CompatibilityScore >= 80 {
		conds = append(conds, models.ConditionPreferredClient)
	}
	if m.RiskTier == models.RiskLow {
		conds = append(conds, models.ConditionLowRisk)
	}
	if m.Product.Source == models.SourceLive {
		conds = append(conds, models.ConditionRealTimeData)
	}
	return conds
}

// rankOffers sorts active offers to the front by ascending current rate
// and assigns 1-based ranks; the top-ranked offer is the leading bid.
// Expired and withdrawn offers keep rank 0 at the tail.
func rankOffers(offers []models.AuctionOffer) {
	sort.SliceStable(offers, func(i, j int) bool {
		a, b := offers[i], offers[j]
		if (a.Status == models.OfferActive) != (b.Status == models.OfferActive) {
			return a.Status == models.OfferActive
		}
		if a.Status != models.OfferActive {
			return false
		}
		return a.CurrentRate < b.CurrentRate
	})

	rank := 0
	for i := range offers {
		if offers[i].Status == models.OfferActive {
			rank++
			offers[i].Rank = rank
		} else {
			offers[i].Rank = 0
		}
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
