package service

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"credimatch/internal/engine"
	"credimatch/internal/models"
	"credimatch/pkg/config"

	"go.uber.org/zap"
)

// Snapshot is one immutable published state of the auction. Readers always
// see a complete snapshot; Advance builds the next one and swaps the
// pointer.
type Snapshot struct {
	Offers    []models.AuctionOffer
	UpdatedAt time.Time
}

// AuctionRunner owns the only mutable state in the system: the active
// auction. A single ticker goroutine drives rate decay; any number of
// readers poll Offers concurrently. The engine simulator itself is not
// goroutine safe, so Begin/Withdraw/Tick serialize on a mutex.
type AuctionRunner struct {
	sim      *engine.Simulator
	interval time.Duration
	now      func() time.Time
	logger   *zap.Logger

	mu       sync.Mutex
	snapshot atomic.Pointer[Snapshot]

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// NewAuctionRunner builds the driver with an injected random source and
// clock; production passes a time-seeded source and time.Now.
func NewAuctionRunner(cfg *config.AuctionConfig, rng *rand.Rand, now func() time.Time, logger *zap.Logger) *AuctionRunner {
	if now == nil {
		now = time.Now
	}
	r := &AuctionRunner{
		sim:      engine.NewSimulator(engineConfig(cfg), rng, now),
		interval: cfg.TickInterval,
		now:      now,
		logger:   logger,
		done:     make(chan struct{}),
	}
	r.snapshot.Store(&Snapshot{UpdatedAt: now()})
	return r
}

func engineConfig(cfg *config.AuctionConfig) engine.Config {
	return engine.Config{
		DecayMin:        cfg.DecayMin,
		DecayMax:        cfg.DecayMax,
		LiveDecayMin:    cfg.LiveDecayMin,
		LiveDecayMax:    cfg.LiveDecayMax,
		RateFloor:       cfg.RateFloor,
		ExpiryMin:       cfg.ExpiryMin,
		ExpiryMax:       cfg.ExpiryMax,
		MinTickInterval: cfg.MinTickInterval,
	}
}

// Begin replaces the current auction with one built from the given
// matches: dedupe to one offer per entity, then enter every eligible match.
func (r *AuctionRunner) Begin(matches []models.ProductMatch) []models.AuctionOffer {
	r.mu.Lock()
	defer r.mu.Unlock()

	offers := r.sim.StartAuction(engine.Dedupe(matches))
	r.publish(offers)

	r.logger.Info("Auction started", zap.Int("offers", len(offers)))
	return offers
}

// Offers returns the latest published snapshot. The returned slice is a
// copy; callers may do what they like with it.
func (r *AuctionRunner) Offers() Snapshot {
	snap := r.snapshot.Load()
	offers := make([]models.AuctionOffer, len(snap.Offers))
	copy(offers, snap.Offers)
	return Snapshot{Offers: offers, UpdatedAt: snap.UpdatedAt}
}

// Withdraw pulls one offer out of the active ranking and publishes the
// resulting snapshot immediately.
func (r *AuctionRunner) Withdraw(offerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.snapshot.Load()
	r.publish(r.sim.Withdraw(cur.Offers, offerID))
}

// Tick advances the auction to the current instant. A panic inside a tick
// is contained: the previously published snapshot stays valid.
func (r *AuctionRunner) Tick() {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Auction tick failed, keeping previous snapshot", zap.Any("panic", rec))
		}
	}()

	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.snapshot.Load()
	if len(cur.Offers) == 0 {
		return
	}
	r.publish(r.sim.Advance(cur.Offers, r.now()))
}

// Start launches the periodic driver. Stop is the only cancellation the
// auction needs: offers are a soft in-memory simulation with no
// durability guarantee.
func (r *AuctionRunner) Start() {
	r.startOnce.Do(func() {
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			ticker := time.NewTicker(r.interval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					r.Tick()
				case <-r.done:
					return
				}
			}
		}()
		r.logger.Info("Auction driver started", zap.Duration("interval", r.interval))
	})
}

func (r *AuctionRunner) Stop() {
	r.stopOnce.Do(func() {
		close(r.done)
		r.wg.Wait()
		r.logger.Info("Auction driver stopped")
	})
}

// publish swaps in the next snapshot; callers hold r.mu.
func (r *AuctionRunner) publish(offers []models.AuctionOffer) {
	r.snapshot.Store(&Snapshot{Offers: offers, UpdatedAt: r.now()})
}
