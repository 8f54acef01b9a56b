package models

import (
	"time"

	"github.com/google/uuid"
)

type OfferStatus string

const (
	OfferActive    OfferStatus = "active"
	OfferExpired   OfferStatus = "expired"
	OfferWithdrawn OfferStatus = "withdrawn"
)

// Special-condition tags attached to auction offers at creation.
const (
	ConditionPreferredClient = "preferred_client"
	ConditionLowRisk         = "low_risk"
	ConditionRealTimeData    = "real_time_data"
)

// AuctionOffer wraps one eligible ProductMatch while it competes in the
// auction. CurrentRate only ever moves down between creation and expiry;
// OriginalRate keeps the first estimate for display.
type AuctionOffer struct {
	ID    uuid.UUID    `json:"id"`
	Match ProductMatch `json:"match"`

	CurrentRate  float64  `json:"current_rate"`
	OriginalRate float64  `json:"original_rate"`
	Conditions   []string `json:"conditions,omitempty"`

	Status    OfferStatus `json:"status"`
	Rank      int         `json:"rank"`
	ExpiresAt time.Time   `json:"expires_at"`
	CreatedAt time.Time   `json:"created_at"`

	// LastTickAt keeps rate decay idempotent with respect to time: a tick
	// closer than the minimum tick interval to the previous one is a no-op.
	LastTickAt time.Time `json:"last_tick_at"`
}
