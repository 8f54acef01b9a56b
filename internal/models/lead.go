package models

import (
	"time"

	"github.com/google/uuid"
)

// Lead is a captured contact for one offer: the commercial output of the
// marketplace. Stored as-is for the sales team; never read back by the engine.
type Lead struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	OfferID   uuid.UUID `json:"offer_id"`

	FullName string  `json:"full_name"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email"`
	Entity   string  `json:"entity"`
	Product  string  `json:"product"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`

	CreatedAt time.Time `json:"created_at"`
}
