package dto

import (
	"time"

	"credimatch/internal/models"
)

type OfferResponse struct {
	ID           string   `json:"id"`
	EntityName   string   `json:"entity_name"`
	ProductName  string   `json:"product_name"`
	ProductType  string   `json:"product_type"`
	CurrentRate  float64  `json:"current_rate"`
	OriginalRate float64  `json:"original_rate"`
	Amount       float64  `json:"amount"`
	Conditions   []string `json:"conditions,omitempty"`
	Status       string   `json:"status"`
	Rank         int      `json:"rank"`
	ExpiresAt    string   `json:"expires_at"`
}

type OfferListResponse struct {
	Offers    []OfferResponse `json:"offers"`
	UpdatedAt string          `json:"updated_at"`
}

func NewOfferResponse(o *models.AuctionOffer) OfferResponse {
	return OfferResponse{
		ID:           o.ID.String(),
		EntityName:   o.Match.Product.EntityName,
		ProductName:  o.Match.Product.Name,
		ProductType:  string(o.Match.Product.Type),
		CurrentRate:  o.CurrentRate,
		OriginalRate: o.OriginalRate,
		Amount:       o.Match.RecommendedAmount,
		Conditions:   o.Conditions,
		Status:       string(o.Status),
		Rank:         o.Rank,
		ExpiresAt:    o.ExpiresAt.Format(time.RFC3339),
	}
}

func NewOfferListResponse(offers []models.AuctionOffer, updatedAt time.Time) OfferListResponse {
	resp := OfferListResponse{
		Offers:    make([]OfferResponse, 0, len(offers)),
		UpdatedAt: updatedAt.Format(time.RFC3339),
	}
	for i := range offers {
		resp.Offers = append(resp.Offers, NewOfferResponse(&offers[i]))
	}
	return resp
}
