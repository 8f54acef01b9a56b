package dto

type LeadRequest struct {
	ProfileID string `json:"profile_id"`
	OfferID   string `json:"offer_id"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

type LeadResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}
