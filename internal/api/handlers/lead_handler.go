package handlers

import (
	"time"

	"credimatch/internal/dto"
	"credimatch/internal/models"
	"credimatch/internal/repository"
	"credimatch/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LeadHandler struct {
	leads  *repository.LeadRepository
	runner *service.AuctionRunner
	logger *zap.Logger
}

func NewLeadHandler(leads *repository.LeadRepository, runner *service.AuctionRunner, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{
		leads:  leads,
		runner: runner,
		logger: logger,
	}
}

// CreateLead captures a contact for one auction offer. The commercial
// terms are resolved from the current snapshot so the stored lead reflects
// the rate the user actually saw.
func (h *LeadHandler) CreateLead(c *fiber.Ctx) error {
	var req dto.LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.FullName == "" || (req.Phone == "" && req.Email == "") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and at least one contact method are required",
		})
	}

	profileID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid profile ID",
		})
	}
	offerID, err := uuid.Parse(req.OfferID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid offer ID",
		})
	}

	offer, ok := h.findOffer(offerID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Offer not found in the current auction",
		})
	}

	lead := &models.Lead{
		ID:        uuid.New(),
		ProfileID: profileID,
		OfferID:   offerID,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Email:     req.Email,
		Entity:    offer.Match.Product.EntityName,
		Product:   offer.Match.Product.Name,
		Rate:      offer.CurrentRate,
		Amount:    offer.Match.RecommendedAmount,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.leads.Create(c.Context(), lead); err != nil {
		h.logger.Error("Failed to store lead", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store lead",
		})
	}

	h.logger.Info("Lead captured",
		zap.String("lead_id", lead.ID.String()),
		zap.String("entity", offer.Match.Product.EntityName),
		zap.Float64("rate", lead.Rate),
	)

	return c.Status(fiber.StatusCreated).JSON(dto.LeadResponse{
		ID:        lead.ID.String(),
		CreatedAt: lead.CreatedAt.Format(time.RFC3339),
	})
}

func (h *LeadHandler) findOffer(id uuid.UUID) (models.AuctionOffer, bool) {
	snap := h.runner.Offers()
	for _, o := range snap.Offers {
		if o.ID == id {
			return o, true
		}
	}
	return models.AuctionOffer{}, false
}
