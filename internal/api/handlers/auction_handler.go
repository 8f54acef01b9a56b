package handlers

import (
	"errors"

	"credimatch/internal/dto"
	"credimatch/internal/models"
	"credimatch/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuctionHandler struct {
	matching *service.MatchingService
	runner   *service.AuctionRunner
	logger   *zap.Logger
}

func NewAuctionHandler(matching *service.MatchingService, runner *service.AuctionRunner, logger *zap.Logger) *AuctionHandler {
	return &AuctionHandler{
		matching: matching,
		runner:   runner,
		logger:   logger,
	}
}

// StartAuction runs the matching pipeline for the submitted profile and
// opens a new auction from its eligible matches, replacing any previous
// one.
func (h *AuctionHandler) StartAuction(c *fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	profile := req.Profile.ToModel()
	matches, err := h.matching.Match(c.Context(), profile, models.ProductType(req.ProductType))
	if err != nil {
		if errors.Is(err, models.ErrInvalidProfile) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Matching run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute matches",
		})
	}

	offers := h.runner.Begin(matches)
	if len(offers) == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "No eligible products for this profile",
		})
	}

	snap := h.runner.Offers()
	return c.Status(fiber.StatusCreated).JSON(dto.NewOfferListResponse(snap.Offers, snap.UpdatedAt))
}

// ListOffers returns the latest published auction snapshot.
func (h *AuctionHandler) ListOffers(c *fiber.Ctx) error {
	snap := h.runner.Offers()
	return c.JSON(dto.NewOfferListResponse(snap.Offers, snap.UpdatedAt))
}

// WithdrawOffer pulls one offer out of the active ranking.
func (h *AuctionHandler) WithdrawOffer(c *fiber.Ctx) error {
	offerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid offer ID",
		})
	}

	h.runner.Withdraw(offerID.String())

	snap := h.runner.Offers()
	return c.JSON(dto.NewOfferListResponse(snap.Offers, snap.UpdatedAt))
}
