package handlers

import (
	"errors"

	"credimatch/internal/dto"
	"credimatch/internal/models"
	"credimatch/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type MatchHandler struct {
	matching *service.MatchingService
	logger   *zap.Logger
}

func NewMatchHandler(matching *service.MatchingService, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{
		matching: matching,
		logger:   logger,
	}
}

// FindMatches evaluates the submitted profile against the full catalog and
// returns the ranked match list.
func (h *MatchHandler) FindMatches(c *fiber.Ctx) error {
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

	resp := dto.MatchListResponse{
		ProfileID: profile.ID.String(),
		Matches:   make([]dto.MatchResponse, 0, len(matches)),
	}
	for i := range matches {
		if matches[i].MeetsRequirements {
			resp.Eligible++
		}
		resp.Matches = append(resp.Matches, dto.NewMatchResponse(&matches[i]))
	}

	return c.JSON(resp)
}
