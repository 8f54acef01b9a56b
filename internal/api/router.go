package api

import (
	"credimatch/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	matchHandler *handlers.MatchHandler,
	auctionHandler *handlers.AuctionHandler,
	leadHandler *handlers.LeadHandler,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	api.Post("/matches", matchHandler.FindMatches)

	auction := api.Group("/auction")
	auction.Post("/start", auctionHandler.StartAuction)
	auction.Get("/offers", auctionHandler.ListOffers)
	auction.Post("/offers/:id/withdraw", auctionHandler.WithdrawOffer)

	api.Post("/leads", leadHandler.CreateLead)

	return app
}
