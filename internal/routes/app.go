package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"

	"bizfeed/dto"
	"bizfeed/internal/feed"
	"bizfeed/internal/handlers"
	"bizfeed/internal/middleware"
)

type AppOptions struct {
	Engine      *feed.Engine
	JWTSecret   string
	IsModerator handlers.ModeratorCheck
	Log         zerolog.Logger
}

// NewApp assembles the HTTP surface: docs, health, auth and the feed routes.
func NewApp(opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "bizfeed",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLog(opts.Log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	app.Use(middleware.JWT(opts.JWTSecret))
	SetupRoutesFeed(app, opts.Engine, opts.IsModerator)
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(dto.ErrorResponse{Error: err.Error()})
}
