package routes

import (
	"github.com/gofiber/fiber/v2"

	"bizfeed/internal/feed"
	"bizfeed/internal/handlers"
	"bizfeed/internal/middleware"
)

func SetupRoutesFeed(app *fiber.App, engine *feed.Engine, isModerator handlers.ModeratorCheck) {
	posts := app.Group("/feed")

	// static paths before /:post_id
	posts.Get("/", handlers.ListFeedHandler(engine, isModerator))
	posts.Get("/search", handlers.SearchFeedHandler(engine, isModerator))
	posts.Get("/quota", handlers.PlanQuotaHandler(engine, isModerator))
	posts.Post("/maintenance/expire", middleware.RequireAuth(), handlers.SweepExpiredHandler(engine, isModerator))
	posts.Get("/:post_id", handlers.GetPostHandler(engine, isModerator))

	posts.Post("/", middleware.RequireAuth(), handlers.CreatePostHandler(engine, isModerator))
	posts.Patch("/:post_id", middleware.RequireAuth(), handlers.UpdatePostHandler(engine, isModerator))
	posts.Delete("/:post_id", middleware.RequireAuth(), handlers.DeletePostHandler(engine, isModerator))
	posts.Post("/:post_id/soft-delete", middleware.RequireAuth(), handlers.SoftDeletePostHandler(engine, isModerator))
}
