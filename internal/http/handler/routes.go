package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/service"
)

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
// Handlers stay thin: parse, validate, call the injected service, write JSON.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	storySvc service.StoryService,
	projectSvc service.ProjectService,
	messageSvc service.MessageService,
	statSvc service.StatisticService,
) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	stories := api.Group("/stories")
	stories.Get("/", ListStories(storySvc))
	stories.Get("/archive", ListArchivedStories(storySvc))
	stories.Get("/:id", GetStory(storySvc))
	stories.Post("/", CreateStory(storySvc))
	stories.Delete("/:id", DeleteStory(storySvc))

	comments := api.Group("/comments")
	comments.Post("/", CreateComment(storySvc))
	comments.Get("/story/:storyId", ListCommentsByStory(storySvc))
	comments.Delete("/:id", DeleteComment(storySvc))

	projects := api.Group("/projects")
	projects.Get("/", ListProjects(projectSvc))
	projects.Get("/:id", GetProject(projectSvc))
	projects.Post("/", CreateProject(projectSvc))
	projects.Put("/:id", UpdateProject(projectSvc))
	projects.Delete("/:id", DeleteProject(projectSvc))

	messages := api.Group("/messages")
	messages.Get("/", ListMessages(messageSvc))
	messages.Post("/", CreateMessage(messageSvc))

	statistics := api.Group("/statistics")
	statistics.Get("/today", GetTodayStatistic(statSvc))
	statistics.Get("/range", GetStatisticRange(statSvc))
}
