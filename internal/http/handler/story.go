package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolioapi/internal/service"
)

const maxCaptionLen = 500

// ListStories godoc
// @Summary List visible stories
// @Description Returns all stories that have not been archived yet, newest first, with comments populated.
// @Tags stories
// @Produce json
// @Success 200 {array} model.Story
// @Router /api/stories [get]
func ListStories(svc service.StoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stories, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stories)
	}
}

// ListArchivedStories godoc
// @Summary List archived stories
// @Tags stories
// @Produce json
// @Success 200 {array} model.Story
// @Router /api/stories/archive [get]
func ListArchivedStories(svc service.StoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stories, err := svc.ListArchived(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stories)
	}
}

// GetStory godoc
// @Summary Get a story by ID
// @Tags stories
// @Produce json
// @Param id path string true "Story ID"
// @Success 200 {object} model.Story
// @Failure 404 {object} errorPayload
// @Router /api/stories/{id} [get]
func GetStory(svc service.StoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		story, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(story)
	}
}

// CreateStory godoc
// @Summary Create a story
// @Description Uploads the photo and creates a story that stays visible for 24 hours.
// @Tags stories
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Story photo"
// @Param caption formData string false "Caption (max 500 chars)"
// @Param location formData string false "Location"
// @Success 201 {object} model.Story
// @Failure 400 {object} errorPayload
// @Router /api/stories [post]
func CreateStory(svc service.StoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("photo")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "PHOTO_REQUIRED", "photo is required")
		}

		caption := c.FormValue("caption")
		if len(caption) > maxCaptionLen {
			return writeError(c, fiber.StatusBadRequest, "INVALID_CAPTION", "caption must be at most 500 characters")
		}
		location := c.FormValue("location")

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		story, err := svc.Create(c.UserContext(), f, fh.Filename, ct, fh.Size, caption, location)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(story)
	}
}

// DeleteStory godoc
// @Summary Delete a story
// @Description Deletes the story, its comments, and its photo.
// @Tags stories
// @Param id path string true "Story ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/stories/{id} [delete]
func DeleteStory(svc service.StoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
