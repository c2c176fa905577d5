package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolioapi/internal/service"
)

const maxCommentLen = 500

type createCommentRequest struct {
	StoryID string `json:"story_id"`
	Comment string `json:"comment"`
}

// CreateComment godoc
// @Summary Comment on a story
// @Tags comments
// @Accept json
// @Produce json
// @Param request body createCommentRequest true "Comment"
// @Success 201 {object} model.Comment
// @Failure 404 {object} errorPayload
// @Router /api/comments [post]
func CreateComment(svc service.StoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createCommentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if _, err := uuid.Parse(req.StoryID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid story id format")
		}
		text := strings.TrimSpace(req.Comment)
		if text == "" || len(text) > maxCommentLen {
			return writeError(c, fiber.StatusBadRequest, "INVALID_COMMENT", "comment must be 1 to 500 characters")
		}

		comment, err := svc.AttachComment(c.UserContext(), req.StoryID, text)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(comment)
	}
}

// ListCommentsByStory godoc
// @Summary List comments for a story
// @Tags comments
// @Produce json
// @Param storyId path string true "Story ID"
// @Success 200 {array} model.Comment
// @Router /api/comments/story/{storyId} [get]
func ListCommentsByStory(svc service.StoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		storyID := c.Params("storyId")
		if _, err := uuid.Parse(storyID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid story id format")
		}
		comments, err := svc.ListComments(c.UserContext(), storyID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(comments)
	}
}

// DeleteComment godoc
// @Summary Delete a comment
// @Tags comments
// @Param id path string true "Comment ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/comments/{id} [delete]
func DeleteComment(svc service.StoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.RemoveComment(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
