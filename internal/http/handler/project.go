package handler

import (
	"encoding/json"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
)

const (
	minTitleLen = 3
	maxTitleLen = 100
)

func parseGitHubRepos(raw string) ([]model.GitHubRepo, error) {
	var repos []model.GitHubRepo
	if err := json.Unmarshal([]byte(raw), &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// ListProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} model.Project
// @Router /api/projects [get]
func ListProjects(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projects, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(projects)
	}
}

// GetProject godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} model.Project
// @Failure 404 {object} errorPayload
// @Router /api/projects/{id} [get]
func GetProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		project, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(project)
	}
}

// CreateProject godoc
// @Summary Create a project
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Project photo"
// @Param title formData string true "Title (3-100 chars)"
// @Param tech_stack formData []string true "Tech stack (repeat the field)"
// @Param github_repos formData string false "JSON array of {repo_name, repo_url}"
// @Param deployment_url formData string false "Deployment URL"
// @Param description formData string false "Description"
// @Success 201 {object} model.Project
// @Failure 400 {object} errorPayload
// @Router /api/projects [post]
func CreateProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("photo")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "PHOTO_REQUIRED", "photo is required")
		}

		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid multipart form")
		}

		title := c.FormValue("title")
		if len(title) < minTitleLen || len(title) > maxTitleLen {
			return writeError(c, fiber.StatusBadRequest, "INVALID_TITLE", "title must be 3 to 100 characters")
		}

		techStack := form.Value["tech_stack"]
		if len(techStack) == 0 {
			return writeError(c, fiber.StatusBadRequest, "TECH_STACK_REQUIRED", "at least one tech stack entry is required")
		}

		in := service.ProjectInput{
			Title:         title,
			DeploymentURL: c.FormValue("deployment_url"),
			TechStack:     techStack,
			Description:   c.FormValue("description"),
		}
		if raw := c.FormValue("github_repos"); raw != "" {
			repos, err := parseGitHubRepos(raw)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_GITHUB_REPOS", "github_repos must be a JSON array")
			}
			in.GitHubRepos = repos
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		project, err := svc.Create(c.UserContext(), f, fh.Filename, formContentType(fh), fh.Size, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(project)
	}
}

// UpdateProject godoc
// @Summary Update a project
// @Description Partial update; only fields present in the form are changed. A new photo replaces the stored one.
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} model.Project
// @Failure 404 {object} errorPayload
// @Router /api/projects/{id} [put]
func UpdateProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid multipart form")
		}

		var in service.ProjectUpdate
		if v, ok := formFirst(form, "title"); ok {
			if len(v) < minTitleLen || len(v) > maxTitleLen {
				return writeError(c, fiber.StatusBadRequest, "INVALID_TITLE", "title must be 3 to 100 characters")
			}
			in.Title = &v
		}
		if v, ok := formFirst(form, "deployment_url"); ok {
			in.DeploymentURL = &v
		}
		if v, ok := formFirst(form, "description"); ok {
			in.Description = &v
		}
		if vs, ok := form.Value["tech_stack"]; ok && len(vs) > 0 {
			in.TechStack = vs
		}
		if v, ok := formFirst(form, "github_repos"); ok {
			repos, err := parseGitHubRepos(v)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_GITHUB_REPOS", "github_repos must be a JSON array")
			}
			in.GitHubRepos = repos
		}

		var (
			photo       io.Reader
			filename    string
			contentType string
			size        int64
		)
		if fh, err := c.FormFile("photo"); err == nil {
			f, err := fh.Open()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer f.Close()
			photo = f
			filename = fh.Filename
			contentType = formContentType(fh)
			size = fh.Size
		}

		project, err := svc.Update(c.UserContext(), id, photo, filename, contentType, size, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(project)
	}
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags projects
// @Param id path string true "Project ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/projects/{id} [delete]
func DeleteProject(svc service.ProjectService) fiber.Handler {
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

func formFirst(form *multipart.Form, key string) (string, bool) {
	if vs, ok := form.Value[key]; ok && len(vs) > 0 {
		return vs[0], true
	}
	return "", false
}

func formContentType(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
