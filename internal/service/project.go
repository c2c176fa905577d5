package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
	"portfolioapi/internal/storage"
)

// ProjectInput carries the fields for creating a project.
type ProjectInput struct {
	Title         string
	GitHubRepos   []model.GitHubRepo
	DeploymentURL string
	TechStack     []string
	Description   string
}

// ProjectUpdate carries partial updates; nil fields are left unchanged.
type ProjectUpdate struct {
	Title         *string
	GitHubRepos   []model.GitHubRepo
	DeploymentURL *string
	TechStack     []string
	Description   *string
}

// ProjectService defines the use cases for the project showcase.
type ProjectService interface {
	// Create uploads the photo and inserts the project. Fails with
	// ErrPhotoRequired when no photo is supplied.
	Create(ctx context.Context, photo io.Reader, originalFilename, contentType string, size int64, in ProjectInput) (*model.Project, error)

	// List returns all projects, newest first.
	List(ctx context.Context) ([]model.Project, error)

	// Get returns a single project by its ID.
	Get(ctx context.Context, id string) (*model.Project, error)

	// Update applies a partial update. A non-nil photo replaces the stored
	// one; the old blob is deleted best-effort.
	Update(ctx context.Context, id string, photo io.Reader, originalFilename, contentType string, size int64, in ProjectUpdate) (*model.Project, error)

	// Delete removes the photo blob (best-effort) and the project row.
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	store  storage.Storage
	repo   repository.ProjectRepository
	logger *slog.Logger
}

// NewProjectService constructs a new ProjectService.
func NewProjectService(store storage.Storage, repo repository.ProjectRepository, logger *slog.Logger) ProjectService {
	return &projectService{store: store, repo: repo, logger: logger}
}

func (s *projectService) upload(ctx context.Context, photo io.Reader, originalFilename, contentType string, size int64) (storage.ObjectInfo, error) {
	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("projects", uuid.New().String()+ext))
	return s.store.Put(ctx, key, photo, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
}

func (s *projectService) Create(ctx context.Context, photo io.Reader, originalFilename, contentType string, size int64, in ProjectInput) (*model.Project, error) {
	if photo == nil {
		return nil, ErrPhotoRequired
	}

	objInfo, err := s.upload(ctx, photo, originalFilename, contentType, size)
	if err != nil {
		return nil, fmt.Errorf("upload photo: %w", err)
	}

	project := &model.Project{
		ID:            uuid.New().String(),
		PhotoURL:      s.store.PublicURL(objInfo.Key),
		StoragePath:   objInfo.Key,
		Title:         in.Title,
		GitHubRepos:   in.GitHubRepos,
		DeploymentURL: optional(in.DeploymentURL),
		TechStack:     in.TechStack,
		Description:   optional(in.Description),
		CreatedAt:     time.Now().UTC(),
	}

	stored, err := s.repo.Create(ctx, project)
	if err != nil {
		if delErr := s.store.Delete(ctx, objInfo.Key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectService) Get(ctx context.Context, id string) (*model.Project, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id string, photo io.Reader, originalFilename, contentType string, size int64, in ProjectUpdate) (*model.Project, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if photo != nil {
		objInfo, err := s.upload(ctx, photo, originalFilename, contentType, size)
		if err != nil {
			return nil, fmt.Errorf("upload photo: %w", err)
		}
		if err := s.store.Delete(ctx, project.StoragePath); err != nil {
			s.logger.Error("delete replaced project photo failed",
				"project_id", project.ID,
				"storage_path", project.StoragePath,
				"error", err,
			)
		}
		project.PhotoURL = s.store.PublicURL(objInfo.Key)
		project.StoragePath = objInfo.Key
	}

	if in.Title != nil {
		project.Title = *in.Title
	}
	if in.GitHubRepos != nil {
		project.GitHubRepos = in.GitHubRepos
	}
	if in.DeploymentURL != nil {
		project.DeploymentURL = optional(*in.DeploymentURL)
	}
	if in.TechStack != nil {
		project.TechStack = in.TechStack
	}
	if in.Description != nil {
		project.Description = optional(*in.Description)
	}

	return s.repo.Update(ctx, project)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.store.Delete(ctx, project.StoragePath); err != nil {
		s.logger.Error("delete project photo failed",
			"project_id", project.ID,
			"storage_path", project.StoragePath,
			"error", err,
		)
	}
	return s.repo.Delete(ctx, project.ID)
}
