package repository

import (
	"context"

	"portfolioapi/internal/model"
)

// ProjectRepository defines data access for showcase projects.
type ProjectRepository interface {
	// Create inserts a new project row and returns the stored record.
	Create(ctx context.Context, p *model.Project) (*model.Project, error)

	// FindByID returns a project by its ID. Returns sql.ErrNoRows if absent.
	FindByID(ctx context.Context, id string) (*model.Project, error)

	// List returns all projects, newest first.
	List(ctx context.Context) ([]model.Project, error)

	// Update overwrites the mutable fields of an existing project row.
	Update(ctx context.Context, p *model.Project) (*model.Project, error)

	// Delete removes a project row by ID. Missing rows are not an error.
	Delete(ctx context.Context, id string) error
}
