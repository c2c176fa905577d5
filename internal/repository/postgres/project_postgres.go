package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// ProjectPostgres is a PostgreSQL implementation of repository.ProjectRepository.
type ProjectPostgres struct {
	db *sql.DB
}

// NewProjectPostgres creates a new ProjectPostgres repository.
func NewProjectPostgres(db *sql.DB) *ProjectPostgres {
	return &ProjectPostgres{db: db}
}

var _ repository.ProjectRepository = (*ProjectPostgres)(nil)

const projectColumns = `id, photo_url, storage_path, title, github_repos, deployment_url, tech_stack, description, created_at, updated_at`

func marshalRepos(repos []model.GitHubRepo) (any, error) {
	if repos == nil {
		return nil, nil
	}
	b, err := json.Marshal(repos)
	if err != nil {
		return nil, fmt.Errorf("marshal github repos: %w", err)
	}
	return b, nil
}

func scanProject(row interface {
	Scan(dest ...any) error
}) (*model.Project, error) {
	var (
		p     model.Project
		repos []byte
	)
	if err := row.Scan(
		&p.ID,
		&p.PhotoURL,
		&p.StoragePath,
		&p.Title,
		&repos,
		&p.DeploymentURL,
		pq.Array(&p.TechStack),
		&p.Description,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(repos) > 0 {
		if err := json.Unmarshal(repos, &p.GitHubRepos); err != nil {
			return nil, fmt.Errorf("unmarshal github repos: %w", err)
		}
	}
	return &p, nil
}

// Create inserts a new project row and returns the stored record.
func (r *ProjectPostgres) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	repos, err := marshalRepos(p.GitHubRepos)
	if err != nil {
		return nil, err
	}

	const q = `
		INSERT INTO projects (id, photo_url, storage_path, title, github_repos, deployment_url, tech_stack, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING ` + projectColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.PhotoURL,
		p.StoragePath,
		p.Title,
		repos,
		p.DeploymentURL,
		pq.Array(p.TechStack),
		p.Description,
		p.CreatedAt,
	)
	return scanProject(row)
}

// FindByID fetches a single project by its ID.
func (r *ProjectPostgres) FindByID(ctx context.Context, id string) (*model.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.db.QueryRowContext(ctx, q, id))
}

// List returns all projects, newest first.
func (r *ProjectPostgres) List(ctx context.Context) ([]model.Project, error) {
	const q = `
		SELECT ` + projectColumns + `
		FROM projects
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}

// Update overwrites the mutable fields of an existing project row.
func (r *ProjectPostgres) Update(ctx context.Context, p *model.Project) (*model.Project, error) {
	repos, err := marshalRepos(p.GitHubRepos)
	if err != nil {
		return nil, err
	}

	const q = `
		UPDATE projects
		SET photo_url = $2, storage_path = $3, title = $4, github_repos = $5,
		    deployment_url = $6, tech_stack = $7, description = $8, updated_at = now()
		WHERE id = $1
		RETURNING ` + projectColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.PhotoURL,
		p.StoragePath,
		p.Title,
		repos,
		p.DeploymentURL,
		pq.Array(p.TechStack),
		p.Description,
	)
	return scanProject(row)
}

// Delete removes a project by ID. It does not return an error if the row does not exist.
func (r *ProjectPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM projects WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
