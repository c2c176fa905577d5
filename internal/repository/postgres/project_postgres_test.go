package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"portfolioapi/internal/model"
)

var projectTestColumns = []string{
	"id", "photo_url", "storage_path", "title", "github_repos",
	"deployment_url", "tech_stack", "description", "created_at", "updated_at",
}

func TestProjectPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewProjectPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	project := &model.Project{
		ID:          "test-uuid",
		PhotoURL:    "https://cdn.example.com/projects/x.png",
		StoragePath: "projects/x.png",
		Title:       "Portfolio Site",
		GitHubRepos: []model.GitHubRepo{{RepoName: "frontend", RepoURL: "https://github.com/u/frontend"}},
		TechStack:   []string{"go", "postgres"},
		CreatedAt:   now,
	}

	reposJSON := `[{"repo_name":"frontend","repo_url":"https://github.com/u/frontend"}]`
	rows := sqlmock.NewRows(projectTestColumns).
		AddRow(project.ID, project.PhotoURL, project.StoragePath, project.Title, []byte(reposJSON),
			nil, "{go,postgres}", nil, now, now)

	mock.ExpectQuery("INSERT INTO projects").
		WillReturnRows(rows)

	result, err := repo.Create(ctx, project)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, project.ID, result.ID)
	assert.Equal(t, []string{"go", "postgres"}, result.TechStack)
	assert.Len(t, result.GitHubRepos, 1)
	assert.Equal(t, "frontend", result.GitHubRepos[0].RepoName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewProjectPostgres(db)
	ctx := context.Background()

	t.Run("found - null github_repos stays nil", func(t *testing.T) {
		rows := sqlmock.NewRows(projectTestColumns).
			AddRow("test-id", "https://cdn/x.png", "projects/x.png", "Title", nil,
				nil, "{go}", nil, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM projects WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		project, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.Nil(t, project.GitHubRepos)
		assert.Nil(t, project.DeploymentURL)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM projects WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		project, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, project)
	})
}

func TestProjectPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewProjectPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(projectTestColumns).
		AddRow("p2", "https://cdn/b.png", "projects/b.png", "Newer", nil, nil, "{}", nil, time.Now(), time.Now()).
		AddRow("p1", "https://cdn/a.png", "projects/a.png", "Older", nil, nil, "{}", nil, time.Now(), time.Now())

	mock.ExpectQuery("FROM projects").
		WillReturnRows(rows)

	projects, err := repo.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, "Newer", projects[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewProjectPostgres(db)
	ctx := context.Background()

	url := "https://live.example.com"
	project := &model.Project{
		ID:            "test-uuid",
		PhotoURL:      "https://cdn/x.png",
		StoragePath:   "projects/x.png",
		Title:         "Updated Title",
		DeploymentURL: &url,
		TechStack:     []string{"go"},
	}

	rows := sqlmock.NewRows(projectTestColumns).
		AddRow(project.ID, project.PhotoURL, project.StoragePath, project.Title, nil,
			url, "{go}", nil, time.Now(), time.Now())

	mock.ExpectQuery("UPDATE projects").
		WillReturnRows(rows)

	result, err := repo.Update(ctx, project)

	assert.NoError(t, err)
	assert.Equal(t, "Updated Title", result.Title)
	assert.NotNil(t, result.DeploymentURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewProjectPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM projects WHERE id = ?").
		WithArgs("test-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "test-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
