package model

import "time"

// GitHubRepo links a project to one of its repositories.
type GitHubRepo struct {
	RepoName string `json:"repo_name"`
	RepoURL  string `json:"repo_url,omitempty"`
}

// Project is a showcase entry. Plain CRUD record; no lifecycle beyond the
// photo blob that has to be released when the record is deleted or replaced.
type Project struct {
	ID            string       `json:"id"`
	PhotoURL      string       `json:"photo_url"`
	StoragePath   string       `json:"-"`
	Title         string       `json:"title"`
	GitHubRepos   []GitHubRepo `json:"github_repos"`
	DeploymentURL *string      `json:"deployment_url"`
	TechStack     []string     `json:"tech_stack"`
	Description   *string      `json:"description"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
