package service

import (
	"context"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

// List returns all projects, newest first. Unlike contact submission, store
// errors here surface to the caller.
func (s *projectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.repo.List(ctx)
}

// Create inserts a new project record.
func (s *projectServiceImpl) Create(ctx context.Context, p *model.Project) error {
	return s.repo.Insert(ctx, p)
}
