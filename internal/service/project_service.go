package service

import (
	"context"

	"github.com/devfolio/backend/internal/model"
)

// ProjectService defines the business logic for the project catalog.
type ProjectService interface {
	// List returns all projects, newest first.
	List(ctx context.Context) ([]*model.Project, error)

	// Create stores a new project. p.ID and p.CreatedAt are populated by
	// the implementation.
	Create(ctx context.Context, p *model.Project) error
}
