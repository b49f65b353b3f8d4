package repository

import (
	"context"

	"github.com/devfolio/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProjectRepository defines the persistence interface for portfolio projects.
type ProjectRepository interface {
	// List returns all projects, newest first.
	List(ctx context.Context) ([]*model.Project, error)

	// Insert stores a new project and populates p.ID and p.CreatedAt.
	Insert(ctx context.Context, p *model.Project) error
}

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
// A nil pool makes every method return ErrPersistenceDisabled.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

// List returns all projects ordered by creation time, newest first.
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	if r.pool == nil {
		return nil, ErrPersistenceDisabled
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, tech_stack,
		        COALESCE(github_url, ''), COALESCE(demo_url, ''), COALESCE(image_url, ''),
		        featured, created_at
		 FROM projects ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.TechStack,
			&p.GitHubURL, &p.DemoURL, &p.ImageURL, &p.Featured, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

// Insert stores a new projects row and populates p.ID and p.CreatedAt from
// the RETURNING clause. tech_stack is a Postgres text[] column.
func (r *PgProjectRepository) Insert(ctx context.Context, p *model.Project) error {
	if r.pool == nil {
		return ErrPersistenceDisabled
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, tech_stack, github_url, demo_url, image_url, featured)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7)
		 RETURNING id, created_at`,
		p.Title, p.Description, p.TechStack, p.GitHubURL, p.DemoURL, p.ImageURL, p.Featured,
	).Scan(&p.ID, &p.CreatedAt)
}
