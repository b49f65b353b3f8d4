package repository

import (
	"context"

	"github.com/devfolio/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository defines the persistence interface for contact messages.
// Messages are insert-only: nothing in the system updates or deletes them.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
// A nil pool is allowed and makes Save return ErrPersistenceDisabled, so the
// server can run without a database.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_messages row and populates msg.ID and
// msg.CreatedAt from the database RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	if r.pool == nil {
		return ErrPersistenceDisabled
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, subject, message, ip_address, user_agent)
		 VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), NULLIF($6, ''))
		 RETURNING id, created_at`,
		msg.Name, msg.Email, msg.Subject, msg.Message, msg.IPAddress, msg.UserAgent,
	).Scan(&msg.ID, &msg.CreatedAt)
}
