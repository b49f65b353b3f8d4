package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/devfolio/backend/internal/mailer"
	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo   repository.ContactRepository
	mailer mailer.Mailer
}

// NewContactService creates a ContactService backed by the given repository
// and mailer.
func NewContactService(repo repository.ContactRepository, m mailer.Mailer) ContactService {
	return &contactServiceImpl{repo: repo, mailer: m}
}

// Submit persists the message and sends a notification email, both
// best-effort. A store outage therefore drops the message while the caller
// still acknowledges it; the WARN log below is the only durable record of
// that. Duplicate submissions are not deduplicated: two identical payloads
// create two rows.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) bool {
	msg.CreatedAt = time.Now().UTC()

	persisted := true
	if err := s.repo.Save(ctx, msg); err != nil {
		persisted = false
		msg.ID = ""
		slog.Warn("contact persist failed, message not stored",
			"error", err, "email", msg.Email)
	}

	if err := s.mailer.SendContactNotification(ctx, msg); err != nil {
		slog.Warn("contact notification email failed",
			"error", err, "email", msg.Email)
	}

	return persisted
}
