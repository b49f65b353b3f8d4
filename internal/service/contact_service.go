package service

import (
	"context"

	"github.com/devfolio/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit runs the post-validation flow for a contact message:
	// best-effort persistence followed by a best-effort email notification.
	// Neither failure reaches the submitter; both are logged. The return
	// value reports whether the message was actually persisted (in which
	// case msg.ID and msg.CreatedAt are populated from the store).
	Submit(ctx context.Context, msg *model.ContactMessage) (persisted bool)
}
