package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/service"
	"github.com/devfolio/backend/internal/validate"
)

// maxBodyBytes caps POST bodies at 1 MiB.
const maxBodyBytes = 1 << 20

// ContactHandler handles contact form submission.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// submitResponse acknowledges a submission. ID is present only when the
// message was actually persisted.
type submitResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	ID        string    `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// validationErrorResponse is the 400 body listing every failing field.
type validationErrorResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Errors  []validate.FieldError `json:"errors"`
}

// Submit handles POST /api/contact. Once validation passes the submitter
// always gets a success response; persistence and email are best-effort
// behind it.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	clean, fieldErrs := validate.Contact(validate.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if len(fieldErrs) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validationErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  fieldErrs,
		})
		return
	}

	msg := &model.ContactMessage{
		Name:      clean.Name,
		Email:     clean.Email,
		Subject:   clean.Subject,
		Message:   clean.Message,
		IPAddress: clientIP(r, 1),
		UserAgent: r.UserAgent(),
	}

	persisted := h.contactService.Submit(r.Context(), msg)

	resp := submitResponse{
		Success:   true,
		Message:   "Thank you! Your message has been received. I'll get back to you soon.",
		Timestamp: msg.CreatedAt,
	}
	if persisted {
		resp.ID = msg.ID
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(resp)
}
