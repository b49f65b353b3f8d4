// Package validate holds the input validation and sanitization rules for the
// public API. All functions are pure: they return a cleaned copy of the input
// plus the full list of violations, never just the first one, so the client
// can render every field error at once.
package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldError names a failing field with a human-readable reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	nameMinLen    = 2
	nameMaxLen    = 100
	emailMaxLen   = 254
	subjectMaxLen = 200
	messageMinLen = 10
	messageMaxLen = 5000
	tagMaxLen     = 50
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// htmlEscaper neutralizes characters browsers treat as markup before anything
// user-supplied is stored or forwarded by email.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// ContactInput is the raw contact form payload.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Contact validates and sanitizes a contact form payload. The returned input
// is trimmed, the email lowercased, and name/subject/message HTML-escaped.
// The character-set check on name runs before escaping so apostrophes in
// names like O'Brien are accepted.
func Contact(in ContactInput) (ContactInput, []FieldError) {
	var errs []FieldError

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	case utf8.RuneCountInString(name) < nameMinLen || utf8.RuneCountInString(name) > nameMaxLen:
		errs = append(errs, FieldError{
			Field:   "name",
			Message: fmt.Sprintf("Name must be between %d and %d characters", nameMinLen, nameMaxLen),
		})
	case !nameRe.MatchString(name):
		errs = append(errs, FieldError{
			Field:   "name",
			Message: "Name can only contain letters, spaces, hyphens, and apostrophes",
		})
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case email == "":
		errs = append(errs, FieldError{Field: "email", Message: "Email is required"})
	case utf8.RuneCountInString(email) > emailMaxLen:
		errs = append(errs, FieldError{
			Field:   "email",
			Message: fmt.Sprintf("Email must not exceed %d characters", emailMaxLen),
		})
	case !emailRe.MatchString(email):
		errs = append(errs, FieldError{Field: "email", Message: "Please provide a valid email address"})
	}

	subject := strings.TrimSpace(in.Subject)
	if utf8.RuneCountInString(subject) > subjectMaxLen {
		errs = append(errs, FieldError{
			Field:   "subject",
			Message: fmt.Sprintf("Subject must not exceed %d characters", subjectMaxLen),
		})
	}

	message := strings.TrimSpace(in.Message)
	switch {
	case message == "":
		errs = append(errs, FieldError{Field: "message", Message: "Message is required"})
	case utf8.RuneCountInString(message) < messageMinLen || utf8.RuneCountInString(message) > messageMaxLen:
		errs = append(errs, FieldError{
			Field:   "message",
			Message: fmt.Sprintf("Message must be between %d and %d characters", messageMinLen, messageMaxLen),
		})
	}

	return ContactInput{
		Name:    htmlEscaper.Replace(name),
		Email:   email,
		Subject: htmlEscaper.Replace(subject),
		Message: htmlEscaper.Replace(message),
	}, errs
}

// ProjectInput is the raw project creation payload.
type ProjectInput struct {
	Title       string
	Description string
	TechStack   []string
	GitHubURL   string
	DemoURL     string
	ImageURL    string
}

// Project validates a project creation payload. Title and description are
// required; tech stack entries must be non-empty and short; URLs, when
// present, must be absolute http(s) URLs.
func Project(in ProjectInput) (ProjectInput, []FieldError) {
	var errs []FieldError

	title := strings.TrimSpace(in.Title)
	if title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Project title is required"})
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "Project description is required"})
	}

	tags := make([]string, 0, len(in.TechStack))
	for _, tag := range in.TechStack {
		tag = strings.TrimSpace(tag)
		if tag == "" || utf8.RuneCountInString(tag) >= tagMaxLen {
			errs = append(errs, FieldError{
				Field:   "techStack",
				Message: fmt.Sprintf("Each technology must be a non-empty string less than %d characters", tagMaxLen),
			})
			continue
		}
		tags = append(tags, htmlEscaper.Replace(tag))
	}

	for _, u := range []struct{ field, value string }{
		{"githubUrl", in.GitHubURL},
		{"demoUrl", in.DemoURL},
		{"imageUrl", in.ImageURL},
	} {
		if strings.TrimSpace(u.value) == "" {
			continue
		}
		if !validHTTPURL(strings.TrimSpace(u.value)) {
			errs = append(errs, FieldError{Field: u.field, Message: "Must be a valid URL"})
		}
	}

	return ProjectInput{
		Title:       htmlEscaper.Replace(title),
		Description: htmlEscaper.Replace(description),
		TechStack:   tags,
		GitHubURL:   strings.TrimSpace(in.GitHubURL),
		DemoURL:     strings.TrimSpace(in.DemoURL),
		ImageURL:    strings.TrimSpace(in.ImageURL),
	}, errs
}

func validHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
