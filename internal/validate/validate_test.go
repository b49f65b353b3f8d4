package validate

import (
	"strings"
	"testing"
)

func fieldErrors(errs []FieldError, field string) []FieldError {
	var out []FieldError
	for _, e := range errs {
		if e.Field == field {
			out = append(out, e)
		}
	}
	return out
}

func validContact() ContactInput {
	return ContactInput{
		Name:    "Alice Smith",
		Email:   "alice@example.com",
		Subject: "Hello",
		Message: "This is a sufficiently long message.",
	}
}

func TestContact_Valid(t *testing.T) {
	clean, errs := Contact(validContact())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if clean.Name != "Alice Smith" {
		t.Errorf("unexpected name: %q", clean.Name)
	}
	if clean.Email != "alice@example.com" {
		t.Errorf("unexpected email: %q", clean.Email)
	}
}

func TestContact_ShortMessage(t *testing.T) {
	in := validContact()
	in.Message = "too short"
	_, errs := Contact(in)
	if len(fieldErrors(errs, "message")) == 0 {
		t.Errorf("expected a message error, got %v", errs)
	}
}

// A message that only reaches 10 characters through surrounding whitespace
// is still too short.
func TestContact_ShortMessageAfterTrim(t *testing.T) {
	in := validContact()
	in.Message = "   short    "
	_, errs := Contact(in)
	if len(fieldErrors(errs, "message")) == 0 {
		t.Errorf("expected a message error, got %v", errs)
	}
}

func TestContact_InvalidEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "a@b", "a b@c.com", "@example.com"} {
		in := validContact()
		in.Email = email
		_, errs := Contact(in)
		if len(fieldErrors(errs, "email")) == 0 {
			t.Errorf("email %q: expected an email error, got %v", email, errs)
		}
	}
}

func TestContact_EmailLowercased(t *testing.T) {
	in := validContact()
	in.Email = "Alice@Example.COM"
	clean, errs := Contact(in)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if clean.Email != "alice@example.com" {
		t.Errorf("expected lowercased email, got %q", clean.Email)
	}
}

// All violations are reported together, not just the first.
func TestContact_CollectsAllErrors(t *testing.T) {
	_, errs := Contact(ContactInput{
		Name:    "A",
		Email:   "nope",
		Message: "short",
	})
	for _, field := range []string{"name", "email", "message"} {
		if len(fieldErrors(errs, field)) == 0 {
			t.Errorf("expected an error for %q, got %v", field, errs)
		}
	}
}

func TestContact_NameCharset(t *testing.T) {
	in := validContact()
	in.Name = "Robert); DROP TABLE"
	_, errs := Contact(in)
	if len(fieldErrors(errs, "name")) == 0 {
		t.Errorf("expected a name error, got %v", errs)
	}

	in.Name = "Mary-Jane O'Brien"
	_, errs = Contact(in)
	if len(fieldErrors(errs, "name")) != 0 {
		t.Errorf("hyphens and apostrophes should be allowed, got %v", errs)
	}
}

func TestContact_EscapesHTML(t *testing.T) {
	in := validContact()
	in.Message = `<script>alert("xss")</script> plus padding`
	clean, errs := Contact(in)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if strings.Contains(clean.Message, "<") || strings.Contains(clean.Message, ">") {
		t.Errorf("expected HTML to be escaped, got %q", clean.Message)
	}
	if !strings.Contains(clean.Message, "&lt;script&gt;") {
		t.Errorf("expected escaped script tag, got %q", clean.Message)
	}
}

func TestContact_SubjectOptional(t *testing.T) {
	in := validContact()
	in.Subject = ""
	_, errs := Contact(in)
	if len(errs) != 0 {
		t.Errorf("empty subject should be allowed, got %v", errs)
	}

	in.Subject = strings.Repeat("x", 201)
	_, errs = Contact(in)
	if len(fieldErrors(errs, "subject")) == 0 {
		t.Errorf("expected a subject length error, got %v", errs)
	}
}

func TestProject_RequiredFields(t *testing.T) {
	_, errs := Project(ProjectInput{Title: "  ", Description: ""})
	if len(fieldErrors(errs, "title")) == 0 {
		t.Errorf("expected a title error, got %v", errs)
	}
	if len(fieldErrors(errs, "description")) == 0 {
		t.Errorf("expected a description error, got %v", errs)
	}
}

func TestProject_Valid(t *testing.T) {
	clean, errs := Project(ProjectInput{
		Title:       "My Project",
		Description: "Something I built",
		TechStack:   []string{"Go", " PostgreSQL "},
		GitHubURL:   "https://github.com/me/project",
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if len(clean.TechStack) != 2 || clean.TechStack[1] != "PostgreSQL" {
		t.Errorf("expected trimmed tech stack, got %v", clean.TechStack)
	}
}

func TestProject_InvalidURL(t *testing.T) {
	for _, u := range []string{"not a url", "ftp://example.com/x", "javascript:alert(1)"} {
		_, errs := Project(ProjectInput{
			Title:       "T",
			Description: "D",
			DemoURL:     u,
		})
		if len(fieldErrors(errs, "demoUrl")) == 0 {
			t.Errorf("url %q: expected a demoUrl error, got %v", u, errs)
		}
	}
}

func TestProject_EmptyTag(t *testing.T) {
	_, errs := Project(ProjectInput{
		Title:       "T",
		Description: "D",
		TechStack:   []string{"Go", "  "},
	})
	if len(fieldErrors(errs, "techStack")) == 0 {
		t.Errorf("expected a techStack error, got %v", errs)
	}
}
