package handler

import (
	"encoding/json"
	"net/http"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/service"
	"github.com/devfolio/backend/internal/validate"
)

// ProjectHandler handles the project catalog endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a ProjectHandler with the given service.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List handles GET /api/projects. The response is always a JSON array,
// newest first.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}

	// Return [] not null for empty lists
	if projects == nil {
		projects = []*model.Project{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(projects)
}

// createRequest is the expected JSON body for POST /api/projects.
type createRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	GitHubURL   string   `json:"githubUrl"`
	DemoURL     string   `json:"demoUrl"`
	ImageURL    string   `json:"imageUrl"`
	Featured    bool     `json:"featured"`
}

// Create handles POST /api/projects (administrative seed/insert path).
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	clean, fieldErrs := validate.Project(validate.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		GitHubURL:   req.GitHubURL,
		DemoURL:     req.DemoURL,
		ImageURL:    req.ImageURL,
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

	project := &model.Project{
		Title:       clean.Title,
		Description: clean.Description,
		TechStack:   clean.TechStack,
		GitHubURL:   clean.GitHubURL,
		DemoURL:     clean.DemoURL,
		ImageURL:    clean.ImageURL,
		Featured:    req.Featured,
	}
	if err := h.projectService.Create(r.Context(), project); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(project)
}
