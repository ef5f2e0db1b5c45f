package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"starfolio.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects, optionally filtered by ?tech=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	if tech := strings.TrimSpace(r.URL.Query().Get("tech")); tech != "" {
		respondJSON(w, http.StatusOK, h.projectService.WithTech(tech))
		return
	}
	respondJSON(w, http.StatusOK, h.projectService.GetAll())
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load project")
		return
	}

	respondJSON(w, http.StatusOK, project)
}
