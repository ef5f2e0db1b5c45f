package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"starfolio.dev/internal/router"
	"starfolio.dev/internal/site"
)

// PageHandler serves the portfolio document
type PageHandler struct {
	site   *site.Site
	logger *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(s *site.Site, logger *zap.Logger) *PageHandler {
	return &PageHandler{site: s, logger: logger}
}

// Index handles GET / - the document with the initial page active
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "")
}

// Page handles GET /{page} - the document with one page section active
func (h *PageHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.render(w, chi.URLParam(r, "page"))
}

// GetLayout handles GET /api/pages - page sections and navigation controls
func (h *PageHandler) GetLayout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.site.Layout())
}

func (h *PageHandler) render(w http.ResponseWriter, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.site.Render(w, page); err != nil {
		if errors.Is(err, router.ErrUnknownPage) {
			respondError(w, http.StatusNotFound, "Page not found")
			return
		}
		h.logger.Error("Failed to render page", zap.String("page", page), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to render page")
	}
}
