package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"starfolio.dev/internal/config"
	"starfolio.dev/internal/gallery"
	"starfolio.dev/internal/middleware"
	"starfolio.dev/internal/models"
	"starfolio.dev/internal/services"
	"starfolio.dev/internal/site"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, projects *models.ProjectList, logger *zap.Logger) (http.Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if cfg.Server.AllowAllOrigins {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Initialize services
	projectService := services.NewProjectService(projects)
	starfieldService := services.NewStarfieldService(cfg.Starfield, cfg.Server.FrameRate, logger)

	doc, err := site.New(cfg.Site, projectService.GetAll(), gallery.NewMarkdown())
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	pageHandler := NewPageHandler(doc, logger)
	starfieldHandler := NewStarfieldHandler(starfieldService, cfg.Server.AllowAllOrigins, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/pages", pageHandler.GetLayout)
		r.Get("/starfield", starfieldHandler.GetScene)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Get("/ws/starfield", starfieldHandler.Stream)

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(site.Static()))))
	if cfg.Server.StaticDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(cfg.Server.StaticDir))))
	}

	// Document, with deep links to each page section
	r.Get("/", pageHandler.Index)
	r.Get("/{page}", pageHandler.Page)

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// clamp limits a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
