package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"starfolio.dev/internal/models"
)

// ErrProjectNotFound is returned by GetByID for unknown ids
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	projects []models.ProjectRecord
}

// NewProjectService creates a new ProjectService. Records without an id get
// one derived from their title; empty links become the unavailable sentinel.
func NewProjectService(list *models.ProjectList) *ProjectService {
	var records []models.ProjectRecord
	if list != nil {
		records = make([]models.ProjectRecord, len(list.Projects))
		copy(records, list.Projects)
	}

	seen := make(map[string]bool, len(records))
	for i := range records {
		p := &records[i]
		if p.ID == "" {
			p.ID = Slug(p.Title)
		}
		base := p.ID
		for n := 2; seen[p.ID]; n++ {
			p.ID = fmt.Sprintf("%s-%d", base, n)
		}
		seen[p.ID] = true
		if !p.HasLiveLink() {
			p.LiveLink = models.LinkUnavailable
		}
		if !p.HasRepoLink() {
			p.RepoLink = models.LinkUnavailable
		}
		p.Tech = append([]string(nil), p.Tech...)
	}

	return &ProjectService{projects: records}
}

// GetAll returns all projects in catalog order
func (s *ProjectService) GetAll() []models.ProjectRecord {
	out := make([]models.ProjectRecord, len(s.projects))
	copy(out, s.projects)
	return out
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.ProjectRecord, error) {
	for i := range s.projects {
		if s.projects[i].ID == id {
			p := s.projects[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

// WithTech returns the projects listing tech, ignoring case, in catalog order
func (s *ProjectService) WithTech(tech string) []models.ProjectRecord {
	out := []models.ProjectRecord{}
	for _, p := range s.projects {
		for _, t := range p.Tech {
			if strings.EqualFold(t, tech) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Count returns the number of projects
func (s *ProjectService) Count() int {
	return len(s.projects)
}

// Slug turns a title into a lowercase, dash-separated identifier
func Slug(title string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(r)
			dash = false
		default:
			dash = true
		}
	}
	if sb.Len() == 0 {
		return "project"
	}
	return sb.String()
}
