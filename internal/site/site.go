// Package site assembles the single-page portfolio document.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"starfolio.dev/internal/config"
	"starfolio.dev/internal/gallery"
	"starfolio.dev/internal/models"
	"starfolio.dev/internal/router"
)

//go:embed static
var staticFiles embed.FS

// Static returns the embedded client assets
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Site renders the document for any page section. Page bodies and project
// cards are rendered once, in New.
type Site struct {
	cfg      config.SiteConfig
	layout   router.Layout
	tmpl     *template.Template
	bodies   map[string]template.HTML
	grid     template.HTML
	projects string
}

type sectionView struct {
	ID       string
	Title    string
	Body     template.HTML
	Active   bool
	Buttons  []models.NavigationControl
	Projects bool
	Grid     template.HTML
}

type pageData struct {
	Title    string
	Owner    string
	Initial  string
	Desktop  []models.NavigationControl
	Mobile   []models.NavigationControl
	Sections []sectionView
	MenuOpen bool
}

// New builds the layout, renders the page bodies and the project grid, and
// parses the document template
func New(cfg config.SiteConfig, projects []models.ProjectRecord, md *gallery.Markdown) (*Site, error) {
	layout := BuildLayout(cfg)
	if _, err := router.New(layout); err != nil {
		return nil, err
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	s := &Site{
		cfg:      cfg,
		layout:   layout,
		tmpl:     tmpl,
		bodies:   make(map[string]template.HTML, len(layout.Sections)),
		projects: models.NormalizeTarget(cfg.ProjectsPage),
	}

	for _, sec := range cfg.Pages {
		body := template.HTMLEscapeString(sec.Body)
		if md != nil {
			if body, err = md.Render(sec.Body); err != nil {
				return nil, fmt.Errorf("rendering page %s: %w", sec.ID, err)
			}
		}
		// sanitized by the markdown policy or escaped above
		s.bodies[models.NormalizeTarget(sec.ID)] = template.HTML(body)
	}

	grid, err := gallery.New(cfg.PlaceholderImage, md).RenderHTML(projects)
	if err != nil {
		return nil, fmt.Errorf("rendering project grid: %w", err)
	}
	s.grid = template.HTML(grid)

	return s, nil
}

// BuildLayout derives page sections and navigation controls from the site config
func BuildLayout(cfg config.SiteConfig) router.Layout {
	initial := models.NormalizeTarget(cfg.InitialPage)
	projects := models.NormalizeTarget(cfg.ProjectsPage)

	layout := router.Layout{MobileMenu: true}
	for _, p := range cfg.Pages {
		id := models.NormalizeTarget(p.ID)
		layout.Sections = append(layout.Sections, models.PageSection{
			ID:     id,
			Title:  p.Title,
			Body:   p.Body,
			Active: id == initial,
		})
	}
	for _, kind := range []models.ControlKind{models.ControlDesktop, models.ControlMobile} {
		for _, p := range layout.Sections {
			layout.Controls = append(layout.Controls, models.NavigationControl{
				Target: p.ID,
				Label:  p.Title,
				Kind:   kind,
			})
		}
	}
	if projects != "" && projects != initial {
		layout.Controls = append(layout.Controls, models.NavigationControl{
			Target: projects,
			Label:  "View my work",
			Kind:   models.ControlButton,
		})
	}
	return layout
}

// Layout returns the navigation layout of the document
func (s *Site) Layout() router.Layout {
	return s.layout
}

// Pages returns the ids of all page sections in document order
func (s *Site) Pages() []string {
	ids := make([]string, len(s.layout.Sections))
	for i, sec := range s.layout.Sections {
		ids[i] = sec.ID
	}
	return ids
}

// Render writes the document with pageID active. An empty pageID keeps the
// initial page; an unknown one returns router.ErrUnknownPage and writes nothing.
func (s *Site) Render(w io.Writer, pageID string) error {
	r, err := router.New(s.layout)
	if err != nil {
		return err
	}
	if pageID != "" {
		if err := r.Navigate(pageID); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, s.view(r)); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func (s *Site) view(r *router.Router) pageData {
	initial := models.NormalizeTarget(s.cfg.InitialPage)
	buttons := r.ControlsOf(models.ControlButton)

	data := pageData{
		Title:    s.cfg.Title,
		Owner:    s.cfg.Owner,
		Initial:  initial,
		Desktop:  r.ControlsOf(models.ControlDesktop),
		Mobile:   r.ControlsOf(models.ControlMobile),
		MenuOpen: r.MenuOpen(),
	}
	for _, sec := range r.Sections() {
		v := sectionView{
			ID:     sec.ID,
			Title:  sec.Title,
			Body:   s.bodies[sec.ID],
			Active: sec.Active,
		}
		if sec.ID == initial {
			v.Buttons = buttons
		}
		if sec.ID == s.projects {
			v.Projects = true
			v.Grid = s.grid
		}
		data.Sections = append(data.Sections, v)
	}
	return data
}
