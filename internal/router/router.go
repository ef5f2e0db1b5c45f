// Package router keeps track of which page section is visible, which
// navigation controls are selected and whether the mobile menu is open.
package router

import (
	"errors"
	"fmt"

	"starfolio.dev/internal/models"
)

var (
	// ErrInvalidLayout is returned by New for layouts that cannot be navigated
	ErrInvalidLayout = errors.New("router: invalid layout")

	// ErrUnknownPage is returned when a target matches no page section
	ErrUnknownPage = errors.New("router: unknown page")

	// ErrUnavailable is returned when the layout has no mobile menu
	ErrUnavailable = errors.New("router: mobile menu unavailable")
)

// Layout is the set of UI handles the router needs, validated once by New
type Layout struct {
	Sections   []models.PageSection       `json:"sections"`
	Controls   []models.NavigationControl `json:"controls"`
	MobileMenu bool                       `json:"mobile_menu"`
}

// Router is the page navigation state machine. It is not safe for concurrent
// use; build one per document.
type Router struct {
	sections []models.PageSection
	controls []models.NavigationControl
	index    map[string]int
	hasMenu  bool
	menuOpen bool
	scrollY  int
}

// New validates the layout and returns a router in its initial state. The
// section marked active in the layout stays active until the first navigation.
func New(layout Layout) (*Router, error) {
	if len(layout.Sections) == 0 {
		return nil, fmt.Errorf("%w: no page sections", ErrInvalidLayout)
	}

	r := &Router{
		sections: make([]models.PageSection, len(layout.Sections)),
		controls: make([]models.NavigationControl, len(layout.Controls)),
		index:    make(map[string]int, len(layout.Sections)),
		hasMenu:  layout.MobileMenu,
	}

	active := 0
	for i, s := range layout.Sections {
		s.ID = models.NormalizeTarget(s.ID)
		if s.ID == "" {
			return nil, fmt.Errorf("%w: section %d has no id", ErrInvalidLayout, i)
		}
		if _, dup := r.index[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate section %q", ErrInvalidLayout, s.ID)
		}
		if s.Active {
			active++
		}
		r.index[s.ID] = i
		r.sections[i] = s
	}
	if active > 1 {
		return nil, fmt.Errorf("%w: %d sections marked active", ErrInvalidLayout, active)
	}

	for i, c := range layout.Controls {
		c.Target = models.NormalizeTarget(c.Target)
		if _, ok := r.index[c.Target]; !ok {
			return nil, fmt.Errorf("%w: control %d targets unknown section %q", ErrInvalidLayout, i, c.Target)
		}
		r.controls[i] = c
	}

	return r, nil
}

// Navigate shows the target section and hides every other one, selects the
// controls pointing at it, closes the mobile menu and scrolls to the top.
// An unknown target leaves the router untouched and returns ErrUnknownPage.
func (r *Router) Navigate(target string) error {
	id := models.NormalizeTarget(target)
	idx, ok := r.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPage, id)
	}

	for i := range r.sections {
		r.sections[i].Active = i == idx
	}
	for i := range r.controls {
		r.controls[i].Selected = r.controls[i].Target == id
	}
	r.menuOpen = false
	r.scrollY = 0
	return nil
}

// Click activates the i-th navigation control
func (r *Router) Click(i int) error {
	if i < 0 || i >= len(r.controls) {
		return fmt.Errorf("router: no control at index %d", i)
	}
	return r.Navigate(r.controls[i].Target)
}

// ToggleMenu flips the mobile menu open or closed
func (r *Router) ToggleMenu() error {
	if !r.hasMenu {
		return ErrUnavailable
	}
	r.menuOpen = !r.menuOpen
	return nil
}

// ScrollTo records the document scroll position
func (r *Router) ScrollTo(y int) {
	if y < 0 {
		y = 0
	}
	r.scrollY = y
}

// ScrollY returns the document scroll position
func (r *Router) ScrollY() int { return r.scrollY }

// MenuOpen reports whether the mobile menu is showing
func (r *Router) MenuOpen() bool { return r.menuOpen }

// Active returns the id of the visible section
func (r *Router) Active() (string, bool) {
	for _, s := range r.sections {
		if s.Active {
			return s.ID, true
		}
	}
	return "", false
}

// Sections returns a copy of the page sections
func (r *Router) Sections() []models.PageSection {
	out := make([]models.PageSection, len(r.sections))
	copy(out, r.sections)
	return out
}

// Controls returns a copy of the navigation controls
func (r *Router) Controls() []models.NavigationControl {
	out := make([]models.NavigationControl, len(r.controls))
	copy(out, r.controls)
	return out
}

// ControlsOf returns a copy of the controls of one kind
func (r *Router) ControlsOf(kind models.ControlKind) []models.NavigationControl {
	var out []models.NavigationControl
	for _, c := range r.controls {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
