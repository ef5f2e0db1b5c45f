package models

import "strings"

// ControlKind identifies where a navigation control lives in the layout
type ControlKind string

const (
	ControlDesktop ControlKind = "desktop"
	ControlMobile  ControlKind = "mobile"
	ControlButton  ControlKind = "button"
)

// PageSection is a top-level content region that can be shown or hidden
type PageSection struct {
	ID     string `json:"id" yaml:"id" koanf:"id"`
	Title  string `json:"title" yaml:"title" koanf:"title"`
	Body   string `json:"body,omitempty" yaml:"body" koanf:"body"`
	Active bool   `json:"active" yaml:"active" koanf:"active"`
}

// NavigationControl is a clickable element requesting a page transition
type NavigationControl struct {
	Target   string      `json:"target"`
	Label    string      `json:"label"`
	Kind     ControlKind `json:"kind"`
	Selected bool        `json:"selected"`
}

// Href returns the fragment link for the control's target
func (c NavigationControl) Href() string {
	return "#" + NormalizeTarget(c.Target)
}

// NormalizeTarget strips the fragment marker from a section identifier
func NormalizeTarget(target string) string {
	return strings.TrimPrefix(strings.TrimSpace(target), "#")
}
