// Package gallery turns project records into card markup.
package gallery

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"starfolio.dev/internal/models"
)

// DefaultPlaceholder is shown when a project image fails to load
const DefaultPlaceholder = "https://placehold.co/600x400/E2E8F0/4A5568?text=Project+Image"

const (
	cardClass        = "project-card card-3d bg-white rounded-xl border border-gray-200/80 flex flex-col overflow-hidden"
	imageFrameClass  = "w-full h-48 bg-gray-200"
	imageClass       = "project-image w-full h-full object-cover"
	bodyClass        = "p-6 flex flex-col flex-grow"
	titleClass       = "project-title text-xl font-bold text-gray-900 mb-3"
	descriptionClass = "project-description text-gray-600 flex-grow mb-6 text-sm"
	tagsClass        = "project-tags flex flex-wrap gap-2 mb-6"
	tagClass         = "tech-tag bg-blue-100 text-blue-800 text-xs font-semibold px-3 py-1 rounded-full"
	actionsClass     = "project-actions mt-auto flex gap-4"
	liveClass        = "live-link flex-1 text-center bg-blue-600 text-white font-bold py-2 px-4 rounded-lg hover:bg-blue-700 transition text-sm"
	repoClass        = "repo-link flex-1 text-center bg-gray-700 text-white font-bold py-2 px-4 rounded-lg hover:bg-gray-800 transition text-sm"
	hiddenClass      = "hidden"
)

// Gallery builds project cards
type Gallery struct {
	placeholder string
	md          *Markdown
}

// New creates a gallery. An empty placeholder selects DefaultPlaceholder; a
// nil md renders descriptions as plain text.
func New(placeholder string, md *Markdown) *Gallery {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &Gallery{placeholder: placeholder, md: md}
}

// Card maps one project record to a card node tree
func (g *Gallery) Card(p models.ProjectRecord) *html.Node {
	card := element(atom.Div, cardClass)
	if p.ID != "" {
		card.Attr = append(card.Attr, attr("data-project", p.ID))
	}

	frame := element(atom.Div, imageFrameClass)
	frame.AppendChild(element(atom.Img, imageClass,
		attr("src", p.Image),
		attr("alt", p.Title),
		attr("loading", "lazy"),
		attr("data-fallback", g.placeholder),
		attr("onerror", "this.onerror=null;this.src='"+strings.ReplaceAll(g.placeholder, "'", "%27")+"'"),
	))
	card.AppendChild(frame)

	body := element(atom.Div, bodyClass)
	card.AppendChild(body)

	title := element(atom.H3, titleClass)
	title.AppendChild(text(p.Title))
	body.AppendChild(title)

	body.AppendChild(g.description(p.Description))

	tags := element(atom.Div, tagsClass)
	for _, t := range p.Tech {
		tag := element(atom.Span, tagClass)
		tag.AppendChild(text(t))
		tags.AppendChild(tag)
	}
	body.AppendChild(tags)

	actions := element(atom.Div, actionsClass)
	actions.AppendChild(action("Live Demo", p.LiveLink, liveClass))
	actions.AppendChild(action("GitHub Repo", p.RepoLink, repoClass))
	body.AppendChild(actions)

	return card
}

// Render appends one card per record to container, in record order. A nil
// container leaves the gallery disabled.
func (g *Gallery) Render(container *html.Node, records []models.ProjectRecord) {
	if container == nil {
		return
	}
	for _, p := range records {
		container.AppendChild(g.Card(p))
	}
}

// RenderHTML returns the markup of every card, in record order
func (g *Gallery) RenderHTML(records []models.ProjectRecord) (string, error) {
	var sb strings.Builder
	for _, p := range records {
		if err := html.Render(&sb, g.Card(p)); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func (g *Gallery) description(src string) *html.Node {
	div := element(atom.Div, descriptionClass)
	if g.md != nil {
		if nodes, err := g.md.Nodes(src); err == nil {
			for _, n := range nodes {
				div.AppendChild(n)
			}
			return div
		}
	}
	p := element(atom.P, "")
	p.AppendChild(text(src))
	div.AppendChild(p)
	return div
}

// action builds a link button, hidden when url is the unavailable sentinel
func action(label, url, class string) *html.Node {
	available := models.LinkAvailable(url)
	if !available {
		url = models.LinkUnavailable
	}
	a := element(atom.A, class,
		attr("href", url),
		attr("target", "_blank"),
		attr("rel", "noopener noreferrer"),
	)
	if !available {
		setClass(a, class+" "+hiddenClass)
		a.Attr = append(a.Attr, attr("aria-hidden", "true"))
	}
	a.AppendChild(text(label))
	return a
}

func element(a atom.Atom, class string, attrs ...html.Attribute) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	if class != "" {
		n.Attr = append(n.Attr, attr("class", class))
	}
	n.Attr = append(n.Attr, attrs...)
	return n
}

func setClass(n *html.Node, class string) {
	for i := range n.Attr {
		if n.Attr[i].Key == "class" {
			n.Attr[i].Val = class
			return
		}
	}
	n.Attr = append(n.Attr, attr("class", class))
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
