package gallery

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Markdown renders short Markdown snippets to sanitized HTML
type Markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewMarkdown creates a renderer with GFM-style links and strikethrough
func NewMarkdown() *Markdown {
	policy := bluemonday.UGCPolicy()
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Linkify,
				extension.Strikethrough,
			),
		),
		policy: policy,
	}
}

// Render converts src to sanitized HTML
func (m *Markdown) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return m.policy.Sanitize(buf.String()), nil
}

// Nodes converts src to a list of detached nodes suitable for a <div>
func (m *Markdown) Nodes(src string) ([]*html.Node, error) {
	out, err := m.Render(src)
	if err != nil {
		return nil, err
	}
	nodes, err := html.ParseFragment(strings.NewReader(out), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return nil, fmt.Errorf("parsing rendered markdown: %w", err)
	}
	return nodes, nil
}
