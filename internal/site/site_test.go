package site

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"starfolio.dev/internal/config"
	"starfolio.dev/internal/gallery"
	"starfolio.dev/internal/models"
	"starfolio.dev/internal/router"
)

func newTestSite(t *testing.T) *Site {
	t.Helper()
	s, err := New(config.DefaultConfig().Site, config.DefaultProjects().Projects, gallery.NewMarkdown())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func renderPage(t *testing.T, s *Site, page string) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	if err := s.Render(&buf, page); err != nil {
		t.Fatalf("Render(%q): %v", page, err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("goquery: %v", err)
	}
	return doc
}

func TestRenderInitialPage(t *testing.T) {
	doc := renderPage(t, newTestSite(t), "")

	active := doc.Find("section.page.active")
	if active.Length() != 1 {
		t.Fatalf("expected exactly one active section, got %d", active.Length())
	}
	if id, _ := active.Attr("id"); id != "home" {
		t.Errorf("expected home active, got %q", id)
	}
	if doc.Find("a.nav-link.active").Length() != 0 {
		t.Error("no nav link should be selected before navigation")
	}
	if doc.Find("canvas#bg-canvas").Length() != 1 {
		t.Error("expected the background canvas")
	}
	if doc.Find("#mobile-menu-button").Length() != 1 || doc.Find("#mobile-menu").Length() != 1 {
		t.Error("expected mobile menu controls")
	}
}

func TestRenderProjectGrid(t *testing.T) {
	doc := renderPage(t, newTestSite(t), "")

	grid := doc.Find("section#projects #projects-grid")
	if grid.Length() != 1 {
		t.Fatal("expected the project grid inside the projects section")
	}
	cards := grid.Find(".project-card")
	projects := config.DefaultProjects().Projects
	if cards.Length() != len(projects) {
		t.Fatalf("expected %d cards, got %d", len(projects), cards.Length())
	}
	cards.Each(func(i int, card *goquery.Selection) {
		if got := card.Find(".project-title").Text(); got != projects[i].Title {
			t.Errorf("card %d: got %q, want %q", i, got, projects[i].Title)
		}
	})
	if visible := grid.Find(".live-link").Not(".hidden").Length(); visible != 1 {
		t.Errorf("expected exactly one visible live demo link, got %d", visible)
	}
}

func TestRenderDeepLink(t *testing.T) {
	for _, page := range []string{"projects", "#about"} {
		doc := renderPage(t, newTestSite(t), page)
		want := models.NormalizeTarget(page)

		active := doc.Find("section.page.active")
		if active.Length() != 1 {
			t.Fatalf("%s: expected exactly one active section, got %d", page, active.Length())
		}
		if id, _ := active.Attr("id"); id != want {
			t.Errorf("%s: active section %q", page, id)
		}

		doc.Find("a.nav-link, a.mobile-nav-link").Each(func(_ int, link *goquery.Selection) {
			href, _ := link.Attr("href")
			if selected := link.HasClass("active"); selected != (href == "#"+want) {
				t.Errorf("%s: link %s selected=%v", page, href, selected)
			}
		})
	}
}

func TestRenderUnknownPage(t *testing.T) {
	var buf bytes.Buffer
	err := newTestSite(t).Render(&buf, "blog")
	if !errors.Is(err, router.ErrUnknownPage) {
		t.Fatalf("expected ErrUnknownPage, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an unknown page")
	}
}

func TestRenderCallToAction(t *testing.T) {
	doc := renderPage(t, newTestSite(t), "")

	btn := doc.Find("section#home a.nav-link-btn")
	if btn.Length() != 1 {
		t.Fatalf("expected one call-to-action, got %d", btn.Length())
	}
	if href, _ := btn.Attr("href"); href != "#projects" {
		t.Errorf("call-to-action href: got %q", href)
	}
}

func TestPageBodiesUseMarkdown(t *testing.T) {
	doc := renderPage(t, newTestSite(t), "")

	mail := doc.Find("section#contact .page-body a")
	if href, _ := mail.Attr("href"); href != "mailto:hello@example.com" {
		t.Errorf("contact link: got %q", href)
	}
	if doc.Find("section#home .page-body strong").Length() != 1 {
		t.Error("expected bold text in the home body")
	}
}

func TestPageBodiesEscapedWithoutMarkdown(t *testing.T) {
	cfg := config.DefaultConfig().Site
	cfg.Pages[0].Body = "<b>hi</b>"
	s, err := New(cfg, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	if err := s.Render(&buf, ""); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(buf.String(), "<b>hi</b>") {
		t.Error("page body should be escaped when markdown is disabled")
	}
}

func TestNewRejectsBadLayout(t *testing.T) {
	cfg := config.DefaultConfig().Site
	cfg.Pages = append(cfg.Pages, models.PageSection{ID: "home", Title: "Again"})

	if _, err := New(cfg, nil, nil); !errors.Is(err, router.ErrInvalidLayout) {
		t.Errorf("expected ErrInvalidLayout, got %v", err)
	}
}

func TestBuildLayout(t *testing.T) {
	layout := BuildLayout(config.DefaultConfig().Site)

	if len(layout.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(layout.Sections))
	}
	// desktop + mobile per page, plus the call-to-action
	if len(layout.Controls) != 9 {
		t.Errorf("expected 9 controls, got %d", len(layout.Controls))
	}
	if !layout.Sections[0].Active {
		t.Error("initial page should be marked active")
	}
}

func TestPages(t *testing.T) {
	got := strings.Join(newTestSite(t).Pages(), ",")
	if got != "home,about,projects,contact" {
		t.Errorf("pages: got %s", got)
	}
}

func TestStaticAssets(t *testing.T) {
	for _, name := range []string{"app.js", "style.css"} {
		data, err := fs.ReadFile(Static(), name)
		if err != nil {
			t.Errorf("reading %s: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}
