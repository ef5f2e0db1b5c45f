package services

import (
	"errors"
	"testing"

	"starfolio.dev/internal/models"
)

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Flood Detection & Alert System (IoT)": "flood-detection-alert-system-iot",
		"  ISTE Official Website ":             "iste-official-website",
		"HTML/CSS":                             "html-css",
		"!!!":                                  "project",
	}
	for in, want := range cases {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestProjectServiceNormalizesRecords(t *testing.T) {
	svc := NewProjectService(&models.ProjectList{Projects: []models.ProjectRecord{
		{Title: "Same Name"},
		{Title: "Same Name", LiveLink: "https://example.com"},
		{ID: "custom", Title: "Other", RepoLink: "#"},
	}})

	all := svc.GetAll()
	if len(all) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(all))
	}
	if all[0].ID != "same-name" || all[1].ID != "same-name-2" || all[2].ID != "custom" {
		t.Errorf("unexpected ids: %q %q %q", all[0].ID, all[1].ID, all[2].ID)
	}
	if all[0].LiveLink != "#" || all[0].RepoLink != "#" {
		t.Errorf("empty links should become #, got %q %q", all[0].LiveLink, all[0].RepoLink)
	}
	if all[1].LiveLink != "https://example.com" {
		t.Errorf("live link should be kept, got %q", all[1].LiveLink)
	}
}

func TestProjectServiceIDsStayUnique(t *testing.T) {
	svc := NewProjectService(&models.ProjectList{Projects: []models.ProjectRecord{
		{Title: "Demo"},
		{Title: "Demo"},
		{ID: "demo-2", Title: "Other"},
		{Title: "Demo"},
	}})

	seen := make(map[string]bool)
	for _, p := range svc.GetAll() {
		if seen[p.ID] {
			t.Fatalf("duplicate id %q in %+v", p.ID, svc.GetAll())
		}
		seen[p.ID] = true
	}

	p, err := svc.GetByID("demo-2")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if p.Title != "Demo" {
		t.Errorf("demo-2 should be the second Demo, got %q", p.Title)
	}
	other, err := svc.GetByID("demo-2-2")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if other.Title != "Other" {
		t.Errorf("demo-2-2: got %q", other.Title)
	}
}

func TestProjectServiceWithTech(t *testing.T) {
	svc := NewProjectService(&models.ProjectList{Projects: []models.ProjectRecord{
		{Title: "A", Tech: []string{"Go", "Docker"}},
		{Title: "B", Tech: []string{"Python"}},
		{Title: "C", Tech: []string{"go"}},
	}})

	got := svc.WithTech("GO")
	if len(got) != 2 || got[0].Title != "A" || got[1].Title != "C" {
		t.Errorf("WithTech(GO): got %+v", got)
	}
	if got := svc.WithTech("Rust"); got == nil || len(got) != 0 {
		t.Errorf("WithTech(Rust): expected empty list, got %v", got)
	}
}

func TestProjectServiceGetByID(t *testing.T) {
	svc := NewProjectService(&models.ProjectList{Projects: []models.ProjectRecord{{Title: "Alpha"}}})

	p, err := svc.GetByID("alpha")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if p.Title != "Alpha" {
		t.Errorf("title: got %q", p.Title)
	}

	if _, err := svc.GetByID("beta"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectServiceIsImmutable(t *testing.T) {
	list := &models.ProjectList{Projects: []models.ProjectRecord{{Title: "Alpha", Tech: []string{"Go"}}}}
	svc := NewProjectService(list)

	list.Projects[0].Tech[0] = "Rust"
	all := svc.GetAll()
	all[0].Title = "changed"

	again := svc.GetAll()
	if again[0].Title != "Alpha" {
		t.Error("GetAll should return a copy")
	}
	if again[0].Tech[0] != "Go" {
		t.Error("service should not share tech slices with the input")
	}
}

func TestProjectServiceNilList(t *testing.T) {
	if n := NewProjectService(nil).Count(); n != 0 {
		t.Errorf("expected empty catalog, got %d", n)
	}
}
