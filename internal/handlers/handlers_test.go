package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/websocket"

	"starfolio.dev/internal/config"
	"starfolio.dev/internal/models"
	"starfolio.dev/internal/router"
	"starfolio.dev/internal/starfield"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Server.AllowAllOrigins = true
	cfg.Server.FrameRate = 200
	cfg.Server.StaticDir = ""
	cfg.Starfield.Count = 50
	cfg.Starfield.Seed = 7
	return cfg
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	h, err := SetupRoutes(testConfig(), config.DefaultProjects(), nil)
	if err != nil {
		t.Fatalf("SetupRoutes: %v", err)
	}
	return h
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestHandler(t), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body: %s", rec.Body.String())
	}
}

func TestListProjects(t *testing.T) {
	rec := get(t, newTestHandler(t), "/api/projects")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var projects []models.ProjectRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &projects); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := config.DefaultProjects().Projects
	if len(projects) != len(want) {
		t.Fatalf("expected %d projects, got %d", len(want), len(projects))
	}
	for i, p := range projects {
		if p.Title != want[i].Title {
			t.Errorf("project %d: got %q, want %q", i, p.Title, want[i].Title)
		}
		if p.ID == "" {
			t.Errorf("project %d has no id", i)
		}
	}
}

func TestGetProject(t *testing.T) {
	h := newTestHandler(t)

	var projects []models.ProjectRecord
	if err := json.Unmarshal(get(t, h, "/api/projects").Body.Bytes(), &projects); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec := get(t, h, "/api/projects/"+projects[1].ID)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var p models.ProjectRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Title != projects[1].Title {
		t.Errorf("got %q, want %q", p.Title, projects[1].Title)
	}

	if rec := get(t, h, "/api/projects/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown project: got %d", rec.Code)
	}
}

func TestListProjectsByTech(t *testing.T) {
	rec := get(t, newTestHandler(t), "/api/projects?tech=python")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var projects []models.ProjectRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &projects); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(projects) == 0 {
		t.Fatal("expected projects using Python")
	}
	for _, p := range projects {
		found := false
		for _, tech := range p.Tech {
			if strings.EqualFold(tech, "python") {
				found = true
			}
		}
		if !found {
			t.Errorf("%s does not list Python: %v", p.Title, p.Tech)
		}
	}
}

func TestPagesLayout(t *testing.T) {
	rec := get(t, newTestHandler(t), "/api/pages")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var layout router.Layout
	if err := json.Unmarshal(rec.Body.Bytes(), &layout); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(layout.Sections) != 4 {
		t.Errorf("expected 4 sections, got %d", len(layout.Sections))
	}
	if !layout.MobileMenu {
		t.Error("expected the mobile menu")
	}
}

func TestIndexAndDeepLinks(t *testing.T) {
	h := newTestHandler(t)

	cases := map[string]string{
		"/":         "home",
		"/about":    "about",
		"/projects": "projects",
	}
	for path, want := range cases {
		rec := get(t, h, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("%s: content type %q", path, ct)
		}
		doc, err := goquery.NewDocumentFromReader(rec.Body)
		if err != nil {
			t.Fatalf("goquery: %v", err)
		}
		if id, _ := doc.Find("section.page.active").Attr("id"); id != want {
			t.Errorf("%s: active section %q, want %q", path, id, want)
		}
	}
}

func TestUnknownPage(t *testing.T) {
	rec := get(t, newTestHandler(t), "/blog")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d", rec.Code)
	}
}

func TestStaticAssets(t *testing.T) {
	rec := get(t, newTestHandler(t), "/static/app.js")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty asset")
	}
}

func TestStarfieldSnapshot(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/api/starfield?width=800&height=400")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var snap models.SceneSnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(snap.Positions) != 50*3 {
		t.Errorf("positions: got %d values", len(snap.Positions))
	}
	if snap.Camera.Aspect != 2 {
		t.Errorf("aspect: got %v", snap.Camera.Aspect)
	}

	// bad dimensions fall back to the defaults
	rec = get(t, h, "/api/starfield?width=abc")
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if want := float64(defaultWidth) / float64(defaultHeight); snap.Camera.Aspect != want {
		t.Errorf("default aspect: got %v, want %v", snap.Camera.Aspect, want)
	}
}

func TestCORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" && got != "https://example.com" {
		t.Errorf("Access-Control-Allow-Origin: got %q", got)
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) starfield.Message {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg starfield.Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	return msg
}

func TestStarfieldStream(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(t))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/starfield?width=800&height=600"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	first := readMessage(t, conn)
	if first.Type != starfield.MessageScene || first.Scene == nil {
		t.Fatalf("expected a scene message first, got %+v", first)
	}
	if len(first.Scene.Positions) != 50*3 {
		t.Errorf("positions: got %d values", len(first.Scene.Positions))
	}

	prev := first.Scene.Rotation.Y
	for i := 0; i < 3; i++ {
		msg := readMessage(t, conn)
		if msg.Type != starfield.MessageFrame || msg.Rotation == nil {
			t.Fatalf("expected a frame message, got %+v", msg)
		}
		if msg.Rotation.Y <= prev {
			t.Errorf("rotation should increase: %v then %v", prev, msg.Rotation.Y)
		}
		prev = msg.Rotation.Y
	}

	if err := conn.WriteJSON(clientMessage{Type: starfield.MessageResize, Width: 1000, Height: 500}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	for i := 0; i < 50; i++ {
		msg := readMessage(t, conn)
		if msg.Camera == nil {
			continue
		}
		if msg.Camera.Aspect != 2 {
			t.Errorf("aspect after resize: got %v", msg.Camera.Aspect)
		}
		if msg.Viewport == nil || msg.Viewport.Width != 1000 {
			t.Errorf("viewport after resize: got %+v", msg.Viewport)
		}
		return
	}
	t.Fatal("no frame carried the resized camera")
}
