package config

import (
	"math"

	"starfolio.dev/internal/models"
)

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			FrameRate:       60,
			ShutdownTimeout: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
		Data: DataConfig{
			ProjectsFile: "data/projects.yaml",
		},
		Starfield: StarfieldConfig{
			Count:        6000,
			Extent:       1000,
			FOV:          60,
			Near:         1,
			Far:          1000,
			CameraZ:      1,
			Pitch:        math.Pi / 2,
			RotationStep: 0.0002,
			Color:        "#aaaaaa",
			PointSize:    0.7,
		},
		Site: SiteConfig{
			Title:            "Portfolio",
			Owner:            "Jane Doe",
			Tagline:          "Engineer. Builder. Tinkerer.",
			InitialPage:      "home",
			ProjectsPage:     "projects",
			PlaceholderImage: "https://placehold.co/600x400/E2E8F0/4A5568?text=Project+Image",
			Pages:            DefaultPages(),
		},
	}
}

// DefaultPages returns the stock page sections
func DefaultPages() []models.PageSection {
	return []models.PageSection{
		{
			ID:    "home",
			Title: "Home",
			Body:  "I design and ship **IoT systems**, web platforms and automation tooling.",
		},
		{
			ID:    "about",
			Title: "About",
			Body:  "Engineer with a background in embedded systems, cloud services and front-end development.",
		},
		{
			ID:    "projects",
			Title: "Projects",
			Body:  "A selection of things I have built.",
		},
		{
			ID:    "contact",
			Title: "Contact",
			Body:  "Reach me at [hello@example.com](mailto:hello@example.com).",
		},
	}
}
