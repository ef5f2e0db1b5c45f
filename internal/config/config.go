package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"starfolio.dev/internal/models"
)

// EnvPrefix is the prefix of environment overrides. Nested keys use a double
// underscore: STARFOLIO_SERVER__ADDR -> server.addr.
const EnvPrefix = "STARFOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A .env file in the working directory is
// loaded into the environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// lists replace the defaults instead of merging into them element by element
	if k.Exists("site.pages") {
		cfg.Site.Pages = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Kept for deployments that predate the prefixed variables
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// reservedPageIDs collide with server routes or exported directories
var reservedPageIDs = map[string]bool{
	"api":    true,
	"ws":     true,
	"static": true,
	"assets": true,
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.FrameRate < 1 || c.Server.FrameRate > 240 {
		return fmt.Errorf("server.frame_rate must be between 1 and 240, got %d", c.Server.FrameRate)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must be non-negative")
	}

	if c.Log.Level != "" && !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}

	sf := c.Starfield
	if sf.Count < 0 {
		return fmt.Errorf("starfield.count must be non-negative")
	}
	if sf.Extent <= 0 {
		return fmt.Errorf("starfield.extent must be positive")
	}
	if sf.FOV <= 0 || sf.FOV >= 180 {
		return fmt.Errorf("starfield.fov must be between 0 and 180 degrees")
	}
	if sf.Near <= 0 || sf.Far <= sf.Near {
		return fmt.Errorf("starfield clip bounds must satisfy 0 < near < far, got [%g, %g]", sf.Near, sf.Far)
	}
	if sf.PointSize <= 0 {
		return fmt.Errorf("starfield.point_size must be positive")
	}

	if len(c.Site.Pages) == 0 {
		return fmt.Errorf("site.pages must not be empty")
	}
	seen := make(map[string]bool, len(c.Site.Pages))
	for i, p := range c.Site.Pages {
		id := models.NormalizeTarget(p.ID)
		if id == "" {
			return fmt.Errorf("site.pages[%d].id is required", i)
		}
		if seen[id] {
			return fmt.Errorf("duplicate page id %q", id)
		}
		if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
			return fmt.Errorf("site.pages[%d].id %q must not contain path separators", i, id)
		}
		if reservedPageIDs[id] {
			return fmt.Errorf("site.pages[%d].id %q is reserved", i, id)
		}
		seen[id] = true
	}
	if !seen[models.NormalizeTarget(c.Site.InitialPage)] {
		return fmt.Errorf("site.initial_page %q is not a configured page", c.Site.InitialPage)
	}
	if c.Site.ProjectsPage != "" && !seen[models.NormalizeTarget(c.Site.ProjectsPage)] {
		return fmt.Errorf("site.projects_page %q is not a configured page", c.Site.ProjectsPage)
	}

	return nil
}
