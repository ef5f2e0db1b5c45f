package config

import "starfolio.dev/internal/models"

// Config is the top-level application configuration, corresponding to starfolio.yml
type Config struct {
	Server    ServerConfig    `yaml:"server" koanf:"server"`
	Log       LogConfig       `yaml:"log" koanf:"log"`
	Data      DataConfig      `yaml:"data" koanf:"data"`
	Starfield StarfieldConfig `yaml:"starfield" koanf:"starfield"`
	Site      SiteConfig      `yaml:"site" koanf:"site"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr            string `yaml:"addr" koanf:"addr"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	FrameRate       int    `yaml:"frame_rate" koanf:"frame_rate"`
	ShutdownTimeout int    `yaml:"shutdown_timeout" koanf:"shutdown_timeout"` // seconds
	StaticDir       string `yaml:"static_dir" koanf:"static_dir"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `yaml:"level" koanf:"level"`
	File  string `yaml:"file" koanf:"file"`
}

// DataConfig points at the project catalog
type DataConfig struct {
	ProjectsFile string `yaml:"projects_file" koanf:"projects_file"`
}

// StarfieldConfig holds background scene settings
type StarfieldConfig struct {
	Count        int     `yaml:"count" koanf:"count"`
	Extent       float64 `yaml:"extent" koanf:"extent"`
	Seed         uint64  `yaml:"seed" koanf:"seed"` // 0 picks one at startup
	FOV          float64 `yaml:"fov" koanf:"fov"`
	Near         float64 `yaml:"near" koanf:"near"`
	Far          float64 `yaml:"far" koanf:"far"`
	CameraZ      float64 `yaml:"camera_z" koanf:"camera_z"`
	Pitch        float64 `yaml:"pitch" koanf:"pitch"` // radians
	RotationStep float64 `yaml:"rotation_step" koanf:"rotation_step"`
	Color        string  `yaml:"color" koanf:"color"`
	PointSize    float64 `yaml:"point_size" koanf:"point_size"`
}

// SiteConfig holds the document layout
type SiteConfig struct {
	Title            string               `yaml:"title" koanf:"title"`
	Owner            string               `yaml:"owner" koanf:"owner"`
	Tagline          string               `yaml:"tagline" koanf:"tagline"`
	InitialPage      string               `yaml:"initial_page" koanf:"initial_page"`
	ProjectsPage     string               `yaml:"projects_page" koanf:"projects_page"`
	PlaceholderImage string               `yaml:"placeholder_image" koanf:"placeholder_image"`
	Pages            []models.PageSection `yaml:"pages" koanf:"pages"`
}
