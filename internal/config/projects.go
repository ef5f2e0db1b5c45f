package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	yamlv3 "gopkg.in/yaml.v3"

	"starfolio.dev/internal/models"
)

// LoadProjects reads a project catalog from a .json, .yaml or .yml file.
// A missing file yields an error matching fs.ErrNotExist.
func LoadProjects(path string) (*models.ProjectList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var projects models.ProjectList
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &projects)
	case ".yaml", ".yml":
		err = yamlv3.Unmarshal(data, &projects)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &projects, nil
}

// DefaultProjects returns the built-in catalog
func DefaultProjects() *models.ProjectList {
	return &models.ProjectList{Projects: []models.ProjectRecord{
		{
			Title:       "Enterprise-Ready 3D Automation Tool",
			Description: "Created an AI-powered automation pipeline for Blender using Python and LLM APIs, cutting modelling and rendering time by 65%.",
			Tech:        []string{"Python", "Blender API", "LLM APIs", "Docker", "AI/ML"},
			Image:       "/assets/blender-project.png",
			LiveLink:    "#",
			RepoLink:    "#",
		},
		{
			Title:       "Smart Building Automation System",
			Description: "Developing an IoT-integrated system for energy efficiency and security, featuring remote automation via a full-fledged web and mobile application.",
			Tech:        []string{"NodeMCU", "AWS", "MERN Stack", "React Native"},
			Image:       "/assets/smart-building.png",
			LiveLink:    "#",
			RepoLink:    "#",
		},
		{
			Title:       "Ehaa Earth Website & Sensor Integration",
			Description: "Managed and optimized the official website for performance and UX. Also led the integration of advanced sensors (PM2.5, PM10) into air purifiers for real-time monitoring.",
			Tech:        []string{"HTML/CSS", "JavaScript", "Firebase", "Arduino", "Sensors"},
			Image:       "/assets/ehaa-earth.png",
			LiveLink:    "https://ehaaearth.com/",
			RepoLink:    "#",
		},
		{
			Title:       "Flood Detection & Alert System (IoT)",
			Description: "Built an IoT-based flood detection system with real-time alerts via AWS IoT Core and MQTT, ensuring high reliability and low latency.",
			Tech:        []string{"NodeMCU", "AWS IoT", "MQTT", "JavaScript", "MySQL"},
			Image:       "/assets/flood-detection.png",
			LiveLink:    "#",
			RepoLink:    "#",
		},
		{
			Title:       "Stress Prediction IoT System (IIT Bombay)",
			Description: "Enhanced a wearable-based system for real-time stress monitoring using physiological sensors and Python for data analysis. Achieved 3rd Prize among 10,000+ participants.",
			Tech:        []string{"Arduino", "Python", "Power BI", "Data Analytics"},
			Image:       "/assets/stress-prediction.png",
			LiveLink:    "#",
			RepoLink:    "#",
		},
		{
			Title:       "ISTE Official Website",
			Description: "Independently designed, developed, and deployed a fully responsive, high-performance website, resulting in a 40% increase in user engagement.",
			Tech:        []string{"HTML5", "CSS3", "JavaScript", "UI/UX Design"},
			Image:       "/assets/iste-website.png",
			LiveLink:    "#",
			RepoLink:    "#",
		},
	}}
}

// LoadProjectsOrDefault reads the catalog at path, falling back to
// DefaultProjects when path is empty or the file does not exist
func LoadProjectsOrDefault(path string) (*models.ProjectList, bool, error) {
	if path == "" {
		return DefaultProjects(), true, nil
	}
	projects, err := LoadProjects(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultProjects(), true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return projects, false, nil
}
