// Package config loads the site configuration file. Missing file or
// missing fields fall back to defaults so a fresh checkout runs
// without any setup.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds site-level settings
type Config struct {
	SiteName string `yaml:"site_name"`

	// ServiceTypes seeds the service_types table on startup.
	ServiceTypes []string `yaml:"service_types"`

	// PollIntervalSeconds drives the dashboard auto-refresh.
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`

	// MaxPhotoBytes caps demand photo uploads.
	MaxPhotoBytes int64 `yaml:"max_photo_bytes"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		SiteName: "Residencial Obratrack",
		ServiceTypes: []string{
			"Elétrica",
			"Hidráulica",
			"Pintura",
			"Revestimento",
			"Esquadrias",
			"Louças e Metais",
		},
		PollIntervalSeconds: 60,
		MaxPhotoBytes:       10 << 20,
	}
}

// Load reads the YAML config at path, merged over defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.SiteName != "" {
		cfg.SiteName = file.SiteName
	}
	if len(file.ServiceTypes) > 0 {
		cfg.ServiceTypes = file.ServiceTypes
	}
	if file.PollIntervalSeconds > 0 {
		cfg.PollIntervalSeconds = file.PollIntervalSeconds
	}
	if file.MaxPhotoBytes > 0 {
		cfg.MaxPhotoBytes = file.MaxPhotoBytes
	}

	return cfg, nil
}
