package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
)

// Endpoint is a service URL listed at the end of every report.
type Endpoint struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

// Config captures the report settings pocsum reads from its config file.
type Config struct {
	LogPath   string
	Endpoints []Endpoint
}

const (
	defaultConfigPath = "~/.config/pocsum/config.toml"
	defaultLogPath    = "logs.txt"
)

// DefaultEndpoints returns the services the PoC stack exposes.
func DefaultEndpoints() []Endpoint {
	return []Endpoint{
		{Name: "Authentik", URL: "http://localhost:9000"},
		{Name: "JumpServer", URL: "http://localhost:8080"},
	}
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{LogPath: defaultLogPath, Endpoints: DefaultEndpoints()}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogPath   string     `toml:"log_path"`
		Endpoints []Endpoint `toml:"endpoints"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}

	endpoints := make([]Endpoint, 0, len(raw.Endpoints))
	for _, ep := range raw.Endpoints {
		name := strings.TrimSpace(ep.Name)
		url := strings.TrimSpace(ep.URL)
		if name == "" || url == "" {
			continue
		}
		endpoints = append(endpoints, Endpoint{Name: name, URL: url})
	}
	if len(endpoints) > 0 {
		cfg.Endpoints = endpoints
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	expanded, err := homedir.Expand(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Abs(expanded)
}
