// Package config loads project and page configuration for the eldom CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// Config represents the optional eldom.yaml configuration.
type Config struct {
	App AppConfig `yaml:"app"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	Page string `yaml:"page,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	GoVersion  string
	AppName    string
	PagePath   string
}

// LoadOptional reads eldom.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "eldom.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read eldom.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse eldom.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads eldom.yaml (if present) and resolves defaults from go.mod.
func Resolve(dir string) (*Resolved, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return nil, fmt.Errorf("failed to read go.mod: %w", err)
	}
	f, err := modfile.Parse("go.mod", data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse go.mod: %w", err)
	}
	if f.Module == nil || f.Module.Mod.Path == "" {
		return nil, fmt.Errorf("could not determine module path from go.mod")
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		parts := strings.Split(f.Module.Mod.Path, "/")
		appName = parts[len(parts)-1]
	}

	pagePath := strings.TrimSpace(cfg.App.Page)
	if pagePath == "" {
		pagePath = "page.yaml"
	}

	goVersion := ""
	if f.Go != nil {
		goVersion = f.Go.Version
	}

	return &Resolved{
		Root:       dir,
		ModulePath: f.Module.Mod.Path,
		GoVersion:  goVersion,
		AppName:    appName,
		PagePath:   pagePath,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}
