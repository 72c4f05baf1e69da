package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/figgo/figgo/core/logger"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ProjectName string    `yaml:"project_name"`
	Installer   Installer `yaml:"installer"`
	Analyzer    Analyzer  `yaml:"analyzer"`
	Copy        Copy      `yaml:"copy"`
}

type Installer struct {
	Command string `yaml:"command"`
	Skip    bool   `yaml:"skip"`
}

type Analyzer struct {
	// MatchStrategy selects how import paths are matched against the
	// UI-kit registry: "substring" or "segment".
	MatchStrategy string `yaml:"match_strategy"`
	// ExcludedPackages are never reported for installation because the
	// project template already provides them.
	ExcludedPackages []string `yaml:"excluded_packages"`
	// ExtraComponents extends the built-in UI-kit registry.
	ExtraComponents []string `yaml:"extra_components"`
}

type Copy struct {
	Exclude []string `yaml:"exclude"`
}

func Default() *Config {
	return &Config{
		ProjectName: "figgo-project",
		Installer: Installer{
			Command: "npm",
		},
		Analyzer: Analyzer{
			MatchStrategy:    "substring",
			ExcludedPackages: []string{"react", "react-dom", "react/jsx-runtime"},
		},
		Copy: Copy{
			Exclude: []string{"node_modules", ".git", "dist", "build", ".DS_Store"},
		},
	}
}

func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working dir: %w", err)
	}

	paths := []string{
		filepath.Join(wd, "figgo.yaml"),
	}

	var filePath string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			filePath = p
			break
		}
	}

	if filePath == "" {
		logger.Debug("No config file found, using default config")
		return Default(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	logger.Debug("Config file found: %s", filePath)
	logger.Debug("Config: %+v", cfg)

	return cfg, nil
}
