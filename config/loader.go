package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/gmux/errors"
	"github.com/grovetools/gmux/pkg/paths"
	"gopkg.in/yaml.v3"
)

const configFileName = "config.yml"

// FilePath returns the path gmux reads and writes its config at.
func FilePath() string {
	return filepath.Join(paths.ConfigDir(), configFileName)
}

// legacyFilePath returns the pre-rename config location, consulted on load
// when the primary file does not exist yet.
func legacyFilePath() string {
	return filepath.Join(paths.LegacyConfigDir(), configFileName)
}

// Load reads the config at the given path. An empty path resolves to the
// default location, falling back to the legacy quickswitch location when the
// primary file is absent. A missing or blank file yields the zero config.
func Load(path string) (*Config, error) {
	if path == "" {
		path = FilePath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if legacy := legacyFilePath(); fileExists(legacy) {
				path = legacy
			}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Persistence(err, path)
	}

	if strings.TrimSpace(string(data)) == "" {
		return &Config{}, nil
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Persistence(fmt.Errorf("failed to parse config: %w", err), path)
	}

	return &cfg, nil
}

// Save writes the config to the given path (default location when empty),
// creating parent directories as needed. The write goes through a temp file
// and rename so a crash cannot leave a truncated config behind.
func Save(path string, cfg *Config) error {
	if path == "" {
		path = FilePath()
	}

	if parent := filepath.Dir(path); parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return errors.Persistence(err, path)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Persistence(err, path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.yml")
	if err != nil {
		return errors.Persistence(err, path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Persistence(err, path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Persistence(err, path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Persistence(err, path)
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
