package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// Dirs lists the directories scanned for event documents. Positional
	// CLI arguments override this list.
	Dirs []string `yaml:"dirs"`

	// RefreshCron is the cron expression driving watch-mode refreshes,
	// e.g. "*/5 * * * *".
	RefreshCron string `yaml:"refresh"`

	// Listen is the HTTP listen address for the status server. Empty
	// disables it.
	Listen string `yaml:"listen"`

	// ExportICS, if non-empty, is a path the active agenda is written to
	// as an iCalendar document on every run.
	ExportICS string `yaml:"export_ics"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Dirs:        []string{},
		RefreshCron: "*/5 * * * *",
		Listen:      "",
		ExportICS:   "",
	}
}

// Normalize fills missing values with defaults so partially-filled configs
// still behave.
func (c *Config) Normalize() {
	if c.Dirs == nil {
		c.Dirs = []string{}
	}
	if c.RefreshCron == "" {
		c.RefreshCron = "*/5 * * * *"
	}
}

// Load reads configuration from the given YAML path. A missing file is a
// first run: a default config is written there (0600) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes cfg to path atomically (temp file + rename) with 0600
// permissions, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".agendacal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
