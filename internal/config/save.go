package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/clockface/internal/errors"
)

// Save validates cfg and writes it as YAML to path, creating the parent
// directory. An existing file is copied to path+".backup" first.
func Save(path string, cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return errors.Wrap(err, "refusing to save invalid configuration")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if data, err := os.ReadFile(path); err == nil { //nolint:gosec // path is the config file
		if err := os.WriteFile(path+".backup", data, 0o600); err != nil {
			return fmt.Errorf("failed to back up config file: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := fmt.Sprintf("# clockface configuration\n# written %s\n\n", time.Now().Format(time.RFC3339))
	if err := os.WriteFile(path, append([]byte(header), data...), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
