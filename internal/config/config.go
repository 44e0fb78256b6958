// Package config resolves the runtime paths the file manager starts from.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"zeta/internal/logging"
)

const appName = "zeta"

// Config holds the start directories and file locations.
type Config struct {
	LeftDir   string
	RightDir  string
	ThemePath string
	LogPath   string
}

// Load builds the configuration for the current user. The left pane opens
// in the home directory, the right pane at the filesystem root.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg := &Config{
		LeftDir:  home,
		RightDir: string(filepath.Separator),
		LogPath:  logging.DefaultPath(),
	}
	if dir, err := os.UserConfigDir(); err == nil {
		cfg.ThemePath = filepath.Join(dir, appName, "theme.yaml")
	}
	cfg.Validate()
	return cfg, nil
}

// Validate replaces start directories that are not readable directories
// with the filesystem root.
func (c *Config) Validate() {
	c.LeftDir = usableDir(c.LeftDir)
	c.RightDir = usableDir(c.RightDir)
}

func usableDir(dir string) string {
	root := string(filepath.Separator)
	if dir == "" {
		return root
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logging.L().Warn().Str("dir", dir).Msg("start directory unusable, using root")
		return root
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}
