// Package config loads settings for the wintoast CLI.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "wintoast"

type Config struct {
	// AumID is the Application User Model ID toasts are shown under.
	// Empty means the PowerShell AUM_ID, which needs no registration.
	AumID string `koanf:"aum_id"`
	// DisplayName is the name shown in the notification shade after
	// registration.
	DisplayName string `koanf:"display_name"`
	// IconPath is an absolute path to the icon registered with the
	// AUM_ID. Supports ~ expansion.
	IconPath string `koanf:"icon_path"`
}

// Load reads configuration files in priority order (last wins): the
// per-user config dir, then ./config.toml. Missing files are skipped;
// a config-less run yields defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		DisplayName: "Wintoast",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.IconPath != "" {
		cfg.IconPath = expandPath(cfg.IconPath)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. <xdg config home>/wintoast/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
