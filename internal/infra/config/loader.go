// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/willflow/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	dataDir       string // Path to the willflow data directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/willflow)
}

// NewLoader creates a new Loader.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(dataDir, globalConfDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := homedir.Dir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration.
// Merge order: default <- global <- local (later takes precedence).
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	for _, path := range []string{l.globalPath(), domain.LocalConfigPath(l.dataDir)} {
		if path == "" {
			continue
		}
		raw, err := loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		cfg.Warnings = append(cfg.Warnings, applyRaw(cfg, raw)...)
	}

	if err := expandPaths(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) globalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// loadFile reads a TOML file into a generic map.
func loadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// applyRaw writes every recognized key of one file into cfg and returns
// warnings for unknown keys and unusable values.
func applyRaw(cfg *domain.Config, raw map[string]any) []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warn("unknown key: %s", section)
			continue
		}
		switch section {
		case "store":
			for k, v := range m {
				switch k {
				case "path":
					if s, ok := v.(string); ok {
						cfg.Store.Path = s
					} else {
						warn("invalid value for [store].path: expected string")
					}
				default:
					warn("unknown key in [store]: %s", k)
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					s, ok := v.(string)
					if !ok || !validLevel(s) {
						warn("invalid value for [log].level: %v", v)
						continue
					}
					cfg.Log.Level = s
				default:
					warn("unknown key in [log]: %s", k)
				}
			}
		case "budget":
			for k, v := range m {
				var target *int
				switch k {
				case "capacity_floor":
					target = &cfg.Budget.CapacityFloor
				case "capacity_step":
					target = &cfg.Budget.CapacityStep
				case "home_cost":
					target = &cfg.Budget.HomeCost
				case "library_cost":
					target = &cfg.Budget.LibraryCost
				default:
					warn("unknown key in [budget]: %s", k)
					continue
				}
				n, ok := v.(int64)
				if !ok || n < 0 {
					warn("invalid value for [budget].%s: expected a non-negative integer", k)
					continue
				}
				*target = int(n)
			}
		case "backup":
			for k, v := range m {
				switch k {
				case "dir":
					if s, ok := v.(string); ok {
						cfg.Backup.Dir = s
					} else {
						warn("invalid value for [backup].dir: expected string")
					}
				case "format":
					s, ok := v.(string)
					if !ok || (s != domain.BackupJSON && s != domain.BackupYAML) {
						warn("invalid value for [backup].format: %v", v)
						continue
					}
					cfg.Backup.Format = s
				default:
					warn("unknown key in [backup]: %s", k)
				}
			}
		default:
			warn("unknown section: %s", section)
		}
	}

	sort.Strings(warnings)
	return warnings
}

func validLevel(s string) bool {
	switch s {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// expandPaths resolves a leading "~" in configured paths.
func expandPaths(cfg *domain.Config) error {
	var err error
	if cfg.Store.Path, err = homedir.Expand(cfg.Store.Path); err != nil {
		return fmt.Errorf("expand [store].path: %w", err)
	}
	if cfg.Backup.Dir, err = homedir.Expand(cfg.Backup.Dir); err != nil {
		return fmt.Errorf("expand [backup].dir: %w", err)
	}
	return nil
}
