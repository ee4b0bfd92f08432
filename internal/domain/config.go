package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Store    StoreConfig
	Log      LogConfig
	Backup   BackupConfig
	Warnings []string // Unknown keys and other non-fatal problems
	Budget   BudgetConfig
}

// StoreConfig holds settings from the [store] section.
type StoreConfig struct {
	Path string // Snapshot file; "~" is expanded
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string // debug, info, warn, error
}

// BudgetConfig holds settings from the [budget] section.
type BudgetConfig struct {
	CapacityFloor int
	CapacityStep  int
	HomeCost      int // Default cost for today's quick-add
	LibraryCost   int // Default cost for template/backlog quick-add
}

// BackupConfig holds settings from the [backup] section.
type BackupConfig struct {
	Dir    string
	Format string // json or yaml
}

// Rules returns the day-cycle rules configured in [budget].
func (c *Config) Rules() Rules {
	return Rules{CapacityFloor: c.Budget.CapacityFloor, CapacityStep: c.Budget.CapacityStep}
}

// Default configuration values.
const (
	DefaultLogLevel     = "info"
	DefaultBackupFormat = "json"
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	rules := DefaultRules()
	return &Config{
		Log: LogConfig{Level: DefaultLogLevel},
		Budget: BudgetConfig{
			CapacityFloor: rules.CapacityFloor,
			CapacityStep:  rules.CapacityStep,
			HomeCost:      HomeDefaultCost,
			LibraryCost:   LibraryDefaultCost,
		},
		Backup: BackupConfig{Dir: ".", Format: DefaultBackupFormat},
	}
}

// Directory and file names for willflow.
const (
	AppDirName     = "willflow"
	DataDirName    = ".willflow"
	ConfigFileName = "config.toml"
	StateFileName  = "state.json"
	LogFileName    = "willflow.log"
)

// StatePath returns the default snapshot path inside the data directory.
func StatePath(dataDir string) string {
	return filepath.Join(dataDir, StateFileName)
}

// LocalConfigPath returns the config path inside the data directory.
func LocalConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// LogPath returns the log file path inside the data directory.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", LogFileName)
}

// ConfigInfo describes one config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager inspects and creates config files.
type ConfigManager interface {
	GetGlobalConfigInfo() ConfigInfo
	GetLocalConfigInfo() ConfigInfo
	InitGlobalConfig(cfg *Config) error
	InitLocalConfig(cfg *Config) error
}

// RenderConfigTemplate renders a commented config file holding the values of cfg.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
