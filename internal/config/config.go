// Package config handles loading taskline.toml configuration files.
//
// Configuration covers presentation and diagnostics only. The task store
// itself takes no configuration: its limits and ID rules are fixed.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the taskline.toml configuration file.
type Config struct {
	UI  UI  `toml:"ui"`
	Log Log `toml:"log"`
}

// UI contains presentation-related configuration.
type UI struct {
	// Color controls colored output: "auto", "always", or "never".
	Color string `toml:"color"`

	// Prompt overrides the interactive prompt string.
	Prompt string `toml:"prompt"`

	// ConfirmDelete asks for confirmation before deleting a task.
	// Defaults to true.
	ConfirmDelete *bool `toml:"confirm-delete"`
}

// Log contains diagnostics configuration.
type Log struct {
	// Level sets the console log level: "debug", "info", "warn", or "error".
	Level string `toml:"level"`
}

// DefaultPrompt is the interactive prompt used when none is configured.
const DefaultPrompt = "> "

// Load loads configuration from the working directory and the global config
// file. Values in the working directory file win. Returns defaults if no
// config files exist.
func Load(workDir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	localCfg, localMeta, err := loadConfigFile(filepath.Join(workDir, "taskline.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, localCfg, globalMeta, localMeta), nil
}

// Prompt returns the configured prompt or the default.
func (c *Config) PromptString() string {
	if c == nil || c.UI.Prompt == "" {
		return DefaultPrompt
	}
	return c.UI.Prompt
}

// ConfirmDelete reports whether delete confirmation is enabled.
func (c *Config) ConfirmDelete() bool {
	if c == nil || c.UI.ConfirmDelete == nil {
		return true
	}
	return *c.UI.ConfirmDelete
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "taskline", "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, localCfg *Config, globalMeta, localMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if localCfg == nil {
		localCfg = &Config{}
	}

	merged := Config{}
	merged.UI.Color = mergeString(localMeta.IsDefined("ui", "color"), localCfg.UI.Color, globalCfg.UI.Color)
	merged.UI.Prompt = mergeString(localMeta.IsDefined("ui", "prompt"), localCfg.UI.Prompt, globalCfg.UI.Prompt)
	merged.Log.Level = mergeString(localMeta.IsDefined("log", "level"), localCfg.Log.Level, globalCfg.Log.Level)

	if localMeta.IsDefined("ui", "confirm-delete") {
		merged.UI.ConfirmDelete = localCfg.UI.ConfirmDelete
	} else if globalMeta.IsDefined("ui", "confirm-delete") {
		merged.UI.ConfirmDelete = globalCfg.UI.ConfirmDelete
	}

	return &merged
}

func mergeString(localDefined bool, localValue, globalValue string) string {
	value := globalValue
	if localDefined {
		value = localValue
	}
	return strings.TrimSpace(value)
}
