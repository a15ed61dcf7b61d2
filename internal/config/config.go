// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/sketch/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Embed logger config under [logger] table
	Editor EditorConfig  `toml:"editor"` // Editor-specific settings
}

// EditorConfig holds canvas and editing settings.
type EditorConfig struct {
	GridWidth       int    `toml:"grid_width"`
	GridHeight      int    `toml:"grid_height"`
	HistoryDepth    int    `toml:"history_depth"`
	FreehandGlyph   string `toml:"freehand_glyph"`
	EraserSize      int    `toml:"eraser_size"`
	BorderStyle     string `toml:"border_style"` // "single" or "double"
	SystemClipboard bool   `toml:"system_clipboard"`
	StatusBarHeight int    `toml:"status_bar_height"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "", // Empty means default path logic applies
		},
		Editor: EditorConfig{
			GridWidth:       DefaultGridWidth,
			GridHeight:      DefaultGridHeight,
			HistoryDepth:    DefaultHistoryDepth,
			FreehandGlyph:   DefaultFreehandGlyph,
			EraserSize:      DefaultEraserSize,
			BorderStyle:     DefaultBorderStyle,
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file.
// A missing file is not an error.
func loadFromFile(filePath string, verbose bool) (*Config, error) {
	cfg := &Config{}
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		if verbose {
			logger.Debugf("Config file not found: %s", filePath)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	if verbose {
		logger.Debugf("Attempting to load configuration from: %s", filePath)
	}
	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 && verbose {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	if verbose {
		logger.Infof("Successfully loaded configuration from: %s", filePath)
	}
	return cfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.GridWidth < 1 {
		c.Editor.GridWidth = defaults.Editor.GridWidth
	}
	if c.Editor.GridHeight < 1 {
		c.Editor.GridHeight = defaults.Editor.GridHeight
	}
	if c.Editor.HistoryDepth < 1 {
		c.Editor.HistoryDepth = defaults.Editor.HistoryDepth
	}
	if c.Editor.FreehandGlyph == "" {
		c.Editor.FreehandGlyph = defaults.Editor.FreehandGlyph
	}
	if c.Editor.EraserSize < 1 {
		c.Editor.EraserSize = defaults.Editor.EraserSize
	}
	switch c.Editor.BorderStyle {
	case "single", "double", "heavy", "rounded", "ascii", "dotted":
	default:
		c.Editor.BorderStyle = defaults.Editor.BorderStyle
	}
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig orchestrates loading defaults, file, applying flags, and validation.
// It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		// During initial load, avoid logging as logger isn't initialized yet
		verbose := false

		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" { // If flag not set, try default location
			configDir, err := os.UserConfigDir()
			if err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			} else {
				effectivePath = "" // Cannot load default path
			}
		}

		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath, verbose)
			if err != nil {
				loadErr = err
			} else if fileCfg != nil {
				if fileCfg.Logger.LogLevel != "" {
					cfg.Logger = fileCfg.Logger
				}
				if fileCfg.Editor.GridWidth > 0 {
					cfg.Editor.GridWidth = fileCfg.Editor.GridWidth
				}
				if fileCfg.Editor.GridHeight > 0 {
					cfg.Editor.GridHeight = fileCfg.Editor.GridHeight
				}
				if fileCfg.Editor.HistoryDepth > 0 {
					cfg.Editor.HistoryDepth = fileCfg.Editor.HistoryDepth
				}
				if fileCfg.Editor.FreehandGlyph != "" {
					cfg.Editor.FreehandGlyph = fileCfg.Editor.FreehandGlyph
				}
				if fileCfg.Editor.EraserSize > 0 {
					cfg.Editor.EraserSize = fileCfg.Editor.EraserSize
				}
				if fileCfg.Editor.BorderStyle != "" {
					cfg.Editor.BorderStyle = fileCfg.Editor.BorderStyle
				}
				cfg.Editor.SystemClipboard = fileCfg.Editor.SystemClipboard
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg, verbose)
		}

		cfg.validate()

		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
