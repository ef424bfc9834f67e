// common/config_manager.go
// Package common implements shared functionality used across the EchoDemo application.
// This file contains configuration management functionality.

package common

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Cfg is the typed configuration read from settings.json.
type Cfg struct {
	Global GlobalCfg `mapstructure:"global" json:"global"`
	Window WindowCfg `mapstructure:"window" json:"window"`
	Log    LogCfg    `mapstructure:"log" json:"log"`
}

// GlobalCfg holds application-wide preferences.
type GlobalCfg struct {
	// Language is a two-letter code; empty means detect from the system.
	Language string `mapstructure:"language" json:"language"`
}

// WindowCfg describes the main window and its widget tree.
// Empty Greeting and Button fall back to the localized defaults.
type WindowCfg struct {
	Width    float32 `mapstructure:"width" json:"width"`
	Height   float32 `mapstructure:"height" json:"height"`
	Spacing  float32 `mapstructure:"spacing" json:"spacing"`
	Greeting string  `mapstructure:"greeting" json:"greeting"`
	Button   string  `mapstructure:"button" json:"button"`
}

// LogCfg configures the log file.
type LogCfg struct {
	Path       string `mapstructure:"path" json:"path"`
	Level      string `mapstructure:"level" json:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" json:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days" json:"max_age_days"`
}

// ConfigManager loads the application configuration and provides
// thread-safe read access to it. It never writes the configuration file.
type ConfigManager struct {
	v          *viper.Viper
	configPath string
	cfg        Cfg
	mutex      sync.Mutex
}

// DefaultSearchDirs returns the directories searched for settings.json, in priority order:
// the working directory first, then the per-user configuration directory.
func DefaultSearchDirs() []string {
	dirs := []string{"."}
	if dir := AppDataDir(os.UserConfigDir); dir != "" {
		dirs = append(dirs, dir)
	}
	return dirs
}

// NewConfigManager initializes a new configuration manager instance.
// It searches searchDirs for settings.json and applies ECHODEMO_* environment overrides.
//
// A missing configuration file is not an error. On any other failure the returned
// manager still holds the defaults, and the error describes what was skipped.
func NewConfigManager(searchDirs ...string) (*ConfigManager, error) {
	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType(ConfigType)
	for _, dir := range searchDirs {
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	mgr := &ConfigManager{v: v, cfg: GetDefaultCfg()}

	var loadErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			CaptureEarlyLog(SeverityInfo, "No configuration file found in %v, using defaults", searchDirs)
		} else {
			loadErr = fmt.Errorf("ConfigManager: failed to read config file: %w", err)
			CaptureEarlyLog(SeverityWarning, "%v", loadErr)
		}
	} else {
		mgr.configPath = v.ConfigFileUsed()
		CaptureEarlyLog(SeverityInfo, "Using configuration file %s", mgr.configPath)
	}

	var cfg Cfg
	if err := v.Unmarshal(&cfg); err != nil {
		loadErr = errors.Join(loadErr, fmt.Errorf("ConfigManager: failed to unmarshal config data: %w", err))
		CaptureEarlyLog(SeverityWarning, "ConfigManager: failed to unmarshal config data: %v", err)
		return mgr, loadErr
	}

	if err := ValidateCfg(&cfg); err != nil {
		CaptureEarlyLog(SeverityWarning, "Invalid configuration values replaced by defaults: %v", err)
		loadErr = errors.Join(loadErr, err)
	}
	mgr.cfg = cfg
	return mgr, loadErr
}

// GetCfg returns a copy of the current configuration.
func (mgr *ConfigManager) GetCfg() Cfg {
	mgr.mutex.Lock()
	defer mgr.mutex.Unlock()

	return mgr.cfg
}

// GetGlobalConfig returns a copy of the global section.
func (mgr *ConfigManager) GetGlobalConfig() GlobalCfg {
	return mgr.GetCfg().Global
}

// ConfigPath returns the configuration file that was loaded, or "" when defaults are in use.
func (mgr *ConfigManager) ConfigPath() string {
	mgr.mutex.Lock()
	defer mgr.mutex.Unlock()

	return mgr.configPath
}

// SetLanguage records the language chosen at startup. It is kept in memory only.
func (mgr *ConfigManager) SetLanguage(lang string) {
	mgr.mutex.Lock()
	mgr.cfg.Global.Language = lang
	mgr.mutex.Unlock()
}
