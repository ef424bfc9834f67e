// common/validator.go

// Package common implements shared functionality used across the EchoDemo application.
// This file validates configuration values before they reach the UI.

package common

import (
	"errors"
	"fmt"
	"strings"
)

// ValidateCfg replaces out-of-range values in cfg with their defaults.
// It returns one joined error describing every replaced field, or nil.
func ValidateCfg(cfg *Cfg) error {
	def := GetDefaultCfg()
	var errs []error

	if cfg.Window.Width <= 0 {
		errs = append(errs, fmt.Errorf("window.width must be positive, got %v", cfg.Window.Width))
		cfg.Window.Width = def.Window.Width
	}
	if cfg.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window.height must be positive, got %v", cfg.Window.Height))
		cfg.Window.Height = def.Window.Height
	}
	if cfg.Window.Spacing < 0 {
		errs = append(errs, fmt.Errorf("window.spacing must not be negative, got %v", cfg.Window.Spacing))
		cfg.Window.Spacing = def.Window.Spacing
	}
	if cfg.Log.MaxSizeMB <= 0 {
		errs = append(errs, fmt.Errorf("log.max_size_mb must be positive, got %d", cfg.Log.MaxSizeMB))
		cfg.Log.MaxSizeMB = def.Log.MaxSizeMB
	}
	if cfg.Log.MaxAgeDays <= 0 {
		errs = append(errs, fmt.Errorf("log.max_age_days must be positive, got %d", cfg.Log.MaxAgeDays))
		cfg.Log.MaxAgeDays = def.Log.MaxAgeDays
	}
	if !isKnownSeverity(cfg.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q is not one of INFO, WARNING, ERROR, CRITICAL", cfg.Log.Level))
		cfg.Log.Level = def.Log.Level
	}

	cfg.Global.Language = strings.ToLower(strings.TrimSpace(cfg.Global.Language))
	return errors.Join(errs...)
}

func isKnownSeverity(value string) bool {
	switch Severity(strings.ToUpper(strings.TrimSpace(value))) {
	case SeverityInfo, SeverityWarning, "WARN", SeverityError, SeverityCritical:
		return true
	}
	return false
}
