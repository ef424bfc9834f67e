//go:build darwin

// common/language_manager_darwin.go
// Package common implements shared functionality used across the EchoDemo application.
// This file contains macOS-specific language detection functionality.

package common

import (
	"os/exec"
)

// getSystemLanguage checks the locale environment variables first. Apps started
// from Finder usually have none, so it then asks for the AppleLocale user default.
func getSystemLanguage() string {
	if lang := localeFromEnv(); lang != "" {
		return lang
	}
	out, err := exec.Command("defaults", "read", "-g", "AppleLocale").Output()
	if err != nil {
		return ""
	}
	return languageCode(string(out))
}
