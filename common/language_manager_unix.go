//go:build !windows && !darwin

// common/language_manager_unix.go
// Package common implements shared functionality used across the EchoDemo application.
// This file contains language detection for Linux and the BSDs.

package common

// getSystemLanguage reads the locale from the environment.
func getSystemLanguage() string {
	return localeFromEnv()
}
