//go:build windows

// common/language_manager_windows.go
// Package common implements shared functionality used across the EchoDemo application.
// This file contains Windows-specific language detection functionality.

package common

import (
	"strings"
	"syscall"
	"unsafe"
)

// localeNameMaxLength is LOCALE_NAME_MAX_LENGTH from winnls.h
const localeNameMaxLength = 85

// getSystemLanguage asks kernel32 for the user's default locale, e.g. "cs-CZ" -> "cs".
func getSystemLanguage() string {
	proc := syscall.NewLazyDLL("kernel32.dll").NewProc("GetUserDefaultLocaleName")
	if proc.Find() != nil {
		return ""
	}

	buf := make([]uint16, localeNameMaxLength)
	n, _, _ := proc.Call(uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return strings.Split(strings.ToLower(syscall.UTF16ToString(buf)), "-")[0]
}
