//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

// common/environment_other.go
// Windows and macOS always provide a window server to a logged-in user.

package common

import "os"

func lookupEnv(key string) string {
	return os.Getenv(key)
}

func checkDisplay(func(string) string) error {
	return nil
}
