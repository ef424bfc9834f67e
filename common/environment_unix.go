//go:build linux || freebsd || openbsd || netbsd || dragonfly

// common/environment_unix.go
// X11 and Wayland sessions advertise themselves through the environment.

package common

import (
	"fmt"
	"os"
)

func lookupEnv(key string) string {
	return os.Getenv(key)
}

func checkDisplay(getenv func(string) string) error {
	if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
		return fmt.Errorf("%w: neither DISPLAY nor WAYLAND_DISPLAY is set", ErrEnvironmentUnavailable)
	}
	return nil
}
