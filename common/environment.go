// common/environment.go

package common

import "errors"

// ErrEnvironmentUnavailable reports that no display or compositor can be reached,
// so the toolkit cannot create a window. It is fatal.
var ErrEnvironmentUnavailable = errors.New("display environment unavailable")

// CheckEnvironment verifies that the desktop session the toolkit needs is reachable.
// The returned error wraps ErrEnvironmentUnavailable.
func CheckEnvironment() error {
	return checkDisplay(lookupEnv)
}
