//go:build !(windows || darwin)

package main

import "EchoDemo/common"

// github.com/sqweek/dialog initializes GTK when the package loads, which
// aborts the process before main runs on a host without a display. Unix
// desktops therefore report fatal errors on stderr and in the log only.
func nativeAlert() common.NativeAlert {
	return nil
}
