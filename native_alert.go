//go:build windows || darwin

package main

import (
	"EchoDemo/common"

	nativedialog "github.com/sqweek/dialog"
)

// nativeAlert reports fatal errors through the operating system's message box,
// which keeps working when the Fyne driver itself has failed.
func nativeAlert() common.NativeAlert {
	return func(title, message string) {
		nativedialog.Message("%s", message).Title(title).Error()
	}
}
