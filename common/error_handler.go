// common/error_handler.go

package common

import (
	"EchoDemo/locales"
	"fmt"
	"io"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ErrorContext provides additional information about an error
type ErrorContext struct {
	Module      string
	Operation   string
	Error       error
	Severity    Severity
	Recoverable bool
	Timestamp   time.Time
	StackTrace  string
}

// NewErrorContext creates a new error context with defaults
func NewErrorContext(module, operation string) ErrorContext {
	return ErrorContext{
		Module:      module,
		Operation:   operation,
		Severity:    SeverityError,
		Recoverable: true,
		Timestamp:   time.Now(),
	}
}

// NativeAlert shows a blocking message box outside of the Fyne driver.
type NativeAlert func(title, message string)

// ErrorHandler logs errors and reports them to the user.
// Recoverable errors go to a Fyne dialog on the main window; fatal ones
// go to stderr and, when a NativeAlert is set, to a native message box.
type ErrorHandler struct {
	logger *Logger
	window fyne.Window
	stderr io.Writer
	exit   func(int)
	alert  NativeAlert
}

// NewErrorHandler creates a new error handler instance
func NewErrorHandler(logger *Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
		stderr: os.Stderr,
		exit:   os.Exit,
	}
}

// SetWindow sets the window for displaying error dialogs
func (h *ErrorHandler) SetWindow(window fyne.Window) {
	h.window = window
}

// SetNativeAlert sets the message box used by Fatal.
// It must stay nil while no display is reachable.
func (h *ErrorHandler) SetNativeAlert(alert NativeAlert) {
	h.alert = alert
}

// SetExitFunc replaces os.Exit as the way Fatal ends the process.
func (h *ErrorHandler) SetExitFunc(exit func(int)) {
	h.exit = exit
}

// ShowErrorWithContext logs a recoverable error and shows it in a dialog when a window is set.
// A context that is not recoverable is passed on to Fatal.
func (h *ErrorHandler) ShowErrorWithContext(context ErrorContext) {
	if context.Error == nil {
		return
	}
	if !context.Recoverable {
		h.Fatal(context)
		return
	}

	h.logger.Log(context.Severity, "%s/%s: %v", context.Module, context.Operation, context.Error)

	if h.window == nil {
		return
	}

	message := widget.NewLabel(context.Error.Error())
	message.Wrapping = fyne.TextWrapWord
	details := widget.NewLabel(fmt.Sprintf("Module: %s\nOperation: %s", context.Module, context.Operation))

	dialog.NewCustom(
		locales.Translate("common.dialog.errorheader"),
		locales.Translate("common.button.ok"),
		container.NewVBox(message, widget.NewSeparator(), details),
		h.window,
	).Show()
}

// Fatal reports an unrecoverable error and terminates the process with status 1.
func (h *ErrorHandler) Fatal(context ErrorContext) {
	context.Severity = SeverityCritical
	context.Recoverable = false

	h.logger.Critical("%s/%s: %v (session %s, raised %s)", context.Module, context.Operation, context.Error,
		h.logger.SessionID(), context.Timestamp.Format(logTimeFormat))
	if context.StackTrace != "" {
		h.logger.Critical("Stack trace:\n%s", context.StackTrace)
	}

	fmt.Fprintf(h.stderr, "%s: %s: %v\n", AppName, locales.Translate("common.err.fatal"), context.Error)

	if h.alert != nil {
		h.alert(locales.Translate("common.dialog.errorheader"), fmt.Sprintf("%s\n\n%v", locales.Translate("common.err.fatal"), context.Error))
	}

	h.logger.Close()
	h.exit(1)
}

// ShowPanicError turns a recovered panic from the UI loop into a fatal error.
// The toolkit panics when its driver cannot create or drive a window, which
// is the same condition as ErrEnvironmentUnavailable.
func (h *ErrorHandler) ShowPanicError(recovered interface{}, stackTrace string) {
	context := NewErrorContext(ModuleMain, OperationRun)
	context.Error = fmt.Errorf("%w: %v", ErrEnvironmentUnavailable, recovered)
	context.StackTrace = stackTrace
	h.Fatal(context)
}
