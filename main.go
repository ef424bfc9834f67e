// main.go

package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"EchoDemo/common"
	"EchoDemo/locales"
	"EchoDemo/theme"
	"EchoDemo/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// EchoDemo is the main application structure.
type EchoDemo struct {
	app             fyne.App
	shell           *ui.Shell
	configMgr       *common.ConfigManager
	logger          *common.Logger
	errorHandler    *common.ErrorHandler
	configInitError error
}

// NewEchoDemo loads configuration, opens the log and checks that a display is
// reachable. It returns nil after reporting ErrEnvironmentUnavailable.
func NewEchoDemo() *EchoDemo {
	return newEchoDemo(common.DefaultSearchDirs(), common.CheckEnvironment, os.Exit)
}

func newEchoDemo(searchDirs []string, checkEnv func() error, exit func(int)) *EchoDemo {
	// Configuration comes first because it names the log file. Until the
	// logger exists, messages go to the early log buffer.
	configMgr, configInitError := common.NewConfigManager(searchDirs...)
	cfg := configMgr.GetCfg()

	logger := openLogger(cfg.Log)
	logger.SetLevel(common.ParseSeverity(cfg.Log.Level))
	logger.StartSession()
	common.FlushEarlyLogs(logger)

	if path := configMgr.ConfigPath(); path != "" {
		logger.Info("Configuration: %s", path)
	} else {
		logger.Info("Configuration: built-in defaults")
	}

	ed := &EchoDemo{
		configMgr:       configMgr,
		logger:          logger,
		errorHandler:    common.NewErrorHandler(logger),
		configInitError: configInitError,
	}
	ed.errorHandler.SetExitFunc(exit)

	common.DetectAndSetLanguage(configMgr, logger)

	// Environment Unavailable is the only fatal error of the application.
	if err := checkEnv(); err != nil {
		context := common.NewErrorContext(common.ModuleMain, common.OperationInitialize)
		context.Error = err
		ed.errorHandler.Fatal(context)
		return nil
	}
	ed.errorHandler.SetNativeAlert(nativeAlert())

	fyneApp := app.NewWithID(common.AppID)
	fyneApp.SetIcon(theme.AppIcon())
	fyneApp.Settings().SetTheme(theme.NewCustomTheme())
	ed.app = fyneApp

	logger.Info("%s (%s)", locales.Translate("main.log.appstart"), locales.Current())
	return ed
}

// openLogger tries the configured log path, then the per-user cache directory,
// then standard error.
func openLogger(cfg common.LogCfg) *common.Logger {
	path := cfg.Path
	if common.IsEmptyString(path) {
		path = common.DefaultLogPath()
	}

	logger, err := common.NewLogger(path, cfg.MaxSizeMB, cfg.MaxAgeDays)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: failed to initialize logger at %s, logging to stderr: %v\n", common.AppName, path, err)
		return common.NewStderrLogger()
	}
	return logger
}

// shellOptions resolves the window options from the configuration and the loaded language.
func (ed *EchoDemo) shellOptions() ui.ShellOptions {
	wc := ed.configMgr.GetCfg().Window

	opts := ui.ShellOptions{
		Title:      locales.Translate("main.app.title"),
		Width:      wc.Width,
		Height:     wc.Height,
		Spacing:    wc.Spacing,
		Greeting:   wc.Greeting,
		ButtonText: wc.Button,
	}
	if opts.Greeting == "" {
		opts.Greeting = locales.Translate("shell.label.greeting")
	}
	if opts.ButtonText == "" {
		opts.ButtonText = locales.Translate("shell.button.click")
	}
	return opts
}

// Run builds the widget tree and blocks in the event loop until the window is closed.
func (ed *EchoDemo) Run() {
	if ed == nil || ed.app == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			ed.errorHandler.ShowPanicError(r, string(debug.Stack()))
		}
	}()

	ed.shell = ui.NewShell(ed.app, ed.shellOptions(), ed.logger)
	ed.errorHandler.SetWindow(ed.shell.Window())

	if ed.configInitError != nil {
		context := common.NewErrorContext(common.ModuleMain, common.OperationLoadConfig)
		context.Severity = common.SeverityWarning
		context.Error = fmt.Errorf("%s: %w", locales.Translate("common.err.config"), ed.configInitError)
		ed.shell.Window().Show()
		ed.errorHandler.ShowErrorWithContext(context)
	}

	ed.shell.ShowAndRun()

	ed.logger.Info("%s", locales.Translate("main.log.appexit"))
	ed.logger.Close()
}

func main() {
	ed := NewEchoDemo()
	if ed == nil {
		os.Exit(1)
	}
	ed.Run()
}
