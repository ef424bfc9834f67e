// Package ui provides user interface components for the application
package ui

import (
	"EchoDemo/common"
	apptheme "EchoDemo/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// State is the lifecycle state of a Shell.
type State int

const (
	// StateRunning lasts from construction until the window is closed.
	StateRunning State = iota
	// StateTerminated is final. No handler runs once it is reached.
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// ShellOptions fixes the window geometry and the widget captions.
type ShellOptions struct {
	Title      string
	Width      float32
	Height     float32
	Spacing    float32
	Greeting   string
	ButtonText string
}

// Shell owns the whole widget tree: window -> box -> label, entry, button.
// Every widget lives exactly as long as the Shell, so the click handler,
// a method on Shell, can never observe a released widget.
type Shell struct {
	window fyne.Window
	box    *fyne.Container
	label  *widget.Label
	entry  *widget.Entry
	button *widget.Button
	state  State
	logger *common.Logger

	// OnTerminated, when set, runs once after the window's close event.
	OnTerminated func()
}

// NewShell builds the widget tree in a new window of app and binds the button.
// The window becomes the app's master window: closing it ends the event loop.
func NewShell(app fyne.App, opts ShellOptions, logger *common.Logger) *Shell {
	s := &Shell{
		window: app.NewWindow(opts.Title),
		label:  widget.NewLabel(opts.Greeting),
		entry:  widget.NewEntry(),
		state:  StateRunning,
		logger: logger,
	}
	s.button = widget.NewButton(opts.ButtonText, nil)

	// each row expands to an equal share of the window
	s.box = container.NewGridWithRows(3, s.label, s.entry, s.button)

	s.window.SetContent(container.NewThemeOverride(s.box, apptheme.WithPadding(app.Settings().Theme(), opts.Spacing)))
	s.window.Resize(fyne.NewSize(opts.Width, opts.Height))
	s.window.SetMaster()
	s.window.SetOnClosed(s.terminate)

	s.bind()
	logger.Info("%s: built window %q (%vx%v, spacing %v)", common.ModuleShell, opts.Title, opts.Width, opts.Height, opts.Spacing)
	return s
}

// bind registers the only event handler of the tree.
func (s *Shell) bind() {
	s.button.OnTapped = s.echo
}

// echo replaces the label text with the entry text, unchanged.
func (s *Shell) echo() {
	if s.state != StateRunning {
		return
	}
	s.label.SetText(s.entry.Text)
}

// terminate handles the window's close event. Only the first call has an effect.
func (s *Shell) terminate() {
	if s.state == StateTerminated {
		return
	}
	s.state = StateTerminated
	s.logger.Info("%s: window closed, leaving event loop", common.ModuleShell)
	if s.OnTerminated != nil {
		s.OnTerminated()
	}
}

// Show makes the window and its whole tree visible.
func (s *Shell) Show() {
	s.window.Show()
}

// ShowAndRun shows the window and blocks in the event loop until it is closed.
func (s *Shell) ShowAndRun() {
	s.window.ShowAndRun()
}

// State returns the current lifecycle state.
func (s *Shell) State() State {
	return s.state
}

// Window returns the top-level window.
func (s *Shell) Window() fyne.Window {
	return s.window
}

// Label returns the label showing the greeting or the last echoed text.
func (s *Shell) Label() *widget.Label {
	return s.label
}

// Entry returns the text entry.
func (s *Shell) Entry() *widget.Entry {
	return s.entry
}

// Button returns the button that copies the entry into the label.
func (s *Shell) Button() *widget.Button {
	return s.button
}
