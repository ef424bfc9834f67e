package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() ShellOptions {
	return ShellOptions{
		Title:      "Fyne Demo",
		Width:      300,
		Height:     200,
		Spacing:    5,
		Greeting:   "Hello, Fyne!",
		ButtonText: "Click me",
	}
}

func newTestShell(t *testing.T) *Shell {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	s := NewShell(a, testOptions(), nil)
	s.Show()
	return s
}

func TestNewShellInitialState(t *testing.T) {
	s := newTestShell(t)

	assert.Equal(t, "Fyne Demo", s.Window().Title())
	assert.Equal(t, "Hello, Fyne!", s.Label().Text)
	assert.Equal(t, "", s.Entry().Text)
	assert.Equal(t, "Click me", s.Button().Text)
	assert.Equal(t, StateRunning, s.State())
}

func TestNewShellTreeLayout(t *testing.T) {
	s := newTestShell(t)

	override, ok := s.Window().Content().(*container.ThemeOverride)
	require.True(t, ok, "window content should be the themed box")
	assert.Equal(t, float32(5), override.Theme.Size(theme.SizeNamePadding))

	box, ok := override.Content.(*fyne.Container)
	require.True(t, ok)
	require.Len(t, box.Objects, 3)
	assert.Same(t, s.Label(), box.Objects[0])
	assert.Same(t, s.Entry(), box.Objects[1])
	assert.Same(t, s.Button(), box.Objects[2])
}

func TestButtonCopiesEntryTextUnchanged(t *testing.T) {
	for _, text := range []string{
		"hello",
		"  padded  ",
		"Příliš žluťoučký kůň",
		"tab\there",
		"123",
	} {
		t.Run(text, func(t *testing.T) {
			s := newTestShell(t)
			s.Entry().SetText(text)
			test.Tap(s.Button())
			assert.Equal(t, text, s.Label().Text)
		})
	}
}

func TestButtonWithEmptyEntryClearsLabel(t *testing.T) {
	s := newTestShell(t)

	test.Tap(s.Button())
	assert.Equal(t, "", s.Label().Text)
}

func TestLastWriteWins(t *testing.T) {
	s := newTestShell(t)

	s.Entry().SetText("first")
	test.Tap(s.Button())
	s.Entry().SetText("second")
	test.Tap(s.Button())

	assert.Equal(t, "second", s.Label().Text)
}

func TestTypingDoesNotChangeLabelUntilClick(t *testing.T) {
	s := newTestShell(t)

	test.Type(s.Entry(), "hello")
	assert.Equal(t, "hello", s.Entry().Text)
	assert.Equal(t, "Hello, Fyne!", s.Label().Text)

	test.Tap(s.Button())
	assert.Equal(t, "hello", s.Label().Text)

	s.Entry().SetText("")
	test.Tap(s.Button())
	assert.Equal(t, "", s.Label().Text)
}

func TestCloseTerminatesOnce(t *testing.T) {
	s := newTestShell(t)
	calls := 0
	s.OnTerminated = func() { calls++ }

	s.Window().Close()
	assert.Equal(t, StateTerminated, s.State())
	assert.Equal(t, 1, calls)

	s.terminate()
	assert.Equal(t, 1, calls)
}

func TestNoDispatchAfterTerminate(t *testing.T) {
	s := newTestShell(t)
	s.Entry().SetText("before")
	test.Tap(s.Button())

	s.Window().Close()

	s.Entry().SetText("after")
	test.Tap(s.Button())
	assert.Equal(t, "before", s.Label().Text)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Running", StateRunning.String())
	assert.Equal(t, "Terminated", StateTerminated.String())
	assert.Equal(t, "Unknown", State(7).String())
}
