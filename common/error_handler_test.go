package common

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fatalRecorder struct {
	stderr   bytes.Buffer
	exitCode int
	exited   bool
	alerts   []string
}

func newTestErrorHandler(t *testing.T) (*ErrorHandler, *fatalRecorder, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "echodemo.log")
	logger, err := NewLogger(path, 1, 1)
	require.NoError(t, err)

	rec := &fatalRecorder{exitCode: -1}
	h := NewErrorHandler(logger)
	h.stderr = &rec.stderr
	h.SetExitFunc(func(code int) {
		rec.exited = true
		rec.exitCode = code
	})
	return h, rec, path
}

func TestFatalLogsReportsAndExits(t *testing.T) {
	h, rec, path := newTestErrorHandler(t)

	context := NewErrorContext(ModuleMain, OperationInitialize)
	context.Error = ErrEnvironmentUnavailable
	h.Fatal(context)

	assert.True(t, rec.exited)
	assert.Equal(t, 1, rec.exitCode)
	assert.Contains(t, rec.stderr.String(), "display environment unavailable")
	assert.Contains(t, readLog(t, path), "[CRITICAL] Main/Initialize: display environment unavailable")
}

func TestFatalUsesNativeAlertWhenSet(t *testing.T) {
	h, rec, _ := newTestErrorHandler(t)
	h.SetNativeAlert(func(title, message string) {
		rec.alerts = append(rec.alerts, message)
	})

	context := NewErrorContext(ModuleMain, OperationRun)
	context.Error = errors.New("driver gone")
	h.Fatal(context)

	require.Len(t, rec.alerts, 1)
	assert.Contains(t, rec.alerts[0], "driver gone")
}

func TestFatalWithoutNativeAlert(t *testing.T) {
	h, rec, _ := newTestErrorHandler(t)

	context := NewErrorContext(ModuleMain, OperationRun)
	context.Error = errors.New("no alert")
	h.Fatal(context)

	assert.Empty(t, rec.alerts)
	assert.True(t, rec.exited)
}

func TestShowPanicErrorIsEnvironmentUnavailable(t *testing.T) {
	h, rec, path := newTestErrorHandler(t)

	h.ShowPanicError("glfw: no monitor", "goroutine 1 [running]")

	assert.Equal(t, 1, rec.exitCode)
	content := readLog(t, path)
	assert.Contains(t, content, "display environment unavailable: glfw: no monitor")
	assert.Contains(t, content, "goroutine 1 [running]")
}

func TestShowErrorWithContextWithoutWindowOnlyLogs(t *testing.T) {
	h, rec, path := newTestErrorHandler(t)

	context := NewErrorContext(ModuleMain, OperationLoadConfig)
	context.Severity = SeverityWarning
	context.Error = errors.New("bad settings")
	h.ShowErrorWithContext(context)
	require.NoError(t, h.logger.Close())

	assert.False(t, rec.exited)
	assert.Contains(t, readLog(t, path), "[WARNING] Main/LoadConfig: bad settings")
}

func TestShowErrorWithContextIgnoresNil(t *testing.T) {
	h, _, path := newTestErrorHandler(t)
	h.ShowErrorWithContext(NewErrorContext(ModuleMain, OperationRun))
	require.NoError(t, h.logger.Close())
	assert.Empty(t, readLog(t, path))
}

func TestFatalLogsSessionAndTimestamp(t *testing.T) {
	h, _, path := newTestErrorHandler(t)
	id := h.logger.StartSession()

	context := NewErrorContext(ModuleMain, OperationInitialize)
	context.Error = ErrEnvironmentUnavailable
	context.Timestamp = time.Date(2024, 5, 1, 12, 30, 0, 0, time.Local)
	h.Fatal(context)

	assert.Contains(t, readLog(t, path), "(session "+id+", raised 2024-05-01 12:30:00)")
}

func TestShowErrorWithContextEscalatesUnrecoverable(t *testing.T) {
	h, rec, path := newTestErrorHandler(t)

	context := NewErrorContext(ModuleMain, OperationRun)
	context.Error = errors.New("window lost")
	context.Recoverable = false
	h.ShowErrorWithContext(context)

	assert.True(t, rec.exited)
	assert.Equal(t, 1, rec.exitCode)
	assert.Contains(t, readLog(t, path), "[CRITICAL] Main/Run: window lost")
}
