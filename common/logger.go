// common/logger.go

// Package common implements shared functionality used across the EchoDemo application.
// This file contains logging functionality.

package common

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const logTimeFormat = "2006-01-02 15:04:05"

// earlyLogBuffer stores log messages before logger is initialized
var earlyLogBuffer []string
var earlyLogMutex sync.Mutex

// CaptureEarlyLog captures a log message before the logger is initialized
func CaptureEarlyLog(level Severity, format string, args ...interface{}) {
	earlyLogMutex.Lock()
	defer earlyLogMutex.Unlock()

	earlyLogBuffer = append(earlyLogBuffer, formatLogLine(time.Now(), level, format, args...))
}

// FlushEarlyLogs writes all captured early logs to the logger.
// Messages keep their original timestamp.
func FlushEarlyLogs(logger *Logger) {
	earlyLogMutex.Lock()
	defer earlyLogMutex.Unlock()

	if logger == nil || len(earlyLogBuffer) == 0 {
		return
	}

	logger.Info("--- Flushing %d early log messages ---", len(earlyLogBuffer))
	for _, line := range earlyLogBuffer {
		logger.writeLine(line)
	}
	earlyLogBuffer = nil
	logger.Info("--- End of early logs ---")
}

func formatLogLine(ts time.Time, level Severity, format string, args ...interface{}) string {
	return fmt.Sprintf("%s [%s] %s\n", ts.Format(logTimeFormat), level, fmt.Sprintf(format, args...))
}

// Logger writes leveled messages to a size- and age-rotated log file.
// A Logger without a file (see NewStderrLogger) writes to its writer and never rotates.
type Logger struct {
	logPath      string
	logFile      *os.File
	out          io.Writer
	mutex        sync.Mutex
	level        Severity
	maxSizeBytes int64
	maxAge       time.Duration
	currentSize  int64
	sessionID    string
}

// NewLogger creates a new logger instance writing to logPath.
// Non-positive limits default to 10 MB and 7 days.
func NewLogger(logPath string, maxSizeMB int, maxAgeDays int) (*Logger, error) {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if maxAgeDays <= 0 {
		maxAgeDays = 7
	}
	logger := &Logger{
		logPath:      logPath,
		level:        SeverityInfo,
		maxSizeBytes: int64(maxSizeMB) * 1024 * 1024,
		maxAge:       time.Duration(maxAgeDays) * 24 * time.Hour,
	}

	rootLogPath := filepath.Join(".", filepath.Base(logPath))
	if err := EnsureDirectoryExists(filepath.Dir(logPath)); err != nil {
		CaptureEarlyLog(SeverityWarning, "Failed to create log directory at '%s': %v", filepath.Dir(logPath), err)
		CaptureEarlyLog(SeverityWarning, "Attempting fallback to root directory: %s", rootLogPath)
		logger.logPath = rootLogPath
	}

	if err := logger.checkRotation(); err != nil {
		CaptureEarlyLog(SeverityWarning, "Failed to check log rotation: %v", err)
	}

	file, err := openLogFile(logger.logPath)
	if err != nil {
		if logger.logPath == rootLogPath {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		CaptureEarlyLog(SeverityWarning, "Failed to open log file at '%s': %v", logger.logPath, err)
		CaptureEarlyLog(SeverityWarning, "Attempting fallback to root directory: %s", rootLogPath)
		logger.logPath = rootLogPath
		if file, err = openLogFile(rootLogPath); err != nil {
			return nil, fmt.Errorf("failed to open log file at primary and fallback locations: %w", err)
		}
	}

	logger.logFile = file
	logger.out = file
	if info, err := file.Stat(); err == nil {
		logger.currentSize = info.Size()
	}
	return logger, nil
}

// NewStderrLogger returns a logger that writes to standard error.
// It is the last resort when no log file can be opened.
func NewStderrLogger() *Logger {
	return &Logger{out: os.Stderr, level: SeverityInfo}
}

func openLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}

// SetLevel drops subsequent messages below level.
func (l *Logger) SetLevel(level Severity) {
	if l == nil {
		return
	}
	l.mutex.Lock()
	l.level = level
	l.mutex.Unlock()
}

// Path returns the path of the active log file, or "" for a stderr logger.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.logPath
}

// StartSession writes a session header and returns the new session id.
func (l *Logger) StartSession() string {
	if l == nil {
		return ""
	}
	id := uuid.NewString()
	l.mutex.Lock()
	l.sessionID = id
	l.mutex.Unlock()
	l.Info("--- Session %s started (pid %d) ---", id, os.Getpid())
	return id
}

// SessionID returns the id written by the last StartSession call.
func (l *Logger) SessionID() string {
	if l == nil {
		return ""
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.sessionID
}

// Log writes a message to the log. A nil logger discards everything.
func (l *Logger) Log(level Severity, format string, args ...interface{}) error {
	if l == nil {
		return nil
	}
	l.mutex.Lock()
	below := level.rank() < l.level.rank()
	l.mutex.Unlock()
	if below {
		return nil
	}
	return l.writeLine(formatLogLine(time.Now(), level, format, args...))
}

func (l *Logger) writeLine(line string) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	var rotateErr error
	if l.logFile != nil && l.currentSize >= l.maxSizeBytes {
		if err := l.rotate(); err != nil {
			// the line is still written to whatever rotate left open
			rotateErr = fmt.Errorf("failed to rotate log file: %w", err)
		}
	}

	n, err := io.WriteString(l.out, line)
	if err != nil {
		return errors.Join(rotateErr, fmt.Errorf("failed to write to log file: %w", err))
	}
	l.currentSize += int64(n)
	return rotateErr
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(SeverityInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.Log(SeverityWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(SeverityError, format, args...)
}

// Critical logs a message about a failure that ends the process
func (l *Logger) Critical(format string, args ...interface{}) {
	l.Log(SeverityCritical, format, args...)
}

// Close closes the log file
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.logFile != nil {
		err := l.logFile.Close()
		l.logFile = nil
		l.out = io.Discard
		return err
	}
	return nil
}

// checkRotation rotates an existing log file that is too old or too large
func (l *Logger) checkRotation() error {
	if !FileExists(l.logPath) {
		return nil
	}

	info, err := os.Stat(l.logPath)
	if err != nil {
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	if time.Since(info.ModTime()) >= l.maxAge || info.Size() >= l.maxSizeBytes {
		return l.rotate()
	}
	return nil
}

// rotatedPattern returns the glob matching rotated siblings of the log file.
func (l *Logger) rotatedPattern() string {
	base := filepath.Base(l.logPath)
	ext := filepath.Ext(base)
	return filepath.Join(filepath.Dir(l.logPath), fmt.Sprintf("%s_*%s", base[:len(base)-len(ext)], ext))
}

// rotate renames the current log file to <name>_<timestamp><ext> and starts a new one.
// When the rename fails the log keeps going in l.logPath; if even that cannot be
// reopened, output moves to stderr and rotation stops.
func (l *Logger) rotate() error {
	open := l.logFile != nil
	if open {
		l.logFile.Close()
	}

	base := filepath.Base(l.logPath)
	ext := filepath.Ext(base)
	timestamp := time.Now().Format("2006-01-02@15_04_05.000")
	rotatedPath := filepath.Join(filepath.Dir(l.logPath), fmt.Sprintf("%s_%s%s", base[:len(base)-len(ext)], timestamp, ext))

	renameErr := os.Rename(l.logPath, rotatedPath)
	l.currentSize = 0

	// checkRotation runs before the file is opened
	if open {
		file, err := openLogFile(l.logPath)
		if err != nil {
			l.logFile = nil
			l.out = os.Stderr
			return errors.Join(renameErr, fmt.Errorf("failed to reopen log file: %w", err))
		}
		l.logFile = file
		l.out = file
	}

	if renameErr != nil {
		return fmt.Errorf("failed to rename log file: %w", renameErr)
	}
	l.cleanOldLogs()
	return nil
}

// cleanOldLogs removes rotated log files older than 1 year
func (l *Logger) cleanOldLogs() {
	files, err := filepath.Glob(l.rotatedPattern())
	if err != nil {
		return
	}

	oneYearAgo := time.Now().AddDate(-1, 0, 0)
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if info.ModTime().Before(oneYearAgo) {
			os.Remove(file)
		}
	}
}
