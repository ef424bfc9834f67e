// constants.go

// Package common provides shared functionality and constants for the EchoDemo application.
// This file contains constants used across the application to replace hardcoded strings.
package common

// AppIdentifiers - Constants for application identification
const (
	// AppID is the application identifier
	AppID = "com.echodemo.app"

	// AppName is the application name, also used as the per-user data folder name
	AppName = "EchoDemo"

	// EnvPrefix prefixes environment variables that override configuration keys,
	// e.g. ECHODEMO_WINDOW_WIDTH
	EnvPrefix = "ECHODEMO"
)

// FileNames - Constants for file names
const (
	// ConfigName is the configuration file name without extension
	ConfigName = "settings"

	// ConfigType is the configuration file format
	ConfigType = "json"

	// FileNameLog is the name of the application log file
	FileNameLog = "echodemo.log"

	// FolderNameLog is the name of the log folder
	FolderNameLog = "log"
)

// Names used in ErrorContext
const (
	ModuleMain  = "Main"
	ModuleShell = "Shell"

	OperationInitialize = "Initialize"
	OperationRun        = "Run"
	OperationLoadConfig = "LoadConfig"
)

// Defaults used when the configuration leaves a value out
const (
	DefaultWindowWidth   float32 = 300
	DefaultWindowHeight  float32 = 200
	DefaultWindowSpacing float32 = 5
	DefaultLogMaxSizeMB          = 10
	DefaultLogMaxAgeDays         = 7
	DefaultLanguage              = "en"
)
