// common/config_default.go

// Package common implements shared functionality used across the EchoDemo application.
// This file contains default configuration values.

package common

import "github.com/spf13/viper"

// GetDefaultCfg returns the configuration used when no file or override is present.
func GetDefaultCfg() Cfg {
	return Cfg{
		Global: GlobalCfg{
			Language: "",
		},
		Window: WindowCfg{
			Width:   DefaultWindowWidth,
			Height:  DefaultWindowHeight,
			Spacing: DefaultWindowSpacing,
		},
		Log: LogCfg{
			Path:       "",
			Level:      string(SeverityInfo),
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxAgeDays: DefaultLogMaxAgeDays,
		},
	}
}

// setDefaults registers every key with viper. Keys without a default are not
// picked up from the environment by Unmarshal.
func setDefaults(v *viper.Viper) {
	def := GetDefaultCfg()

	v.SetDefault("global.language", def.Global.Language)

	v.SetDefault("window.width", def.Window.Width)
	v.SetDefault("window.height", def.Window.Height)
	v.SetDefault("window.spacing", def.Window.Spacing)
	v.SetDefault("window.greeting", def.Window.Greeting)
	v.SetDefault("window.button", def.Window.Button)

	v.SetDefault("log.path", def.Log.Path)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.max_size_mb", def.Log.MaxSizeMB)
	v.SetDefault("log.max_age_days", def.Log.MaxAgeDays)
}
