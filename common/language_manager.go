// common/language_manager.go

package common

import (
	"EchoDemo/locales"
	"os"
	"strings"
)

// LanguageItem pairs a language code with its localized display name
type LanguageItem struct {
	Code string
	Name string
}

// DetectAndSetLanguage loads translations using the first supported language from:
// the configuration, the system locale, English. It records the choice in configMgr
// and returns the language code.
func DetectAndSetLanguage(configMgr *ConfigManager, logger *Logger) string {
	configLang := ""
	if configMgr != nil {
		configLang = strings.ToLower(configMgr.GetGlobalConfig().Language)
	}
	supportedLangs := locales.GetAvailableLanguages()

	logger.Info("Supported languages: %v", supportedLangs)
	logger.Info("Current configuration language: %s", configLang)

	lang := ""
	if configLang != "" && loadLanguage(configLang, supportedLangs, logger) {
		lang = configLang
	}

	if lang == "" {
		systemLang := getSystemLanguage()
		if len(systemLang) >= 2 {
			systemLang = systemLang[:2]
		}
		logger.Info("Detected system language: %s", systemLang)
		if systemLang != "" && loadLanguage(systemLang, supportedLangs, logger) {
			lang = systemLang
		}
	}

	if lang == "" {
		logger.Info("Using fallback language: %s", DefaultLanguage)
		if err := locales.LoadTranslations(DefaultLanguage); err != nil {
			logger.Error("Failed to load fallback translations: %v", err)
		}
		lang = DefaultLanguage
	}

	if configMgr != nil {
		configMgr.SetLanguage(lang)
	}
	logger.Info("UI language: %s", languageName(locales.Current()))
	return lang
}

// languageName returns the display name of code in the loaded language.
func languageName(code string) string {
	for _, item := range GetAvailableLanguages() {
		if item.Code == code {
			return item.Name
		}
	}
	return code
}

func loadLanguage(lang string, supported []string, logger *Logger) bool {
	for _, code := range supported {
		if !strings.EqualFold(lang, code) {
			continue
		}
		if err := locales.LoadTranslations(code); err != nil {
			logger.Error("Failed to load translations for %s: %v", code, err)
			return false
		}
		logger.Info("Loaded translations for %s", code)
		return true
	}
	logger.Warning("Language %s is not supported", lang)
	return false
}

// GetAvailableLanguages returns the embedded languages with their display names
func GetAvailableLanguages() []LanguageItem {
	var items []LanguageItem
	for _, code := range locales.GetAvailableLanguages() {
		name := locales.Translate("settings.lang." + code)
		if strings.HasPrefix(name, "settings.lang.") {
			name = code
		}
		items = append(items, LanguageItem{Code: code, Name: name})
	}
	return items
}

// localeFromEnv returns the language of the first locale variable set, in the
// order LC_ALL > LC_MESSAGES > LANG.
func localeFromEnv() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if locale := os.Getenv(env); locale != "" {
			return languageCode(locale)
		}
	}
	return ""
}

// languageCode reduces a locale such as 'en_US.UTF-8' to 'en'.
func languageCode(locale string) string {
	locale = strings.Split(strings.ToLower(strings.TrimSpace(locale)), ".")[0]
	return strings.Split(locale, "_")[0]
}
