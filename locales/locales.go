package locales

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed en/translations.json
//go:embed cs/translations.json
//go:embed de/translations.json
var translationsFS embed.FS

var (
	// translations stores the loaded translations in memory
	translations map[string]string
	current      string
	mutex        sync.RWMutex
)

// LoadTranslations loads the translation file for the specified language.
// On error the previously loaded translations stay active.
func LoadTranslations(lang string) error {
	data, err := translationsFS.ReadFile(lang + "/translations.json")
	if err != nil {
		return fmt.Errorf("failed to load translation file: %w", err)
	}

	loaded := make(map[string]string)
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse translation file: %w", err)
	}

	mutex.Lock()
	translations = loaded
	current = lang
	mutex.Unlock()
	return nil
}

// Current returns the code of the loaded language, or "" before the first load.
func Current() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return current
}

// Translate returns the translated string for the given key.
// If the translation is not found, returns the key itself.
func Translate(key string) string {
	mutex.RLock()
	defer mutex.RUnlock()
	if translation, ok := translations[key]; ok {
		return translation
	}
	return key
}

// GetAvailableLanguages returns a list of all available languages
// from the embedded filesystem. Returns ["en"] as fallback on error.
func GetAvailableLanguages() []string {
	var langs []string
	entries, err := translationsFS.ReadDir(".")
	if err != nil {
		return []string{"en"}
	}
	for _, entry := range entries {
		if entry.IsDir() {
			langs = append(langs, entry.Name())
		}
	}
	return langs
}
