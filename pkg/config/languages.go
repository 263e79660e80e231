package config

import (
	"fmt"
	"os"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"techblog/pkg/models"
)

// languageEntry is one table of languages.toml:
//
//	[ja]
//	languageName = "日本語"
//	weight = 1
//
//	[en]
//	languageName = "English"
//	weight = 2
type languageEntry struct {
	LanguageName string `toml:"languageName"`
	Weight       int    `toml:"weight"`
}

// LoadLanguages reads the locale registry, ordered by weight then code.
func LoadLanguages(path string) ([]models.Locale, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read languages file: %w", err)
	}

	var entries map[string]languageEntry
	if err := toml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse languages file %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("languages file %s defines no languages", path)
	}

	codes := make([]string, 0, len(entries))
	for code := range entries {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		wi, wj := entries[codes[i]].Weight, entries[codes[j]].Weight
		if wi != wj {
			return wi < wj
		}
		return codes[i] < codes[j]
	})

	locales := make([]models.Locale, len(codes))
	for i, code := range codes {
		name := entries[code].LanguageName
		if name == "" {
			name = code
		}
		locales[i] = models.Locale{Code: code, Name: name}
	}
	return locales, nil
}
