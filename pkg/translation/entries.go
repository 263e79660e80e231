package translation

import "techblog/pkg/models"

// HasTranslation reports whether entries contain code.
func HasTranslation(entries []models.TranslationEntry, code string) bool {
	_, ok := TranslationPath(entries, code)
	return ok
}

// TranslationPath returns the path recorded for code.
func TranslationPath(entries []models.TranslationEntry, code string) (string, bool) {
	for _, e := range entries {
		if e.Code == code {
			return e.Path, true
		}
	}
	return "", false
}
