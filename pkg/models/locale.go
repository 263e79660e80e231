package models

// Locale is one supported language. Slice order is the language switcher order.
type Locale struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TranslationEntry is an existing localized counterpart of an article.
type TranslationEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Path string `json:"path"`
}
