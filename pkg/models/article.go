package models

// Article represents a content document in the store.
type Article struct {
	Path        string                 `json:"path"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Date        string                 `json:"date,omitempty"`
	Author      string                 `json:"author,omitempty"`
	Image       string                 `json:"image,omitempty"`
	Meta        map[string]interface{} `json:"meta,omitempty"`
	Body        string                 `json:"body,omitempty"`
	Format      string                 `json:"format,omitempty"` // yaml, toml, json, none
}

// Author is the metadata shown next to an article.
type Author struct {
	Name     string `json:"name" yaml:"name"`
	FullName string `json:"fullName,omitempty" yaml:"fullName"`
	GitHub   string `json:"github,omitempty" yaml:"github"`
	Avatar   string `json:"avatar,omitempty" yaml:"avatar"`
}
