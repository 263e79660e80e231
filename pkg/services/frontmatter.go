package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"techblog/pkg/models"
)

var ErrUnknownFormat = errors.New("unknown front matter format")

// ParseFrontMatter splits content into front matter, body and format name.
func ParseFrontMatter(content []byte) (map[string]interface{}, string, string, error) {
	str := normalizeLineEndings(string(content))
	// YAML (---)
	if strings.HasPrefix(str, "---\n") {
		parts := strings.SplitN(str, "---", 3) // "", FM, Body
		if len(parts) == 3 {
			var fm map[string]interface{}
			if err := yaml.Unmarshal([]byte(parts[1]), &fm); err == nil {
				return fm, strings.TrimSpace(parts[2]), "yaml", nil
			}
		}
	}
	// TOML (+++)
	if strings.HasPrefix(str, "+++\n") {
		parts := strings.SplitN(str, "+++", 3)
		if len(parts) == 3 {
			var fm map[string]interface{}
			if err := toml.Unmarshal([]byte(parts[1]), &fm); err == nil {
				return fm, strings.TrimSpace(parts[2]), "toml", nil
			}
		}
	}
	// JSON ({)
	if strings.HasPrefix(strings.TrimSpace(str), "{") {
		var fm map[string]interface{}
		if err := json.Unmarshal(content, &fm); err == nil {
			return fm, "", "json", nil
		}
	}

	return nil, "", "", ErrUnknownFormat
}

// articleFromContent builds the document stored at path. Files without
// readable front matter keep their whole content as body.
func articleFromContent(path, fallbackTitle string, content []byte) models.Article {
	fm, body, format, err := ParseFrontMatter(content)
	if err != nil {
		return models.Article{
			Path:   path,
			Title:  fallbackTitle,
			Body:   strings.TrimSpace(normalizeLineEndings(string(content))),
			Format: "none",
		}
	}

	art := models.Article{Path: path, Title: fallbackTitle, Body: body, Format: format}
	for k, v := range fm {
		switch k {
		case "title":
			if s := frontMatterString(v); s != "" {
				art.Title = s
			}
		case "description":
			art.Description = frontMatterString(v)
		case "date":
			art.Date = frontMatterString(v)
		case "author":
			art.Author = frontMatterString(v)
		case "image":
			art.Image = frontMatterString(v)
		default:
			if art.Meta == nil {
				art.Meta = map[string]interface{}{}
			}
			art.Meta[k] = sanitizeFrontMatterValue(v)
		}
	}
	return art
}

func frontMatterString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 {
			return val.Format("2006-01-02")
		}
		return val.UTC().Format(time.RFC3339)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func sanitizeFrontMatterValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		sanitized := make(map[string]interface{}, len(v))
		for key, inner := range v {
			sanitized[key] = sanitizeFrontMatterValue(inner)
		}
		return sanitized
	case map[interface{}]interface{}:
		normalized := make(map[string]interface{}, len(v))
		for key, inner := range v {
			normalized[fmt.Sprint(key)] = sanitizeFrontMatterValue(inner)
		}
		return normalized
	case []interface{}:
		slice := make([]interface{}, len(v))
		for i := range v {
			slice[i] = sanitizeFrontMatterValue(v[i])
		}
		return slice
	case time.Time:
		return frontMatterString(v)
	default:
		return v
	}
}

func normalizeLineEndings(input string) string {
	return strings.ReplaceAll(input, "\r\n", "\n")
}
