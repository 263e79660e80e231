package translation

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Strategy names accepted by NewConvention.
const (
	StrategyPrefix              = "prefix"
	StrategyPrefixExceptDefault = "prefix_except_default"
)

var (
	ErrUnknownStrategy = errors.New("unknown url strategy")
	ErrUnknownLocale   = errors.New("unknown locale")
)

// URLConvention maps (locale, slug) pairs to URL paths and back.
//
// Inverse(Forward(c, s)) must return (c, s, true) for every configured
// locale c and every slug s whose first segment is not a locale code.
type URLConvention interface {
	Forward(locale, slug string) string
	// Inverse reports ok=false when no locale can be recognized in path.
	Inverse(path string) (locale, slug string, ok bool)
}

// NewConvention builds the convention named by strategy.
func NewConvention(strategy string, codes []string, defaultLocale, segment string) (URLConvention, error) {
	switch strategy {
	case StrategyPrefix:
		return NewPrefixConvention(codes, segment), nil
	case StrategyPrefixExceptDefault:
		if !slices.Contains(codes, defaultLocale) {
			return nil, fmt.Errorf("default locale %q: %w", defaultLocale, ErrUnknownLocale)
		}
		return NewPrefixExceptDefaultConvention(codes, defaultLocale), nil
	default:
		return nil, fmt.Errorf("%q: %w", strategy, ErrUnknownStrategy)
	}
}

// PrefixConvention prefixes every locale and places articles under a
// fixed segment: /{locale}/{segment}/{slug}.
type PrefixConvention struct {
	codes   []string
	segment string
}

func NewPrefixConvention(codes []string, segment string) *PrefixConvention {
	return &PrefixConvention{codes: codes, segment: strings.Trim(segment, "/")}
}

func (c *PrefixConvention) Forward(locale, slug string) string {
	if slug == "" {
		return "/" + locale
	}
	if c.segment == "" {
		return "/" + locale + "/" + slug
	}
	return "/" + locale + "/" + c.segment + "/" + slug
}

func (c *PrefixConvention) Inverse(path string) (string, string, bool) {
	head, rest, ok := splitLocale(path, c.codes)
	if !ok {
		return "", "", false
	}
	if c.segment == "" || rest == "" || rest == c.segment {
		return head, rest, true
	}
	// Pages outside the segment (/ja/tags/vue) belong to the locale but are not articles.
	if after, found := strings.CutPrefix(rest, c.segment+"/"); found {
		return head, after, true
	}
	return head, "", true
}

// PrefixExceptDefaultConvention leaves the default locale unprefixed:
// /{slug} for the default locale and /{locale}/{slug} for the others.
type PrefixExceptDefaultConvention struct {
	codes         []string
	defaultLocale string
}

func NewPrefixExceptDefaultConvention(codes []string, defaultLocale string) *PrefixExceptDefaultConvention {
	return &PrefixExceptDefaultConvention{codes: codes, defaultLocale: defaultLocale}
}

func (c *PrefixExceptDefaultConvention) Forward(locale, slug string) string {
	if locale == c.defaultLocale {
		return "/" + slug
	}
	if slug == "" {
		return "/" + locale
	}
	return "/" + locale + "/" + slug
}

func (c *PrefixExceptDefaultConvention) Inverse(path string) (string, string, bool) {
	if !strings.HasPrefix(path, "/") {
		return "", "", false
	}
	if head, rest, ok := splitLocale(path, c.codes); ok {
		return head, rest, true
	}
	return c.defaultLocale, trimSlashes(path), true
}

// splitLocale reports the leading locale segment of path and the remainder.
func splitLocale(path string, codes []string) (string, string, bool) {
	if !strings.HasPrefix(path, "/") {
		return "", "", false
	}
	trimmed := trimSlashes(path)
	head, rest, _ := strings.Cut(trimmed, "/")
	if !slices.Contains(codes, head) {
		return "", "", false
	}
	return head, rest, true
}

func trimSlashes(path string) string {
	return strings.TrimSuffix(strings.TrimPrefix(path, "/"), "/")
}
