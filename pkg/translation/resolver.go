// Package translation resolves article slugs from localized paths and
// discovers which locales carry a translated counterpart.
package translation

import (
	"context"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"techblog/pkg/models"
)

// DefaultReserved lists slugs that name structural pages rather than articles.
var DefaultReserved = []string{"articles", "index", "about"}

// ContentStore answers whether a document exists at a canonical path.
// A missing document is (false, nil); err is reserved for lookup failures.
type ContentStore interface {
	Exists(ctx context.Context, path string) (bool, error)
}

// Resolver is immutable after New and safe for concurrent use.
type Resolver struct {
	store       ContentStore
	convention  URLConvention
	locales     []models.Locale
	reserved    map[string]struct{}
	concurrency int
	log         zerolog.Logger
}

type Option func(*Resolver)

// WithReserved replaces DefaultReserved. The empty slug is always reserved.
func WithReserved(slugs []string) Option {
	return func(r *Resolver) {
		r.reserved = make(map[string]struct{}, len(slugs))
		for _, s := range slugs {
			if s = strings.TrimSpace(s); s != "" {
				r.reserved[s] = struct{}{}
			}
		}
	}
}

// WithConcurrency bounds the parallel lookups of AvailableTranslations.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

func New(store ContentStore, convention URLConvention, locales []models.Locale, opts ...Option) *Resolver {
	r := &Resolver{
		store:       store,
		convention:  convention,
		locales:     locales,
		concurrency: len(locales),
		log:         zerolog.Nop(),
	}
	WithReserved(DefaultReserved)(r)
	for _, opt := range opts {
		opt(r)
	}
	if r.concurrency < 1 {
		r.concurrency = 1
	}
	return r
}

// Locales returns the registry in display order.
func (r *Resolver) Locales() []models.Locale {
	return r.locales
}

func (r *Resolver) Convention() URLConvention {
	return r.convention
}

// IsReserved reports whether slug names a structural page.
func (r *Resolver) IsReserved(slug string) bool {
	if slug == "" {
		return true
	}
	_, ok := r.reserved[slug]
	return ok
}

// ExtractSlug strips the locale prefix from path. Paths the convention does
// not recognize lose only their leading slash. Root, locale roots and
// reserved slugs all yield "".
func (r *Resolver) ExtractSlug(path string) string {
	if !strings.HasPrefix(path, "/") {
		return ""
	}
	_, slug, ok := r.convention.Inverse(path)
	if !ok {
		slug = trimSlashes(path)
	}
	if r.IsReserved(slug) {
		return ""
	}
	return slug
}

// IsArticlePage is true exactly when ExtractSlug(path) is non-empty.
func (r *Resolver) IsArticlePage(path string) bool {
	return r.ExtractSlug(path) != ""
}

// LocaleOf returns the locale path belongs to, or "" when none is recognized.
func (r *Resolver) LocaleOf(path string) string {
	locale, _, ok := r.convention.Inverse(path)
	if !ok {
		return ""
	}
	return locale
}

// LocalePath is the URL of slug in locale under the configured convention.
func (r *Resolver) LocalePath(locale, slug string) string {
	return withoutTrailingSlash(r.convention.Forward(locale, slug))
}

// CheckTranslationExists reports whether slug has a document in locale.
// Empty and reserved slugs are structural pages and always report true.
// Lookup failures are logged and reported as false.
func (r *Resolver) CheckTranslationExists(ctx context.Context, locale, slug string) bool {
	if r.IsReserved(slug) {
		return true
	}
	if _, ok := r.locale(locale); !ok {
		r.log.Debug().Str("locale", locale).Msg(l10n.T("Locale is not configured"))
		return false
	}
	return r.exists(ctx, locale, slug)
}

// AvailableTranslations returns one entry per locale holding slug, in
// registry order. Empty and reserved slugs return an empty list without
// touching the store.
func (r *Resolver) AvailableTranslations(ctx context.Context, slug string) []models.TranslationEntry {
	translations := []models.TranslationEntry{}
	if r.IsReserved(slug) {
		return translations
	}

	found := make([]bool, len(r.locales))
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, loc := range r.locales {
		g.Go(func() error {
			found[i] = r.exists(ctx, loc.Code, slug)
			return nil
		})
	}
	_ = g.Wait()

	for i, loc := range r.locales {
		if found[i] {
			translations = append(translations, models.TranslationEntry{
				Code: loc.Code,
				Name: loc.Name,
				Path: r.LocalePath(loc.Code, slug),
			})
		}
	}
	return translations
}

// Resolution is everything the language switcher needs for one path.
type Resolution struct {
	Path          string                    `json:"path"`
	Slug          string                    `json:"slug"`
	Locale        string                    `json:"locale"`
	IsArticlePage bool                      `json:"isArticlePage"`
	Translations  []models.TranslationEntry `json:"translations"`
}

func (r *Resolver) Resolve(ctx context.Context, path string) Resolution {
	slug := r.ExtractSlug(path)
	return Resolution{
		Path:          path,
		Slug:          slug,
		Locale:        r.LocaleOf(path),
		IsArticlePage: slug != "",
		Translations:  r.AvailableTranslations(ctx, slug),
	}
}

func (r *Resolver) exists(ctx context.Context, locale, slug string) bool {
	path := r.LocalePath(locale, slug)
	ok, err := r.store.Exists(ctx, path)
	if err != nil {
		r.log.Warn().Err(err).Str("locale", locale).Str("path", path).
			Msg(l10n.T("Translation lookup failed"))
		return false
	}
	return ok
}

func (r *Resolver) locale(code string) (models.Locale, bool) {
	for _, loc := range r.locales {
		if loc.Code == code {
			return loc, true
		}
	}
	return models.Locale{}, false
}

func withoutTrailingSlash(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}
	return path
}
