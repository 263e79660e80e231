package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"techblog/pkg/models"
	"techblog/pkg/translation"
)

var (
	Port   = "8080"
	AppURL = "http://localhost:8080"

	ContentPath = "./content"
	RepoPath    = "./content"

	// Locale settings
	LanguagesFile   = ""
	DefaultLocale   = "ja"
	URLStrategy     = "prefix_except_default"
	ArticleSegment  = "articles"
	ReservedSlugs   = []string{"articles", "index", "about"}
	LocaleCookieKey = "i18n_redirected"
	Locales         = DefaultLocales()

	// Lookup settings
	LookupConcurrency = 4

	AuthorsFile = ""

	SessionSecret = ""
	LogLevel      = "info"

	// Git settings
	GitBranch = "main"
	GitRemote = "origin"
)

var OauthConf *oauth2.Config

// EnvFileErr is why .env was not loaded by the last Init, nil when it was.
// The logger does not exist yet during Init, so main reports it.
var EnvFileErr error

// DefaultLocales is the registry used when no languages file is configured.
func DefaultLocales() []models.Locale {
	return []models.Locale{
		{Code: "ja", Name: "日本語"},
		{Code: "en", Name: "English"},
	}
}

// Init loads .env and the environment into the package settings.
func Init() error {
	EnvFileErr = godotenv.Load()

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	Port = getEnv("PORT", "8080")
	AppURL = getEnv("APP_URL", "http://localhost:"+Port)
	redirectURL := getEnv("GITHUB_REDIRECT_URL", AppURL+"/auth/callback")

	ContentPath = getEnv("CONTENT_PATH", "./content")
	RepoPath = getEnv("REPO_PATH", ContentPath)

	LanguagesFile = getEnv("LANGUAGES_FILE", "")
	DefaultLocale = getEnv("DEFAULT_LOCALE", "ja")
	URLStrategy = getEnv("URL_STRATEGY", "prefix_except_default")
	ArticleSegment = getEnv("ARTICLE_SEGMENT", "articles")
	ReservedSlugs = splitList(getEnv("RESERVED_SLUGS", "articles,index,about"))
	LocaleCookieKey = getEnv("LOCALE_COOKIE_KEY", "i18n_redirected")

	AuthorsFile = getEnv("AUTHORS_FILE", "")
	SessionSecret = getEnv("SESSION_SECRET", "")
	LogLevel = getEnv("LOG_LEVEL", "info")

	GitBranch = getEnv("GIT_BRANCH", "main")
	GitRemote = getEnv("GIT_REMOTE", "origin")

	LookupConcurrency = 4
	if lc := os.Getenv("LOOKUP_CONCURRENCY"); lc != "" {
		val, err := strconv.Atoi(lc)
		if err != nil {
			return fmt.Errorf("LOOKUP_CONCURRENCY: %w", err)
		}
		LookupConcurrency = val
	}

	Locales = DefaultLocales()
	if LanguagesFile != "" {
		locales, err := LoadLanguages(LanguagesFile)
		if err != nil {
			return err
		}
		Locales = locales
	}

	OauthConf = &oauth2.Config{
		ClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		ClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		Scopes:       []string{"repo"},
		Endpoint:     github.Endpoint,
		RedirectURL:  redirectURL,
	}

	return Validate()
}

// Validate checks the locale settings agree with each other.
func Validate() error {
	if len(Locales) == 0 {
		return errors.New("no locales configured")
	}
	if !slices.Contains(LocaleCodes(), DefaultLocale) {
		return fmt.Errorf("default locale %q is not configured", DefaultLocale)
	}
	if URLStrategy != translation.StrategyPrefix && URLStrategy != translation.StrategyPrefixExceptDefault {
		return fmt.Errorf("unknown URL_STRATEGY %q", URLStrategy)
	}
	if LookupConcurrency < 1 {
		return fmt.Errorf("LOOKUP_CONCURRENCY must be at least 1, got %d", LookupConcurrency)
	}
	return nil
}

// LocaleCodes returns the configured codes in display order.
func LocaleCodes() []string {
	codes := make([]string, len(Locales))
	for i, l := range Locales {
		codes[i] = l.Code
	}
	return codes
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
