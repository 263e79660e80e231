package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/ideamans/go-l10n"
	"github.com/rs/zerolog"

	"techblog/pkg/models"
	"techblog/pkg/services"
	"techblog/pkg/translation"
)

// API holds what the JSON handlers read from. All fields are set once at startup.
type API struct {
	Resolver *translation.Resolver
	Store    *services.ContentStore
	Authors  *services.AuthorDirectory

	DefaultLocale   string
	URLStrategy     string
	LocaleCookieKey string

	RepoPath  string
	GitRemote string
	GitBranch string

	Log zerolog.Logger
}

func (a *API) GetLocales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"locales":       a.Resolver.Locales(),
		"defaultLocale": a.DefaultLocale,
		"strategy":      a.URLStrategy,
	})
}

func (a *API) GetTranslations(c *gin.Context) {
	path, ok := requirePath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, a.Resolver.Resolve(c.Request.Context(), path))
}

func (a *API) CheckTranslation(c *gin.Context) {
	locale := c.Query("locale")
	if locale == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "locale is required"})
		return
	}
	slug := c.Query("slug")
	if slug == "" {
		slug = a.Resolver.ExtractSlug(c.Query("path"))
	}
	exists := a.Resolver.CheckTranslationExists(c.Request.Context(), locale, slug)
	c.JSON(http.StatusOK, gin.H{"locale": locale, "slug": slug, "exists": exists})
}

func (a *API) ListArticles(c *gin.Context) {
	locale := c.DefaultQuery("locale", a.DefaultLocale)
	if !a.isLocale(locale) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown locale"})
		return
	}

	all, err := a.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}

	articles := []models.Article{}
	for _, art := range all {
		if a.Resolver.LocaleOf(art.Path) == locale && a.Resolver.IsArticlePage(art.Path) {
			articles = append(articles, art)
		}
	}
	// Newest first; ISO dates sort lexically.
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Date > articles[j].Date
	})
	c.JSON(http.StatusOK, articles)
}

func (a *API) GetArticle(c *gin.Context) {
	path, ok := requirePath(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	art, err := a.Store.Get(ctx, path)
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	case errors.Is(err, services.ErrMalformedPath):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid path"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read article"})
		return
	}

	resp := gin.H{
		"article":      art,
		"translations": a.Resolver.AvailableTranslations(ctx, a.Resolver.ExtractSlug(path)),
	}
	if author, ok := a.Authors.AuthorByName(art.Author); ok {
		resp["author"] = author
	}
	c.JSON(http.StatusOK, resp)
}

func (a *API) ListAuthors(c *gin.Context) {
	c.JSON(http.StatusOK, a.Authors.Authors())
}

func (a *API) GetAuthor(c *gin.Context) {
	author, ok := a.Authors.AuthorByName(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}
	c.JSON(http.StatusOK, author)
}

func (a *API) HandleReload(c *gin.Context) {
	a.Store.Invalidate()
	a.Log.Info().Msg(l10n.T("Content reloaded"))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (a *API) HandleSync(c *gin.Context) {
	session := sessions.Default(c)
	token, _ := session.Get("access_token").(string)

	log, err := services.SyncRepo(c.Request.Context(), a.Store, a.RepoPath, a.GitRemote, a.GitBranch, token)
	if err != nil {
		a.Log.Error().Err(err).Msg(l10n.T("Content sync failed"))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "log": log})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "log": log})
}

func (a *API) isLocale(code string) bool {
	for _, loc := range a.Resolver.Locales() {
		if loc.Code == code {
			return true
		}
	}
	return false
}

func requirePath(c *gin.Context) (string, bool) {
	path := c.Query("path")
	if !strings.HasPrefix(path, "/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path must start with /"})
		return "", false
	}
	return path, true
}
