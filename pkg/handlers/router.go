package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"techblog/pkg/logger"
)

const sessionName = "techblog"

// NewRouter wires every route onto a fresh engine.
func NewRouter(api *API, store sessions.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.Gin(api.Log))
	r.Use(sessions.Sessions(sessionName, store))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// --- Auth Routes ---
	r.GET("/login", GithubLogin)
	r.GET("/auth/callback", AuthCallback)
	r.GET("/logout", Logout)

	v := r.Group("/api")
	{
		v.GET("/locales", api.GetLocales)
		v.GET("/locale", api.GetPreferredLocale)
		v.POST("/locale", api.SetPreferredLocale)
		v.GET("/translations", api.GetTranslations)
		v.GET("/translations/check", api.CheckTranslation)
		v.GET("/articles", api.ListArticles)
		v.GET("/article", api.GetArticle)
		v.GET("/authors", api.ListAuthors)
		v.GET("/authors/:name", api.GetAuthor)

		admin := v.Group("/admin")
		admin.Use(AuthRequired)
		{
			admin.POST("/reload", api.HandleReload)
			admin.POST("/sync", api.HandleSync)
		}
	}

	return r
}
