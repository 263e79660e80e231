package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// GetPreferredLocale picks the visitor's locale: the stored preference,
// then Accept-Language, then the default locale.
func (a *API) GetPreferredLocale(c *gin.Context) {
	code := a.preferredLocale(c)
	c.JSON(http.StatusOK, gin.H{"code": code, "path": a.Resolver.LocalePath(code, "")})
}

func (a *API) SetPreferredLocale(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if !a.isLocale(req.Code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown locale"})
		return
	}

	session := sessions.Default(c)
	session.Set(a.LocaleCookieKey, req.Code)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preference"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": req.Code, "path": a.Resolver.LocalePath(req.Code, "")})
}

func (a *API) preferredLocale(c *gin.Context) string {
	session := sessions.Default(c)
	if code, ok := session.Get(a.LocaleCookieKey).(string); ok && a.isLocale(code) {
		return code
	}

	if accept := strings.TrimSpace(c.GetHeader("Accept-Language")); accept != "" {
		if code, ok := a.matchAcceptLanguage(accept); ok {
			return code
		}
	}
	return a.DefaultLocale
}

func (a *API) matchAcceptLanguage(accept string) (string, bool) {
	desired, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(desired) == 0 {
		return "", false
	}

	locales := a.Resolver.Locales()
	supported := make([]language.Tag, len(locales))
	for i, loc := range locales {
		supported[i] = language.Make(loc.Code)
	}
	_, index, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No {
		return "", false
	}
	return locales[index].Code, true
}
