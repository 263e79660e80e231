package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"techblog/pkg/config"
	"techblog/pkg/handlers"
	"techblog/pkg/logger"
	"techblog/pkg/services"
	"techblog/pkg/translation"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/ideamans/go-l10n"
	"github.com/rs/zerolog"
)

func main() {
	// Initialize config
	if err := config.Init(); err != nil {
		bootLog := logger.New("info", os.Stderr)
		bootLog.Fatal().Err(err).Msg(l10n.T("Failed to load config"))
	}
	log := logger.New(config.LogLevel, os.Stderr)
	if config.EnvFileErr != nil {
		log.Info().Err(config.EnvFileErr).Msg(l10n.T("No .env file loaded"))
	}
	gin.SetMode(gin.ReleaseMode)

	srv, err := newServer(log)
	if err != nil {
		log.Fatal().Err(err).Msg(l10n.T("Failed to set up server"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Msg(l10n.F("Starting server on %s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg(l10n.T("Failed to start server"))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg(l10n.T("Server shutdown failed"))
	}
	log.Info().Msg(l10n.T("Server stopped"))
}

// newServer assembles the resolver, content store and router from the
// loaded config.
func newServer(log zerolog.Logger) (*http.Server, error) {
	convention, err := translation.NewConvention(config.URLStrategy, config.LocaleCodes(), config.DefaultLocale, config.ArticleSegment)
	if err != nil {
		return nil, fmt.Errorf("url convention: %w", err)
	}

	authors, err := services.LoadAuthors(config.AuthorsFile)
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}

	store := services.NewContentStore(config.ContentPath, log)
	resolver := translation.New(store, convention, config.Locales,
		translation.WithReserved(config.ReservedSlugs),
		translation.WithConcurrency(config.LookupConcurrency),
		translation.WithLogger(log.With().Str("component", "translation").Logger()),
	)

	api := &handlers.API{
		Resolver:        resolver,
		Store:           store,
		Authors:         authors,
		DefaultLocale:   config.DefaultLocale,
		URLStrategy:     config.URLStrategy,
		LocaleCookieKey: config.LocaleCookieKey,
		RepoPath:        config.RepoPath,
		GitRemote:       config.GitRemote,
		GitBranch:       config.GitBranch,
		Log:             log,
	}

	// Session Setup
	if config.SessionSecret == "" {
		log.Warn().Msg(l10n.T("SESSION_SECRET is not set"))
	}
	sessionStore := cookie.NewStore([]byte(config.SessionSecret))

	return &http.Server{
		Addr:              ":" + config.Port,
		Handler:           handlers.NewRouter(api, sessionStore),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}
