package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"techblog/pkg/config"
	"techblog/pkg/translation"
)

func TestNewServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Chdir(t.TempDir())
	if err := config.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	config.ContentPath = t.TempDir()
	if err := os.WriteFile(filepath.Join(config.ContentPath, "hello.md"), []byte("---\ntitle: Hello\n---\n"), 0644); err != nil {
		t.Fatalf("failed to write content: %v", err)
	}

	srv, err := newServer(zerolog.Nop())
	if err != nil {
		t.Fatalf("newServer failed: %v", err)
	}
	if srv.Addr != ":"+config.Port {
		t.Errorf("expected addr :%s, got %q", config.Port, srv.Addr)
	}

	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/translations/check?locale=ja&slug=hello", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"exists":true,"locale":"ja","slug":"hello"}` {
		t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestNewServerRejectsBadConvention(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := config.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	config.URLStrategy = "subdomain"

	if _, err := newServer(zerolog.Nop()); !errors.Is(err, translation.ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}
