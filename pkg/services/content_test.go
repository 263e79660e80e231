package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func writeContent(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}

func newTestStore(t *testing.T) (*ContentStore, string) {
	t.Helper()
	root := t.TempDir()
	writeContent(t, root, "index.md", "---\ntitle: ホーム\n---\n")
	writeContent(t, root, "getting-started.md", "---\ntitle: はじめに\ndate: 2024-05-01\nauthor: \"@tonystrawberry\"\ntags:\n  - nuxt\n---\n\n本文\n")
	writeContent(t, root, "articles/index.md", "---\ntitle: 記事一覧\n---\n")
	writeContent(t, root, "en/index.md", "---\ntitle: Home\n---\n")
	writeContent(t, root, "en/getting-started.md", "+++\ntitle = \"Getting started\"\n+++\n\nBody\n")
	writeContent(t, root, "en/2.guides/1.routing.md", "no front matter here")
	writeContent(t, root, "notes.txt", "ignored")
	return NewContentStore(root, zerolog.Nop()), root
}

func TestCanonicalPath(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"index.md", "/"},
		{"getting-started.md", "/getting-started"},
		{"en/index.md", "/en"},
		{"en/articles/foo.md", "/en/articles/foo"},
		{"1.intro/index.md", "/intro"},
		{filepath.Join("en", "2.guides", "1.routing.md"), "/en/guides/routing"},
	}
	for _, tt := range tests {
		if got := canonicalPath(tt.rel); got != tt.want {
			t.Errorf("canonicalPath(%q) = %q, want %q", tt.rel, got, tt.want)
		}
	}
}

func TestContentStore_Exists(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for _, p := range []string{"/", "/getting-started", "/getting-started/", "/en", "/en/getting-started", "/articles", "/en/guides/routing"} {
		ok, err := store.Exists(ctx, p)
		if err != nil {
			t.Fatalf("Exists(%q) failed: %v", p, err)
		}
		if !ok {
			t.Errorf("Exists(%q) = false, want true", p)
		}
	}
	for _, p := range []string{"/en/articles", "/fr/getting-started", "/notes"} {
		ok, err := store.Exists(ctx, p)
		if err != nil {
			t.Fatalf("Exists(%q) failed: %v", p, err)
		}
		if ok {
			t.Errorf("Exists(%q) = true, want false", p)
		}
	}
}

func TestContentStore_ExistsErrors(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Exists(context.Background(), "getting-started"); !errors.Is(err, ErrMalformedPath) {
		t.Errorf("expected ErrMalformedPath, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Exists(ctx, "/getting-started"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	missing := NewContentStore(filepath.Join(t.TempDir(), "missing"), zerolog.Nop())
	if _, err := missing.Exists(context.Background(), "/"); err == nil {
		t.Error("expected error for a missing content root")
	}
}

func TestContentStore_Get(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	art, err := store.Get(ctx, "/getting-started")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if art.Title != "はじめに" {
		t.Errorf("expected title はじめに, got %q", art.Title)
	}
	if art.Date != "2024-05-01" {
		t.Errorf("expected date 2024-05-01, got %q", art.Date)
	}
	if art.Author != "@tonystrawberry" {
		t.Errorf("expected author @tonystrawberry, got %q", art.Author)
	}
	if art.Body != "本文" {
		t.Errorf("expected body 本文, got %q", art.Body)
	}
	if _, ok := art.Meta["tags"]; !ok {
		t.Error("expected tags in meta")
	}

	en, err := store.Get(ctx, "/en/getting-started")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if en.Format != "toml" || en.Title != "Getting started" {
		t.Errorf("unexpected toml document: %+v", en)
	}

	plain, err := store.Get(ctx, "/en/guides/routing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if plain.Format != "none" || plain.Body != "no front matter here" {
		t.Errorf("unexpected plain document: %+v", plain)
	}

	if _, err := store.Get(ctx, "/nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestContentStore_ListAndInvalidate(t *testing.T) {
	store, root := newTestStore(t)
	ctx := context.Background()

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 6 {
		t.Fatalf("expected 6 documents, got %d", len(list))
	}
	if list[0].Path != "/" {
		t.Errorf("expected sorted list starting with /, got %q", list[0].Path)
	}
	for _, a := range list {
		if a.Body != "" {
			t.Errorf("List must not carry bodies, %s has one", a.Path)
		}
	}

	writeContent(t, root, "en/new-post.md", "---\ntitle: New\n---\n")
	if ok, _ := store.Exists(ctx, "/en/new-post"); ok {
		t.Error("index should be cached until invalidated")
	}
	store.Invalidate()
	if ok, _ := store.Exists(ctx, "/en/new-post"); !ok {
		t.Error("expected new document after Invalidate")
	}
}
