package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"techblog/pkg/models"
)

var (
	ErrNotFound      = errors.New("content not found")
	ErrMalformedPath = errors.New("malformed content path")
)

// ContentStore serves the markdown tree under root, keyed by canonical path.
// The index is built on first use and rebuilt after Invalidate.
type ContentStore struct {
	root string
	log  zerolog.Logger

	mu     sync.Mutex
	index  map[string]document
	loaded bool
}

func NewContentStore(root string, log zerolog.Logger) *ContentStore {
	return &ContentStore{root: root, log: log.With().Str("component", "content").Logger()}
}

func (s *ContentStore) Root() string {
	return s.root
}

// Exists reports whether a document lives at path. Trailing slashes are ignored.
func (s *ContentStore) Exists(ctx context.Context, path string) (bool, error) {
	_, ok, err := s.lookup(ctx, path)
	return ok, err
}

// Get returns the document at path including its body.
func (s *ContentStore) Get(ctx context.Context, path string) (models.Article, error) {
	doc, ok, err := s.lookup(ctx, path)
	if err != nil {
		return models.Article{}, err
	}
	if !ok {
		return models.Article{}, fmt.Errorf("%s: %w", path, ErrNotFound)
	}

	fullPath := SafeJoin(s.root, "", doc.file)
	if fullPath == "" {
		return models.Article{}, fmt.Errorf("%s: %w", doc.file, ErrMalformedPath)
	}
	content, err := os.ReadFile(fullPath)
	if err != nil {
		return models.Article{}, fmt.Errorf("read %s: %w", doc.file, err)
	}
	return articleFromContent(doc.article.Path, doc.article.Title, content), nil
}

// List returns every document without body, sorted by path.
func (s *ContentStore) List(ctx context.Context) ([]models.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	index, err := s.load()
	if err != nil {
		return nil, err
	}
	articles := make([]models.Article, 0, len(index))
	for _, doc := range index {
		articles = append(articles, doc.article)
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].Path < articles[j].Path })
	return articles, nil
}

// Invalidate drops the index so the next lookup rescans the tree.
func (s *ContentStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.index = nil
}

func (s *ContentStore) lookup(ctx context.Context, path string) (document, bool, error) {
	if err := ctx.Err(); err != nil {
		return document{}, false, err
	}
	if !strings.HasPrefix(path, "/") {
		return document{}, false, fmt.Errorf("%q: %w", path, ErrMalformedPath)
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	index, err := s.load()
	if err != nil {
		return document{}, false, err
	}
	doc, ok := index[path]
	return doc, ok, nil
}

func (s *ContentStore) load() (map[string]document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.index, nil
	}
	index, err := buildIndex(s.root, s.log)
	if err != nil {
		return nil, fmt.Errorf("index content %s: %w", s.root, err)
	}
	s.index = index
	s.loaded = true
	return s.index, nil
}
