package services

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/rs/zerolog"

	"techblog/pkg/models"
)

// document is one indexed content file. The body is not kept in memory.
type document struct {
	file    string
	article models.Article
}

// buildIndex walks root and indexes every markdown file by canonical path.
func buildIndex(root string, log zerolog.Logger) (map[string]document, error) {
	index := make(map[string]document)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		canonical := canonicalPath(relPath)
		if prev, dup := index[canonical]; dup {
			log.Warn().Str("path", canonical).Str("file", relPath).Str("kept", prev.file).
				Msg(l10n.T("Duplicate content path ignored"))
			return nil
		}

		title := filepath.ToSlash(relPath) // Default to path
		art := models.Article{Path: canonical, Title: title}
		if content, err := os.ReadFile(path); err == nil {
			art = articleFromContent(canonical, title, content)
			art.Body = ""
		} else {
			log.Warn().Err(err).Str("file", relPath).Msg(l10n.T("Failed to read content file"))
		}

		index[canonical] = document{file: relPath, article: art}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Int("documents", len(index)).Str("root", root).Msg(l10n.T("Content index built"))
	return index, nil
}
