package services

import (
	"path/filepath"
	"regexp"
	"strings"
)

// SafeJoin joins target below root/sub, refusing paths that climb out.
func SafeJoin(root, sub, target string) string {
	cleanTarget := filepath.Clean(target)
	if strings.Contains(cleanTarget, "..") {
		return ""
	}
	return filepath.Join(root, sub, cleanTarget)
}

// 1.getting-started -> getting-started
var orderPrefix = regexp.MustCompile(`^\d+\.`)

// canonicalPath maps a file path relative to the content root to the path
// the document is served under: content/en/1.intro/index.md -> /en/intro.
func canonicalPath(rel string) string {
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))

	segments := strings.Split(rel, "/")
	out := segments[:0]
	for _, seg := range segments {
		seg = orderPrefix.ReplaceAllString(seg, "")
		if seg == "" {
			continue
		}
		out = append(out, seg)
	}
	if n := len(out); n > 0 && out[n-1] == "index" {
		out = out[:n-1]
	}
	return "/" + strings.Join(out, "/")
}
