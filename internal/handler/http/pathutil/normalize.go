// Package pathutil holds path helpers shared by handlers and HTTP metrics.
package pathutil

import (
	"regexp"
	"strings"
)

type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// Checked in order; literal routes such as /items/fetch never match \d+.
var pathPatterns = []pathPattern{
	{regexp.MustCompile(`^/items/\d+$`), "/items/:id"},
	{regexp.MustCompile(`^/items/source/[^/]+$`), "/items/source/:source"},
	{regexp.MustCompile(`^/summaries/\d+$`), "/summaries/:id"},
}

// NormalizePath maps dynamic paths to templates so metric labels stay
// bounded: /items/42 becomes /items/:id. Query strings and a trailing slash
// are dropped; unknown paths are returned unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
