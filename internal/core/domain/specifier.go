package domain

import (
	"net/url"
	"path/filepath"
	"strings"
)

// FileURL converts an absolute path to a file:// URL string. Directories
// should pass a trailing separator so relative specifiers resolve inside them.
func FileURL(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

// FilePath returns the local path a specifier refers to. It accepts absolute
// paths and file:// URLs; the query and fragment are ignored.
func FilePath(specifier string) (string, bool) {
	if filepath.IsAbs(specifier) {
		if i := strings.IndexByte(specifier, '?'); i >= 0 {
			specifier = specifier[:i]
		}
		return specifier, true
	}
	u, err := url.Parse(specifier)
	if err != nil || u.Scheme != "file" {
		return "", false
	}
	return filepath.FromSlash(u.Path), true
}
