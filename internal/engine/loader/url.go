package loader

import "net/url"

// IsURL reports whether s parses as an absolute URL.
func IsURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}
