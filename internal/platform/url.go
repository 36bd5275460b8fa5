package platform

import (
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`(?i)^https?://\S+$`)

// IsValidURL reports whether s looks like an http or https URL
func IsValidURL(s string) bool {
	return urlPattern.MatchString(strings.TrimSpace(s))
}
