package markdown

import (
	"regexp"
	"strings"
)

var urlRe = regexp.MustCompile(`^https?://\S+$`)

// IsURL reports whether the trimmed text looks like an http(s) url.
func IsURL(text string) bool {
	return urlRe.MatchString(strings.TrimSpace(text))
}

// Link builds the markdown link syntax.
func Link(text, url string) string {
	return "[" + text + "](" + url + ")"
}
