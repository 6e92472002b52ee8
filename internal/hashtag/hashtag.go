// Package hashtag extracts #tags from post content.
package hashtag

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`#(\w+)`)

// Extract returns every hashtag mentioned in text, in order of appearance,
// with original casing and duplicates preserved. The leading '#' is stripped.
func Extract(text string) []string {
	matches := tagPattern.FindAllStringSubmatch(text, -1)
	if matches == nil {
		return nil
	}
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}

// Normalize maps a tag to its canonical stored form. "#CS101" and "#cs101"
// count against the same hashtag row.
func Normalize(tag string) string {
	return strings.ToLower(tag)
}
