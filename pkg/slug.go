package pkg

import (
	"regexp"
	"strings"
)

var nonSlug = regexp.MustCompile("[^a-z0-9]+")

// GenerateSlug lowercases title and joins its alphanumeric runs with "-".
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = nonSlug.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return "untitled-job"
	}
	return slug
}
