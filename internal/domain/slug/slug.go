package slug

import (
	"regexp"
	"strings"
)

/*
	Slug helpers
	------------
	- Responsible ONLY for turning titles into URL-safe keys.
	- Same rules as the admin UI so a slug derived server-side matches
	  the one the editor would have suggested.
*/

var (
	quotes  = regexp.MustCompile(`['"]`)
	nonSlug = regexp.MustCompile(`[^a-z0-9]+`)
)

// Make generates a URL-safe slug from free text.
// Example: "Hunch: A Short Film" -> "hunch-a-short-film"
func Make(input string) string {
	base := strings.ToLower(strings.TrimSpace(input))
	base = quotes.ReplaceAllString(base, "")
	base = nonSlug.ReplaceAllString(base, "-")
	return strings.Trim(base, "-")
}

// Resolve returns the explicit slug when one was given, otherwise one derived
// from the title. Both empty stays empty.
func Resolve(explicit, title string) string {
	if explicit != "" {
		return explicit
	}
	return Make(title)
}
