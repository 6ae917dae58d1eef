package tags

import (
	"strings"
)

// DefaultTag labels ideas whose authors provided no usable tags.
const DefaultTag = "no tags"

// Normalize cleans a user supplied tag list: lowercases, trims
// whitespace, drops empties and duplicates, caps the list at limit, and
// falls back to the default tag when nothing is left.
func Normalize(titles []string, limit int) []string {
	seen := map[string]bool{}
	clean := make([]string, 0, len(titles))
	for _, title := range titles {
		title = strings.ToLower(strings.TrimSpace(title))
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true
		clean = append(clean, title)
		if len(clean) == limit {
			break
		}
	}
	if len(clean) == 0 {
		return []string{DefaultTag}
	}
	return clean
}

// Diff compares an idea's current tags against the next set and returns
// what needs attaching and what needs detaching.
func Diff(current, next []string) (added, removed []string) {
	added = []string{}
	removed = []string{}
	in := func(list []string, title string) bool {
		for _, item := range list {
			if strings.EqualFold(item, title) {
				return true
			}
		}
		return false
	}
	for _, title := range next {
		if !in(current, title) {
			added = append(added, title)
		}
	}
	for _, title := range current {
		if !in(next, title) {
			removed = append(removed, title)
		}
	}
	return
}
