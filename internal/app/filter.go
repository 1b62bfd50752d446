package app

import "strings"

// FilterByName keeps the items whose name contains query, ignoring case.
// An empty query returns items unchanged.
func FilterByName[T any](items []T, query string, name func(T) string) []T {
	if query == "" {
		return items
	}
	needle := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(name(item)), needle) {
			out = append(out, item)
		}
	}
	return out
}
