package refdata

import "strings"

// Filter narrows a catalogue to entries matching the typed query, the way the
// pickers complete free text: case-insensitive, prefix matches ranked before
// substring matches, catalogue order preserved within each rank. An empty
// query returns the full catalogue.
func Filter(catalogue []string, query string) []string {
	if query == "" {
		return append([]string{}, catalogue...)
	}

	q := strings.ToLower(query)
	prefix := []string{}
	substring := []string{}
	for _, entry := range catalogue {
		lower := strings.ToLower(entry)
		switch {
		case strings.HasPrefix(lower, q):
			prefix = append(prefix, entry)
		case strings.Contains(lower, q):
			substring = append(substring, entry)
		}
	}
	return append(prefix, substring...)
}
