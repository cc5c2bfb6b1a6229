package domain

import "strings"

// NormalizeSearch prepares free-text search input for matching: trims,
// lowercases, and collapses runs of whitespace to single spaces. Diacritics
// are preserved — "Rhône" and "rhône" match, "Rhone" does not.
func NormalizeSearch(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	return strings.Join(fields, " ")
}

// NormalizeGrapeVarieties prepares a variety set for storage: trims each
// name, drops empties, and removes exact duplicates while preserving order.
// Casing is kept as entered ("Pinot Noir" and "pinot noir" stay distinct).
func NormalizeGrapeVarieties(g GrapeVarieties) GrapeVarieties {
	out := make(GrapeVarieties, 0, len(g))
	for _, v := range g {
		v = strings.TrimSpace(v)
		if v == "" || out.Contains(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}
