package refdata

import "sort"

var grapeVarieties = []string{
	// Red
	"Cabernet Sauvignon", "Merlot", "Pinot Noir", "Syrah", "Shiraz",
	"Malbec", "Zinfandel", "Sangiovese", "Nebbiolo", "Grenache",
	"Tempranillo", "Barbera", "Carmenère", "Gamay", "Cabernet Franc",
	"Petit Verdot",

	// White
	"Chardonnay", "Sauvignon Blanc", "Riesling", "Pinot Grigio",
	"Pinot Gris", "Gewürztraminer", "Viognier", "Chenin Blanc", "Semillon",
	"Albariño", "Verdejo", "Grüner Veltliner", "Muscat", "Vermentino",
	"Roussanne", "Marsanne",
}

// GrapeVarieties returns the suggestion list in alphabetical order.
func GrapeVarieties() []string {
	out := append([]string{}, grapeVarieties...)
	sort.Strings(out)
	return out
}
