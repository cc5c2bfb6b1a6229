// Package refdata holds the static reference catalogue behind the form's
// country, region, and grape pickers. The lists are suggestions only; the
// record keeps whatever free text the user entered.
package refdata

import "sort"

// WineRegion groups a producing country with its named regions.
type WineRegion struct {
	Country string   `json:"country"`
	Regions []string `json:"regions"`
}

var wineRegions = []WineRegion{
	{
		Country: "France",
		Regions: []string{
			"Bordeaux", "Burgundy", "Champagne", "Alsace", "Loire Valley",
			"Rhône Valley", "Provence", "Languedoc-Roussillon", "Beaujolais",
			"Jura", "Savoie", "Corsica", "South West",
		},
	},
	{
		Country: "Italy",
		Regions: []string{
			"Piedmont", "Tuscany", "Veneto", "Sicily", "Sardinia",
			"Friuli-Venezia Giulia", "Trentino-Alto Adige", "Lombardy",
			"Emilia-Romagna", "Umbria", "Marche", "Abruzzo", "Campania",
			"Puglia", "Calabria", "Basilicata", "Molise", "Lazio", "Liguria",
			"Valle d'Aosta",
		},
	},
	{
		Country: "Spain",
		Regions: []string{
			"Rioja", "Ribera del Duero", "Priorat", "Catalonia", "Galicia",
			"Castilla y León", "Castilla-La Mancha", "Andalusia", "Valencia",
			"Navarra", "Aragon", "Balearic Islands", "Canary Islands",
			"Murcia", "Basque Country", "Extremadura",
		},
	},
	{
		Country: "United States",
		Regions: []string{
			"Napa Valley", "Sonoma", "Central Coast", "Oregon", "Washington",
			"New York", "Virginia", "Texas", "Michigan", "Colorado", "Arizona",
			"Idaho", "North Carolina", "Missouri", "Pennsylvania",
		},
	},
	{
		Country: "Argentina",
		Regions: []string{
			"Mendoza", "Salta", "San Juan", "La Rioja", "Patagonia",
			"Catamarca", "Córdoba", "Neuquén", "Río Negro",
		},
	},
	{
		Country: "Chile",
		Regions: []string{
			"Maipo Valley", "Colchagua Valley", "Casablanca Valley",
			"Aconcagua Valley", "Leyda Valley", "Maule Valley",
			"Bio Bio Valley", "Elqui Valley", "Rapel Valley", "Curicó Valley",
			"Limari Valley",
		},
	},
	{
		Country: "Australia",
		Regions: []string{
			"Barossa Valley", "McLaren Vale", "Hunter Valley", "Yarra Valley",
			"Margaret River", "Coonawarra", "Clare Valley", "Eden Valley",
			"Tasmania", "Adelaide Hills", "Great Southern",
			"Mornington Peninsula", "Riverina", "Rutherglen",
		},
	},
	{
		Country: "New Zealand",
		Regions: []string{
			"Marlborough", "Hawke's Bay", "Central Otago", "Wairarapa",
			"Canterbury", "Nelson", "Auckland", "Gisborne", "Waiheke Island",
		},
	},
	{
		Country: "Germany",
		Regions: []string{
			"Mosel", "Rheingau", "Pfalz", "Rheinhessen", "Baden", "Franken",
			"Nahe", "Ahr", "Württemberg", "Saale-Unstrut", "Mittelrhein",
			"Hessische Bergstraße", "Sachsen",
		},
	},
	{
		Country: "Portugal",
		Regions: []string{
			"Douro", "Alentejo", "Dão", "Bairrada", "Vinho Verde", "Lisboa",
			"Tejo", "Madeira", "Setúbal Peninsula", "Algarve",
			"Trás-os-Montes", "Távora-Varosa", "Beira Interior",
		},
	},
	{
		Country: "South Africa",
		Regions: []string{
			"Stellenbosch", "Paarl", "Franschhoek", "Swartland", "Walker Bay",
			"Constantia", "Robertson", "Elgin", "Hemel-en-Aarde", "Overberg",
			"Cape South Coast", "Klein Karoo", "Tulbagh",
		},
	},
	{
		Country: "Austria",
		Regions: []string{
			"Wachau", "Kamptal", "Kremstal", "Burgenland", "Styria", "Vienna",
			"Weinviertel", "Thermenregion", "Neusiedlersee", "Carnuntum",
			"Wagram",
		},
	},
	{
		Country: "Greece",
		Regions: []string{
			"Macedonia", "Peloponnese", "Crete", "Santorini", "Nemea",
			"Naoussa", "Attica", "Central Greece", "Epirus", "Thessaly",
			"Aegean Islands",
		},
	},
	{
		Country: "Hungary",
		Regions: []string{
			"Tokaj", "Eger", "Villány", "Balaton", "Somló", "Sopron",
			"Szekszárd", "Mátra", "Hajós-Baja", "Nagy-Somló", "Etyek-Buda",
		},
	},
	{
		Country: "Canada",
		Regions: []string{
			"Niagara Peninsula", "Okanagan Valley", "Prince Edward County",
			"Nova Scotia", "Vancouver Island", "Similkameen Valley",
			"Pelee Island", "Lake Erie North Shore", "Fraser Valley",
		},
	},
}

// Countries returns the producing countries in alphabetical order.
func Countries() []string {
	out := make([]string, len(wineRegions))
	for i, wr := range wineRegions {
		out[i] = wr.Country
	}
	sort.Strings(out)
	return out
}

// RegionsByCountry returns the sorted regions of a country, or an empty slice
// for an unknown country.
func RegionsByCountry(country string) []string {
	for _, wr := range wineRegions {
		if wr.Country == country {
			out := append([]string{}, wr.Regions...)
			sort.Strings(out)
			return out
		}
	}
	return []string{}
}

// AllRegions returns every known region, sorted.
func AllRegions() []string {
	var out []string
	for _, wr := range wineRegions {
		out = append(out, wr.Regions...)
	}
	sort.Strings(out)
	return out
}
