package rest

import (
	"net/http"

	"github.com/heartmarshall/mycellar-backend/internal/refdata"
)

// ReferenceHandler serves the static picker catalogues (countries, regions,
// grape varieties). The data never changes at runtime, so no service sits
// behind it. Every endpoint accepts ?q= for combobox completion.
type ReferenceHandler struct{}

// NewReferenceHandler creates a ReferenceHandler.
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// Countries handles GET /reference/countries.
func (h *ReferenceHandler) Countries(w http.ResponseWriter, r *http.Request) {
	countries := refdata.Filter(refdata.Countries(), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, map[string]any{"countries": countries})
}

// Regions handles GET /reference/regions. With ?country= it returns that
// country's regions, otherwise the full list.
func (h *ReferenceHandler) Regions(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")

	var regions []string
	if country != "" {
		regions = refdata.RegionsByCountry(country)
	} else {
		regions = refdata.AllRegions()
	}
	regions = refdata.Filter(regions, r.URL.Query().Get("q"))

	writeJSON(w, http.StatusOK, map[string]any{"regions": regions})
}

// Grapes handles GET /reference/grapes.
func (h *ReferenceHandler) Grapes(w http.ResponseWriter, r *http.Request) {
	grapes := refdata.Filter(refdata.GrapeVarieties(), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, map[string]any{"grapeVarieties": grapes})
}
