package wine

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mycellar-backend/internal/domain"
)

// wineRow mirrors the wines table. The assessment sections live in JSONB
// columns that may be NULL on rows created before the section existed; the
// read path substitutes defaults so callers never see a partial record.
type wineRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Producer     string
	Country      string
	Region       string
	Appellation  string
	Vintage      *int
	Price        float64
	Type         string
	AlcoholByVol float64
	GrapeVariety []string
	Appearance   []byte
	Nose         []byte
	Palate       []byte
	Rating       int
	Blice        []byte
	Notes        string
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// toDomain converts a stored row to the domain record.
//
// Missing or unreadable JSONB sections fall back to the section defaults
// rather than failing the read: a legacy row must stay listable. The stored
// half-star integer is converted back to the UI 0-5 scale.
func toDomain(row wineRow) domain.Wine {
	w := domain.Wine{
		ID:           row.ID,
		UserID:       row.UserID,
		Name:         row.Name,
		Producer:     row.Producer,
		Country:      row.Country,
		Region:       row.Region,
		Appellation:  row.Appellation,
		Vintage:      row.Vintage,
		Price:        row.Price,
		Type:         domain.WineType(row.Type),
		AlcoholByVol: row.AlcoholByVol,
		GrapeVariety: domain.GrapeVarieties(row.GrapeVariety),
		Rating:       domain.UIRating(row.Rating),
		Notes:        row.Notes,
		ImageURL:     row.ImageURL,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if w.GrapeVariety == nil {
		w.GrapeVariety = domain.GrapeVarieties{}
	}

	w.Appearance = domain.DefaultAppearance()
	if len(row.Appearance) > 0 {
		var a domain.Appearance
		if err := json.Unmarshal(row.Appearance, &a); err == nil {
			w.Appearance = a
		}
	}
	if w.Appearance.Colours == nil {
		w.Appearance.Colours = []string{}
	}

	w.Nose = domain.DefaultNose()
	if len(row.Nose) > 0 {
		var n domain.Nose
		if err := json.Unmarshal(row.Nose, &n); err == nil {
			w.Nose = n
		}
	}

	w.Palate = domain.DefaultPalate()
	if len(row.Palate) > 0 {
		var p domain.Palate
		if err := json.Unmarshal(row.Palate, &p); err == nil {
			w.Palate = p
		}
	}

	if len(row.Blice) > 0 {
		var b domain.Blice
		if err := json.Unmarshal(row.Blice, &b); err == nil {
			w.Blice = b
		}
	}

	return w
}

// fromDomain converts a domain record to its stored row. The rating column
// holds the effective rating in half-star units so SQL filtering and sorting
// see BLICE-derived scores the same as legacy ones.
func fromDomain(w *domain.Wine) (wineRow, error) {
	appearance, err := json.Marshal(w.Appearance)
	if err != nil {
		return wineRow{}, err
	}
	nose, err := json.Marshal(w.Nose)
	if err != nil {
		return wineRow{}, err
	}
	palate, err := json.Marshal(w.Palate)
	if err != nil {
		return wineRow{}, err
	}

	var blice []byte
	if !w.Blice.IsZero() {
		if blice, err = json.Marshal(w.Blice); err != nil {
			return wineRow{}, err
		}
	}

	return wineRow{
		ID:           w.ID,
		UserID:       w.UserID,
		Name:         w.Name,
		Producer:     w.Producer,
		Country:      w.Country,
		Region:       w.Region,
		Appellation:  w.Appellation,
		Vintage:      w.Vintage,
		Price:        w.Price,
		Type:         w.Type.String(),
		AlcoholByVol: w.AlcoholByVol,
		GrapeVariety: []string(w.GrapeVariety),
		Appearance:   appearance,
		Nose:         nose,
		Palate:       palate,
		Rating:       domain.StoredRating(w.EffectiveRating()),
		Blice:        blice,
		Notes:        w.Notes,
		ImageURL:     w.ImageURL,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}, nil
}
