package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Wine is a single tasting record. A draft under editing uses the same shape
// with the zero UUID as ID and possibly-empty assessment fields; MissingFields
// decides whether it is submittable.
type Wine struct {
	ID     uuid.UUID `json:"id,omitempty"`
	UserID uuid.UUID `json:"-"`

	Name        string `json:"name"`
	Producer    string `json:"producer"`
	Country     string `json:"country"`
	Region      string `json:"region"`
	Appellation string `json:"appellation,omitempty"`

	// Vintage is nil for non-vintage wines.
	Vintage      *int     `json:"vintage"`
	Price        float64  `json:"price,omitempty"`
	Type         WineType `json:"type"`
	AlcoholByVol float64  `json:"alcoholLevel,omitempty"`

	GrapeVariety GrapeVarieties `json:"grapeVariety"`

	Appearance Appearance `json:"appearance"`
	Nose       Nose       `json:"nose"`
	Palate     Palate     `json:"palate"`

	// Rating is the legacy 0–5 half-star score. When Blice carries any
	// non-zero axis, the BLICE sum supersedes it; see EffectiveRating.
	Rating float64 `json:"rating"`
	Blice  Blice   `json:"blice"`

	Notes    string `json:"notes,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// IsPersisted reports whether the record has been stored (has an ID).
func (w *Wine) IsPersisted() bool { return w.ID != uuid.Nil }

// Appearance is the visual assessment section.
type Appearance struct {
	Clarity   Clarity         `json:"clarity"`
	Intensity ColourIntensity `json:"intensity"`
	Colours   []string        `json:"colours"`
}

// Nose is the aroma assessment section.
type Nose struct {
	Condition           NoseCondition `json:"condition"`
	Intensity           NoseIntensity `json:"intensity"`
	AromaCharacteristics string       `json:"aromaCharacteristics"`
	Development         Development   `json:"development"`
}

// Palate is the taste assessment section. Mousse is empty unless the wine is
// sparkling.
type Palate struct {
	Sweetness        Sweetness        `json:"sweetness"`
	Acidity          StructureLevel   `json:"acidity"`
	Tannin           StructureLevel   `json:"tannin"`
	Alcohol          AlcoholLevel     `json:"alcohol"`
	Body             Body             `json:"body"`
	Mousse           Mousse           `json:"mousse,omitempty"`
	FlavourIntensity FlavourIntensity `json:"flavourIntensity"`
	Finish           Finish           `json:"finish"`
}

// Blice is the five-axis supplementary rating. Each axis is 0.0–1.0 in 0.1
// steps; the sum of the axes is the effective 0–5 rating.
type Blice struct {
	Balance    float64 `json:"balance"`
	Length     float64 `json:"length"`
	Intensity  float64 `json:"intensity"`
	Complexity float64 `json:"complexity"`
	Enjoyment  float64 `json:"enjoyment"`
}

// IsZero reports whether no axis has been scored.
func (b Blice) IsZero() bool {
	return b.Balance == 0 && b.Length == 0 && b.Intensity == 0 &&
		b.Complexity == 0 && b.Enjoyment == 0
}

// DefaultAppearance is the read-path substitute for a missing appearance blob.
func DefaultAppearance() Appearance {
	return Appearance{
		Clarity:   ClarityClear,
		Intensity: ColourIntensityMedium,
		Colours:   []string{},
	}
}

// DefaultNose is the read-path substitute for a missing nose blob.
func DefaultNose() Nose {
	return Nose{
		Condition:   NoseConditionClean,
		Intensity:   NoseIntensityMedium,
		Development: DevelopmentYouthful,
	}
}

// DefaultPalate is the read-path substitute for a missing palate blob.
// Mousse stays empty; it is only carried when the source row has it.
func DefaultPalate() Palate {
	return Palate{
		Sweetness:        SweetnessDry,
		Acidity:          StructureLevelMedium,
		Tannin:           StructureLevelMedium,
		Alcohol:          AlcoholLevelMedium,
		Body:             BodyMedium,
		FlavourIntensity: FlavourIntensityMedium,
		Finish:           FinishMedium,
	}
}

// NewDraft returns an empty draft record with the section defaults a fresh
// "add wine" form starts from.
func NewDraft() Wine {
	return Wine{
		Type:         WineTypeRed,
		GrapeVariety: GrapeVarieties{},
		Appearance:   Appearance{Colours: []string{}},
	}
}

// GrapeVarieties is an ordered set of grape variety names. Its JSON form
// accepts both the current array shape and the legacy single-string shape,
// and always marshals as an array.
type GrapeVarieties []string

// UnmarshalJSON accepts either a JSON array of strings or a bare string
// (the single-variety shape of the first schema generation).
func (g *GrapeVarieties) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return fmt.Errorf("grape variety: %w", err)
		}
		*g = GrapeVarieties{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("grape variety: %w", err)
	}
	*g = GrapeVarieties(many)
	return nil
}

// Contains reports whether the set holds the given variety.
func (g GrapeVarieties) Contains(variety string) bool {
	for _, v := range g {
		if v == variety {
			return true
		}
	}
	return false
}
