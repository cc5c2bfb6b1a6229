package domain

// mousseRequiredForSparkling is the submit-time policy for palate.mousse.
// Deliberately false: recorded tastings of sparkling wines without a mousse
// note are valid historical data, so mousse stays optional for every type.
const mousseRequiredForSparkling = false

// Colour vocabularies per wine type. Sparkling wines share the white palette;
// sweet and fortified wines have no colour vocabulary of their own.
var (
	whiteColours = []string{"lemon-green", "lemon", "gold", "amber", "brown"}
	roseColours  = []string{"pink", "salmon", "orange"}
	redColours   = []string{"purple", "ruby", "garnet", "tawny", "brown"}
)

// TastingProfile describes which sensory fields apply to a wine type. The
// validator and any rendering layer both consult it, so the two cannot drift.
type TastingProfile struct {
	// ColourPalette is the permitted appearance.colours vocabulary. Empty
	// means the type has no colour vocabulary and zero selections.
	ColourPalette []string

	// MousseApplicable reports whether palate.mousse should be shown/accepted.
	MousseApplicable bool

	// MousseRequired reports whether palate.mousse is in the required set.
	MousseRequired bool
}

// ProfileFor returns the tasting profile for a wine type. Unknown types get
// an empty profile.
func ProfileFor(t WineType) TastingProfile {
	switch t {
	case WineTypeWhite:
		return TastingProfile{ColourPalette: whiteColours}
	case WineTypeSparkling:
		return TastingProfile{
			ColourPalette:    whiteColours,
			MousseApplicable: true,
			MousseRequired:   mousseRequiredForSparkling,
		}
	case WineTypeRose:
		return TastingProfile{ColourPalette: roseColours}
	case WineTypeRed:
		return TastingProfile{ColourPalette: redColours}
	default:
		return TastingProfile{}
	}
}

// AllowsColour reports whether the colour is in the profile's palette.
func (p TastingProfile) AllowsColour(colour string) bool {
	for _, c := range p.ColourPalette {
		if c == colour {
			return true
		}
	}
	return false
}
