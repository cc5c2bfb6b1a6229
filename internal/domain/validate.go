package domain

// Human-readable labels for the submit-time required fields, in the order
// they are reported: identification, origin, grape variety, then the
// appearance, nose, and palate sections.
const (
	LabelName             = "Name"
	LabelProducer         = "Producer"
	LabelRegion           = "Region"
	LabelCountry          = "Country"
	LabelGrapeVariety     = "Grape variety"
	LabelClarity          = "Clarity"
	LabelIntensity        = "Intensity"
	LabelNoseCondition    = "Nose condition"
	LabelNoseIntensity    = "Nose intensity"
	LabelDevelopment      = "Development"
	LabelSweetness        = "Sweetness"
	LabelAcidity          = "Acidity"
	LabelTannin           = "Tannin"
	LabelAlcohol          = "Alcohol"
	LabelBody             = "Body"
	LabelFlavourIntensity = "Flavour intensity"
	LabelFinish           = "Finish"
)

// MissingFields reports every required field that is still empty on a draft,
// as display labels in a fixed deterministic order. It never stops at the
// first gap, so the caller can surface the complete list in one pass. An
// empty result means the draft is submittable.
//
// palate.mousse is checked against the type's TastingProfile; under the
// current policy it is never required (see profile.go).
func MissingFields(w *Wine) []string {
	missing := []string{}

	if w.Name == "" {
		missing = append(missing, LabelName)
	}
	if w.Producer == "" {
		missing = append(missing, LabelProducer)
	}
	if w.Region == "" {
		missing = append(missing, LabelRegion)
	}
	if w.Country == "" {
		missing = append(missing, LabelCountry)
	}
	if len(w.GrapeVariety) == 0 {
		missing = append(missing, LabelGrapeVariety)
	}

	if w.Appearance.Clarity == "" {
		missing = append(missing, LabelClarity)
	}
	if w.Appearance.Intensity == "" {
		missing = append(missing, LabelIntensity)
	}

	if w.Nose.Condition == "" {
		missing = append(missing, LabelNoseCondition)
	}
	if w.Nose.Intensity == "" {
		missing = append(missing, LabelNoseIntensity)
	}
	if w.Nose.Development == "" {
		missing = append(missing, LabelDevelopment)
	}

	if w.Palate.Sweetness == "" {
		missing = append(missing, LabelSweetness)
	}
	if w.Palate.Acidity == "" {
		missing = append(missing, LabelAcidity)
	}
	if w.Palate.Tannin == "" {
		missing = append(missing, LabelTannin)
	}
	if w.Palate.Alcohol == "" {
		missing = append(missing, LabelAlcohol)
	}
	if w.Palate.Body == "" {
		missing = append(missing, LabelBody)
	}
	if w.Palate.FlavourIntensity == "" {
		missing = append(missing, LabelFlavourIntensity)
	}
	if w.Palate.Finish == "" {
		missing = append(missing, LabelFinish)
	}

	if ProfileFor(w.Type).MousseRequired && w.Palate.Mousse == "" {
		missing = append(missing, "Mousse")
	}

	return missing
}

// ValidateDomains checks every populated enum field against its value domain
// and the type-conditional rules. Unlike MissingFields this guards the write
// path: an out-of-domain value reaching persistence is a programmer/data
// error and must propagate, never be coerced.
func ValidateDomains(w *Wine) error {
	var errs []FieldError

	add := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	if !w.Type.IsValid() {
		add("type", "invalid value")
	}
	if w.Price < 0 {
		add("price", "must not be negative")
	}
	if w.Rating < 0 || w.Rating > 5 {
		add("rating", "must be within [0, 5]")
	}
	for _, axis := range []struct {
		name  string
		value float64
	}{
		{"blice.balance", w.Blice.Balance},
		{"blice.length", w.Blice.Length},
		{"blice.intensity", w.Blice.Intensity},
		{"blice.complexity", w.Blice.Complexity},
		{"blice.enjoyment", w.Blice.Enjoyment},
	} {
		if axis.value < 0 || axis.value > 1 {
			add(axis.name, "must be within [0.0, 1.0]")
		}
	}

	if c := w.Appearance.Clarity; c != "" && !c.IsValid() {
		add("appearance.clarity", "invalid value")
	}
	if i := w.Appearance.Intensity; i != "" && !i.IsValid() {
		add("appearance.intensity", "invalid value")
	}

	profile := ProfileFor(w.Type)
	for _, colour := range w.Appearance.Colours {
		if !profile.AllowsColour(colour) {
			add("appearance.colours", "colour "+colour+" not in the "+w.Type.String()+" palette")
		}
	}

	if c := w.Nose.Condition; c != "" && !c.IsValid() {
		add("nose.condition", "invalid value")
	}
	if i := w.Nose.Intensity; i != "" && !i.IsValid() {
		add("nose.intensity", "invalid value")
	}
	if d := w.Nose.Development; d != "" && !d.IsValid() {
		add("nose.development", "invalid value")
	}

	if s := w.Palate.Sweetness; s != "" && !s.IsValid() {
		add("palate.sweetness", "invalid value")
	}
	if a := w.Palate.Acidity; a != "" && !a.IsValid() {
		add("palate.acidity", "invalid value")
	}
	if t := w.Palate.Tannin; t != "" && !t.IsValid() {
		add("palate.tannin", "invalid value")
	}
	if a := w.Palate.Alcohol; a != "" && !a.IsValid() {
		add("palate.alcohol", "invalid value")
	}
	if b := w.Palate.Body; b != "" && !b.IsValid() {
		add("palate.body", "invalid value")
	}
	if f := w.Palate.FlavourIntensity; f != "" && !f.IsValid() {
		add("palate.flavourIntensity", "invalid value")
	}
	if f := w.Palate.Finish; f != "" && !f.IsValid() {
		add("palate.finish", "invalid value")
	}
	if m := w.Palate.Mousse; m != "" {
		if !m.IsValid() {
			add("palate.mousse", "invalid value")
		} else if !profile.MousseApplicable {
			add("palate.mousse", "not applicable for "+w.Type.String()+" wines")
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
