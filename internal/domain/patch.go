package domain

// WinePatch is a shallow field-level update to a draft. Nil fields are
// untouched; nested sections replace wholesale, mirroring how the form
// submits one section at a time.
type WinePatch struct {
	Name        *string
	Producer    *string
	Country     *string
	Region      *string
	Appellation *string

	// Vintage sets a new vintage year; NonVintage clears it instead.
	// NonVintage wins when both are set.
	Vintage    *int
	NonVintage bool

	Price        *float64
	Type         *WineType
	AlcoholByVol *float64

	GrapeVariety *GrapeVarieties

	Appearance *Appearance
	Nose       *Nose
	Palate     *Palate

	Rating *float64
	Blice  *Blice

	Notes    *string
	ImageURL *string
}

// MergeWine applies a patch to a draft and returns the new draft. Pure: the
// input draft is not modified, and the result is independent of any UI event
// ordering beyond the sequence of patches applied.
func MergeWine(cur Wine, p WinePatch) Wine {
	next := cur

	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Producer != nil {
		next.Producer = *p.Producer
	}
	if p.Country != nil {
		next.Country = *p.Country
	}
	if p.Region != nil {
		next.Region = *p.Region
	}
	if p.Appellation != nil {
		next.Appellation = *p.Appellation
	}

	switch {
	case p.NonVintage:
		next.Vintage = nil
	case p.Vintage != nil:
		v := *p.Vintage
		next.Vintage = &v
	}

	if p.Price != nil {
		next.Price = *p.Price
	}
	if p.Type != nil {
		next.Type = *p.Type
	}
	if p.AlcoholByVol != nil {
		next.AlcoholByVol = *p.AlcoholByVol
	}

	if p.GrapeVariety != nil {
		next.GrapeVariety = append(GrapeVarieties{}, *p.GrapeVariety...)
	}

	if p.Appearance != nil {
		next.Appearance = *p.Appearance
		next.Appearance.Colours = append([]string{}, p.Appearance.Colours...)
	}
	if p.Nose != nil {
		next.Nose = *p.Nose
	}
	if p.Palate != nil {
		next.Palate = *p.Palate
	}

	if p.Rating != nil {
		next.Rating = *p.Rating
	}
	if p.Blice != nil {
		next.Blice = *p.Blice
	}

	if p.Notes != nil {
		next.Notes = *p.Notes
	}
	if p.ImageURL != nil {
		next.ImageURL = *p.ImageURL
	}

	return next
}
