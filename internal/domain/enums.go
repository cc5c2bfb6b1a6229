package domain

// WineType classifies a wine for palette and field-applicability rules.
type WineType string

const (
	WineTypeRed       WineType = "red"
	WineTypeRose      WineType = "rosé"
	WineTypeWhite     WineType = "white"
	WineTypeSparkling WineType = "sparkling"
	WineTypeSweet     WineType = "sweet"
	WineTypeFortified WineType = "fortified"
)

func (t WineType) String() string { return string(t) }

func (t WineType) IsValid() bool {
	switch t {
	case WineTypeRed, WineTypeRose, WineTypeWhite,
		WineTypeSparkling, WineTypeSweet, WineTypeFortified:
		return true
	}
	return false
}

// Clarity is the appearance clarity assessment.
type Clarity string

const (
	ClarityClear Clarity = "clear"
	ClarityHazy  Clarity = "hazy"
)

func (c Clarity) String() string { return string(c) }

func (c Clarity) IsValid() bool {
	switch c {
	case ClarityClear, ClarityHazy:
		return true
	}
	return false
}

// ColourIntensity is the appearance intensity assessment.
type ColourIntensity string

const (
	ColourIntensityPale   ColourIntensity = "pale"
	ColourIntensityMedium ColourIntensity = "medium"
	ColourIntensityDeep   ColourIntensity = "deep"
)

func (i ColourIntensity) String() string { return string(i) }

func (i ColourIntensity) IsValid() bool {
	switch i {
	case ColourIntensityPale, ColourIntensityMedium, ColourIntensityDeep:
		return true
	}
	return false
}

// NoseCondition is the nose condition assessment.
type NoseCondition string

const (
	NoseConditionClean   NoseCondition = "clean"
	NoseConditionUnclean NoseCondition = "unclean"
)

func (c NoseCondition) String() string { return string(c) }

func (c NoseCondition) IsValid() bool {
	switch c {
	case NoseConditionClean, NoseConditionUnclean:
		return true
	}
	return false
}

// NoseIntensity is the aroma intensity on the five-step light..pronounced scale.
type NoseIntensity string

const (
	NoseIntensityLight       NoseIntensity = "light"
	NoseIntensityMediumMinus NoseIntensity = "medium-"
	NoseIntensityMedium      NoseIntensity = "medium"
	NoseIntensityMediumPlus  NoseIntensity = "medium+"
	NoseIntensityPronounced  NoseIntensity = "pronounced"
)

func (i NoseIntensity) String() string { return string(i) }

func (i NoseIntensity) IsValid() bool {
	switch i {
	case NoseIntensityLight, NoseIntensityMediumMinus, NoseIntensityMedium,
		NoseIntensityMediumPlus, NoseIntensityPronounced:
		return true
	}
	return false
}

// Development is the aroma development assessment.
type Development string

const (
	DevelopmentYouthful       Development = "youthful"
	DevelopmentDeveloping     Development = "developing"
	DevelopmentFullyDeveloped Development = "fully developed"
	DevelopmentTired          Development = "tired"
)

func (d Development) String() string { return string(d) }

func (d Development) IsValid() bool {
	switch d {
	case DevelopmentYouthful, DevelopmentDeveloping,
		DevelopmentFullyDeveloped, DevelopmentTired:
		return true
	}
	return false
}

// Sweetness is the palate sweetness assessment.
type Sweetness string

const (
	SweetnessDry         Sweetness = "dry"
	SweetnessOffDry      Sweetness = "off-dry"
	SweetnessMediumDry   Sweetness = "medium-dry"
	SweetnessMediumSweet Sweetness = "medium-sweet"
	SweetnessSweet       Sweetness = "sweet"
	SweetnessLuscious    Sweetness = "luscious"
)

func (s Sweetness) String() string { return string(s) }

func (s Sweetness) IsValid() bool {
	switch s {
	case SweetnessDry, SweetnessOffDry, SweetnessMediumDry,
		SweetnessMediumSweet, SweetnessSweet, SweetnessLuscious:
		return true
	}
	return false
}

// StructureLevel is the five-step low..high scale used for acidity and tannin.
type StructureLevel string

const (
	StructureLevelLow         StructureLevel = "low"
	StructureLevelMediumMinus StructureLevel = "medium-"
	StructureLevelMedium      StructureLevel = "medium"
	StructureLevelMediumPlus  StructureLevel = "medium+"
	StructureLevelHigh        StructureLevel = "high"
)

func (l StructureLevel) String() string { return string(l) }

func (l StructureLevel) IsValid() bool {
	switch l {
	case StructureLevelLow, StructureLevelMediumMinus, StructureLevelMedium,
		StructureLevelMediumPlus, StructureLevelHigh:
		return true
	}
	return false
}

// AlcoholLevel is the three-step palate alcohol assessment.
type AlcoholLevel string

const (
	AlcoholLevelLow    AlcoholLevel = "low"
	AlcoholLevelMedium AlcoholLevel = "medium"
	AlcoholLevelHigh   AlcoholLevel = "high"
)

func (l AlcoholLevel) String() string { return string(l) }

func (l AlcoholLevel) IsValid() bool {
	switch l {
	case AlcoholLevelLow, AlcoholLevelMedium, AlcoholLevelHigh:
		return true
	}
	return false
}

// Body is the palate body assessment.
type Body string

const (
	BodyLight       Body = "light"
	BodyMediumMinus Body = "medium-"
	BodyMedium      Body = "medium"
	BodyMediumPlus  Body = "medium+"
	BodyFull        Body = "full"
)

func (b Body) String() string { return string(b) }

func (b Body) IsValid() bool {
	switch b {
	case BodyLight, BodyMediumMinus, BodyMedium, BodyMediumPlus, BodyFull:
		return true
	}
	return false
}

// FlavourIntensity is the palate flavour intensity on the light..pronounced scale.
type FlavourIntensity string

const (
	FlavourIntensityLight       FlavourIntensity = "light"
	FlavourIntensityMediumMinus FlavourIntensity = "medium-"
	FlavourIntensityMedium      FlavourIntensity = "medium"
	FlavourIntensityMediumPlus  FlavourIntensity = "medium+"
	FlavourIntensityPronounced  FlavourIntensity = "pronounced"
)

func (i FlavourIntensity) String() string { return string(i) }

func (i FlavourIntensity) IsValid() bool {
	switch i {
	case FlavourIntensityLight, FlavourIntensityMediumMinus, FlavourIntensityMedium,
		FlavourIntensityMediumPlus, FlavourIntensityPronounced:
		return true
	}
	return false
}

// Finish is the palate finish length assessment.
type Finish string

const (
	FinishShort       Finish = "short"
	FinishMediumMinus Finish = "medium-"
	FinishMedium      Finish = "medium"
	FinishMediumPlus  Finish = "medium+"
	FinishLong        Finish = "long"
)

func (f Finish) String() string { return string(f) }

func (f Finish) IsValid() bool {
	switch f {
	case FinishShort, FinishMediumMinus, FinishMedium, FinishMediumPlus, FinishLong:
		return true
	}
	return false
}

// Mousse is the sparkling-wine mousse assessment. Only meaningful when the
// wine type is sparkling; see TastingProfile.
type Mousse string

const (
	MousseDelicate   Mousse = "delicate"
	MousseCreamy     Mousse = "creamy"
	MousseAggressive Mousse = "aggressive"
)

func (m Mousse) String() string { return string(m) }

func (m Mousse) IsValid() bool {
	switch m {
	case MousseDelicate, MousseCreamy, MousseAggressive:
		return true
	}
	return false
}
