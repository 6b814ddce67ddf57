package rbxdom

// FontWeight is the numeric weight of a Font (Roblox's FontWeight enum
// values: Thin=100 ... Heavy=900, in steps of 100).
type FontWeight uint16

const (
	FontWeightThin       FontWeight = 100
	FontWeightExtraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightRegular    FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemibold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightExtraBold  FontWeight = 800
	FontWeightHeavy      FontWeight = 900
)

// FontStyle is the slant of a Font.
type FontStyle uint8

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

// Font identifies a typeface by family-definition URI plus weight/style,
// and optionally a cached internal face id (an opaque engine-assigned
// value; zero if unset). This replaces the legacy numeric Font enum; see
// reflection/migration.go for the FontToFontFace migration table that maps
// old enum values to a Font of this shape.
type Font struct {
	Family       string
	Weight       FontWeight
	Style        FontStyle
	CachedFaceID string
}

func (Font) Type() Type      { return TypeFont }
func (v Font) Copy() Variant { return v }

// RegularFont returns the Font for family at regular weight and normal
// style, the common case constructed throughout the Font migration table.
func RegularFont(family string) Font {
	return Font{Family: family, Weight: FontWeightRegular, Style: FontStyleNormal}
}
