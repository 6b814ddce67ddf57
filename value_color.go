package rbxdom

// Color3 is an RGB color with single-precision float components, typically
// in [0,1] but not clamped (Roblox allows out-of-range HDR colors).
type Color3 struct {
	R, G, B float32
}

func (Color3) Type() Type      { return TypeColor3 }
func (v Color3) Copy() Variant { return v }

// ToColor3uint8 quantizes c to byte precision, clamping to [0,1] first.
func (c Color3) ToColor3uint8() Color3uint8 {
	clamp := func(f float32) uint8 {
		if f <= 0 {
			return 0
		}
		if f >= 1 {
			return 255
		}
		return uint8(f*255 + 0.5)
	}
	return Color3uint8{clamp(c.R), clamp(c.G), clamp(c.B)}
}

// Color3uint8 is an RGB color with byte-precision components, as used by
// BrickColor.Color() and the binary format's packed-Color3 property kind.
type Color3uint8 struct {
	R, G, B uint8
}

func (Color3uint8) Type() Type      { return TypeColor3uint8 }
func (v Color3uint8) Copy() Variant { return v }

// ToColor3 expands c to float precision.
func (c Color3uint8) ToColor3() Color3 {
	return Color3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// BrickColor is a legacy named-palette color, stored as its palette number.
// The full 208-entry palette is in value_brickcolor_table.go.
type BrickColor uint16

func (BrickColor) Type() Type      { return TypeBrickColor }
func (v BrickColor) Copy() Variant { return v }

// Name returns the palette entry's canonical name, or "" if num is not a
// known BrickColor number.
func (b BrickColor) Name() string {
	if e, ok := brickColorByNumber[uint16(b)]; ok {
		return e.Name
	}
	return ""
}

// DisplayName returns the palette entry's human-readable display name.
func (b BrickColor) DisplayName() string {
	if e, ok := brickColorByNumber[uint16(b)]; ok {
		return e.Display
	}
	return ""
}

// Color returns the palette entry's RGB color, or the zero Color3uint8 if
// num is not a known BrickColor number.
func (b BrickColor) Color() Color3uint8 {
	if e, ok := brickColorByNumber[uint16(b)]; ok {
		return e.Color
	}
	return Color3uint8{}
}

// ToColor3 returns the palette color's Color3 form, used by the
// BrickColorToColor migration (reflection/migration.go).
func (b BrickColor) ToColor3() Color3 {
	return b.Color().ToColor3()
}

// BrickColorFromName returns the BrickColor whose palette Name matches
// name, and true, or (0, false) if no entry matches.
func BrickColorFromName(name string) (BrickColor, bool) {
	if e, ok := brickColorByName[name]; ok {
		return BrickColor(e.Number), true
	}
	return 0, false
}

// Palette returns the full BrickColor palette in table order.
func Palette() []BrickColor {
	out := make([]BrickColor, len(brickColorTable))
	for i, e := range brickColorTable {
		out[i] = BrickColor(e.Number)
	}
	return out
}

// nearestBrickColor returns the palette entry whose color is closest to c
// under squared Euclidean distance, used when coercing an arbitrary Color3
// down to BrickColor (Convert's coercion, see convert.go).
func nearestBrickColor(c Color3) BrickColor {
	target := c.ToColor3uint8()
	best := BrickColor(brickColorTable[0].Number)
	bestDist := -1
	for _, e := range brickColorTable {
		dr := int(e.Color.R) - int(target.R)
		dg := int(e.Color.G) - int(target.G)
		db := int(e.Color.B) - int(target.B)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = BrickColor(e.Number)
		}
	}
	return best
}
