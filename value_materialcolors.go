package rbxdom

import "fmt"

// TerrainMaterial names one of the 21 paintable Terrain materials.
type TerrainMaterial uint8

const (
	MaterialGrass TerrainMaterial = iota
	MaterialSlate
	MaterialConcrete
	MaterialBrick
	MaterialSand
	MaterialWoodPlanks
	MaterialRock
	MaterialGlacier
	MaterialSnow
	MaterialSandstone
	MaterialMud
	MaterialBasalt
	MaterialGround
	MaterialCrackedLava
	MaterialAsphalt
	MaterialCobblestone
	MaterialIce
	MaterialLeafyGrass
	MaterialSalt
	MaterialLimestone
	MaterialPavement
	materialCount
)

// materialOrder is the exact on-wire ordering of the 21 materials, ported
// from original_source/rbx_types/src/material_colors.rs's MATERIAL_ORDER.
var materialOrder = [materialCount]TerrainMaterial{
	MaterialGrass, MaterialSlate, MaterialConcrete, MaterialBrick, MaterialSand,
	MaterialWoodPlanks, MaterialRock, MaterialGlacier, MaterialSnow, MaterialSandstone,
	MaterialMud, MaterialBasalt, MaterialGround, MaterialCrackedLava, MaterialAsphalt,
	MaterialCobblestone, MaterialIce, MaterialLeafyGrass, MaterialSalt, MaterialLimestone,
	MaterialPavement,
}

// defaultMaterialColor gives each material's default paint color. The
// first twelve entries are ported verbatim from
// original_source/rbx_types/src/material_colors.rs; the remaining nine
// (Ground, CrackedLava, Asphalt, Cobblestone, Ice, LeafyGrass, Salt,
// Limestone, Pavement) were not present in the retrieved excerpt of that
// file and are supplied here as reasonable, documented best-effort
// defaults rather than left undefined (see DESIGN.md) — MaterialColors'
// wire format requires a color for all 21 slots regardless.
var defaultMaterialColor = map[TerrainMaterial]Color3uint8{
	MaterialGrass:       {106, 127, 63},
	MaterialSlate:       {63, 127, 107},
	MaterialConcrete:    {127, 102, 63},
	MaterialBrick:       {138, 86, 62},
	MaterialSand:        {143, 126, 95},
	MaterialWoodPlanks:  {139, 109, 79},
	MaterialRock:        {102, 108, 111},
	MaterialGlacier:     {101, 176, 234},
	MaterialSnow:        {195, 199, 218},
	MaterialSandstone:   {137, 90, 71},
	MaterialMud:         {58, 46, 36},
	MaterialBasalt:      {30, 30, 37},
	MaterialGround:      {102, 92, 59},
	MaterialCrackedLava: {87, 45, 27},
	MaterialAsphalt:     {76, 78, 77},
	MaterialCobblestone: {109, 102, 97},
	MaterialIce:         {195, 229, 243},
	MaterialLeafyGrass:  {69, 90, 48},
	MaterialSalt:        {228, 223, 205},
	MaterialLimestone:   {206, 173, 140},
	MaterialPavement:    {136, 134, 132},
}

// MaterialColors holds a per-material custom paint color override for
// Terrain. Materials not present in the map render with their engine
// default (defaultMaterialColor).
type MaterialColors struct {
	colors map[TerrainMaterial]Color3uint8
}

func (MaterialColors) Type() Type { return TypeMaterialColors }
func (v MaterialColors) Copy() Variant {
	cp := NewMaterialColors()
	for m, c := range v.colors {
		cp.colors[m] = c
	}
	return cp
}

// NewMaterialColors returns an empty MaterialColors (every material at its
// engine default).
func NewMaterialColors() MaterialColors {
	return MaterialColors{colors: make(map[TerrainMaterial]Color3uint8)}
}

// Color returns m's color for material, falling back to its engine
// default if no override is set.
func (m MaterialColors) Color(material TerrainMaterial) Color3uint8 {
	if c, ok := m.colors[material]; ok {
		return c
	}
	return defaultMaterialColor[material]
}

// SetColor overrides material's paint color.
func (m MaterialColors) SetColor(material TerrainMaterial, c Color3uint8) {
	m.colors[material] = c
}

// Encode serializes m into the 69-byte wire blob: 6 reserved zero bytes
// followed by 21 RGB triples in materialOrder, exactly matching
// original_source/rbx_types/src/material_colors.rs's encode().
func (m MaterialColors) Encode() []byte {
	buf := make([]byte, 69)
	for i, mat := range materialOrder {
		c := m.Color(mat)
		off := 6 + i*3
		buf[off], buf[off+1], buf[off+2] = c.R, c.G, c.B
	}
	return buf
}

// DecodeMaterialColors parses the 69-byte wire blob produced by Encode.
func DecodeMaterialColors(b []byte) (MaterialColors, error) {
	if len(b) != 69 {
		return MaterialColors{}, fmt.Errorf("rbxdom: MaterialColors blob must be 69 bytes, got %d", len(b))
	}
	out := NewMaterialColors()
	for i, mat := range materialOrder {
		off := 6 + i*3
		out.colors[mat] = Color3uint8{b[off], b[off+1], b[off+2]}
	}
	return out, nil
}
