package reflection

import (
	"fmt"

	"github.com/robloxapi/rbxdom"
)

// MigrationOperation identifies a fixed property-value transform applied
// when a property's Serialization is SerializationMigrate. Ported from
// rbx_reflection/src/migration.rs's MigrationOperation.
type MigrationOperation byte

const (
	MigrationIgnoreGuiInsetToScreenInsets MigrationOperation = iota
	MigrationFontToFontFace
	MigrationBrickColorToColor
)

// PropertyMigration names the destination property a migrated value moves
// to, plus which transform to apply. Ported from migration.rs's
// PropertyMigration.
type PropertyMigration struct {
	NewPropertyName string
	Operation       MigrationOperation
}

// MigrationError reports that Perform was asked to migrate a value of the
// wrong concrete type, or (for FontToFontFace) an out-of-range enum value.
// Ported from migration.rs's MigrationError.
type MigrationError struct {
	Operation MigrationOperation
	Expected  string
	Actual    rbxdom.Variant
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("reflection: invalid value for migration %v: expected %s, got %T", e.Operation, e.Expected, e.Actual)
}

// Perform applies m to input, returning the migrated value. Ported
// verbatim (operation-by-operation) from migration.rs's
// PropertyMigration::perform.
func (m PropertyMigration) Perform(input rbxdom.Variant) (rbxdom.Variant, error) {
	switch m.Operation {
	case MigrationIgnoreGuiInsetToScreenInsets:
		b, ok := input.(rbxdom.Bool)
		if !ok {
			return nil, &MigrationError{Operation: m.Operation, Expected: "Bool", Actual: input}
		}
		if b {
			return rbxdom.Enum(1), nil
		}
		return rbxdom.Enum(2), nil

	case MigrationFontToFontFace:
		e, ok := input.(rbxdom.Enum)
		if !ok {
			return nil, &MigrationError{Operation: m.Operation, Expected: "Enum", Actual: input}
		}
		font, ok := fontFromLegacyEnum(uint32(e))
		if !ok {
			return nil, &MigrationError{Operation: m.Operation, Expected: "a Font enum value between 0 and 45", Actual: input}
		}
		return font, nil

	case MigrationBrickColorToColor:
		bc, ok := input.(rbxdom.BrickColor)
		if !ok {
			return nil, &MigrationError{Operation: m.Operation, Expected: "BrickColor", Actual: input}
		}
		return bc.Color(), nil

	default:
		return nil, fmt.Errorf("reflection: unknown migration operation %v", m.Operation)
	}
}

// fontFromLegacyEnum maps the legacy numeric Font enum (0-45) to the
// Font struct it now serializes as, ported field-for-field from
// migration.rs's FontToFontFace match arm.
func fontFromLegacyEnum(value uint32) (rbxdom.Font, bool) {
	reg := rbxdom.RegularFont
	weighted := func(family string, weight rbxdom.FontWeight, style rbxdom.FontStyle) rbxdom.Font {
		return rbxdom.Font{Family: family, Weight: weight, Style: style}
	}

	switch value {
	case 0:
		return reg("rbxasset://fonts/families/LegacyArial.json"), true
	case 1:
		return reg("rbxasset://fonts/families/Arial.json"), true
	case 2:
		return weighted("rbxasset://fonts/families/Arial.json", rbxdom.FontWeightBold, rbxdom.FontStyleNormal), true
	case 3:
		return reg("rbxasset://fonts/families/SourceSansPro.json"), true
	case 4:
		return weighted("rbxasset://fonts/families/SourceSansPro.json", rbxdom.FontWeightBold, rbxdom.FontStyleNormal), true
	case 16:
		return weighted("rbxasset://fonts/families/SourceSansPro.json", rbxdom.FontWeightSemibold, rbxdom.FontStyleNormal), true
	case 5:
		return weighted("rbxasset://fonts/families/SourceSansPro.json", rbxdom.FontWeightLight, rbxdom.FontStyleNormal), true
	case 6:
		return weighted("rbxasset://fonts/families/SourceSansPro.json", rbxdom.FontWeightRegular, rbxdom.FontStyleItalic), true
	case 7:
		return reg("rbxasset://fonts/families/AccanthisADFStd.json"), true
	case 8:
		return reg("rbxasset://fonts/families/Guru.json"), true
	case 9:
		return reg("rbxasset://fonts/families/ComicNeueAngular.json"), true
	case 10:
		return reg("rbxasset://fonts/families/Inconsolata.json"), true
	case 11:
		return reg("rbxasset://fonts/families/HighwayGothic.json"), true
	case 12:
		return reg("rbxasset://fonts/families/Zekton.json"), true
	case 13:
		return reg("rbxasset://fonts/families/PressStart2P.json"), true
	case 14:
		return reg("rbxasset://fonts/families/Balthazar.json"), true
	case 15:
		return reg("rbxasset://fonts/families/RomanAntique.json"), true
	case 17:
		return reg("rbxasset://fonts/families/GothamSSm.json"), true
	case 18:
		return weighted("rbxasset://fonts/families/GothamSSm.json", rbxdom.FontWeightMedium, rbxdom.FontStyleNormal), true
	case 19:
		return weighted("rbxasset://fonts/families/GothamSSm.json", rbxdom.FontWeightBold, rbxdom.FontStyleNormal), true
	case 20:
		return weighted("rbxasset://fonts/families/GothamSSm.json", rbxdom.FontWeightHeavy, rbxdom.FontStyleNormal), true
	case 21:
		return reg("rbxasset://fonts/families/AmaticSC.json"), true
	case 22:
		return reg("rbxasset://fonts/families/Bangers.json"), true
	case 23:
		return reg("rbxasset://fonts/families/Creepster.json"), true
	case 24:
		return reg("rbxasset://fonts/families/DenkOne.json"), true
	case 25:
		return reg("rbxasset://fonts/families/Fondamento.json"), true
	case 26:
		return reg("rbxasset://fonts/families/FredokaOne.json"), true
	case 27:
		return reg("rbxasset://fonts/families/GrenzeGotisch.json"), true
	case 28:
		return reg("rbxasset://fonts/families/IndieFlower.json"), true
	case 29:
		return reg("rbxasset://fonts/families/JosefinSans.json"), true
	case 30:
		return reg("rbxasset://fonts/families/Jura.json"), true
	case 31:
		return reg("rbxasset://fonts/families/Kalam.json"), true
	case 32:
		return reg("rbxasset://fonts/families/LuckiestGuy.json"), true
	case 33:
		return reg("rbxasset://fonts/families/Merriweather.json"), true
	case 34:
		return reg("rbxasset://fonts/families/Michroma.json"), true
	case 35:
		return reg("rbxasset://fonts/families/Nunito.json"), true
	case 36:
		return reg("rbxasset://fonts/families/Oswald.json"), true
	case 37:
		return reg("rbxasset://fonts/families/PatrickHand.json"), true
	case 38:
		return reg("rbxasset://fonts/families/PermanentMarker.json"), true
	case 39:
		return reg("rbxasset://fonts/families/Roboto.json"), true
	case 40:
		return reg("rbxasset://fonts/families/RobotoCondensed.json"), true
	case 41:
		return reg("rbxasset://fonts/families/RobotoMono.json"), true
	case 42:
		return reg("rbxasset://fonts/families/Sarpanch.json"), true
	case 43:
		return reg("rbxasset://fonts/families/SpecialElite.json"), true
	case 44:
		return reg("rbxasset://fonts/families/TitilliumWeb.json"), true
	case 45:
		return reg("rbxasset://fonts/families/Ubuntu.json"), true
	default:
		return rbxdom.Font{}, false
	}
}
