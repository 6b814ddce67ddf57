package reflection

import (
	"testing"

	"github.com/robloxapi/rbxdom"
)

func TestPropertyMigrationIgnoreGuiInset(t *testing.T) {
	m := PropertyMigration{Operation: MigrationIgnoreGuiInsetToScreenInsets}

	v, err := m.Perform(rbxdom.Bool(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != rbxdom.Enum(1) {
		t.Errorf("expected Enum(1) for true, got %v", v)
	}

	v, err = m.Perform(rbxdom.Bool(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != rbxdom.Enum(2) {
		t.Errorf("expected Enum(2) for false, got %v", v)
	}

	if _, err := m.Perform(rbxdom.Int32(0)); err == nil {
		t.Error("expected error migrating a non-Bool value")
	}
}

func TestPropertyMigrationFontToFontFace(t *testing.T) {
	m := PropertyMigration{Operation: MigrationFontToFontFace}

	v, err := m.Perform(rbxdom.Enum(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	font, ok := v.(rbxdom.Font)
	if !ok {
		t.Fatalf("expected Font, got %T", v)
	}
	if font.Family != "rbxasset://fonts/families/SourceSansPro.json" {
		t.Errorf("unexpected family %q", font.Family)
	}

	if _, err := m.Perform(rbxdom.Enum(999)); err == nil {
		t.Error("expected error for out-of-range Font enum value")
	}
}

func TestPropertyMigrationBrickColorToColor(t *testing.T) {
	m := PropertyMigration{Operation: MigrationBrickColorToColor}

	v, err := m.Perform(rbxdom.BrickColor(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(rbxdom.Color3uint8); !ok {
		t.Errorf("expected Color3uint8, got %T", v)
	}
}
