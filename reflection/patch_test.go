package reflection

import (
	"testing"

	"github.com/robloxapi/rbxdom"
)

func TestLoadPatchesApplyPreDefault(t *testing.T) {
	db := testDatabase()

	doc := []byte(`
Change:
  Part:
    Transparency:
      Serialization:
        Type: Serializes
`)
	patches, err := LoadPatches([][]byte{doc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := patches.ApplyPreDefault(db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prop := db.Classes["Part"].Properties["Transparency"]
	if prop.Kind.Serialization.Mode != SerializationSerializes {
		t.Errorf("expected Transparency to now serialize, got mode %v", prop.Kind.Serialization.Mode)
	}
}

func TestLoadPatchesRejectsNoOpChange(t *testing.T) {
	db := testDatabase()

	doc := []byte(`
Change:
  Part:
    Size:
      Serialization:
        Type: Serializes
`)
	patches, err := LoadPatches([][]byte{doc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := patches.ApplyPreDefault(db); err == nil {
		t.Error("expected an error for a no-op serialization change")
	}
}

func TestLoadPatchesApplyPostDefault(t *testing.T) {
	db := testDatabase()

	doc := []byte(`
Change:
  Instance:
    Name:
      DefaultValue: "Unnamed"
`)
	patches, err := LoadPatches([][]byte{doc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := patches.ApplyPostDefault(db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := db.DefaultValue(db.Classes["Part"], "Name", rbxdom.TypeString)
	if got != rbxdom.String("Unnamed") {
		t.Errorf("expected inherited default %q, got %v", "Unnamed", got)
	}
}
