package reflection

import (
	"testing"

	"github.com/robloxapi/rbxdom"
)

func testDatabase() *Database {
	db := newDatabase()

	instance := newClassDescriptor("Instance", "")
	instance.Properties["Name"] = &PropertyDescriptor{
		Name:     "Name",
		DataType: DataType{Kind: rbxdom.TypeString},
		Kind:     PropertyKind{Serialization: Serialization{Mode: SerializationSerializes}},
	}
	db.Classes["Instance"] = instance

	part := newClassDescriptor("Part", "Instance")
	part.Properties["Size"] = &PropertyDescriptor{
		Name:     "Size",
		DataType: DataType{Kind: rbxdom.TypeVector3},
		Kind:     PropertyKind{Serialization: Serialization{Mode: SerializationSerializes}},
	}
	part.Properties["BrickColor"] = &PropertyDescriptor{
		Name:     "BrickColor",
		DataType: DataType{Kind: rbxdom.TypeBrickColor},
		Kind: PropertyKind{Serialization: Serialization{
			Mode: SerializationMigrate,
			Migration: &PropertyMigration{
				NewPropertyName: "Color",
				Operation:       MigrationBrickColorToColor,
			},
		}},
	}
	part.Properties["Color"] = &PropertyDescriptor{
		Name:     "Color",
		DataType: DataType{Kind: rbxdom.TypeColor3uint8},
		Kind:     PropertyKind{Serialization: Serialization{Mode: SerializationSerializes}},
	}
	part.Properties["BrickColor3Ts"] = &PropertyDescriptor{
		Name:     "BrickColor3Ts",
		Kind:     PropertyKind{IsAlias: true, AliasFor: "Color"},
	}
	part.Properties["Transparency"] = &PropertyDescriptor{
		Name:     "Transparency",
		DataType: DataType{Kind: rbxdom.TypeFloat32},
		Kind:     PropertyKind{Serialization: Serialization{Mode: SerializationDoesNotSerialize}},
	}
	db.Classes["Part"] = part

	return db
}

func TestResolveInherited(t *testing.T) {
	db := testDatabase()
	res, err := db.Resolve("Part", "Name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Canonical.Name != "Name" {
		t.Errorf("expected to inherit Name from Instance, got %s", res.Canonical.Name)
	}
}

func TestResolveAlias(t *testing.T) {
	db := testDatabase()
	res, err := db.Resolve("Part", "BrickColor3Ts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Canonical.Name != "Color" {
		t.Errorf("expected alias to resolve to Color, got %s", res.Canonical.Name)
	}
	if res.AliasedAs != "BrickColor3Ts" {
		t.Errorf("expected AliasedAs to be the looked-up name, got %s", res.AliasedAs)
	}
}

func TestResolveMigrate(t *testing.T) {
	db := testDatabase()
	res, err := db.Resolve("Part", "BrickColor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Canonical.Name != "BrickColor" {
		t.Errorf("expected Migrate property to remain its own canonical, got %s", res.Canonical.Name)
	}
	if res.Serialized == nil || res.Serialized.Name != "Color" {
		t.Errorf("expected serialized descriptor to be Color, got %v", res.Serialized)
	}
}

func TestResolveDoesNotSerialize(t *testing.T) {
	db := testDatabase()
	res, err := db.Resolve("Part", "Transparency")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Serialized != nil {
		t.Error("expected nil serialized descriptor for a DoesNotSerialize property")
	}
}

func TestResolveUnknownProperty(t *testing.T) {
	db := testDatabase()
	if _, err := db.Resolve("Part", "DoesNotExist"); err == nil {
		t.Error("expected an error for an unknown property")
	}
}
