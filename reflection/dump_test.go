package reflection

import (
	"strings"
	"testing"

	"github.com/robloxapi/rbxdom"
)

const testDump = `{
  "Classes": [
    {
      "Name": "Instance",
      "Superclass": "<<<ROOT>>>",
      "Members": [
        {"MemberType": "Property", "Name": "Name", "ValueType": {"Category": "Primitive", "Name": "string"}, "Serialization": {"CanLoad": true, "CanSave": true}, "Tags": []}
      ],
      "Tags": []
    },
    {
      "Name": "Part",
      "Superclass": "Instance",
      "Members": [
        {"MemberType": "Property", "Name": "Shape", "ValueType": {"Category": "Enum", "Name": "PartType"}, "Serialization": {"CanLoad": true, "CanSave": true}, "Tags": []},
        {"MemberType": "Property", "Name": "Size", "ValueType": {"Category": "DataType", "Name": "Vector3"}, "Serialization": {"CanLoad": true, "CanSave": true}, "Tags": []},
        {"MemberType": "Property", "Name": "Deprecated_SurfaceType", "ValueType": {"Category": "Primitive", "Name": "int"}, "Serialization": {"CanLoad": true, "CanSave": true}, "Tags": ["Deprecated"]}
      ],
      "Tags": []
    }
  ],
  "Enums": [
    {
      "Name": "PartType",
      "Items": [
        {"Name": "Ball", "Value": 0},
        {"Name": "Block", "Value": 1},
        {"Name": "Cylinder", "Value": 2}
      ]
    }
  ]
}`

func TestLoadDump(t *testing.T) {
	db, err := LoadDump(strings.NewReader(testDump))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	part, ok := db.Classes["Part"]
	if !ok {
		t.Fatal("expected Part class to be loaded")
	}
	if part.Superclass != "Instance" {
		t.Errorf("expected Part's superclass to be Instance, got %q", part.Superclass)
	}
	if _, ok := part.Properties["Deprecated_SurfaceType"]; ok {
		t.Error("expected deprecated property to be skipped")
	}

	size, ok := part.Properties["Size"]
	if !ok {
		t.Fatal("expected Size property to be loaded")
	}
	if size.DataType.Kind != rbxdom.TypeVector3 {
		t.Errorf("expected Size to be Vector3, got %v", size.DataType.Kind)
	}

	shape, ok := part.Properties["Shape"]
	if !ok {
		t.Fatal("expected Shape property to be loaded")
	}
	if shape.DataType.Kind != rbxdom.TypeEnum || shape.DataType.Enum != "PartType" {
		t.Errorf("expected Shape to be Enum PartType, got %v/%s", shape.DataType.Kind, shape.DataType.Enum)
	}

	partType, ok := db.Enums["PartType"]
	if !ok {
		t.Fatal("expected PartType enum to be loaded")
	}
	if v, ok := partType.ItemByName("Cylinder"); !ok || v != 2 {
		t.Errorf("expected PartType.Cylinder == 2, got %d (ok=%v)", v, ok)
	}
}
