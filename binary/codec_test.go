package binary_test

import (
	"bytes"
	"testing"

	"github.com/robloxapi/rbxdom"
	"github.com/robloxapi/rbxdom/binary"
)

func buildSampleDom() *rbxdom.WeakDom {
	dom := rbxdom.NewWeakDom()
	workspace := dom.NewInstance("Workspace")
	workspace.SetName("Workspace")

	part := dom.NewInstance("Part")
	part.SetName("BasePlate")
	part.Set("Position", rbxdom.Vector3{X: 0, Y: 10, Z: 0})
	part.Set("Size", rbxdom.Vector3{X: 512, Y: 1.2, Z: 512})
	part.Set("CFrame", rbxdom.CFrame{
		Position: rbxdom.Vector3{X: 1, Y: 2, Z: 3},
		R:        rbxdom.Matrix3{1, 0, 0, 0, 1, 0, 0, 0, 1},
	})
	part.Set("Color", rbxdom.Color3{R: 0.2, G: 0.4, B: 0.6})
	part.Set("Anchored", rbxdom.Bool(true))
	part.Set("BrickColor", rbxdom.BrickColor(194))
	part.Set("CustomPhysicalProperties", rbxdom.PhysicalProperties{
		CustomPhysics: true, Density: 0.7, Friction: 0.3, Elasticity: 0.5,
		FrictionWeight: 1, ElasticityWeight: 1,
	})
	dom.SetParent(part, workspace)

	deco := dom.NewInstance("Decal")
	deco.SetName("Face")
	deco.Set("Texture", rbxdom.Content{URI: "rbxassetid://1"})
	dom.SetParent(deco, part)

	value := dom.NewInstance("ObjectValue")
	value.SetName("Target")
	value.Set("Value", part.Ref())
	dom.SetParent(value, workspace)

	label := dom.NewInstance("TextLabel")
	label.SetName("Label")
	label.Set("FontFace", rbxdom.Font{Family: "rbxasset://fonts/families/SourceSansPro.json", Weight: 400, Style: 0})
	dom.SetParent(label, workspace)

	script := dom.NewInstance("Script")
	script.SetName("Main")
	script.Set("UniqueId", rbxdom.UniqueId{Index: 7, Random: 0xCAFEBABE, Time: 0x0102030405060708})
	script.Set("Source", rbxdom.String("print(\"hi\")"))
	dom.SetParent(script, workspace)

	return dom
}

func roundTrip(t *testing.T, enc binary.Encoder) *rbxdom.WeakDom {
	t.Helper()
	dom := buildSampleDom()

	var buf bytes.Buffer
	if err := enc.Encode(&buf, dom); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	dec := &binary.Decoder{}
	got, err := dec.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(dec.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", dec.Warnings)
	}
	return got
}

func findByName(dom *rbxdom.WeakDom, className, name string) *rbxdom.Instance {
	for _, inst := range dom.Descendants() {
		if inst.ClassName == className && inst.Name() == name {
			return inst
		}
	}
	return nil
}

func TestRoundTrip_Compressed(t *testing.T) {
	got := roundTrip(t, binary.Encoder{Mode: binary.ModePlace})
	assertSample(t, got)
}

func TestRoundTrip_Uncompressed(t *testing.T) {
	got := roundTrip(t, binary.Encoder{Mode: binary.ModePlace, Uncompressed: true})
	assertSample(t, got)
}

func assertSample(t *testing.T, dom *rbxdom.WeakDom) {
	t.Helper()

	if n := len(dom.Descendants()); n != 6 {
		t.Errorf("expected 6 instances, got %d", n)
	}

	part := findByName(dom, "Part", "BasePlate")
	if part == nil {
		t.Fatal("BasePlate not found after round trip")
	}
	pos, ok := part.Get("Position")
	if !ok || pos.(rbxdom.Vector3) != (rbxdom.Vector3{X: 0, Y: 10, Z: 0}) {
		t.Errorf("Position = %v, want {0 10 0}", pos)
	}
	cf, ok := part.Get("CFrame")
	if !ok || cf.(rbxdom.CFrame) != (rbxdom.CFrame{
		Position: rbxdom.Vector3{X: 1, Y: 2, Z: 3},
		R:        rbxdom.Matrix3{1, 0, 0, 0, 1, 0, 0, 0, 1},
	}) {
		t.Errorf("CFrame = %v, did not round-trip", cf)
	}
	color, ok := part.Get("Color")
	if !ok || color.(rbxdom.Color3) != (rbxdom.Color3{R: 0.2, G: 0.4, B: 0.6}) {
		t.Errorf("Color = %v, want {0.2 0.4 0.6}", color)
	}
	anchored, ok := part.Get("Anchored")
	if !ok || !bool(anchored.(rbxdom.Bool)) {
		t.Error("Anchored did not round-trip as true")
	}
	bc, ok := part.Get("BrickColor")
	if !ok || bc.(rbxdom.BrickColor) != 194 {
		t.Errorf("BrickColor = %v, want 194", bc)
	}
	pp, ok := part.Get("CustomPhysicalProperties")
	if !ok || pp.(rbxdom.PhysicalProperties) != (rbxdom.PhysicalProperties{
		CustomPhysics: true, Density: 0.7, Friction: 0.3, Elasticity: 0.5,
		FrictionWeight: 1, ElasticityWeight: 1,
	}) {
		t.Errorf("CustomPhysicalProperties = %+v, did not round-trip", pp)
	}

	value := findByName(dom, "ObjectValue", "Target")
	if value == nil {
		t.Fatal("Target not found after round trip")
	}
	ref, ok := value.Get("Value")
	if !ok || ref.(rbxdom.Ref) != part.Ref() {
		t.Errorf("Value ref = %v, want %v", ref, part.Ref())
	}

	label := findByName(dom, "TextLabel", "Label")
	if label == nil {
		t.Fatal("Label not found after round trip")
	}
	font, ok := label.Get("FontFace")
	if !ok || font.(rbxdom.Font) != (rbxdom.Font{Family: "rbxasset://fonts/families/SourceSansPro.json", Weight: 400, Style: 0}) {
		t.Errorf("FontFace = %+v, did not round-trip", font)
	}

	script := findByName(dom, "Script", "Main")
	if script == nil {
		t.Fatal("Main script not found after round trip")
	}
	uid, ok := script.Get("UniqueId")
	if !ok || uid.(rbxdom.UniqueId) != (rbxdom.UniqueId{Index: 7, Random: 0xCAFEBABE, Time: 0x0102030405060708}) {
		t.Errorf("UniqueId = %+v, did not round-trip", uid)
	}
	src, ok := script.Get("Source")
	if !ok || src.(rbxdom.String) != "print(\"hi\")" {
		t.Errorf("Source = %v, did not round-trip", src)
	}
}

func TestRoundTrip_PreservesHierarchy(t *testing.T) {
	dom := roundTrip(t, binary.Encoder{Mode: binary.ModePlace})

	workspace := findByName(dom, "Workspace", "Workspace")
	part := findByName(dom, "Part", "BasePlate")
	deco := findByName(dom, "Decal", "Face")
	if workspace == nil || part == nil || deco == nil {
		t.Fatal("missing expected instance after round trip")
	}
	if dom.Parent(part) != workspace {
		t.Error("BasePlate should be parented to Workspace")
	}
	if dom.Parent(deco) != part {
		t.Error("Face should be parented to BasePlate")
	}
	roots := dom.Roots()
	if len(roots) != 1 || roots[0] != workspace {
		t.Errorf("expected Workspace as sole root, got %v", roots)
	}
}

func TestRoundTrip_SharedString(t *testing.T) {
	dom := rbxdom.NewWeakDom()
	script1 := dom.NewInstance("ModuleScript")
	script1.SetName("A")
	script2 := dom.NewInstance("ModuleScript")
	script2.SetName("B")

	data := []byte("return function() end")
	ss := rbxdom.SharedString{Hash: rbxdom.HashSharedString(data), Data: data}
	script1.Set("Source", ss)
	script2.Set("Source", ss)

	var buf bytes.Buffer
	enc := binary.Encoder{Mode: binary.ModeModel}
	if err := enc.Encode(&buf, dom); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	dec := &binary.Decoder{}
	got, err := dec.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	a := findByName(got, "ModuleScript", "A")
	b := findByName(got, "ModuleScript", "B")
	if a == nil || b == nil {
		t.Fatal("missing module scripts after round trip")
	}
	av, _ := a.Get("Source")
	bv, _ := b.Get("Source")
	aShared, ok := av.(rbxdom.SharedString)
	if !ok || string(aShared.Data) != string(data) {
		t.Errorf("A.Source = %+v, want data %q", av, data)
	}
	bShared, ok := bv.(rbxdom.SharedString)
	if !ok || aShared.Hash != bShared.Hash {
		t.Error("both scripts should share the same SharedString hash")
	}
}

func TestDecode_RejectsBadHeader(t *testing.T) {
	dec := &binary.Decoder{}
	_, err := dec.Decode(bytes.NewReader([]byte("not a roblox file")))
	if err == nil {
		t.Error("expected an error decoding a corrupt header")
	}
}

func TestDecode_RejectsUnrecognizedVersion(t *testing.T) {
	dom := rbxdom.NewWeakDom()
	dom.NewInstance("Folder")

	var buf bytes.Buffer
	if err := (binary.Encoder{}).Encode(&buf, dom); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	raw := buf.Bytes()
	// Version is the 2 bytes immediately after the 14-byte header signature
	// ("<roblox!" + the 6-byte binary marker).
	raw[14] = 9
	raw[15] = 9

	dec := &binary.Decoder{}
	if _, err := dec.Decode(bytes.NewReader(raw)); err == nil {
		t.Error("expected an error decoding an unrecognized version")
	}
}
