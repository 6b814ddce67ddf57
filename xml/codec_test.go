package xml_test

import (
	"bytes"
	"testing"

	"github.com/robloxapi/rbxdom"
	"github.com/robloxapi/rbxdom/xml"
)

func buildSampleDom() *rbxdom.WeakDom {
	dom := rbxdom.NewWeakDom()
	workspace := dom.NewInstance("Workspace")
	workspace.SetName("Workspace")

	part := dom.NewInstance("Part")
	part.SetName("BasePlate")
	part.Set("Position", rbxdom.Vector3{X: 0, Y: 10, Z: 0})
	part.Set("CFrame", rbxdom.CFrame{
		Position: rbxdom.Vector3{X: 1, Y: 2, Z: 3},
		R:        rbxdom.Matrix3Identity,
	})
	part.Set("Color", rbxdom.Color3{R: 0.2, G: 0.4, B: 0.6})
	part.Set("Anchored", rbxdom.Bool(true))
	part.Set("Transparency", rbxdom.Float32(0.5))
	part.Set("CustomPhysicalProperties", rbxdom.PhysicalProperties{
		CustomPhysics: true, Density: 0.7, Friction: 0.3, Elasticity: 0.5,
		FrictionWeight: 1, ElasticityWeight: 1,
	})
	dom.SetParent(part, workspace)

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

	data := []byte("return function() end")
	ss := rbxdom.SharedString{Hash: rbxdom.HashSharedString(data), Data: data}
	script.Set("Payload", ss)

	return dom
}

func findByName(dom *rbxdom.WeakDom, className, name string) *rbxdom.Instance {
	for _, inst := range dom.Descendants() {
		if inst.ClassName == className && inst.Name() == name {
			return inst
		}
	}
	return nil
}

func roundTrip(t *testing.T, dom *rbxdom.WeakDom) *rbxdom.WeakDom {
	t.Helper()
	var buf bytes.Buffer
	enc := &xml.Encoder{}
	if err := enc.Encode(&buf, dom); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	dec := &xml.Decoder{}
	got, err := dec.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(dec.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", dec.Warnings)
	}
	return got
}

func TestRoundTrip(t *testing.T) {
	dom := buildSampleDom()
	got := roundTrip(t, dom)

	if n := len(got.Descendants()); n != 5 {
		t.Errorf("expected 5 instances, got %d", n)
	}

	part := findByName(got, "Part", "BasePlate")
	if part == nil {
		t.Fatal("BasePlate not found after round trip")
	}
	pos, ok := part.Get("Position")
	if !ok || pos.(rbxdom.Vector3) != (rbxdom.Vector3{X: 0, Y: 10, Z: 0}) {
		t.Errorf("Position = %v, want {0 10 0}", pos)
	}
	cf, ok := part.Get("CFrame")
	if !ok || cf.(rbxdom.CFrame) != (rbxdom.CFrame{Position: rbxdom.Vector3{X: 1, Y: 2, Z: 3}, R: rbxdom.Matrix3Identity}) {
		t.Errorf("CFrame = %v, did not round-trip", cf)
	}
	anchored, ok := part.Get("Anchored")
	if !ok || !bool(anchored.(rbxdom.Bool)) {
		t.Error("Anchored did not round-trip as true")
	}
	transparency, ok := part.Get("Transparency")
	if !ok || transparency.(rbxdom.Float32) != 0.5 {
		t.Errorf("Transparency = %v, want 0.5", transparency)
	}
	pp, ok := part.Get("CustomPhysicalProperties")
	if !ok || pp.(rbxdom.PhysicalProperties) != (rbxdom.PhysicalProperties{
		CustomPhysics: true, Density: 0.7, Friction: 0.3, Elasticity: 0.5,
		FrictionWeight: 1, ElasticityWeight: 1,
	}) {
		t.Errorf("CustomPhysicalProperties = %+v, did not round-trip", pp)
	}

	value := findByName(got, "ObjectValue", "Target")
	if value == nil {
		t.Fatal("Target not found after round trip")
	}
	ref, ok := value.Get("Value")
	if !ok || ref.(rbxdom.Ref) != part.Ref() {
		t.Errorf("Value ref = %v, want %v", ref, part.Ref())
	}
}

// TestRoundTrip_RefSurvivesRenumbering checks that a Ref property still
// points at the right instance after a round trip, even though the decoded
// dom assigns brand new referents that bear no relation to the encoded
// document's sequential "0", "1", "2"... numbering.
func TestRoundTrip_RefSurvivesRenumbering(t *testing.T) {
	dom := rbxdom.NewWeakDom()
	a := dom.NewInstance("Folder")
	a.SetName("A")
	b := dom.NewInstance("Folder")
	b.SetName("B")
	b.Set("Target", a.Ref())
	dom.SetParent(a, nil)
	dom.SetParent(b, nil)

	got := roundTrip(t, dom)
	gotA := findByName(got, "Folder", "A")
	gotB := findByName(got, "Folder", "B")
	if gotA == nil || gotB == nil {
		t.Fatal("missing expected instances after round trip")
	}
	if gotA.Ref() == a.Ref() {
		t.Fatal("test is meaningless if the decoded Ref happens to match the original")
	}
	ref, ok := gotB.Get("Target")
	if !ok || ref.(rbxdom.Ref) != gotA.Ref() {
		t.Errorf("B.Target = %v, want %v (A's new ref)", ref, gotA.Ref())
	}
}

func TestRoundTrip_SharedString(t *testing.T) {
	dom := buildSampleDom()
	got := roundTrip(t, dom)

	script := findByName(got, "Script", "Main")
	if script == nil {
		t.Fatal("Main script not found after round trip")
	}
	v, ok := script.Get("Payload")
	if !ok {
		t.Fatal("Payload property missing after round trip")
	}
	ss, ok := v.(rbxdom.SharedString)
	if !ok || string(ss.Data) != "return function() end" {
		t.Errorf("Payload = %+v, did not round-trip", v)
	}
}

func TestRoundTrip_FontAndUniqueId(t *testing.T) {
	dom := buildSampleDom()
	got := roundTrip(t, dom)

	label := findByName(got, "TextLabel", "Label")
	if label == nil {
		t.Fatal("Label not found after round trip")
	}
	font, ok := label.Get("FontFace")
	if !ok || font.(rbxdom.Font) != (rbxdom.Font{Family: "rbxasset://fonts/families/SourceSansPro.json", Weight: 400, Style: 0}) {
		t.Errorf("FontFace = %+v, did not round-trip", font)
	}

	script := findByName(got, "Script", "Main")
	if script == nil {
		t.Fatal("Main script not found after round trip")
	}
	uid, ok := script.Get("UniqueId")
	if !ok || uid.(rbxdom.UniqueId) != (rbxdom.UniqueId{Index: 7, Random: 0xCAFEBABE, Time: 0x0102030405060708}) {
		t.Errorf("UniqueId = %+v, did not round-trip", uid)
	}
}

func TestRoundTrip_PreservesHierarchy(t *testing.T) {
	dom := buildSampleDom()
	got := roundTrip(t, dom)

	workspace := findByName(got, "Workspace", "Workspace")
	part := findByName(got, "Part", "BasePlate")
	if workspace == nil || part == nil {
		t.Fatal("missing expected instance after round trip")
	}
	if got.Parent(part) != workspace {
		t.Error("BasePlate should be parented to Workspace")
	}
	roots := got.Roots()
	if len(roots) != 1 || roots[0] != workspace {
		t.Errorf("expected Workspace as sole root, got %v", roots)
	}
}

func TestDecode_RejectsMissingRoot(t *testing.T) {
	dec := &xml.Decoder{}
	_, err := dec.Decode(bytes.NewReader([]byte(`<not-roblox></not-roblox>`)))
	if err == nil {
		t.Error("expected an error decoding a document with no <roblox> root")
	}
}

func TestDecode_RejectsBadVersion(t *testing.T) {
	dec := &xml.Decoder{}
	_, err := dec.Decode(bytes.NewReader([]byte(`<roblox version="99"></roblox>`)))
	if err == nil {
		t.Error("expected an error decoding an unrecognized roblox version")
	}
}

func TestDecode_NullRef(t *testing.T) {
	doc := `<roblox version="4">
  <Item class="ObjectValue" referent="0">
    <Properties>
      <Ref name="Value">null</Ref>
    </Properties>
  </Item>
</roblox>`
	dec := &xml.Decoder{}
	dom, err := dec.Decode(bytes.NewReader([]byte(doc)))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	insts := dom.Descendants()
	if len(insts) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(insts))
	}
	v, ok := insts[0].Get("Value")
	if !ok || v.(rbxdom.Ref) != rbxdom.NilRef {
		t.Errorf("Value = %v, want NilRef", v)
	}
}

func TestDecode_UnresolvedRefWarns(t *testing.T) {
	doc := `<roblox version="4">
  <Item class="ObjectValue" referent="0">
    <Properties>
      <Ref name="Value">RBX-does-not-exist</Ref>
    </Properties>
  </Item>
</roblox>`
	dec := &xml.Decoder{}
	dom, err := dec.Decode(bytes.NewReader([]byte(doc)))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(dec.Warnings) == 0 {
		t.Error("expected a warning for an unresolved referent")
	}
	insts := dom.Descendants()
	v, ok := insts[0].Get("Value")
	if !ok || v.(rbxdom.Ref) != rbxdom.NilRef {
		t.Errorf("Value = %v, want NilRef after failing to resolve", v)
	}
}
