package xml

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/robloxapi/rbxdom"
)

// canonTypeForTag maps an XML property tag name onto the rbxdom.Type it
// decodes into, case-insensitively. Ported in spirit from the teacher's
// xml/codec.go GetCanonType table, cut down to the tag set spec.md §4.G
// actually names and extended with this module's newer value types
// (SharedString, UniqueId, Font, OptionalCoordinateFrame).
func canonTypeForTag(tag string) rbxdom.Type {
	switch strings.ToLower(tag) {
	case "string":
		return rbxdom.TypeString
	case "protectedstring", "binarystring":
		return rbxdom.TypeBinaryString
	case "bool":
		return rbxdom.TypeBool
	case "int":
		return rbxdom.TypeInt32
	case "int64":
		return rbxdom.TypeInt64
	case "float":
		return rbxdom.TypeFloat32
	case "double":
		return rbxdom.TypeFloat64
	case "vector2":
		return rbxdom.TypeVector2
	case "vector3":
		return rbxdom.TypeVector3
	case "vector3int16":
		return rbxdom.TypeVector3int16
	case "color3":
		return rbxdom.TypeColor3
	case "color3uint8":
		return rbxdom.TypeColor3uint8
	case "coordinateframe":
		return rbxdom.TypeCFrame
	case "optionalcoordinateframe":
		return rbxdom.TypeOptionalCFrame
	case "udim":
		return rbxdom.TypeUDim
	case "udim2":
		return rbxdom.TypeUDim2
	case "content":
		return rbxdom.TypeContent
	case "token":
		return rbxdom.TypeEnum
	case "ref":
		return rbxdom.TypeRef
	case "rect2d":
		return rbxdom.TypeRect
	case "numberrange":
		return rbxdom.TypeNumberRange
	case "numbersequence":
		return rbxdom.TypeNumberSequence
	case "colorsequence":
		return rbxdom.TypeColorSequence
	case "physicalproperties":
		return rbxdom.TypePhysicalProperties
	case "axes":
		return rbxdom.TypeAxes
	case "faces":
		return rbxdom.TypeFaces
	case "sharedstring":
		return rbxdom.TypeSharedString
	case "uniqueid":
		return rbxdom.TypeUniqueId
	case "font":
		return rbxdom.TypeFont
	default:
		return rbxdom.TypeInvalid
	}
}

// content returns a tag's CDATA section if present, else its plain text,
// the way the teacher's codec.go preferred CData over Text when both a
// binary payload and surrounding whitespace could be present.
func content(tag *Tag) string {
	if tag.CData != nil {
		return string(tag.CData)
	}
	return tag.Text
}

func childTag(tag *Tag, name string) (*Tag, bool) {
	for _, c := range tag.Tags {
		if c.StartName == name {
			return c, true
		}
	}
	return nil, false
}

func childText(tag *Tag, name string) (string, bool) {
	c, ok := childTag(tag, name)
	if !ok {
		return "", false
	}
	return content(c), true
}

func textTag(name, text string) *Tag {
	return &Tag{StartName: name, Text: text, NoIndent: true}
}

func namedProp(typeName, propName string, children ...*Tag) *Tag {
	return &Tag{
		StartName: typeName,
		Attr:      []Attr{{Name: "name", Value: propName}},
		Tags:      children,
	}
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, s)
}

func formatFloat32(f float32) string {
	switch {
	case math.IsInf(float64(f), 1):
		return "INF"
	case math.IsInf(float64(f), -1):
		return "-INF"
	case math.IsNaN(float64(f)):
		return "NAN"
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func parseFloat32(s string) (float32, error) {
	switch strings.TrimSpace(s) {
	case "INF":
		return float32(math.Inf(1)), nil
	case "-INF":
		return float32(math.Inf(-1)), nil
	case "NAN":
		return float32(math.NaN()), nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	return float32(f), err
}

func formatFloat64(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case math.IsNaN(f):
		return "NAN"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func parseFloat64(s string) (float64, error) {
	switch strings.TrimSpace(s) {
	case "INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NAN":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func boolText(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func parseBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true") || strings.TrimSpace(s) == "1"
}

// packColor3 packs 0-255 RGB channels into the signed-int32 text form the
// real format uses for both Color3 and Color3uint8 property tags (full
// alpha, then R, G, B, each one byte).
func packColor3(r, g, b uint8) string {
	packed := uint32(0xFF)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	return strconv.FormatInt(int64(int32(packed)), 10)
}

func unpackColor3(s string) (r, g, b uint8, err error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, 0, 0, err
	}
	packed := uint32(int32(n))
	return uint8(packed >> 16), uint8(packed >> 8), uint8(packed), nil
}

var (
	errUnrecognizedVersion = errors.New("xml: missing or unrecognized roblox version")
	errMissingRoot         = errors.New("xml: missing root <roblox> tag")
)

func errUnknownTag(tag string) error {
	return fmt.Errorf("xml: unrecognized property tag %q", tag)
}

func errBadValue(tag string, err error) error {
	return fmt.Errorf("xml: bad %s value: %w", tag, err)
}

// propRef is a deferred Ref-typed property: the referent text has been
// read, but can only be resolved to an actual rbxdom.Ref once every Item in
// the document has been assigned one (referents may point forward).
type propRef struct {
	inst     *rbxdom.Instance
	name     string
	referent string
}

// sharedRef is a deferred SharedString-typed property: the md5 key has
// been read, but can only be resolved into a full rbxdom.SharedString once
// the <SharedStrings> block (which may appear after the Item that
// references it) has been parsed.
type sharedRef struct {
	inst *rbxdom.Instance
	name string
	key  string
}

type xmlDecoder struct {
	d             *Decoder
	dom           *rbxdom.WeakDom
	refs          map[string]rbxdom.Ref
	sharedStrings map[string]rbxdom.SharedString
	propRefs      []propRef
	sharedRefs    []sharedRef
}

func (d *Decoder) decode(r io.Reader) (*rbxdom.WeakDom, error) {
	d.Warnings = nil
	d.Metadata = make(map[string]string)

	var doc Document
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("xml: %w", err)
	}
	d.Warnings = append(d.Warnings, doc.Warnings...)

	if doc.Root == nil || doc.Root.StartName != "roblox" {
		return nil, errMissingRoot
	}
	if v, ok := doc.Root.AttrValue("version"); !ok || v != rootVersion {
		return nil, errUnrecognizedVersion
	}

	dec := &xmlDecoder{
		d:             d,
		dom:           rbxdom.NewWeakDom(),
		refs:          make(map[string]rbxdom.Ref),
		sharedStrings: make(map[string]rbxdom.SharedString),
	}

	var itemTags []*Tag
	for _, tag := range doc.Root.Tags {
		switch tag.StartName {
		case "External":
			// Not modeled; this format always inlines shared strings and
			// has no separate external-reference table.
		case "Meta":
			if name, ok := tag.AttrValue("name"); ok {
				d.Metadata[name] = content(tag)
			}
		case "SharedStrings":
			dec.decodeSharedStrings(tag)
		case "Item":
			itemTags = append(itemTags, tag)
		}
	}

	dec.getItems(nil, itemTags)

	for _, pr := range dec.propRefs {
		if ref, ok := dec.refs[pr.referent]; ok {
			pr.inst.Set(pr.name, ref)
		} else {
			dec.d.warnf("unresolved referent %q on %s.%s", pr.referent, pr.inst.ClassName, pr.name)
			pr.inst.Set(pr.name, rbxdom.NilRef)
		}
	}
	for _, sr := range dec.sharedRefs {
		if ss, ok := dec.sharedStrings[sr.key]; ok {
			sr.inst.Set(sr.name, ss)
		} else {
			dec.d.warnf("unresolved SharedString key %q on %s.%s", sr.key, sr.inst.ClassName, sr.name)
		}
	}

	return dec.dom, nil
}

func (dec *xmlDecoder) decodeSharedStrings(tag *Tag) {
	for _, sub := range tag.Tags {
		if sub.StartName != "SharedString" {
			continue
		}
		key, _ := sub.AttrValue("md5")
		data, err := base64.StdEncoding.DecodeString(stripSpace(content(sub)))
		if err != nil {
			dec.d.warnf("xml: decoding SharedString %q: %v", key, err)
			continue
		}
		var hash rbxdom.SharedStringHash
		if hb, err := base64.StdEncoding.DecodeString(key); err == nil && len(hb) == len(hash) {
			copy(hash[:], hb)
		} else {
			hash = rbxdom.HashSharedString(data)
		}
		dec.sharedStrings[key] = rbxdom.SharedString{Hash: hash, Data: data}
	}
}

// getItems processes a flat list of tags that may mix Item and Properties
// entries — the same shape the teacher's xml/codec.go getItems walked,
// since an Item's own child tags interleave its Properties block with any
// nested Items.
func (dec *xmlDecoder) getItems(parent *rbxdom.Instance, tags []*Tag) {
	hasProps := false
	for _, tag := range tags {
		switch tag.StartName {
		case "Item":
			className, ok := tag.AttrValue("class")
			if !ok {
				dec.d.warnf("xml: Item with no class attribute")
				continue
			}
			inst := dec.dom.NewInstance(className)
			if referent, ok := tag.AttrValue("referent"); ok && referent != "" {
				dec.refs[referent] = inst.Ref()
			}
			if parent != nil {
				dec.dom.SetParent(inst, parent)
			}
			dec.getItems(inst, tag.Tags)
		case "Properties":
			if hasProps || parent == nil {
				continue
			}
			hasProps = true
			dec.decodeProperties(parent, tag.Tags)
		}
	}
}

func (dec *xmlDecoder) decodeProperties(inst *rbxdom.Instance, tags []*Tag) {
	for _, tag := range tags {
		name, ok := tag.AttrValue("name")
		if !ok {
			continue
		}
		canonName := name
		if dec.d.DB != nil {
			if res, err := dec.d.DB.Resolve(inst.ClassName, name); err == nil {
				canonName = res.Canonical.Name
			}
		}

		t := canonTypeForTag(tag.StartName)
		switch t {
		case rbxdom.TypeInvalid:
			if dec.d.Strict {
				dec.d.warnf("%s.%s: %v", inst.ClassName, name, errUnknownTag(tag.StartName))
			}
			continue
		case rbxdom.TypeRef:
			referent := content(tag)
			if referent == "" || strings.EqualFold(referent, "null") {
				inst.Set(canonName, rbxdom.NilRef)
			} else {
				dec.propRefs = append(dec.propRefs, propRef{inst, canonName, referent})
			}
			continue
		case rbxdom.TypeSharedString:
			dec.sharedRefs = append(dec.sharedRefs, sharedRef{inst, canonName, content(tag)})
			continue
		}

		v, err := decodeValue(tag, t)
		if err != nil {
			dec.d.warnf("%s.%s: %v", inst.ClassName, name, err)
			if dec.d.Strict {
				continue
			}
		}
		if v != nil {
			inst.Set(canonName, v)
		}
	}
}

// decodeValue parses tag's contents into a Variant of type t. tag.StartName
// has already been matched to t by canonTypeForTag.
func decodeValue(tag *Tag, t rbxdom.Type) (rbxdom.Variant, error) {
	switch t {
	case rbxdom.TypeString:
		return rbxdom.String(content(tag)), nil

	case rbxdom.TypeBinaryString:
		data, err := base64.StdEncoding.DecodeString(stripSpace(content(tag)))
		if err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.BinaryString(data), nil

	case rbxdom.TypeBool:
		return rbxdom.Bool(parseBool(content(tag))), nil

	case rbxdom.TypeInt32:
		n, err := strconv.ParseInt(strings.TrimSpace(content(tag)), 10, 32)
		if err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.Int32(n), nil

	case rbxdom.TypeInt64:
		n, err := strconv.ParseInt(strings.TrimSpace(content(tag)), 10, 64)
		if err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.Int64(n), nil

	case rbxdom.TypeFloat32:
		f, err := parseFloat32(content(tag))
		if err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.Float32(f), nil

	case rbxdom.TypeFloat64:
		f, err := parseFloat64(content(tag))
		if err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.Float64(f), nil

	case rbxdom.TypeVector2:
		x, errx := childFloat32(tag, "X")
		y, erry := childFloat32(tag, "Y")
		if errx != nil || erry != nil {
			return nil, errBadValue(tag.StartName, firstErr(errx, erry))
		}
		return rbxdom.Vector2{X: x, Y: y}, nil

	case rbxdom.TypeVector3:
		x, errx := childFloat32(tag, "X")
		y, erry := childFloat32(tag, "Y")
		z, errz := childFloat32(tag, "Z")
		if err := firstErr(errx, erry, errz); err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.Vector3{X: x, Y: y, Z: z}, nil

	case rbxdom.TypeVector3int16:
		x, errx := childInt(tag, "X")
		y, erry := childInt(tag, "Y")
		z, errz := childInt(tag, "Z")
		if err := firstErr(errx, erry, errz); err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.Vector3int16{X: int16(x), Y: int16(y), Z: int16(z)}, nil

	case rbxdom.TypeColor3:
		r, g, b, err := unpackColor3(content(tag))
		if err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.Color3uint8{R: r, G: g, B: b}.ToColor3(), nil

	case rbxdom.TypeColor3uint8:
		r, g, b, err := unpackColor3(content(tag))
		if err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.Color3uint8{R: r, G: g, B: b}, nil

	case rbxdom.TypeCFrame, rbxdom.TypeOptionalCFrame:
		valid := true
		if t == rbxdom.TypeOptionalCFrame {
			if s, ok := childText(tag, "Valid"); ok {
				valid = parseBool(s)
			}
		}
		cf, err := decodeCFrameTag(tag)
		if err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		if t == rbxdom.TypeOptionalCFrame {
			return rbxdom.OptionalCFrame{Value: cf, Valid: valid}, nil
		}
		return cf, nil

	case rbxdom.TypeUDim:
		s, errs := childFloat32(tag, "S")
		o, erro := childInt(tag, "O")
		if err := firstErr(errs, erro); err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.UDim{Scale: s, Offset: int32(o)}, nil

	case rbxdom.TypeUDim2:
		xs, e1 := childFloat32(tag, "XS")
		xo, e2 := childInt(tag, "XO")
		ys, e3 := childFloat32(tag, "YS")
		yo, e4 := childInt(tag, "YO")
		if err := firstErr(e1, e2, e3, e4); err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.UDim2{
			X: rbxdom.UDim{Scale: xs, Offset: int32(xo)},
			Y: rbxdom.UDim{Scale: ys, Offset: int32(yo)},
		}, nil

	case rbxdom.TypeContent:
		if c, ok := childTag(tag, "url"); ok {
			return rbxdom.Content{URI: content(c)}, nil
		}
		if c, ok := childTag(tag, "hash"); ok {
			hb, err := base64.StdEncoding.DecodeString(stripSpace(content(c)))
			if err != nil || len(hb) != 16 {
				return nil, errBadValue(tag.StartName, errors.New("malformed hash"))
			}
			var hash rbxdom.SharedStringHash
			copy(hash[:], hb)
			return rbxdom.Content{Hash: hash}, nil
		}
		return rbxdom.Content{}, nil

	case rbxdom.TypeEnum:
		n, err := strconv.ParseUint(strings.TrimSpace(content(tag)), 10, 32)
		if err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.Enum(n), nil

	case rbxdom.TypeRect:
		minTag, ok1 := childTag(tag, "min")
		maxTag, ok2 := childTag(tag, "max")
		if !ok1 || !ok2 {
			return nil, errBadValue(tag.StartName, errors.New("missing min/max"))
		}
		minX, e1 := childFloat32(minTag, "X")
		minY, e2 := childFloat32(minTag, "Y")
		maxX, e3 := childFloat32(maxTag, "X")
		maxY, e4 := childFloat32(maxTag, "Y")
		if err := firstErr(e1, e2, e3, e4); err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.Rect{Min: rbxdom.Vector2{X: minX, Y: minY}, Max: rbxdom.Vector2{X: maxX, Y: maxY}}, nil

	case rbxdom.TypeNumberRange:
		fields := strings.Fields(content(tag))
		if len(fields) != 2 {
			return nil, errBadValue(tag.StartName, errors.New("expected 2 fields"))
		}
		min, e1 := parseFloat32(fields[0])
		max, e2 := parseFloat32(fields[1])
		if err := firstErr(e1, e2); err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.NumberRange{Min: min, Max: max}, nil

	case rbxdom.TypeNumberSequence:
		fields := strings.Fields(content(tag))
		if len(fields)%3 != 0 {
			return nil, errBadValue(tag.StartName, errors.New("field count not a multiple of 3"))
		}
		seq := make(rbxdom.NumberSequence, 0, len(fields)/3)
		for i := 0; i < len(fields); i += 3 {
			t0, e1 := parseFloat32(fields[i])
			v0, e2 := parseFloat32(fields[i+1])
			e0, e3 := parseFloat32(fields[i+2])
			if err := firstErr(e1, e2, e3); err != nil {
				return nil, errBadValue(tag.StartName, err)
			}
			seq = append(seq, rbxdom.NumberSequenceKeypoint{Time: t0, Value: v0, Envelope: e0})
		}
		return seq, nil

	case rbxdom.TypeColorSequence:
		fields := strings.Fields(content(tag))
		if len(fields)%5 != 0 {
			return nil, errBadValue(tag.StartName, errors.New("field count not a multiple of 5"))
		}
		seq := make(rbxdom.ColorSequence, 0, len(fields)/5)
		for i := 0; i < len(fields); i += 5 {
			t0, e1 := parseFloat32(fields[i])
			r, e2 := parseFloat32(fields[i+1])
			g, e3 := parseFloat32(fields[i+2])
			b, e4 := parseFloat32(fields[i+3])
			env, e5 := parseFloat32(fields[i+4])
			if err := firstErr(e1, e2, e3, e4, e5); err != nil {
				return nil, errBadValue(tag.StartName, err)
			}
			seq = append(seq, rbxdom.ColorSequenceKeypoint{Time: t0, Value: rbxdom.Color3{R: r, G: g, B: b}, Envelope: env})
		}
		return seq, nil

	case rbxdom.TypePhysicalProperties:
		custom := parseBool(firstOr(childText(tag, "CustomPhysics")))
		pp := rbxdom.PhysicalProperties{CustomPhysics: custom}
		if custom {
			d, e1 := childFloat32(tag, "Density")
			f, e2 := childFloat32(tag, "Friction")
			el, e3 := childFloat32(tag, "Elasticity")
			fw, e4 := childFloat32(tag, "FrictionWeight")
			ew, e5 := childFloat32(tag, "ElasticityWeight")
			if err := firstErr(e1, e2, e3, e4, e5); err != nil {
				return nil, errBadValue(tag.StartName, err)
			}
			pp.Density, pp.Friction, pp.Elasticity = d, f, el
			pp.FrictionWeight, pp.ElasticityWeight = fw, ew
		}
		return pp, nil

	case rbxdom.TypeAxes:
		n, err := strconv.ParseUint(strings.TrimSpace(content(tag)), 10, 32)
		if err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.AxesFromBits(uint32(n)), nil

	case rbxdom.TypeFaces:
		n, err := strconv.ParseUint(strings.TrimSpace(content(tag)), 10, 32)
		if err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.FacesFromBits(uint32(n)), nil

	case rbxdom.TypeUniqueId:
		u, err := parseUniqueId(content(tag))
		if err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return u, nil

	case rbxdom.TypeFont:
		family, _ := childText(tag, "Family")
		weight, _ := childText(tag, "Weight")
		style, _ := childText(tag, "Style")
		faceID, _ := childText(tag, "CachedFaceId")
		w, err := strconv.ParseUint(strings.TrimSpace(weight), 10, 16)
		if err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		s, err := strconv.ParseUint(strings.TrimSpace(style), 10, 8)
		if err != nil {
			return nil, errBadValue(tag.StartName, err)
		}
		return rbxdom.Font{
			Family:       family,
			Weight:       rbxdom.FontWeight(w),
			Style:        rbxdom.FontStyle(s),
			CachedFaceID: faceID,
		}, nil

	default:
		return nil, errUnknownTag(tag.StartName)
	}
}

func decodeCFrameTag(tag *Tag) (rbxdom.CFrame, error) {
	x, e1 := childFloat32(tag, "X")
	y, e2 := childFloat32(tag, "Y")
	z, e3 := childFloat32(tag, "Z")
	if err := firstErr(e1, e2, e3); err != nil {
		return rbxdom.CFrame{}, err
	}
	var m rbxdom.Matrix3
	names := [9]string{"R00", "R01", "R02", "R10", "R11", "R12", "R20", "R21", "R22"}
	for i, n := range names {
		f, err := childFloat32(tag, n)
		if err != nil {
			return rbxdom.CFrame{}, err
		}
		m[i] = f
	}
	return rbxdom.CFrame{Position: rbxdom.Vector3{X: x, Y: y, Z: z}, R: m}, nil
}

func parseUniqueId(s string) (rbxdom.UniqueId, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return rbxdom.UniqueId{}, errors.New("expected 3 colon-separated fields")
	}
	idx, err := strconv.ParseUint(parts[0], 16, 32)
	if err != nil {
		return rbxdom.UniqueId{}, err
	}
	rnd, err := strconv.ParseUint(parts[1], 16, 32)
	if err != nil {
		return rbxdom.UniqueId{}, err
	}
	tm, err := strconv.ParseUint(parts[2], 16, 64)
	if err != nil {
		return rbxdom.UniqueId{}, err
	}
	return rbxdom.UniqueId{Index: uint32(idx), Random: uint32(rnd), Time: tm}, nil
}

func childFloat32(tag *Tag, name string) (float32, error) {
	s, ok := childText(tag, name)
	if !ok {
		return 0, fmt.Errorf("missing %s", name)
	}
	return parseFloat32(s)
}

func childInt(tag *Tag, name string) (int64, error) {
	s, ok := childText(tag, name)
	if !ok {
		return 0, fmt.Errorf("missing %s", name)
	}
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func firstOr(s string, ok bool) string {
	if ok {
		return s
	}
	return ""
}

// xmlEncoder carries encode-time state: the referent assigned to each
// instance (every instance is numbered before any Item tag is built, so a
// forward Ref property always resolves) and the table of SharedString
// values collected for the trailing <SharedStrings> block.
type xmlEncoder struct {
	e      *Encoder
	refs   map[rbxdom.Ref]string
	shared map[rbxdom.SharedStringHash][]byte
}

func (e *Encoder) encode(w io.Writer, dom *rbxdom.WeakDom) error {
	enc := &xmlEncoder{
		e:      e,
		refs:   make(map[rbxdom.Ref]string),
		shared: make(map[rbxdom.SharedStringHash][]byte),
	}
	for i, inst := range dom.Descendants() {
		enc.refs[inst.Ref()] = strconv.Itoa(i)
	}

	var children []*Tag

	names := make([]string, 0, len(e.Metadata))
	for name := range e.Metadata {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		meta := textTag("Meta", e.Metadata[name])
		meta.SetAttrValue("name", name)
		children = append(children, meta)
	}

	for _, root := range dom.Roots() {
		children = append(children, enc.encodeInstance(dom, root))
	}

	if len(enc.shared) > 0 {
		children = append(children, enc.encodeSharedStrings())
	}

	root := NewRoot(children...)
	indent := e.Indent
	if indent == "" {
		indent = defaultIndent
	}
	doc := &Document{Indent: indent, Root: root}
	_, err := doc.WriteTo(w)
	return err
}

func (enc *xmlEncoder) encodeInstance(dom *rbxdom.WeakDom, inst *rbxdom.Instance) *Tag {
	names := make([]string, 0, len(inst.Properties))
	for name := range inst.Properties {
		if name != "Name" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var props []*Tag
	if _, ok := inst.Properties["Name"]; ok {
		if tag := enc.encodeProperty(inst, "Name"); tag != nil {
			props = append(props, tag)
		}
	}
	for _, name := range names {
		if tag := enc.encodeProperty(inst, name); tag != nil {
			props = append(props, tag)
		}
	}

	item := NewItem(inst.ClassName, enc.refs[inst.Ref()], props...)
	for _, child := range dom.Children(inst) {
		item.Tags = append(item.Tags, enc.encodeInstance(dom, child))
	}
	return item
}

func (enc *xmlEncoder) encodeProperty(inst *rbxdom.Instance, name string) *Tag {
	v := inst.Properties[name]
	wireName := name
	if enc.e.DB != nil {
		res, err := enc.e.DB.Resolve(inst.ClassName, name)
		if err != nil {
			return nil
		}
		if res.Serialized == nil {
			return nil
		}
		wireName = res.Serialized.Name
	}

	if ref, ok := v.(rbxdom.Ref); ok {
		referent := "null"
		if !ref.IsNull() {
			referent = enc.refs[ref]
		}
		return NewProp("Ref", wireName, referent)
	}
	if ss, ok := v.(rbxdom.SharedString); ok {
		enc.shared[ss.Hash] = ss.Data
		return NewProp("SharedString", wireName, base64.StdEncoding.EncodeToString(ss.Hash[:]))
	}

	return encodeValue(wireName, v)
}

func (enc *xmlEncoder) encodeSharedStrings() *Tag {
	keys := make([]string, 0, len(enc.shared))
	byKey := make(map[string][]byte, len(enc.shared))
	for hash, data := range enc.shared {
		key := base64.StdEncoding.EncodeToString(hash[:])
		keys = append(keys, key)
		byKey[key] = data
	}
	sort.Strings(keys)

	block := &Tag{StartName: "SharedStrings"}
	for _, key := range keys {
		item := &Tag{
			StartName: "SharedString",
			Attr:      []Attr{{Name: "md5", Value: key}},
			Text:      base64.StdEncoding.EncodeToString(byKey[key]),
			NoIndent:  true,
		}
		block.Tags = append(block.Tags, item)
	}
	return block
}

// encodeValue builds the property tag for v, dispatching on its concrete
// Go type (the inverse of decodeValue's switch on rbxdom.Type).
func encodeValue(name string, v rbxdom.Variant) *Tag {
	switch v := v.(type) {
	case rbxdom.String:
		return NewProp("string", name, string(v))

	case rbxdom.BinaryString:
		return NewProp("BinaryString", name, base64.StdEncoding.EncodeToString(v))

	case rbxdom.Bool:
		return NewProp("bool", name, boolText(bool(v)))

	case rbxdom.Int32:
		return NewProp("int", name, strconv.FormatInt(int64(v), 10))

	case rbxdom.Int64:
		return NewProp("int64", name, strconv.FormatInt(int64(v), 10))

	case rbxdom.Float32:
		return NewProp("float", name, formatFloat32(float32(v)))

	case rbxdom.Float64:
		return NewProp("double", name, formatFloat64(float64(v)))

	case rbxdom.Vector2:
		return namedProp("Vector2", name,
			textTag("X", formatFloat32(v.X)),
			textTag("Y", formatFloat32(v.Y)))

	case rbxdom.Vector3:
		return namedProp("Vector3", name,
			textTag("X", formatFloat32(v.X)),
			textTag("Y", formatFloat32(v.Y)),
			textTag("Z", formatFloat32(v.Z)))

	case rbxdom.Vector3int16:
		return namedProp("Vector3int16", name,
			textTag("X", strconv.Itoa(int(v.X))),
			textTag("Y", strconv.Itoa(int(v.Y))),
			textTag("Z", strconv.Itoa(int(v.Z))))

	case rbxdom.Color3:
		u8 := v.ToColor3uint8()
		return NewProp("Color3", name, packColor3(u8.R, u8.G, u8.B))

	case rbxdom.Color3uint8:
		return NewProp("Color3uint8", name, packColor3(v.R, v.G, v.B))

	case rbxdom.CFrame:
		return encodeCFrameTag("CoordinateFrame", name, v, nil)

	case rbxdom.OptionalCFrame:
		valid := textTag("Valid", boolText(v.Valid))
		return encodeCFrameTag("OptionalCoordinateFrame", name, v.Value, []*Tag{valid})

	case rbxdom.UDim:
		return namedProp("UDim", name,
			textTag("S", formatFloat32(v.Scale)),
			textTag("O", strconv.FormatInt(int64(v.Offset), 10)))

	case rbxdom.UDim2:
		return namedProp("UDim2", name,
			textTag("XS", formatFloat32(v.X.Scale)),
			textTag("XO", strconv.FormatInt(int64(v.X.Offset), 10)),
			textTag("YS", formatFloat32(v.Y.Scale)),
			textTag("YO", strconv.FormatInt(int64(v.Y.Offset), 10)))

	case rbxdom.Content:
		switch {
		case v.IsSharedString():
			return namedProp("Content", name, textTag("hash", base64.StdEncoding.EncodeToString(v.Hash[:])))
		case v.URI == "":
			return namedProp("Content", name, &Tag{StartName: "null", Empty: true})
		default:
			return namedProp("Content", name, textTag("url", v.URI))
		}

	case rbxdom.Enum:
		return NewProp("token", name, strconv.FormatUint(uint64(v), 10))

	case rbxdom.Rect:
		return namedProp("Rect2D", name,
			&Tag{StartName: "min", Tags: []*Tag{textTag("X", formatFloat32(v.Min.X)), textTag("Y", formatFloat32(v.Min.Y))}},
			&Tag{StartName: "max", Tags: []*Tag{textTag("X", formatFloat32(v.Max.X)), textTag("Y", formatFloat32(v.Max.Y))}})

	case rbxdom.NumberRange:
		return NewProp("NumberRange", name, formatFloat32(v.Min)+" "+formatFloat32(v.Max))

	case rbxdom.NumberSequence:
		var sb strings.Builder
		for i, kp := range v {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(formatFloat32(kp.Time) + " " + formatFloat32(kp.Value) + " " + formatFloat32(kp.Envelope))
		}
		return NewProp("NumberSequence", name, sb.String())

	case rbxdom.ColorSequence:
		var sb strings.Builder
		for i, kp := range v {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(formatFloat32(kp.Time) + " " + formatFloat32(kp.Value.R) + " " + formatFloat32(kp.Value.G) + " " + formatFloat32(kp.Value.B) + " " + formatFloat32(kp.Envelope))
		}
		return NewProp("ColorSequence", name, sb.String())

	case rbxdom.PhysicalProperties:
		children := []*Tag{textTag("CustomPhysics", boolText(v.CustomPhysics))}
		if v.CustomPhysics {
			children = append(children,
				textTag("Density", formatFloat32(v.Density)),
				textTag("Friction", formatFloat32(v.Friction)),
				textTag("Elasticity", formatFloat32(v.Elasticity)),
				textTag("FrictionWeight", formatFloat32(v.FrictionWeight)),
				textTag("ElasticityWeight", formatFloat32(v.ElasticityWeight)))
		}
		return namedProp("PhysicalProperties", name, children...)

	case rbxdom.Axes:
		return NewProp("Axes", name, strconv.FormatUint(uint64(v.Bits()), 10))

	case rbxdom.Faces:
		return NewProp("Faces", name, strconv.FormatUint(uint64(v.Bits()), 10))

	case rbxdom.UniqueId:
		return NewProp("UniqueId", name, formatUniqueId(v))

	case rbxdom.Font:
		return namedProp("Font", name,
			textTag("Family", v.Family),
			textTag("Weight", strconv.FormatUint(uint64(v.Weight), 10)),
			textTag("Style", strconv.FormatUint(uint64(v.Style), 10)),
			textTag("CachedFaceId", v.CachedFaceID))

	default:
		return nil
	}
}

func encodeCFrameTag(typeName, name string, cf rbxdom.CFrame, extra []*Tag) *Tag {
	children := []*Tag{
		textTag("X", formatFloat32(cf.Position.X)),
		textTag("Y", formatFloat32(cf.Position.Y)),
		textTag("Z", formatFloat32(cf.Position.Z)),
	}
	names := [9]string{"R00", "R01", "R02", "R10", "R11", "R12", "R20", "R21", "R22"}
	for i, n := range names {
		children = append(children, textTag(n, formatFloat32(cf.R[i])))
	}
	children = append(children, extra...)
	return namedProp(typeName, name, children...)
}

func formatUniqueId(u rbxdom.UniqueId) string {
	return fmt.Sprintf("%08x:%08x:%016x", u.Index, u.Random, u.Time)
}
