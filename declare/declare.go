// Package declare builds rbxdom.WeakDom trees in a declarative style,
// generalized from the teacher's rbxfile-flavored declare package.
//
// The easiest way to use this package is to import it directly into the
// current package:
//
//     import . "github.com/robloxapi/rbxdom/declare"
//
// This allows the package's identifiers to be used directly without a
// qualifier.
package declare

import (
	"github.com/robloxapi/rbxdom"
)

// Root declares the top-level set of instances to add to a WeakDom. It is a
// list of Instance declarations.
type Root []instance

func build(dom *rbxdom.WeakDom, dinst instance, parent *rbxdom.Instance, refs map[string]rbxdom.Ref, props map[*rbxdom.Instance][]property) *rbxdom.Instance {
	inst := dom.NewInstance(dinst.className)

	if dinst.reference != "" {
		refs[dinst.reference] = inst.Ref()
	}

	props[inst] = dinst.properties

	if parent != nil {
		dom.SetParent(inst, parent)
	}

	for _, dchild := range dinst.children {
		build(dom, dchild, inst, refs, props)
	}

	return inst
}

// Declare evaluates the Root declaration against dom, generating instances
// and property values, setting up the instance hierarchy, and resolving
// references. Pass a freshly created dom; Declare only adds to it.
func (droot Root) Declare(dom *rbxdom.WeakDom) []*rbxdom.Instance {
	refs := map[string]rbxdom.Ref{}
	props := map[*rbxdom.Instance][]property{}

	roots := make([]*rbxdom.Instance, 0, len(droot))
	for _, dinst := range droot {
		roots = append(roots, build(dom, dinst, nil, refs, props))
	}

	for inst, properties := range props {
		for _, prop := range properties {
			inst.Set(prop.name, value(prop.typ, refs, prop.value))
		}
	}

	return roots
}

type element interface {
	element()
}

type instance struct {
	className  string
	reference  string
	properties []property
	children   []instance
}

func (instance) element() {}

// Declare evaluates the Instance declaration on its own, adding it (and its
// descendants) to dom with no parent.
func (dinst instance) Declare(dom *rbxdom.WeakDom) *rbxdom.Instance {
	refs := map[string]rbxdom.Ref{}
	props := map[*rbxdom.Instance][]property{}
	inst := build(dom, dinst, nil, refs, props)
	for inst, properties := range props {
		for _, prop := range properties {
			inst.Set(prop.name, value(prop.typ, refs, prop.value))
		}
	}
	return inst
}

// Instance declares a rbxdom.Instance. It defines an instance with a class
// name, and a series of "elements". An element can be a Property
// declaration, which defines a property for the instance. An element can
// also be another Instance declaration, which becomes a child of the
// instance.
//
// An element can also be a "Ref" declaration, which defines a string that
// can be used to refer to the instance by properties with the Reference
// type.
func Instance(className string, elements ...element) instance {
	inst := instance{className: className}
	for _, e := range elements {
		switch e := e.(type) {
		case Ref:
			inst.reference = string(e)
		case property:
			inst.properties = append(inst.properties, e)
		case instance:
			inst.children = append(inst.children, e)
		}
	}
	return inst
}

type property struct {
	name  string
	typ   rbxdom.Type
	value []interface{}
}

func (property) element() {}

// Property declares a property of a rbxdom.Instance: a name, a rbxdom.Type,
// and one or more raw values asserted into a Variant of that type. See
// type.go's value function for the accepted argument shapes per type.
func Property(name string, typ rbxdom.Type, value ...interface{}) property {
	return property{name: name, typ: typ, value: value}
}

// Declare evaluates the Property declaration on its own. Since the property
// does not belong to any instance, the name is ignored and only the value
// is generated; a Reference-typed property declared this way can never
// resolve, since no instance has claimed the Ref string yet.
func (prop property) Declare() rbxdom.Variant {
	return value(prop.typ, nil, prop.value)
}

// Ref declares a string that can be used to refer to the Instance under
// which it was declared.
type Ref string

func (Ref) element() {}
