package rules

import (
	"fmt"

	"github.com/rustvet/rustvet/internal/syntax"
)

func matchOwnedParameter(t *syntax.Tree, n syntax.NodeID) (bool, string) {
	typ := t.ChildByField(n, "type")
	if typ == syntax.NoNode {
		return false, ""
	}

	switch t.Kind(typ) {
	case "type_identifier":
		if t.Text(typ) == "String" {
			return true, "parameter takes an owned String; a &str view would do"
		}
	case "generic_type":
		base := t.ChildByField(typ, "type")
		if base != syntax.NoNode && t.Kind(base) == "type_identifier" && t.Text(base) == "Vec" {
			return true, "parameter takes an owned Vec; a slice view would do"
		}
	}

	return false, ""
}

func matchBoxedField(t *syntax.Tree, n syntax.NodeID) (bool, string) {
	typ := t.ChildByField(n, "type")
	if typ == syntax.NoNode || t.Kind(typ) != "generic_type" {
		return false, ""
	}
	base := t.ChildByField(typ, "type")
	if base == syntax.NoNode || t.Kind(base) != "type_identifier" || t.Text(base) != "Box" {
		return false, ""
	}

	args := t.ChildByField(typ, "type_arguments")
	if args == syntax.NoNode {
		return false, ""
	}

	inner := syntax.NoNode
	for _, c := range t.Children(args) {
		if t.Kind(c) == "lifetime" || t.IsComment(c) {
			continue
		}
		inner = c
		break
	}
	if inner == syntax.NoNode {
		return false, ""
	}

	// Unsized and dynamically dispatched payloads are what Box is for.
	switch t.Kind(inner) {
	case "dynamic_type", "slice_type", "array_type":
		return false, ""
	case "primitive_type":
		if t.Text(inner) == "str" {
			return false, ""
		}
	}

	name := t.ChildByField(n, "name")
	if name != syntax.NoNode {
		return true, fmt.Sprintf("field %s boxes a plain sized type", t.Text(name))
	}
	return true, ""
}

// numericPrimitives are the target types the cast rule cares about.
var numericPrimitives = map[string]bool{
	"u8": true, "u16": true, "u32": true, "u64": true, "u128": true, "usize": true,
	"i8": true, "i16": true, "i32": true, "i64": true, "i128": true, "isize": true,
	"f32": true, "f64": true,
}

func matchUncheckedCast(t *syntax.Tree, n syntax.NodeID) (bool, string) {
	typ := t.ChildByField(n, "type")
	if typ == syntax.NoNode || t.Kind(typ) != "primitive_type" || !numericPrimitives[t.Text(typ)] {
		return false, ""
	}

	value := t.ChildByField(n, "value")
	if value == syntax.NoNode {
		return false, ""
	}
	if isNumericLiteral(t, value) {
		// Literal casts are compile-time constants, nothing to check there.
		return false, ""
	}

	return true, fmt.Sprintf("`as %s` truncates silently; use try_into()", t.Text(typ))
}

func isNumericLiteral(t *syntax.Tree, n syntax.NodeID) bool {
	switch t.Kind(n) {
	case "integer_literal", "float_literal":
		return true
	case "unary_expression":
		kids := t.Children(n)
		return len(kids) == 1 && isNumericLiteral(t, kids[0])
	default:
		return false
	}
}
