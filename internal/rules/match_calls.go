package rules

import (
	"fmt"

	"github.com/rustvet/rustvet/internal/syntax"
)

// calleePath returns the `::`-separated segments of a call's callee when the
// callee is a plain or scoped path, unwrapping a turbofish instantiation.
// Method calls (field expressions) and anything fancier yield nil.
func calleePath(t *syntax.Tree, call syntax.NodeID) []string {
	fn := t.ChildByField(call, "function")
	if fn == syntax.NoNode {
		return nil
	}

	// mem::transmute::<u64, i64>(…) wraps the path into a generic_function.
	if t.Kind(fn) == "generic_function" {
		fn = t.ChildByField(fn, "function")
		if fn == syntax.NoNode {
			return nil
		}
	}

	return pathSegments(t, fn)
}

func pathSegments(t *syntax.Tree, n syntax.NodeID) []string {
	switch t.Kind(n) {
	case "identifier", "crate", "super", "self", "metavariable":
		return []string{t.Text(n)}
	case "scoped_identifier":
		path := t.ChildByField(n, "path")
		name := t.ChildByField(n, "name")
		if name == syntax.NoNode {
			return nil
		}
		if path == syntax.NoNode {
			return []string{t.Text(name)}
		}
		prefix := pathSegments(t, path)
		if prefix == nil {
			return nil
		}
		return append(prefix, t.Text(name))
	default:
		return nil
	}
}

// mem items are matched by their final segment plus an optional `mem`
// qualifier: `transmute(x)` after a use-import, `mem::transmute(x)`,
// `std::mem::transmute(x)` and the core:: twin all resolve here. Renamed
// module imports are beyond structural matching and stay out of scope.
func isMemItemCall(t *syntax.Tree, call syntax.NodeID, item string) bool {
	segs := calleePath(t, call)
	if len(segs) == 0 {
		return false
	}
	if segs[len(segs)-1] != item {
		return false
	}
	if len(segs) == 1 {
		return true
	}

	return segs[len(segs)-2] == "mem"
}

func matchTransmuteCall(t *syntax.Tree, n syntax.NodeID) (bool, string) {
	if !isMemItemCall(t, n, "transmute") {
		return false, ""
	}

	return true, ""
}

func matchForgetCall(t *syntax.Tree, n syntax.NodeID) (bool, string) {
	if !isMemItemCall(t, n, "forget") {
		return false, ""
	}

	return true, ""
}

// Method names that are pointer arithmetic no matter the receiver.
var pointerOnlyArithmetic = map[string]bool{
	"offset":          true,
	"wrapping_offset": true,
}

// Method names that are pointer arithmetic only when the receiver
// syntactically involves a raw pointer; on other receivers `add`/`sub`
// are ordinary methods.
var ambiguousArithmetic = map[string]bool{
	"add":          true,
	"sub":          true,
	"wrapping_add": true,
	"wrapping_sub": true,
	"byte_add":     true,
	"byte_sub":     true,
}

func matchPointerArithmetic(t *syntax.Tree, n syntax.NodeID) (bool, string) {
	fn := t.ChildByField(n, "function")
	if fn == syntax.NoNode || t.Kind(fn) != "field_expression" {
		return false, ""
	}
	field := t.ChildByField(fn, "field")
	if field == syntax.NoNode {
		return false, ""
	}

	method := t.Text(field)
	if pointerOnlyArithmetic[method] {
		return true, fmt.Sprintf("raw pointer arithmetic via .%s()", method)
	}
	if !ambiguousArithmetic[method] {
		return false, ""
	}

	value := t.ChildByField(fn, "value")
	if value == syntax.NoNode || !involvesRawPointer(t, value) {
		return false, ""
	}

	return true, fmt.Sprintf("raw pointer arithmetic via .%s()", method)
}

// involvesRawPointer reports whether the expression subtree contains a raw
// pointer cast or an as_ptr/as_mut_ptr call. Purely structural: no type
// inference happens here.
func involvesRawPointer(t *syntax.Tree, n syntax.NodeID) bool {
	if t.Kind(n) == "pointer_type" {
		return true
	}
	if t.Kind(n) == "field_expression" {
		if field := t.ChildByField(n, "field"); field != syntax.NoNode {
			if name := t.Text(field); name == "as_ptr" || name == "as_mut_ptr" {
				return true
			}
		}
	}

	for c := t.FirstChild(n); c != syntax.NoNode; c = t.NextSibling(c) {
		if involvesRawPointer(t, c) {
			return true
		}
	}

	return false
}

func matchBareUnwrap(t *syntax.Tree, n syntax.NodeID) (bool, string) {
	fn := t.ChildByField(n, "function")
	if fn == syntax.NoNode || t.Kind(fn) != "field_expression" {
		return false, ""
	}
	field := t.ChildByField(fn, "field")
	if field == syntax.NoNode {
		return false, ""
	}

	args := t.ChildByField(n, "arguments")

	switch t.Text(field) {
	case "unwrap":
		if args != syntax.NoNode && len(t.Children(args)) > 0 {
			// Not the zero-argument Option/Result unwrap.
			return false, ""
		}
		return true, "unwrap() carries no diagnostic message; use expect(…)"

	case "expect":
		if args == syntax.NoNode {
			return false, ""
		}
		actual := t.Children(args)
		if len(actual) == 0 {
			return true, "expect() without a message is as silent as unwrap()"
		}
		if len(actual) == 1 && t.Kind(actual[0]) == "string_literal" && t.Text(actual[0]) == `""` {
			return true, `expect("") carries an empty diagnostic message`
		}
		return false, ""

	default:
		return false, ""
	}
}
