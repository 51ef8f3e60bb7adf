package rules

import (
	"fmt"

	"github.com/rustvet/rustvet/internal/syntax"
)

func matchMedialCapitals(t *syntax.Tree, n syntax.NodeID) (bool, string) {
	var ident syntax.NodeID
	switch t.Kind(n) {
	case "function_item":
		ident = t.ChildByField(n, "name")
	case "let_declaration":
		// Only simple bindings; tuple and struct patterns are skipped.
		ident = t.ChildByField(n, "pattern")
		if ident != syntax.NoNode && t.Kind(ident) != "identifier" {
			return false, ""
		}
	}
	if ident == syntax.NoNode {
		return false, ""
	}

	name := t.Text(ident)
	if !hasMedialCapital(name) {
		return false, ""
	}

	return true, fmt.Sprintf("identifier %q is camelCase; use snake_case", name)
}

// hasMedialCapital reports a lowercase-or-digit to uppercase transition,
// the defining shape of camelCase. SCREAMING_CASE constants and plain
// snake_case have no such transition.
func hasMedialCapital(name string) bool {
	prevLower := false
	for _, r := range name {
		if r >= 'A' && r <= 'Z' && prevLower {
			return true
		}
		prevLower = (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
	}

	return false
}
