package engine

import (
	"strings"

	"github.com/rustvet/rustvet/internal/syntax"
)

// wrapperKinds are parents hoisted through when resolving the statement that
// carries a flagged construct. `unsafe { … }` as a statement sits inside an
// expression_statement; in `let x = unsafe { … };` the comment run lives
// above the let, not above the block itself.
var wrapperKinds = map[string]bool{
	"expression_statement":  true,
	"let_declaration":       true,
	"assignment_expression": true,
}

// hasAdjacentJustification reports whether a qualifying comment directly
// precedes the flagged node.
//
// The contiguous run of comment siblings immediately above the anchor is
// inspected, stopping at the first non-comment sibling. Blank lines are not
// represented in the tree and therefore never break the run; any code
// sibling does. No preceding sibling at all means no justification; a doc
// comment on the enclosing declaration does not substitute for a local one.
func hasAdjacentJustification(t *syntax.Tree, n syntax.NodeID, marker string) bool {
	anchor := n
	for {
		p := t.Parent(anchor)
		if p == syntax.NoNode || !wrapperKinds[t.Kind(p)] {
			break
		}
		anchor = p
	}

	for sib := t.PrevSibling(anchor); sib != syntax.NoNode && t.IsComment(sib); sib = t.PrevSibling(sib) {
		if commentHasMarker(t.Text(sib), marker) {
			return true
		}
	}

	return false
}

// commentHasMarker checks whether the comment text, after trimming comment
// punctuation and whitespace, begins with the case-sensitive marker. Block
// comments are checked line by line.
func commentHasMarker(text, marker string) bool {
	text = strings.TrimSuffix(text, "*/")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "/*!")
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, marker) {
			return true
		}
	}

	return false
}
