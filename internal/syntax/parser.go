package syntax

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"
)

// ParseError means the file is not analyzable: the grammar could not build a
// coherent tree for it. One ParseError never affects sibling files.
type ParseError struct {
	Line uint32
	Col  uint32
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d", e.Line, e.Col)
}

// Parse builds the arena for one Rust source file.
//
// A sitter parser is not safe for concurrent use, so each call owns a fresh
// one; construction is cheap next to parsing itself. The sitter tree is
// closed before returning, the arena is all that survives.
func Parse(ctx context.Context, src []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(rust.GetLanguage())

	st, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("run tree-sitter: %w", err)
	}
	defer st.Close()

	root := st.RootNode()
	if root.HasError() {
		if bad := firstBrokenNode(root); bad != nil {
			return nil, &ParseError{
				Line: uint32(bad.StartPoint().Row) + 1,
				Col:  uint32(bad.StartPoint().Column) + 1,
			}
		}
		return nil, &ParseError{Line: 1, Col: 1}
	}

	t := &Tree{
		src:   src,
		nodes: make([]node, 0, 256),
	}
	snapshot(t, root, "", NoNode)
	return t, nil
}

// firstBrokenNode locates the shallowest-leftmost ERROR or missing node.
func firstBrokenNode(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstBrokenNode(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}

func snapshot(t *Tree, n *sitter.Node, field string, parent NodeID) {
	id := t.appendNode(parent, node{
		kind:  n.Type(),
		field: field,
		span: Span{
			StartLine: uint32(n.StartPoint().Row) + 1,
			StartCol:  uint32(n.StartPoint().Column) + 1,
			EndLine:   uint32(n.EndPoint().Row) + 1,
			EndCol:    uint32(n.EndPoint().Column) + 1,
		},
		startByte: n.StartByte(),
		endByte:   n.EndByte(),
	})

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.IsNamed() {
			continue
		}
		snapshot(t, child, n.FieldNameForChild(i), id)
	}
}
