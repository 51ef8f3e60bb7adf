package syntax

// NodeID indexes a node within a Tree's arena. IDs are assigned in document
// pre-order, so iterating 0..Len yields nodes exactly as a recursive
// traversal would.
type NodeID int32

// NoNode is the null value for parent/child/sibling links.
const NoNode NodeID = -1

type node struct {
	kind      string
	field     string // field name under the parent, "" when positional
	span      Span
	startByte uint32
	endByte   uint32

	parent      NodeID
	firstChild  NodeID
	lastChild   NodeID
	nextSibling NodeID
	prevSibling NodeID
}

// Tree is the arena snapshot of one parsed file.
type Tree struct {
	src   []byte
	nodes []node
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the source_file node. A parsed tree always has one.
func (t *Tree) Root() NodeID { return 0 }

// Kind returns the grammar kind tag of the node, e.g. "call_expression".
func (t *Tree) Kind(id NodeID) string { return t.nodes[id].kind }

// Field returns the grammar field the node is attached by, e.g. "name".
func (t *Tree) Field(id NodeID) string { return t.nodes[id].field }

// Span returns the node's source span.
func (t *Tree) Span(id NodeID) Span { return t.nodes[id].span }

// Text returns the exact source text of the node.
func (t *Tree) Text(id NodeID) string {
	n := t.nodes[id]
	return string(t.src[n.startByte:n.endByte])
}

func (t *Tree) Parent(id NodeID) NodeID      { return t.nodes[id].parent }
func (t *Tree) FirstChild(id NodeID) NodeID  { return t.nodes[id].firstChild }
func (t *Tree) NextSibling(id NodeID) NodeID { return t.nodes[id].nextSibling }
func (t *Tree) PrevSibling(id NodeID) NodeID { return t.nodes[id].prevSibling }

// ChildByField returns the first child attached by the given field name,
// or NoNode.
func (t *Tree) ChildByField(id NodeID, field string) NodeID {
	for c := t.nodes[id].firstChild; c != NoNode; c = t.nodes[c].nextSibling {
		if t.nodes[c].field == field {
			return c
		}
	}
	return NoNode
}

// Children returns all (named) children of the node in document order.
func (t *Tree) Children(id NodeID) []NodeID {
	var out []NodeID
	for c := t.nodes[id].firstChild; c != NoNode; c = t.nodes[c].nextSibling {
		out = append(out, c)
	}
	return out
}

func (t *Tree) appendNode(parent NodeID, n node) NodeID {
	id := NodeID(len(t.nodes))
	n.parent = parent
	n.firstChild = NoNode
	n.lastChild = NoNode
	n.nextSibling = NoNode
	n.prevSibling = NoNode
	if parent != NoNode {
		p := &t.nodes[parent]
		if p.firstChild == NoNode {
			p.firstChild = id
		} else {
			t.nodes[p.lastChild].nextSibling = id
			n.prevSibling = p.lastChild
		}
		p.lastChild = id
	}
	t.nodes = append(t.nodes, n)
	return id
}

// Comment kinds of the Rust grammar.
const (
	KindLineComment  = "line_comment"
	KindBlockComment = "block_comment"
)

// IsComment reports whether the node is a comment token.
func (t *Tree) IsComment(id NodeID) bool {
	k := t.nodes[id].kind
	return k == KindLineComment || k == KindBlockComment
}
