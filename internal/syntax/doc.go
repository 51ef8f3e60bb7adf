// Package syntax adapts tree-sitter parse results into an index-based arena
// that the rule engine queries.
//
// Parsing itself is delegated to github.com/smacker/go-tree-sitter with the
// bundled Rust grammar. The arena snapshot exists for two reasons:
//
//   - The cgo-backed sitter tree must be closed after parsing; the arena is
//     plain Go data that the analysis of one file owns and discards.
//   - Rule predicates and the adjacency resolver need O(1) parent and sibling
//     lookups in document order, which a flat node table gives for free.
//
// Only named nodes are retained. Comments are named nodes in tree-sitter, so
// they are present in the arena as siblings of the constructs they precede;
// anonymous punctuation tokens are not. NodeID order is document pre-order,
// which is what makes a single traversal of the arena deterministic.
package syntax
