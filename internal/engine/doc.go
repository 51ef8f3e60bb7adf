// Package engine runs the rule catalog over one file's syntax arena.
//
// It makes a single pass in document order. At every node only the rules
// indexed under that node's kind are evaluated, so dispatch cost does not
// grow with catalog size. Comment-dependent rules go through the adjacency
// resolver afterwards: a match is dropped when a qualifying comment directly
// precedes the construct. A comment anywhere else in the file changes
// nothing.
package engine
