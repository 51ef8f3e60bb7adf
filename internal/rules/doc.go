// Package rules defines the canonical rule codes of the N/M/S series and the
// catalog that the query engine dispatches them from.
//
// Each rule represents a distinct prohibition or recommendation of the house
// safety guide for Rust sources. The series provides a stable textual
// identity for every rule so that violations can be reported, filtered, and
// compared against fixture expectations consistently.
//
// # Structure
//
// Rule ids follow the severity prefix convention of the guide:
//
//	N*  MUST-NEVER  hard prohibitions (unsafe hygiene, transmute, …)
//	M*  MUST        mandatory signature and layout requirements
//	S*  SHOULD      advisory style rules (naming, cast discipline)
//
// The three tiers are enforcement classes, not a linear scale.
//
// # Matching discipline
//
// A rule's predicate operates purely on node kind and shape. It never reads
// raw text ranges that could overlap comment or string-literal tokens; those
// are distinct leaf kinds the dispatcher simply never routes construct rules
// to. This is what keeps "transmute mentioned in a comment" silent.
//
//   - Rule ids are stable; never renumber existing codes.
//   - New rules take the next free slot of their tier.
package rules
