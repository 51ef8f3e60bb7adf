// Package report defines violations and the aggregation step that turns raw
// engine matches into a stable, ordered, deduplicated report.
//
// The invariant the aggregator guards: for a fixed (file content, catalog)
// pair the report is byte-for-byte identical across runs and platforms. No
// map iteration, traversal luck, or wall clock may leak into the ordering.
package report
