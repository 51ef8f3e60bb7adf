package report

import "sort"

// Aggregate deduplicates exact (rule, path, span) repeats and sorts by
// (path, start line, start column, rule id) ascending. Idempotent: feeding
// an aggregated report's violations back in is a no-op.
//
// Matches are buffered and finalized together since ordering needs full-file
// knowledge; nothing here streams.
func Aggregate(raw []Violation) Report {
	seen := make(map[string]bool, len(raw))
	items := make([]Violation, 0, len(raw))
	for _, v := range raw {
		k := v.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		items = append(items, v)
	}

	sort.SliceStable(items, func(i, j int) bool {
		vi, vj := items[i], items[j]
		if vi.Path != vj.Path {
			return vi.Path < vj.Path
		}
		if vi.Span.StartLine != vj.Span.StartLine {
			return vi.Span.StartLine < vj.Span.StartLine
		}
		if vi.Span.StartCol != vj.Span.StartCol {
			return vi.Span.StartCol < vj.Span.StartCol
		}
		return vi.Rule < vj.Rule
	})

	return Report{Violations: items}
}

// Merge combines per-file reports into one, re-aggregating so the combined
// ordering and dedup guarantees hold across files too.
func Merge(reports ...Report) Report {
	var raw []Violation
	for _, r := range reports {
		raw = append(raw, r.Violations...)
	}

	return Aggregate(raw)
}
