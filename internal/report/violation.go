package report

import (
	"fmt"

	"github.com/rustvet/rustvet/internal/rules"
	"github.com/rustvet/rustvet/internal/syntax"
)

// Violation is one reported instance of a rule matching a source location.
// Immutable once constructed. Several violations may share a span when
// different rules match the same node; only exact (rule, path, span)
// repeats are duplicates.
type Violation struct {
	Rule     string         `json:"rule"`
	Severity rules.Severity `json:"severity"`
	Path     string         `json:"path"`
	Span     syntax.Span    `json:"span"`
	Message  string         `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s:%d:%d: [%s] %s: %s",
		v.Path, v.Span.StartLine, v.Span.StartCol, v.Severity, v.Rule, v.Message)
}

// key identifies a violation for deduplication purposes.
func (v Violation) key() string {
	return fmt.Sprintf("%s\x00%s\x00%s", v.Rule, v.Path, v.Span)
}

// Report is the ordered violation sequence for one analysis unit.
type Report struct {
	Violations []Violation `json:"violations"`
}

// Empty reports whether nothing fired.
func (r Report) Empty() bool { return len(r.Violations) == 0 }

// RuleIDs returns the distinct rule ids present, in report order.
func (r Report) RuleIDs() []string {
	seen := make(map[string]bool, len(r.Violations))
	var out []string
	for _, v := range r.Violations {
		if seen[v.Rule] {
			continue
		}
		seen[v.Rule] = true
		out = append(out, v.Rule)
	}

	return out
}
