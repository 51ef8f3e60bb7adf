// Package render turns structured results into CLI output. It is a thin
// adapter over the report types; nothing here feeds back into analysis.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/rustvet/rustvet/internal/report"
	"github.com/rustvet/rustvet/internal/rules"
	"github.com/rustvet/rustvet/internal/runner"
)

var severityPaint = map[rules.Severity]*color.Color{
	rules.SeverityNever:  color.New(color.FgRed, color.Bold),
	rules.SeverityMust:   color.New(color.FgYellow),
	rules.SeverityShould: color.New(color.FgCyan),
}

// Text writes the classic one-line-per-violation listing followed by a
// summary. Colorization is decided by the caller (the fatih/color global
// switch also honors NO_COLOR and non-tty outputs).
func Text(w io.Writer, results []runner.FileResult) error {
	var files, violations, failures int

	for _, res := range results {
		files++
		if res.Err != nil {
			failures++
			fmt.Fprintf(w, "%s: %v\n", res.Path, res.Err)
		}
		for _, v := range res.Report.Violations {
			paint, ok := severityPaint[v.Severity]
			if !ok {
				paint = color.New()
			}
			violations++
			fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
				v.Path, v.Span.StartLine, v.Span.StartCol,
				paint.Sprintf("[%s]", v.Severity), v.Rule, v.Message)
		}
	}

	fmt.Fprintf(w, "%d file(s), %d violation(s), %d failure(s)\n", files, violations, failures)
	return nil
}

type jsonFile struct {
	Path       string          `json:"path"`
	Violations json.RawMessage `json:"violations"`
	Error      string          `json:"error,omitempty"`
}

// JSON writes the machine-readable form consumed by CI tooling.
func JSON(w io.Writer, results []runner.FileResult) error {
	out := make([]jsonFile, 0, len(results))
	for _, res := range results {
		vs := res.Report.Violations
		if vs == nil {
			vs = []report.Violation{}
		}
		violations, err := json.Marshal(vs)
		if err != nil {
			return fmt.Errorf("marshal violations of %s: %w", res.Path, err)
		}
		jf := jsonFile{Path: res.Path, Violations: violations}
		if res.Err != nil {
			jf.Error = res.Err.Error()
		}
		out = append(out, jf)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return nil
}
