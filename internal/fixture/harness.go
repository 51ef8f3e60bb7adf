package fixture

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/rustvet/rustvet/internal/engine"
	"github.com/rustvet/rustvet/internal/rules"
)

// CaseResult is the verification outcome of one fixture.
type CaseResult struct {
	Name string

	// Missing holds expected rule ids that never fired.
	Missing []string

	// Unexpected holds rule ids that fired against the expectation set.
	Unexpected []string

	// Err is set when the fixture itself could not be processed. A broken
	// fixture never affects verification of its siblings.
	Err error
}

// Ok reports whether the fixture agreed with its expectations.
func (r CaseResult) Ok() bool {
	return r.Err == nil && len(r.Missing) == 0 && len(r.Unexpected) == 0
}

func (r CaseResult) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("FAIL %s: %v", r.Name, r.Err)
	case !r.Ok():
		return fmt.Sprintf("FAIL %s: missing=[%s] unexpected=[%s]",
			r.Name, strings.Join(r.Missing, " "), strings.Join(r.Unexpected, " "))
	default:
		return fmt.Sprintf("PASS %s", r.Name)
	}
}

// Verify runs every .rs fixture under dir and compares fired rule ids
// against each case's expectation set. Results come back in lexical path
// order; one broken fixture is reported in place, the rest still run.
func Verify(ctx context.Context, fsys fs.FS, dir string, cat *rules.Catalog) ([]CaseResult, error) {
	var cases []Case
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".rs" {
			return nil
		}
		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", p, err)
		}
		cases = append(cases, Case{Name: p, Source: src})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk fixture corpus %s: %w", dir, err)
	}

	return VerifyCases(ctx, cases, cat), nil
}

// VerifyCases verifies an already loaded corpus.
func VerifyCases(ctx context.Context, cases []Case, cat *rules.Catalog) []CaseResult {
	out := make([]CaseResult, 0, len(cases))
	for _, c := range cases {
		out = append(out, verifyCase(ctx, c, cat))
	}

	return out
}

func verifyCase(ctx context.Context, c Case, cat *rules.Catalog) CaseResult {
	res := CaseResult{Name: c.Name}

	if len(c.Fires) == 0 && len(c.Silent) == 0 {
		fires, silent, err := parseDirectives(c.Name, c.Source)
		if err != nil {
			res.Err = err
			return res
		}
		c.Fires, c.Silent = fires, silent
	}

	rep, err := engine.AnalyzeFile(ctx, c.Name, c.Source, cat)
	if err != nil {
		res.Err = err
		return res
	}

	fired := make(map[string]bool)
	for _, id := range rep.RuleIDs() {
		fired[id] = true
	}

	for _, id := range c.Fires {
		if !fired[id] {
			res.Missing = append(res.Missing, id)
		}
	}

	switch {
	case c.Negative():
		// Fully negative fixture: anything firing is unexpected.
		res.Unexpected = append(res.Unexpected, rep.RuleIDs()...)
	default:
		for _, id := range c.Silent {
			if fired[id] {
				res.Unexpected = append(res.Unexpected, id)
			}
		}
	}

	return res
}
