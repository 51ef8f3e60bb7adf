package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/rustvet/rustvet/internal/report"
	"github.com/rustvet/rustvet/internal/rules"
	"github.com/rustvet/rustvet/internal/syntax"
)

// RuleFaultError is a recovered predicate panic, attributed to the rule that
// raised it. The file's analysis completes regardless; the fault travels
// alongside the report, never instead of it.
type RuleFaultError struct {
	Rule  string
	Span  syntax.Span
	Panic any
}

func (e *RuleFaultError) Error() string {
	return fmt.Sprintf("rule %s: internal fault at %s: %v", e.Rule, e.Span, e.Panic)
}

// Analyze walks the arena once and collects raw match candidates.
//
// NodeID order is document pre-order by construction, so candidates come out
// in ascending span order per file without any sorting here. Rule faults do
// not abort the walk; they are joined into the returned error.
func Analyze(path string, tree *syntax.Tree, cat *rules.Catalog) ([]report.Violation, error) {
	var (
		raw    []report.Violation
		faults []error
	)

	for id := syntax.NodeID(0); int(id) < tree.Len(); id++ {
		for _, rule := range cat.ForKind(tree.Kind(id)) {
			ok, msg, fault := evalRule(tree, id, rule)
			if fault != nil {
				faults = append(faults, fault)
				continue
			}
			if !ok {
				continue
			}
			if rule.Marker != "" && hasAdjacentJustification(tree, id, rule.Marker) {
				continue
			}
			if msg == "" {
				msg = rule.Code.Description()
			}
			raw = append(raw, report.Violation{
				Rule:     rule.Code.ID(),
				Severity: rule.Code.Severity(),
				Path:     path,
				Span:     tree.Span(id),
				Message:  msg,
			})
		}
	}

	return raw, errors.Join(faults...)
}

func evalRule(tree *syntax.Tree, id syntax.NodeID, rule rules.Rule) (ok bool, msg string, fault error) {
	defer func() {
		if p := recover(); p != nil {
			ok = false
			fault = &RuleFaultError{
				Rule:  rule.Code.ID(),
				Span:  tree.Span(id),
				Panic: p,
			}
		}
	}()

	ok, msg = rule.Match(tree, id)
	return ok, msg, nil
}

// AnalyzeFile is the per-file entry point: parse, analyze, aggregate.
//
// A parse failure returns an empty report and the error; the file is simply
// not analyzable. Rule faults return BOTH the completed report and an error
// naming the faulty rule(s), so one broken predicate cannot suppress what
// the healthy rest of the catalog found.
func AnalyzeFile(ctx context.Context, path string, src []byte, cat *rules.Catalog) (report.Report, error) {
	tree, err := syntax.Parse(ctx, src)
	if err != nil {
		return report.Report{}, fmt.Errorf("parse %s: %w", path, err)
	}

	raw, err := Analyze(path, tree, cat)
	rep := report.Aggregate(raw)
	if err != nil {
		return rep, fmt.Errorf("analyze %s: %w", path, err)
	}

	return rep, nil
}
