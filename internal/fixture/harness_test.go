package fixture

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/sirkon/deepequal"

	"github.com/rustvet/rustvet/internal/rules"
)

func testCatalog(t *testing.T) *rules.Catalog {
	t.Helper()
	cat, err := rules.DefaultCatalog()
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func TestParseDirectives(t *testing.T) {
	src := []byte(`// rustvet:fires N2 N3
// rustvet:silent N1, S1

fn whatever() {}
`)
	fires, silent, err := parseDirectives("case.rs", src)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"N2", "N3"}; !reflect.DeepEqual(want, fires) {
		deepequal.SideBySide(t, "fires", want, fires)
	}
	if want := []string{"N1", "S1"}; !reflect.DeepEqual(want, silent) {
		deepequal.SideBySide(t, "silent", want, silent)
	}
}

func TestParseDirectivesRejectsUnknownID(t *testing.T) {
	src := []byte("// a leading comment\n// rustvet:fires N2 X7\n")

	_, _, err := parseDirectives("case.rs", src)
	if err == nil {
		t.Fatal("unknown expectation id went unnoticed")
	}
	if !strings.Contains(err.Error(), "case.rs:2") {
		t.Errorf("error %q does not point at the directive line", err)
	}
}

func TestVerifyCaseOutcomes(t *testing.T) {
	cases := []Case{
		{
			Name: "agrees.rs",
			Source: []byte(`// rustvet:fires N3
use std::mem;

fn leak(file: std::fs::File) {
    mem::forget(file);
}
`),
		},
		{
			Name: "missing.rs",
			Source: []byte(`// rustvet:fires N2

fn nothing_here() {}
`),
		},
		{
			Name: "negative_but_fires.rs",
			Source: []byte(`fn shout() {
    let loudValue = 1;
    let _ = loudValue;
}
`),
		},
		{
			Name:   "unreadable.rs",
			Source: []byte("fn broken( {\n"),
		},
	}

	results := VerifyCases(context.Background(), cases, testCatalog(t))
	if len(results) != len(cases) {
		t.Fatalf("got %d results for %d cases", len(results), len(cases))
	}

	if !results[0].Ok() {
		t.Errorf("agreeing case failed: %s", results[0])
	}

	if want := []string{"N2"}; !reflect.DeepEqual(want, results[1].Missing) {
		deepequal.SideBySide(t, "missing", want, results[1].Missing)
	}

	if want := []string{"S1"}; !reflect.DeepEqual(want, results[2].Unexpected) {
		deepequal.SideBySide(t, "unexpected", want, results[2].Unexpected)
	}

	if results[3].Err == nil {
		t.Error("unparsable fixture reported no error")
	}
	// One broken fixture never poisons its siblings.
	if !results[0].Ok() || results[1].Err != nil || results[2].Err != nil {
		t.Error("broken fixture leaked into sibling results")
	}
}

func TestVerifyWalksLexically(t *testing.T) {
	clean := []byte("fn ok() {}\n")
	fsys := fstest.MapFS{
		"cases/b_second.rs": {Data: clean},
		"cases/a_first.rs":  {Data: clean},
		"cases/readme.md":   {Data: []byte("not a fixture")},
		"cases/sub/c.rs":    {Data: clean},
	}

	results, err := Verify(context.Background(), fsys, "cases", testCatalog(t))
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, r := range results {
		if !r.Ok() {
			t.Errorf("clean fixture failed: %s", r)
		}
		names = append(names, r.Name)
	}
	want := []string{"cases/a_first.rs", "cases/b_second.rs", "cases/sub/c.rs"}
	if !reflect.DeepEqual(want, names) {
		deepequal.SideBySide(t, "case order", want, names)
	}
}

func TestVerifyArchive(t *testing.T) {
	const arch = `corpus packed inline
-- fires.rs --
// rustvet:fires N3
use std::mem;

fn leak(file: std::fs::File) {
    mem::forget(file);
}
-- notes.txt --
ignored, not a Rust file
-- clean.rs --
fn add_one(value: u64) -> u64 {
    value + 1
}
`
	results, err := VerifyArchive(context.Background(), []byte(arch), testCatalog(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("archive yielded %d cases, want 2", len(results))
	}
	for _, r := range results {
		if !r.Ok() {
			t.Errorf("archive case failed: %s", r)
		}
	}

	if _, err := VerifyArchive(context.Background(), []byte("no files here\n"), testCatalog(t)); err == nil {
		t.Error("empty archive verified without error")
	}
}

func TestCaseResultString(t *testing.T) {
	ok := CaseResult{Name: "good.rs"}
	if s := ok.String(); s != "PASS good.rs" {
		t.Errorf("ok result renders as %q", s)
	}

	bad := CaseResult{Name: "bad.rs", Missing: []string{"N1"}, Unexpected: []string{"S2"}}
	if s := bad.String(); s != "FAIL bad.rs: missing=[N1] unexpected=[S2]" {
		t.Errorf("failing result renders as %q", s)
	}
}
