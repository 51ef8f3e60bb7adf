package engine

import (
	"context"
	"slices"
	"testing"
)

// Each scenario exercises the comment-adjacency decision for the SAFETY
// marker of the unsafe-block rule.
func TestAdjacentJustification(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		fires bool
	}{
		{
			name: "no comment at all",
			src: `fn f() {
    let items = [1, 2, 3];
    unsafe {
        let p = items.as_ptr();
        let _ = p;
    }
}
`,
			fires: true,
		},
		{
			name: "safety directly above",
			src: `fn f() {
    let items = [1, 2, 3];
    // SAFETY: the array above is non-empty.
    unsafe {
        let p = items.as_ptr();
        let _ = p;
    }
}
`,
			fires: false,
		},
		{
			name: "unrelated comment only",
			src: `fn f() {
    let items = [1, 2, 3];
    // this is commentary, not a justification
    unsafe {
        let p = items.as_ptr();
        let _ = p;
    }
}
`,
			fires: true,
		},
		{
			name: "safety above a let binding",
			src: `fn f() {
    let items = [1, 2, 3];
    // SAFETY: index zero is in bounds.
    let first = unsafe { *items.as_ptr() };
    let _ = first;
}
`,
			fires: false,
		},
		{
			name: "comment run with a blank line",
			src: `fn f() {
    let items = [1, 2, 3];
    // SAFETY: index zero is in bounds.

    // the gap above does not break the run
    unsafe {
        let p = items.as_ptr();
        let _ = p;
    }
}
`,
			fires: false,
		},
		{
			name: "code between comment and block",
			src: `fn f() {
    // SAFETY: stale, talks about a line that moved away.
    let items = [1, 2, 3];
    unsafe {
        let p = items.as_ptr();
        let _ = p;
    }
}
`,
			fires: true,
		},
		{
			name: "doc comment on the function does not count",
			src: `/// SAFETY: documented on the function, not on the block.
fn f() {
    unsafe {
        let p = std::ptr::null::<i32>();
        let _ = p;
    }
}
`,
			fires: true,
		},
		{
			name: "block comment justification",
			src: `fn f() {
    /* SAFETY: fine as a block comment too. */
    unsafe {
        let p = std::ptr::null::<i32>();
        let _ = p;
    }
}
`,
			fires: false,
		},
		{
			name: "marker not at line start",
			src: `fn f() {
    // see the SAFETY: discussion in the module docs
    unsafe {
        let p = std::ptr::null::<i32>();
        let _ = p;
    }
}
`,
			fires: true,
		},
	}

	cat := defaultCatalog(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep, err := AnalyzeFile(context.Background(), "case.rs", []byte(tc.src), cat)
			if err != nil {
				t.Fatal(err)
			}
			if got := slices.Contains(rep.RuleIDs(), "N1"); got != tc.fires {
				t.Errorf("unsafe rule fired = %v, want %v (all fired: %v)",
					got, tc.fires, rep.RuleIDs())
			}
		})
	}
}

func TestAdjacencyFlagsTheRightBlock(t *testing.T) {
	const src = `fn justified() {
    // SAFETY: null is never dereferenced here.
    unsafe {
        let p = std::ptr::null::<i32>();
        let _ = p;
    }
}

fn unjustified() {
    // a remark, not a justification
    unsafe {
        let p = std::ptr::null::<i32>();
        let _ = p;
    }
}
`
	rep, err := AnalyzeFile(context.Background(), "case.rs", []byte(src), defaultCatalog(t))
	if err != nil {
		t.Fatal(err)
	}

	if len(rep.Violations) != 1 {
		t.Fatalf("fired %d violations, want exactly one for the unjustified block", len(rep.Violations))
	}
	v := rep.Violations[0]
	if v.Rule != "N1" || v.Span.StartLine != 11 {
		t.Errorf("violation = %s at line %d, want N1 at line 11", v.Rule, v.Span.StartLine)
	}
}

func TestCommentHasMarker(t *testing.T) {
	for text, want := range map[string]bool{
		"// SAFETY: checked above":               true,
		"//SAFETY: no space after slashes":       true,
		"/// SAFETY: doc comment form":           true,
		"//! SAFETY: inner doc form":             true,
		"/* SAFETY: block form */":               true,
		"/*\n * left gutter\n * SAFETY: here\n*/": true,
		"// safety: lowercase does not count":    false,
		"// see SAFETY: elsewhere":               false,
		"// plain words":                         false,
	} {
		if got := commentHasMarker(text, "SAFETY:"); got != want {
			t.Errorf("commentHasMarker(%q) = %v, want %v", text, got, want)
		}
	}
}
