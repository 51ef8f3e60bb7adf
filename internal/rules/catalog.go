package rules

import (
	"errors"
	"fmt"

	"github.com/rustvet/rustvet/internal/syntax"
)

// Matcher is a rule predicate over one arena node. It returns whether the
// node matches and, optionally, a message more specific than the code's
// Description. Matchers look at node kind and shape only.
type Matcher func(t *syntax.Tree, n syntax.NodeID) (ok bool, message string)

// Rule binds a code to the node kinds it applies to and its predicate.
type Rule struct {
	Code  Code
	Kinds []string

	// Marker, when non-empty, makes the rule comment-dependent: a matched
	// node is only reported when NO comment in the run directly above it
	// begins with this case-sensitive marker. Example: "SAFETY:".
	Marker string

	Match Matcher
}

// Catalog construction errors. A broken catalog cannot certify any file,
// so all of these are fatal before analysis starts.
var (
	ErrDuplicateRule  = errors.New("duplicate rule id")
	ErrRuleNoKinds    = errors.New("rule declares no applicable node kinds")
	ErrRuleNoMatcher  = errors.New("rule declares no matcher")
	ErrUnknownRuleRef = errors.New("unknown rule id")
)

// Catalog is the immutable registry the engine dispatches from. Register
// everything first, then share it freely: it is read-only afterwards and
// safe for concurrent use across file analyses without synchronization.
type Catalog struct {
	rules  []Rule
	byID   map[string]int
	byKind map[string][]Rule
}

func NewCatalog() *Catalog {
	return &Catalog{
		byID:   make(map[string]int),
		byKind: make(map[string][]Rule),
	}
}

// Register adds a rule, validating it eagerly.
func (c *Catalog) Register(r Rule) error {
	id := r.Code.ID()
	if _, ok := c.byID[id]; ok {
		return fmt.Errorf("register rule %s: %w", id, ErrDuplicateRule)
	}
	if len(r.Kinds) == 0 {
		// Adjacency-dependent or not, a rule without kinds can never fire:
		// dispatch is kind-indexed.
		return fmt.Errorf("register rule %s: %w", id, ErrRuleNoKinds)
	}
	if r.Match == nil {
		return fmt.Errorf("register rule %s: %w", id, ErrRuleNoMatcher)
	}

	c.byID[id] = len(c.rules)
	c.rules = append(c.rules, r)
	for _, kind := range r.Kinds {
		c.byKind[kind] = append(c.byKind[kind], r)
	}

	return nil
}

// All returns the rules in registration order. The order is fixed per
// catalog and decides same-span ties in reports.
func (c *Catalog) All() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// ForKind returns the rules applicable to the given node kind. The engine
// calls this once per visited node; the slice is shared, do not modify.
func (c *Catalog) ForKind(kind string) []Rule {
	return c.byKind[kind]
}

// Get resolves a rule by its short id.
func (c *Catalog) Get(id string) (Rule, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Rule{}, false
	}
	return c.rules[i], true
}

// Len returns the number of registered rules.
func (c *Catalog) Len() int { return len(c.rules) }

// DefaultCatalog builds the versioned rule table, minus explicitly disabled
// ids. Disabling an id that does not exist is a configuration error: a typo
// there would silently re-enable enforcement the user meant to switch off.
func DefaultCatalog(disabled ...string) (*Catalog, error) {
	skip := make(map[string]bool, len(disabled))
	for _, id := range disabled {
		if _, err := ParseCode(id); err != nil {
			return nil, fmt.Errorf("disable rule %q: %w", id, ErrUnknownRuleRef)
		}
		skip[id] = true
	}

	c := NewCatalog()
	for _, r := range defaultRules() {
		if skip[r.Code.ID()] {
			continue
		}
		if err := c.Register(r); err != nil {
			return nil, fmt.Errorf("build default catalog: %w", err)
		}
	}

	return c, nil
}

// defaultRules is the fixed, versioned rule table.
func defaultRules() []Rule {
	return []Rule{
		{
			Code:   N1UnsafeNeedsJustification,
			Kinds:  []string{"unsafe_block"},
			Marker: "SAFETY:",
			Match:  matchAlways,
		},
		{
			Code:  N2Transmute,
			Kinds: []string{"call_expression"},
			Match: matchTransmuteCall,
		},
		{
			Code:  N3AbandonDestructor,
			Kinds: []string{"call_expression"},
			Match: matchForgetCall,
		},
		{
			Code:  N4RawPointerArithmetic,
			Kinds: []string{"call_expression"},
			Match: matchPointerArithmetic,
		},
		{
			Code:  N5UnwrapWithoutDiagnostic,
			Kinds: []string{"call_expression"},
			Match: matchBareUnwrap,
		},
		{
			Code:  M1OwnedParameter,
			Kinds: []string{"parameter"},
			Match: matchOwnedParameter,
		},
		{
			Code:  M2BoxedField,
			Kinds: []string{"field_declaration"},
			Match: matchBoxedField,
		},
		{
			Code:  S1MedialCapitals,
			Kinds: []string{"function_item", "let_declaration"},
			Match: matchMedialCapitals,
		},
		{
			Code:  S2UncheckedNumericCast,
			Kinds: []string{"type_cast_expression"},
			Match: matchUncheckedCast,
		},
	}
}

// matchAlways accepts every node of the declared kinds. Used by rules whose
// whole meaning lives in the adjacency marker.
func matchAlways(*syntax.Tree, syntax.NodeID) (bool, string) {
	return true, ""
}
