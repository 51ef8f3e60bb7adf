package rules

import "fmt"

// Code represents a rustvet rule code (N/M/S series).
type Code int

const (
	codeInvalid Code = iota

	N1UnsafeNeedsJustification
	N2Transmute
	N3AbandonDestructor
	N4RawPointerArithmetic
	N5UnwrapWithoutDiagnostic
	M1OwnedParameter
	M2BoxedField
	S1MedialCapitals
	S2UncheckedNumericCast
)

// ID returns the stable short code of the rule. Example: "N1".
func (c Code) ID() string {
	switch c {
	case N1UnsafeNeedsJustification:
		return "N1"
	case N2Transmute:
		return "N2"
	case N3AbandonDestructor:
		return "N3"
	case N4RawPointerArithmetic:
		return "N4"
	case N5UnwrapWithoutDiagnostic:
		return "N5"
	case M1OwnedParameter:
		return "M1"
	case M2BoxedField:
		return "M2"
	case S1MedialCapitals:
		return "S1"
	case S2UncheckedNumericCast:
		return "S2"
	default:
		return fmt.Sprintf("rule-unknown(%d)", c)
	}
}

// String returns the canonical code and short name of the rule.
// Example: "N1: UnsafeNeedsJustification"
func (c Code) String() string {
	switch c {
	case N1UnsafeNeedsJustification:
		return "N1: UnsafeNeedsJustification"
	case N2Transmute:
		return "N2: Transmute"
	case N3AbandonDestructor:
		return "N3: AbandonDestructor"
	case N4RawPointerArithmetic:
		return "N4: RawPointerArithmetic"
	case N5UnwrapWithoutDiagnostic:
		return "N5: UnwrapWithoutDiagnostic"
	case M1OwnedParameter:
		return "M1: OwnedParameter"
	case M2BoxedField:
		return "M2: BoxedField"
	case S1MedialCapitals:
		return "S1: MedialCapitals"
	case S2UncheckedNumericCast:
		return "S2: UncheckedNumericCast"
	default:
		return fmt.Sprintf("rule-unknown(%d)", c)
	}
}

// Description returns the human-readable explanation of the rule.
func (c Code) Description() string {
	switch c {
	case N1UnsafeNeedsJustification:
		return "unsafe block must be preceded by a SAFETY: comment justifying it"
	case N2Transmute:
		return "mem::transmute reinterprets raw bytes and must never be called"
	case N3AbandonDestructor:
		return "mem::forget abandons a destructor and must never be called"
	case N4RawPointerArithmetic:
		return "raw pointer arithmetic must never be performed"
	case N5UnwrapWithoutDiagnostic:
		return "unwrap/expect without a diagnostic message hides the failure cause"
	case M1OwnedParameter:
		return "owned String/Vec parameter where a borrowed view would do"
	case M2BoxedField:
		return "Box field around a plain sized type needs an indirection reason"
	case S1MedialCapitals:
		return "identifier uses camelCase instead of snake_case"
	case S2UncheckedNumericCast:
		return "numeric `as` cast instead of a checked conversion"
	default:
		return fmt.Sprintf("unknown-rule(%d)", c)
	}
}

// Severity returns the enforcement tier the code belongs to,
// derived from its id prefix.
func (c Code) Severity() Severity {
	switch c {
	case N1UnsafeNeedsJustification, N2Transmute, N3AbandonDestructor,
		N4RawPointerArithmetic, N5UnwrapWithoutDiagnostic:
		return SeverityNever
	case M1OwnedParameter, M2BoxedField:
		return SeverityMust
	case S1MedialCapitals, S2UncheckedNumericCast:
		return SeverityShould
	default:
		return severityInvalid
	}
}

// allCodes lists every code in registration order. Output ordering for
// same-span ties follows this order, so it is fixed: N first, then M, then S,
// numerically within a tier.
var allCodes = []Code{
	N1UnsafeNeedsJustification,
	N2Transmute,
	N3AbandonDestructor,
	N4RawPointerArithmetic,
	N5UnwrapWithoutDiagnostic,
	M1OwnedParameter,
	M2BoxedField,
	S1MedialCapitals,
	S2UncheckedNumericCast,
}

// ParseCode resolves a short id like "N2" into its Code.
func ParseCode(id string) (Code, error) {
	for _, c := range allCodes {
		if c.ID() == id {
			return c, nil
		}
	}

	return codeInvalid, fmt.Errorf("unknown rule id %q", id)
}
