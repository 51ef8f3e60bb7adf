package rules

import "testing"

func TestParseCodeRoundTrip(t *testing.T) {
	for _, c := range allCodes {
		got, err := ParseCode(c.ID())
		if err != nil {
			t.Fatalf("ParseCode(%s): %v", c.ID(), err)
		}
		if got != c {
			t.Errorf("ParseCode(%s) = %v, want %v", c.ID(), got, c)
		}
	}

	if _, err := ParseCode("N9"); err == nil {
		t.Error("ParseCode accepted an unknown id")
	}
}

func TestCodeSeverityTiers(t *testing.T) {
	tiers := map[Code]Severity{
		N1UnsafeNeedsJustification: SeverityNever,
		N5UnwrapWithoutDiagnostic:  SeverityNever,
		M1OwnedParameter:           SeverityMust,
		M2BoxedField:               SeverityMust,
		S1MedialCapitals:           SeverityShould,
		S2UncheckedNumericCast:     SeverityShould,
	}
	for c, want := range tiers {
		if got := c.Severity(); got != want {
			t.Errorf("%s severity = %s, want %s", c.ID(), got, want)
		}
	}
}

func TestSeverityText(t *testing.T) {
	if s := SeverityNever.String(); s != "MUST-NEVER" {
		t.Errorf("SeverityNever renders as %q", s)
	}

	var s Severity
	if err := s.UnmarshalText([]byte("SHOULD")); err != nil {
		t.Fatal(err)
	}
	if s != SeverityShould {
		t.Errorf("unmarshal SHOULD = %v", s)
	}
	if err := s.UnmarshalText([]byte("WHATEVER")); err == nil {
		t.Error("unmarshal accepted an unknown tier")
	}

	if _, err := severityInvalid.MarshalText(); err == nil {
		t.Error("marshal accepted the invalid severity")
	}
}

func TestHasMedialCapital(t *testing.T) {
	for name, want := range map[string]bool{
		"fetchConfig": true,
		"maxRetries":  true,
		"x2Factor":    true,
		"snake_case":  false,
		"MAX_RETRIES": false,
		"Pascal":      false,
		"_":           false,
		"":            false,
	} {
		if got := hasMedialCapital(name); got != want {
			t.Errorf("hasMedialCapital(%q) = %v, want %v", name, got, want)
		}
	}
}
