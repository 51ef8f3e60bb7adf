package rules

import (
	"encoding"
	"fmt"
)

// Severity describes the enforcement tier of a rule. The tiers are
// escalating enforcement classes, not an ordered scale: a SHOULD is advice,
// a MUST is mandatory, a MUST-NEVER is a hard prohibition.
type Severity int

const (
	severityInvalid Severity = iota

	// SeverityNever marks hard prohibitions.
	SeverityNever

	// SeverityMust marks mandatory requirements.
	SeverityMust

	// SeverityShould marks advisory rules.
	SeverityShould
)

var severityValueMap = map[Severity]string{
	SeverityNever:  "MUST-NEVER",
	SeverityMust:   "MUST",
	SeverityShould: "SHOULD",
}

func (s Severity) String() string {
	v, ok := severityValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid-severity(%d)", s)
	}

	return v
}

var _ encoding.TextMarshaler = Severity(0)

func (s Severity) MarshalText() ([]byte, error) {
	v, ok := severityValueMap[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Severity(%d)", s)
	}

	return []byte(v), nil
}

var _ encoding.TextUnmarshaler = (*Severity)(nil)

// UnmarshalText for setting values with configs, CLI, etc.
func (s *Severity) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range severityValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown severity tier %q", text)
}
