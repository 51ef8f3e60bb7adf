package fixture

import (
	"fmt"
	"strings"

	"github.com/rustvet/rustvet/internal/rules"
)

// Case is one labeled fixture: a source file plus its expectation sets.
type Case struct {
	Name   string
	Source []byte

	// Fires lists rule ids that must produce at least one violation.
	Fires []string

	// Silent lists rule ids that must not fire at all. When both lists are
	// empty the whole file must be silent.
	Silent []string
}

// Negative reports whether the case expects a completely empty report.
func (c Case) Negative() bool {
	return len(c.Fires) == 0 && len(c.Silent) == 0
}

const (
	directiveFires  = "rustvet:fires"
	directiveSilent = "rustvet:silent"
)

// parseDirectives extracts expectation sets from the fixture source. The
// directives are harness metadata living in comments; scanning text lines is
// fine here, this is not rule matching.
func parseDirectives(name string, src []byte) (fires, silent []string, err error) {
	for lineNo, line := range strings.Split(string(src), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "//") {
			continue
		}
		line = strings.TrimSpace(strings.TrimLeft(line, "/!"))

		var dst *[]string
		switch {
		case strings.HasPrefix(line, directiveFires):
			line = strings.TrimPrefix(line, directiveFires)
			dst = &fires
		case strings.HasPrefix(line, directiveSilent):
			line = strings.TrimPrefix(line, directiveSilent)
			dst = &silent
		default:
			continue
		}

		for _, id := range strings.Fields(strings.ReplaceAll(line, ",", " ")) {
			if _, err := rules.ParseCode(id); err != nil {
				return nil, nil, fmt.Errorf("%s:%d: bad expectation: %w", name, lineNo+1, err)
			}
			*dst = append(*dst, id)
		}
	}

	return fires, silent, nil
}
