// Package define translates DEFINE macro statements. SPSS macros have no
// faithful R counterpart, so the macro body is carried over as commented
// source for the analyst to port by hand.
package define

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "define", Fn: translate})
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	fields := strings.Fields(lines[0])
	if len(fields) < 2 {
		return nil, fmt.Errorf("DEFINE without a macro name: %s", lines[0])
	}
	name := strings.Trim(fields[1], "!().")

	out := []string{
		fmt.Sprintf("# macro '%s' has no direct R equivalent; original syntax follows:", name),
	}
	for _, line := range lines {
		out = append(out, "# "+line)
	}
	return out, nil
}
