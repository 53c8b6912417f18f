// Package missingvalues translates MISSING VALUES statements.
package missingvalues

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "missingvalues", Fn: translate})
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	stmt := translators.Statement(lines)

	// Skip the command words: MISSING VALUES, or just MISSING in the
	// abbreviated form.
	skip := 2
	fields := strings.Fields(stmt)
	if len(fields) < 2 || !strings.EqualFold(fields[1], "values") {
		skip = 1
	}
	rest := translators.Rest(stmt, skip)

	open := strings.IndexByte(rest, '(')
	closeIdx := strings.LastIndexByte(rest, ')')
	if open < 0 || closeIdx < open {
		return nil, fmt.Errorf("MISSING VALUES without value list: %s", stmt)
	}
	vars := strings.Fields(rest[:open])
	if len(vars) == 0 {
		return nil, fmt.Errorf("MISSING VALUES without variables: %s", stmt)
	}

	var values []string
	for _, v := range strings.Split(rest[open+1:closeIdx], ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("MISSING VALUES with empty value list: %s", stmt)
	}
	set := "c(" + strings.Join(values, ", ") + ")"

	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("missing_values", translators.XpssArgs(
			"variables = "+translators.RVector(vars),
			"values = "+set,
		)), nil
	}

	var out []string
	for _, v := range vars {
		out = append(out, fmt.Sprintf("x$%s[x$%s %%in%% %s] <- NA", v, v, set))
	}
	return out, nil
}
