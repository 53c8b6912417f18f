// Package frequencies translates FREQUENCIES statements.
package frequencies

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "frequencies", Fn: translate})
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	stmt := translators.Statement(lines)
	vars, err := variableList(stmt)
	if err != nil {
		return nil, err
	}

	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("frequencies", translators.XpssArgs(
			"variables = "+translators.RVector(vars),
		)), nil
	}

	var out []string
	for _, v := range vars {
		out = append(out, fmt.Sprintf("print(table(x$%s, useNA = \"ifany\"))", v))
	}
	return out, nil
}

// variableList finds the VARIABLES list, either as /VARIABLES=... or as the
// bare argument form FREQUENCIES v1 v2.
func variableList(stmt string) ([]string, error) {
	subs := translators.Subcommands(stmt)
	if v, ok := translators.SubValue(subs, "VARIABLES"); ok {
		if vars := strings.Fields(v); len(vars) > 0 {
			return vars, nil
		}
	}
	rest := translators.Rest(stmt, 1)
	if v, ok := translators.SubValue([]string{rest}, "VARIABLES"); ok {
		rest = v
	}
	vars := strings.Fields(rest)
	if len(vars) == 0 {
		return nil, fmt.Errorf("FREQUENCIES without variables: %s", stmt)
	}
	return vars, nil
}
