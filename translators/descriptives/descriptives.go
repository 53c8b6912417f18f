// Package descriptives translates DESCRIPTIVES statements.
package descriptives

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "descriptives", Fn: translate})
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	stmt := translators.Statement(lines)

	subs := translators.Subcommands(stmt)
	v, ok := translators.SubValue(subs, "VARIABLES")
	if !ok {
		v, ok = translators.SubValue([]string{translators.Rest(stmt, 1)}, "VARIABLES")
	}
	var vars []string
	if ok {
		vars = strings.Fields(v)
	} else {
		vars = strings.Fields(translators.Rest(stmt, 1))
	}
	if len(vars) == 0 {
		return nil, fmt.Errorf("DESCRIPTIVES without variables: %s", stmt)
	}

	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("descriptives", translators.XpssArgs(
			"variables = "+translators.RVector(vars),
		)), nil
	}
	return []string{
		fmt.Sprintf("print(summary(x[, %s]))", translators.RVector(vars)),
	}, nil
}
