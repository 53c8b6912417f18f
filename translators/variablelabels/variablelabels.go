// Package variablelabels translates VARIABLE LABELS statements.
package variablelabels

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "variablelabels", Fn: translate})
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	stmt := translators.Statement(lines)
	rest := translators.Rest(stmt, 2)

	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return nil, fmt.Errorf("VARIABLE LABELS needs a variable and a label: %s", stmt)
	}
	variable := fields[0]
	label := strings.TrimSpace(rest[len(variable):])

	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("variable_labels", translators.XpssArgs(
			"variable = "+translators.RString(variable),
			"label = "+translators.RString(label),
		)), nil
	}
	return []string{
		fmt.Sprintf(`attr(x$%s, "label") <- %s`, variable, translators.RString(label)),
	}, nil
}
