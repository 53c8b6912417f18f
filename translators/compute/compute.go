// Package compute translates COMPUTE statements (derived variables).
package compute

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "compute", Fn: translate})
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	stmt := translators.Statement(lines)
	rest := translators.Rest(stmt, 1)

	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return nil, fmt.Errorf("COMPUTE without '=': %s", stmt)
	}
	target := strings.TrimSpace(rest[:eq])
	expr := strings.TrimSpace(rest[eq+1:])
	if target == "" || expr == "" {
		return nil, fmt.Errorf("COMPUTE needs a target and an expression: %s", stmt)
	}

	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("compute", translators.XpssArgs(
			"target = "+translators.RString(target),
			"expression = "+translators.RString(translators.RExpr(expr)),
		)), nil
	}
	return []string{
		fmt.Sprintf("x$%s <- %s", target, translators.RExpr(expr)),
	}, nil
}
