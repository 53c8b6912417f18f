// Package selectif translates SELECT IF statements (row filtering).
package selectif

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "selectif", Fn: translate})
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	stmt := translators.Statement(lines)
	cond := strings.TrimSpace(translators.Rest(stmt, 2))
	cond = stripOuterParens(cond)
	if strings.TrimSpace(cond) == "" {
		return nil, fmt.Errorf("SELECT IF without a condition: %s", stmt)
	}

	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("select_if", translators.XpssArgs(
			"condition = "+translators.RString(translators.RExpr(cond)),
		)), nil
	}
	return []string{
		fmt.Sprintf("x <- x[%s, ]", translators.RExpr(cond)),
	}, nil
}

// stripOuterParens removes one pair of parentheses only when it encloses the
// whole condition, so "(a EQ 1) AND (b EQ 2)" is left intact.
func stripOuterParens(s string) string {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return s
	}
	depth := 0
	for i := 0; i < len(s)-1; i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s
			}
		}
	}
	return strings.TrimSpace(s[1 : len(s)-1])
}
