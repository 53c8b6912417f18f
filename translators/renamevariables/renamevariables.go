// Package renamevariables translates RENAME VARIABLES statements.
package renamevariables

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "renamevariables", Fn: translate})
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	stmt := translators.Statement(lines)
	pairs, err := renamePairs(stmt)
	if err != nil {
		return nil, err
	}

	if cfg.Dialect == translators.DialectXpss {
		var args []string
		for _, p := range pairs {
			args = append(args, fmt.Sprintf("%s = %s",
				translators.RString(p[1]), translators.RString(p[0])))
		}
		return translators.XpssCall("rename_variables",
			translators.XpssArgs(args...)), nil
	}

	var out []string
	for _, p := range pairs {
		out = append(out, fmt.Sprintf(`names(x)[names(x) == %s] <- %s`,
			translators.RString(p[0]), translators.RString(p[1])))
	}
	return out, nil
}

// renamePairs extracts (old = new) groups. SPSS also allows the grouped form
// (old1 old2 = new1 new2), which pairs positionally.
func renamePairs(stmt string) ([][2]string, error) {
	var pairs [][2]string
	rest := stmt
	for {
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			break
		}
		closeIdx := strings.IndexByte(rest[open:], ')')
		if closeIdx < 0 {
			return nil, fmt.Errorf("unbalanced parentheses in RENAME VARIABLES: %s", stmt)
		}
		group := rest[open+1 : open+closeIdx]
		rest = rest[open+closeIdx+1:]

		eq := strings.IndexByte(group, '=')
		if eq < 0 {
			return nil, fmt.Errorf("rename group without '=': (%s)", group)
		}
		olds := strings.Fields(group[:eq])
		news := strings.Fields(group[eq+1:])
		if len(olds) == 0 || len(olds) != len(news) {
			return nil, fmt.Errorf("rename group names do not pair up: (%s)", group)
		}
		for i := range olds {
			pairs = append(pairs, [2]string{olds[i], news[i]})
		}
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("RENAME VARIABLES without rename groups: %s", stmt)
	}
	return pairs, nil
}
