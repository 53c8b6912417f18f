// Package get translates GET FILE statements (.sav imports).
package get

import (
	"fmt"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "get", Fn: translate})
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	stmt := translators.Statement(lines)
	subs := translators.Subcommands(stmt)

	file, ok := translators.SubValue(subs, "FILE")
	if !ok {
		// GET FILE='a.sav' has no leading slash; fall back to the
		// statement tail.
		rest := translators.Rest(stmt, 1)
		file, ok = translators.SubValue([]string{rest}, "FILE")
		if !ok {
			return nil, fmt.Errorf("GET without FILE: %s", stmt)
		}
	}

	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("get", translators.XpssArgs(
			"file = "+translators.RString(file),
		)), nil
	}
	return []string{
		"library(foreign)",
		fmt.Sprintf("x <- read.spss(%s, to.data.frame = TRUE)", translators.RString(file)),
	}, nil
}
