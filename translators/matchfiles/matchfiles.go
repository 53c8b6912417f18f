// Package matchfiles translates MATCH FILES statements (dataset merges).
package matchfiles

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "matchfiles", Fn: translate})
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	stmt := translators.Statement(lines)
	subs := translators.Subcommands(stmt)

	// /FILE=* refers to the working data frame; the other /FILE names the
	// dataset merged into it.
	var other string
	for _, s := range subs {
		v, ok := translators.SubValue([]string{s}, "FILE")
		if !ok || strings.TrimSpace(v) == "*" {
			continue
		}
		other = v
	}
	if other == "" {
		return nil, fmt.Errorf("MATCH FILES without a second /FILE: %s", stmt)
	}

	by, ok := translators.SubValue(subs, "BY")
	if !ok {
		return nil, fmt.Errorf("MATCH FILES without /BY: %s", stmt)
	}
	keys := translators.RVector(strings.Fields(by))

	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("match_files", translators.XpssArgs(
			"file = "+translators.RString(other),
			"by = "+keys,
		)), nil
	}
	return []string{
		"library(foreign)",
		fmt.Sprintf("y <- read.spss(%s, to.data.frame = TRUE)", translators.RString(other)),
		fmt.Sprintf("x <- merge(x, y, by = %s, all = TRUE)", keys),
	}, nil
}
