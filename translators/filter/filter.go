// Package filter translates FILTER BY and FILTER OFF statements. SPSS filters
// are reversible; the base-R translation keeps the full data frame aside so
// FILTER OFF can restore it.
package filter

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "filter", Fn: translateBy})
	translators.Register(&translators.Translator{Key: "filteroff", Fn: translateOff})
}

func translateBy(lines []string, cfg translators.Config) ([]string, error) {
	stmt := translators.Statement(lines)
	fields := strings.Fields(stmt)
	if len(fields) < 3 || !strings.EqualFold(fields[1], "by") {
		return nil, fmt.Errorf("FILTER expects BY <variable>: %s", stmt)
	}
	variable := fields[2]

	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("filter", translators.XpssArgs(
			"by = "+translators.RString(variable),
		)), nil
	}
	return []string{
		".unfiltered <- x",
		fmt.Sprintf("x <- x[x$%s != 0, ]", variable),
	}, nil
}

func translateOff(lines []string, cfg translators.Config) ([]string, error) {
	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("filter_off", ""), nil
	}
	return []string{
		"x <- .unfiltered",
		"rm(.unfiltered)",
	}, nil
}
