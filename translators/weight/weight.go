// Package weight translates WEIGHT BY and WEIGHT OFF statements. R has no
// dataset-wide case weights, so the weight column is recorded as an attribute
// for downstream calls to pick up.
package weight

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "weight", Fn: translateBy})
	translators.Register(&translators.Translator{Key: "weightoff", Fn: translateOff})
}

func translateBy(lines []string, cfg translators.Config) ([]string, error) {
	stmt := translators.Statement(lines)
	fields := strings.Fields(stmt)
	if len(fields) < 3 || !strings.EqualFold(fields[1], "by") {
		return nil, fmt.Errorf("WEIGHT expects BY <variable>: %s", stmt)
	}
	variable := fields[2]

	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("weight", translators.XpssArgs(
			"by = "+translators.RString(variable),
		)), nil
	}
	return []string{
		fmt.Sprintf(`attr(x, "weights") <- x$%s`, variable),
	}, nil
}

func translateOff(lines []string, cfg translators.Config) ([]string, error) {
	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("weight_off", ""), nil
	}
	return []string{`attr(x, "weights") <- NULL`}, nil
}
