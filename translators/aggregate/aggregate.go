// Package aggregate translates AGGREGATE statements.
package aggregate

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "aggregate", Fn: translate})
}

// aggFuncs maps SPSS aggregation functions to R equivalents.
var aggFuncs = map[string]string{
	"mean": "mean", "sum": "sum", "sd": "sd",
	"min": "min", "max": "max", "n": "length", "median": "median",
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	stmt := translators.Statement(lines)
	subs := translators.Subcommands(stmt)

	breakVal, ok := translators.SubValue(subs, "BREAK")
	if !ok {
		return nil, fmt.Errorf("AGGREGATE without /BREAK: %s", stmt)
	}
	breaks := strings.Fields(breakVal)

	// Aggregation clauses are the subcommands shaped name=FUNC(source).
	var target, fn, source string
	for _, s := range subs {
		eq := strings.IndexByte(s, '=')
		open := strings.IndexByte(s, '(')
		closeIdx := strings.IndexByte(s, ')')
		if eq < 0 || open < eq || closeIdx < open {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(s[eq+1 : open]))
		rf, known := aggFuncs[name]
		if !known {
			continue
		}
		target = strings.TrimSpace(s[:eq])
		fn = rf
		source = strings.TrimSpace(s[open+1 : closeIdx])
		break
	}
	if target == "" {
		return nil, fmt.Errorf("AGGREGATE without an aggregation clause: %s", stmt)
	}

	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("aggregate", translators.XpssArgs(
			"break_by = "+translators.RVector(breaks),
			"target = "+translators.RString(target),
			"fun = "+translators.RString(fn),
			"source = "+translators.RString(source),
		)), nil
	}

	var byArgs []string
	for _, b := range breaks {
		byArgs = append(byArgs, fmt.Sprintf("%s = x$%s", b, b))
	}
	out := fmt.Sprintf(".agg <- aggregate(x$%s, by = list(%s), FUN = %s)",
		source, strings.Join(byArgs, ", "), fn)
	rename := fmt.Sprintf(`names(.agg)[ncol(.agg)] <- %s`, translators.RString(target))

	// /OUTFILE=* replaces the working data frame; otherwise the aggregate
	// is merged back onto it.
	if of, ok := translators.SubValue(subs, "OUTFILE"); ok && strings.TrimSpace(of) == "*" {
		return []string{out, rename, "x <- .agg", "rm(.agg)"}, nil
	}
	return []string{
		out, rename,
		fmt.Sprintf("x <- merge(x, .agg, by = %s, all.x = TRUE)", translators.RVector(breaks)),
		"rm(.agg)",
	}, nil
}
