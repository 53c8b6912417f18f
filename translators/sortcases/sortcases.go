// Package sortcases translates SORT CASES statements.
package sortcases

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "sortcases", Fn: translate})
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	stmt := translators.Statement(lines)

	// Arguments follow BY: variable names, each optionally tagged (A)/(D).
	fields := strings.Fields(stmt)
	byIdx := -1
	for i, f := range fields {
		if strings.EqualFold(f, "by") {
			byIdx = i
			break
		}
	}
	if byIdx < 0 || byIdx == len(fields)-1 {
		return nil, fmt.Errorf("SORT CASES without BY variables: %s", stmt)
	}

	// A direction tag follows its variable, spaced or attached:
	// SORT CASES BY name (D) and SORT CASES BY name(D) are both legal.
	var keys []string
	var orderArgs []string
	descendLast := func() {
		if n := len(orderArgs); n > 0 {
			orderArgs[n-1] = "-xtfrm(x$" + keys[len(keys)-1] + ")"
		}
	}
	for _, f := range fields[byIdx+1:] {
		name, tag := f, ""
		if i := strings.IndexByte(f, '('); i > 0 {
			name, tag = f[:i], f[i:]
		}
		switch strings.ToUpper(strings.Trim(name, "()")) {
		case "A", "UP":
			continue
		case "D", "DOWN":
			descendLast()
			continue
		}
		keys = append(keys, name)
		orderArgs = append(orderArgs, "x$"+name)
		switch strings.ToUpper(strings.Trim(tag, "()")) {
		case "D", "DOWN":
			descendLast()
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("SORT CASES without BY variables: %s", stmt)
	}

	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("sort_cases", translators.XpssArgs(
			"by = "+translators.RVector(keys),
		)), nil
	}
	return []string{
		fmt.Sprintf("x <- x[order(%s), ]", strings.Join(orderArgs, ", ")),
	}, nil
}
