// Package recode translates RECODE statements. Value mappings are applied
// against a snapshot of the source column so later rules (notably ELSE) see
// the original values, not already-recoded ones.
package recode

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "recode", Fn: translate})
}

type mapping struct {
	from []string // source values; nil for ELSE
	thru bool     // from is a [lo, hi] range
	miss bool     // from is SYSMIS
	to   string
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	stmt := translators.Statement(lines)

	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("recode", translators.XpssArgs(
			"rules = "+translators.RString(translators.Rest(stmt, 1)),
		)), nil
	}

	variable, maps, target, err := parse(stmt)
	if err != nil {
		return nil, err
	}

	src := "x$" + variable
	dst := src
	out := []string{fmt.Sprintf(".rec <- %s", src)}
	if target != "" {
		dst = "x$" + target
		out = append(out, fmt.Sprintf("%s <- %s", dst, src))
	}

	var handled []string
	for _, m := range maps {
		switch {
		case m.miss:
			out = append(out, fmt.Sprintf("%s[is.na(.rec)] <- %s", dst, m.to))
		case m.thru:
			out = append(out, fmt.Sprintf("%s[.rec >= %s & .rec <= %s] <- %s",
				dst, m.from[0], m.from[1], m.to))
		case m.from == nil:
			out = append(out, fmt.Sprintf("%s[!(.rec %%in%% c(%s))] <- %s",
				dst, strings.Join(handled, ", "), m.to))
		default:
			out = append(out, fmt.Sprintf("%s[.rec %%in%% c(%s)] <- %s",
				dst, strings.Join(m.from, ", "), m.to))
			handled = append(handled, m.from...)
		}
	}
	return append(out, "rm(.rec)"), nil
}

// parse decomposes "RECODE var (a=b) (ELSE=c) [INTO new]".
func parse(stmt string) (variable string, maps []mapping, target string, err error) {
	rest := translators.Rest(stmt, 1)

	open := strings.IndexByte(rest, '(')
	if open < 0 {
		return "", nil, "", fmt.Errorf("RECODE without value mappings: %s", stmt)
	}
	vars := strings.Fields(rest[:open])
	if len(vars) != 1 {
		return "", nil, "", fmt.Errorf("RECODE expects exactly one variable, got %d: %s", len(vars), stmt)
	}
	variable = vars[0]

	tail := rest[open:]
	for {
		o := strings.IndexByte(tail, '(')
		if o < 0 {
			break
		}
		c := strings.IndexByte(tail[o:], ')')
		if c < 0 {
			return "", nil, "", fmt.Errorf("unbalanced parentheses in RECODE: %s", stmt)
		}
		group := tail[o+1 : o+c]
		tail = tail[o+c+1:]

		eq := strings.LastIndexByte(group, '=')
		if eq < 0 {
			return "", nil, "", fmt.Errorf("mapping without '=': (%s)", group)
		}
		m := mapping{to: rValue(strings.TrimSpace(group[eq+1:]))}
		fromFields := strings.Fields(group[:eq])
		switch {
		case len(fromFields) == 1 && strings.EqualFold(fromFields[0], "else"):
			// handled below as the catch-all
		case len(fromFields) == 1 && strings.EqualFold(fromFields[0], "sysmis"):
			m.miss = true
		case len(fromFields) == 3 && strings.EqualFold(fromFields[1], "thru"):
			m.thru = true
			m.from = []string{rValue(fromFields[0]), rValue(fromFields[2])}
		default:
			for _, f := range fromFields {
				m.from = append(m.from, rValue(strings.Trim(f, ",")))
			}
		}
		maps = append(maps, m)
	}

	// Optional INTO target after the last mapping.
	fields := strings.Fields(tail)
	if len(fields) == 2 && strings.EqualFold(fields[0], "into") {
		target = fields[1]
	}
	if len(maps) == 0 {
		return "", nil, "", fmt.Errorf("RECODE without value mappings: %s", stmt)
	}
	return variable, maps, target, nil
}

// rValue renders an SPSS value as an R literal: quoted strings stay strings,
// SYSMIS becomes NA, everything else passes through as a number.
func rValue(v string) string {
	if strings.EqualFold(v, "sysmis") {
		return "NA"
	}
	if len(v) >= 2 && (v[0] == '\'' || v[0] == '"') {
		return translators.RString(v)
	}
	return v
}
