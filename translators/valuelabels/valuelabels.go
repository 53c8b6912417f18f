// Package valuelabels translates VALUE LABELS and ADD VALUE LABELS
// statements into factor conversions.
package valuelabels

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "valuelabels", Fn: translate})
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	stmt := translators.Statement(lines)

	// Skip the command words: VALUE LABELS or ADD VALUE LABELS.
	skip := 2
	if strings.EqualFold(strings.Fields(stmt)[0], "add") {
		skip = 3
	}
	variable, levels, labels, err := parse(translators.Rest(stmt, skip))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, stmt)
	}

	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("value_labels", translators.XpssArgs(
			"variable = "+translators.RString(variable),
			"levels = c("+strings.Join(levels, ", ")+")",
			"labels = "+translators.RVector(labels),
		)), nil
	}
	return []string{
		fmt.Sprintf("x$%s <- factor(x$%s, levels = c(%s), labels = %s)",
			variable, variable, strings.Join(levels, ", "), translators.RVector(labels)),
	}, nil
}

// parse decomposes "var 1 'low' 2 'high'" into the variable name plus
// parallel level/label lists.
func parse(rest string) (string, []string, []string, error) {
	fields := splitQuoted(rest)
	if len(fields) < 3 {
		return "", nil, nil, fmt.Errorf("VALUE LABELS needs a variable and value/label pairs")
	}
	variable := fields[0]
	pairs := fields[1:]
	if len(pairs)%2 != 0 {
		return "", nil, nil, fmt.Errorf("VALUE LABELS values and labels do not pair up")
	}
	var levels, labels []string
	for i := 0; i < len(pairs); i += 2 {
		levels = append(levels, pairs[i])
		labels = append(labels, pairs[i+1])
	}
	return variable, levels, labels, nil
}

// splitQuoted splits on whitespace but keeps quoted labels (which may contain
// spaces) as single fields.
func splitQuoted(s string) []string {
	var fields []string
	var cur strings.Builder
	inQuote := byte(0)
	flush := func() {
		if cur.Len() > 0 {
			fields = append(fields, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case inQuote != 0:
			cur.WriteByte(ch)
			if ch == inQuote {
				inQuote = 0
			}
		case ch == '\'' || ch == '"':
			inQuote = ch
			cur.WriteByte(ch)
		case ch == ' ' || ch == '\t':
			flush()
		default:
			cur.WriteByte(ch)
		}
	}
	flush()
	return fields
}
