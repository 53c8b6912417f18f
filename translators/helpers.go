package translators

import (
	"fmt"
	"strings"
)

// Statement joins a block's lines into one statement string with the trailing
// terminator removed. Multi-line statements keep single spaces at the joins.
func Statement(lines []string) string {
	stmt := strings.Join(lines, " ")
	stmt = strings.TrimSpace(stmt)
	return strings.TrimSuffix(stmt, ".")
}

// Rest returns the statement text after the first n whitespace-delimited
// words, i.e. the arguments after the command name.
func Rest(stmt string, n int) string {
	fields := strings.Fields(stmt)
	if len(fields) <= n {
		return ""
	}
	return strings.Join(fields[n:], " ")
}

// Subcommands splits a statement into its /SUBCOMMAND segments. The text
// before the first slash (the command name and any leading arguments) is not
// returned. Slashes inside quoted strings are respected.
func Subcommands(stmt string) []string {
	var subs []string
	var cur strings.Builder
	inQuote := byte(0)
	started := false
	for i := 0; i < len(stmt); i++ {
		ch := stmt[i]
		if inQuote != 0 {
			if ch == inQuote {
				inQuote = 0
			}
			if started {
				cur.WriteByte(ch)
			}
			continue
		}
		if ch == '\'' || ch == '"' {
			inQuote = ch
			if started {
				cur.WriteByte(ch)
			}
			continue
		}
		if ch == '/' {
			if started && strings.TrimSpace(cur.String()) != "" {
				subs = append(subs, strings.TrimSpace(cur.String()))
			}
			cur.Reset()
			started = true
			continue
		}
		if started {
			cur.WriteByte(ch)
		}
	}
	if started && strings.TrimSpace(cur.String()) != "" {
		subs = append(subs, strings.TrimSpace(cur.String()))
	}
	return subs
}

// SubValue returns the value of the first subcommand named name
// (case-insensitive), i.e. the text after "NAME=" or "NAME ".
func SubValue(subs []string, name string) (string, bool) {
	for _, s := range subs {
		head := s
		if idx := strings.IndexAny(s, "= "); idx >= 0 {
			head = s[:idx]
		}
		if !strings.EqualFold(head, name) {
			continue
		}
		rest := strings.TrimSpace(s[len(head):])
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "="))
		return rest, true
	}
	return "", false
}

// Unquote strips one layer of single or double quotes.
func Unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// RString quotes a value as an R string literal.
func RString(s string) string {
	return `"` + strings.ReplaceAll(Unquote(s), `"`, `\"`) + `"`
}

// RVector renders variable names as an R character vector.
func RVector(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = RString(n)
	}
	return "c(" + strings.Join(quoted, ", ") + ")"
}

// spssOps maps SPSS word operators to their R spellings.
var spssOps = map[string]string{
	"eq": "==", "ne": "!=", "gt": ">", "lt": "<",
	"ge": ">=", "le": "<=", "and": "&", "or": "|", "not": "!",
}

// RExpr rewrites an SPSS expression into R: word operators become symbolic,
// bare variable names become x$ selections, and SYSMIS() becomes is.na().
func RExpr(expr string) string {
	var out []string
	for _, tok := range strings.Fields(expr) {
		if op, ok := spssOps[strings.ToLower(tok)]; ok {
			out = append(out, op)
			continue
		}
		out = append(out, rewriteIdents(tok))
	}
	return strings.Join(out, " ")
}

// rewriteIdents prefixes bare identifiers in a token with x$, leaving
// numbers, strings, function-call names and punctuation alone.
func rewriteIdents(tok string) string {
	var sb strings.Builder
	i := 0
	for i < len(tok) {
		ch := tok[i]
		if ch == '\'' || ch == '"' {
			j := i + 1
			for j < len(tok) && tok[j] != ch {
				j++
			}
			if j < len(tok) {
				j++
			}
			sb.WriteString(tok[i:j])
			i = j
			continue
		}
		if isAlpha(ch) {
			j := i
			for j < len(tok) && (isAlpha(tok[j]) || isDigit(tok[j]) || tok[j] == '_' || tok[j] == '.') {
				j++
			}
			ident := tok[i:j]
			switch {
			case j < len(tok) && tok[j] == '(':
				sb.WriteString(rFunc(ident))
			default:
				sb.WriteString("x$" + ident)
			}
			i = j
			continue
		}
		sb.WriteByte(ch)
		i++
	}
	return sb.String()
}

// rFunc maps SPSS function names to R equivalents.
func rFunc(name string) string {
	switch strings.ToLower(name) {
	case "sysmis":
		return "is.na"
	case "mean":
		return "mean"
	case "sum":
		return "sum"
	case "trunc":
		return "trunc"
	case "rnd":
		return "round"
	case "abs":
		return "abs"
	case "sqrt":
		return "sqrt"
	case "lg10":
		return "log10"
	case "ln":
		return "log"
	}
	return name
}

func isAlpha(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// XpssCall renders the functional-dialect form of a command: the xpssr
// library import plus a single wrapped call on the working data frame.
func XpssCall(name, args string) []string {
	return []string{
		"library(xpssr)",
		fmt.Sprintf("x <- xpss_%s(x%s)", name, args),
	}
}

// XpssArgs renders extra arguments for XpssCall from key=value pairs.
func XpssArgs(pairs ...string) string {
	if len(pairs) == 0 {
		return ""
	}
	return ", " + strings.Join(pairs, ", ")
}
