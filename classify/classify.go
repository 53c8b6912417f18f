// Package classify derives the canonical command key from the first line of a
// statement block. The key selects a translator by name, so classification is
// the single place that understands SPSS command spelling: multi-word command
// names, abbreviated forms, and a handful of irregular special cases.
package classify

import "strings"

// Keys with meaning beyond translator lookup: DO REPEAT opens a nested
// construct that the segmenter merges up to the matching END REPEAT.
const (
	KeyDoRepeat  = "dorepeat"
	KeyEndRepeat = "endrepeat"
)

// A keyRule matches a statement's first line and produces its key. Rules are
// evaluated in order and the first match wins. Keeping the set data-driven
// means new dialect commands land here, not in the segmenter.
type keyRule struct {
	name string
	when func(line string) bool
	key  func(line string) string
}

var keyRules = []keyRule{
	// Two-word commands whose second word must not be mistaken for an
	// argument. FILE HANDLE and DO REPEAT additionally carry side effects
	// (alias erasure, nested-construct merge) handled by their owners.
	{"get-data", phrase("get data"), constant("getdata")},
	{"file-handle", phrase("file handle"), constant("filehandle")},
	{"match-files", phrase("match files"), constant("matchfiles")},
	{"rename-variables", phrase("rename variables"), constant("renamevariables")},
	{"do-repeat", phrase("do repeat"), constant(KeyDoRepeat)},

	// Statements with an assignment or a BY clause put arguments right
	// after the command word, so only the first token names the command
	// (COMPUTE y = 1, SORT CASES BY id, WEIGHT BY w).
	{"assign-or-by", hasAssignOrBy, firstToken},

	// Commands that take bare variable lists as their second word.
	{"define", phrase("define"), constant("define")},
	{"recode", phrase("recode"), constant("recode")},

	// Remaining multi-word commands: the first two words name the command
	// (VALUE LABELS, MISSING VALUES, SELECT IF, END REPEAT, ...).
	{"two-word", hasSpace, firstTwoTokens},
}

// suffixFixups canonicalize abbreviated command forms after the key rules
// ran: SORT and SORT CASES BY both mean sortcases, MISSING and MISSING
// VALUES both mean missingvalues, ADD VALUE (LABELS) means valuelabels.
var suffixFixups = []struct{ suffix, key string }{
	{"sort", "sortcases"},
	{"missing", "missingvalues"},
	{"value", "valuelabels"},
}

// Key returns the canonical command key for a block's first normalized line.
// Keys are lowercase with embedded hyphens stripped; the dispatch name is the
// key plus the "_to_r" suffix (see the translators registry).
func Key(line string) string {
	line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), "."))

	key := firstToken(line)
	for _, r := range keyRules {
		if r.when(line) {
			key = r.key(line)
			break
		}
	}
	for _, f := range suffixFixups {
		if strings.HasSuffix(key, f.suffix) && key != f.key {
			key = f.key
			break
		}
	}
	return key
}

func phrase(p string) func(string) bool {
	return func(line string) bool {
		return len(line) >= len(p) && strings.EqualFold(line[:len(p)], p)
	}
}

func constant(key string) func(string) string {
	return func(string) string { return key }
}

func hasSpace(line string) bool {
	return strings.ContainsRune(strings.TrimSpace(line), ' ')
}

// hasAssignOrBy reports whether the line contains '=' or the word BY as a
// separate whitespace-delimited token.
func hasAssignOrBy(line string) bool {
	if strings.ContainsRune(line, '=') {
		return true
	}
	for _, tok := range strings.Fields(line) {
		if strings.EqualFold(tok, "by") {
			return true
		}
	}
	return false
}

func firstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return canon(fields[0])
}

func firstTwoTokens(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return firstToken(line)
	}
	return canon(fields[0] + fields[1])
}

// canon lowercases a token and strips embedded hyphens (T-TEST → ttest).
func canon(tok string) string {
	return strings.ToLower(strings.ReplaceAll(tok, "-", ""))
}
