// Package preprocess normalizes raw SPSS syntax lines before segmentation.
// It strips EXECUTE no-ops, comments and blank lines, and erases FILE HANDLE
// aliases so later statements reference plain paths.
package preprocess

import "strings"

// Normalize applies the line-level cleanup rules, in order:
//
//  1. Remove the EXECUTE no-op keyword (case-insensitive) wherever it appears.
//  2. Trim surrounding whitespace; collapse embedded tabs to single spaces.
//  3. Drop lines that are empty after trimming.
//  4. Drop comment lines (first non-whitespace character is '*').
//
// Block boundaries computed downstream operate on the returned sequence only.
// Normalize never fails; an all-comment script yields an empty slice.
func Normalize(lines []string) []string {
	var result []string
	for _, line := range lines {
		line = removeFold(line, "execute")
		line = strings.ReplaceAll(line, "\t", " ")
		line = strings.TrimSpace(line)
		if line == "" || line == "." {
			continue
		}
		if line[0] == '*' {
			continue
		}
		result = append(result, line)
	}
	return result
}

// Handle is a FILE HANDLE alias declaration: the alias name and the index of
// the normalized line that declares it.
type Handle struct {
	Alias string
	Line  int
}

// ScanHandles collects every FILE HANDLE alias declared in the normalized
// line sequence. The alias is the text between the FILE HANDLE phrase and the
// first subcommand marker ('/') or terminator on the declaring line.
func ScanHandles(lines []string) []Handle {
	var handles []Handle
	for i, line := range lines {
		alias, ok := handleAlias(line)
		if !ok {
			continue
		}
		handles = append(handles, Handle{Alias: alias, Line: i})
	}
	return handles
}

// EraseHandles returns a new line sequence with every literal occurrence of
// each alias removed from the lines after its declaration. The input slice is
// not modified.
//
// The substitution is literal text, not token-aware: an alias that happens to
// be a substring of an unrelated identifier is erased there too. This matches
// how SPSS scripts use handles in practice (as standalone path stand-ins).
func EraseHandles(lines []string, handles []Handle) []string {
	if len(handles) == 0 {
		return lines
	}
	result := make([]string, len(lines))
	copy(result, lines)
	for _, h := range handles {
		for i := h.Line + 1; i < len(result); i++ {
			if !strings.Contains(result[i], h.Alias) {
				continue
			}
			result[i] = strings.TrimSpace(strings.ReplaceAll(result[i], h.Alias, ""))
		}
	}
	return result
}

// handleAlias extracts the alias name from a FILE HANDLE declaration line.
func handleAlias(line string) (string, bool) {
	const phrase = "file handle"
	if len(line) < len(phrase) || !strings.EqualFold(line[:len(phrase)], phrase) {
		return "", false
	}
	rest := strings.TrimSpace(line[len(phrase):])
	end := len(rest)
	if idx := strings.IndexAny(rest, "/."); idx >= 0 {
		end = idx
	}
	alias := strings.TrimSpace(rest[:end])
	if alias == "" {
		return "", false
	}
	return alias, true
}

// removeFold removes every case-insensitive occurrence of word from line.
func removeFold(line, word string) string {
	lower := strings.ToLower(line)
	target := strings.ToLower(word)
	for {
		idx := strings.Index(lower, target)
		if idx < 0 {
			return line
		}
		line = line[:idx] + line[idx+len(word):]
		lower = lower[:idx] + lower[idx+len(word):]
	}
}
