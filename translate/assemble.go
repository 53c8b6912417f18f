package translate

import (
	"regexp"
	"strings"
)

// Header is the fixed comment opening every generated script. Translators
// emit code against a data frame named x; the header records that contract.
const Header = "# Translated from SPSS syntax; the working dataset must be bound to 'x'."

var libraryRe = regexp.MustCompile(`^library\([A-Za-z][A-Za-z0-9._]*\)$`)

// assemble flattens the per-block output into the final line sequence:
// hoisted unique library() lines first, then the header comment, then every
// remaining line in original relative order. Backslash path separators are
// normalized to forward slashes throughout.
func assemble(perBlock [][]string) []string {
	var libs, body []string
	seen := make(map[string]bool)
	for _, block := range perBlock {
		for _, line := range block {
			line = strings.ReplaceAll(line, `\`, "/")
			if libraryRe.MatchString(strings.TrimSpace(line)) {
				trimmed := strings.TrimSpace(line)
				if !seen[trimmed] {
					seen[trimmed] = true
					libs = append(libs, trimmed)
				}
				continue
			}
			body = append(body, line)
		}
	}

	out := make([]string, 0, len(libs)+1+len(body))
	out = append(out, libs...)
	out = append(out, Header)
	out = append(out, body...)
	return out
}
