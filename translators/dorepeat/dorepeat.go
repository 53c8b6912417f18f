// Package dorepeat translates merged DO REPEAT ... END REPEAT blocks. The
// stand-in name is substituted with each replacement variable in turn and the
// interior statements are re-segmented and dispatched through the registry,
// so the loop unrolls into ordinary translated statements.
package dorepeat

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/classify"
	"github.com/statmigrate/spssr/segment"
	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: classify.KeyDoRepeat, Fn: translate})
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	blocks := segment.Split(lines)
	if len(blocks) < 2 {
		return nil, fmt.Errorf("DO REPEAT block has no interior statements: %s", lines[0])
	}

	standIn, values, err := parseHead(translators.Statement(blocks[0].Lines(lines)))
	if err != nil {
		return nil, err
	}

	// First block is the DO REPEAT head, last is END REPEAT.
	inner := blocks[1 : len(blocks)-1]

	var out []string
	for _, value := range values {
		for _, b := range inner {
			stmt := substitute(b.Lines(lines), standIn, value)
			key := classify.Key(stmt[0])
			tr, ok := translators.Get(key)
			if !ok {
				return nil, &translators.DispatchError{Key: key, Source: stmt[0]}
			}
			translated, err := tr.Fn(stmt, cfg)
			if err != nil {
				return nil, err
			}
			out = append(out, translated...)
		}
	}
	return out, nil
}

// parseHead decomposes "DO REPEAT r = v1 v2 v3".
func parseHead(stmt string) (string, []string, error) {
	rest := translators.Rest(stmt, 2)
	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return "", nil, fmt.Errorf("DO REPEAT without '=': %s", stmt)
	}
	standIn := strings.TrimSpace(rest[:eq])
	values := strings.Fields(rest[eq+1:])
	if standIn == "" || len(values) == 0 {
		return "", nil, fmt.Errorf("DO REPEAT needs a stand-in and replacement variables: %s", stmt)
	}
	return standIn, values, nil
}

// substitute replaces whole-word occurrences of the stand-in name.
func substitute(lines []string, standIn, value string) []string {
	result := make([]string, len(lines))
	for i, line := range lines {
		var sb strings.Builder
		j := 0
		for j < len(line) {
			if !identByte(line[j]) {
				sb.WriteByte(line[j])
				j++
				continue
			}
			k := j
			for k < len(line) && identByte(line[k]) {
				k++
			}
			word := line[j:k]
			if strings.EqualFold(word, standIn) {
				sb.WriteString(value)
			} else {
				sb.WriteString(word)
			}
			j = k
		}
		result[i] = sb.String()
	}
	return result
}

func identByte(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' || ch == '_' || ch == '#' || ch == '@' || ch == '$'
}
