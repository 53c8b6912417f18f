// Package segment partitions a normalized SPSS line sequence into statement
// blocks. A block is one logical statement; DO REPEAT ... END REPEAT spans are
// merged into a single block because their interior lines are not independent
// statements.
package segment

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/classify"
)

// Block is a contiguous inclusive range [Start, End] of normalized line
// indices forming one statement. Blocks are produced in increasing,
// non-overlapping order and together cover every statement exactly once.
type Block struct {
	Start, End int
}

// Lines returns the block's slice of the normalized line sequence.
func (b Block) Lines(lines []string) []string {
	return lines[b.Start : b.End+1]
}

// Split partitions the normalized lines into statement blocks. Every line
// ending with the '.' terminator closes a block; the next block starts on the
// following line. Lines after the last terminator belong to no block (the
// input is assumed reasonably well-formed).
func Split(lines []string) []Block {
	var blocks []Block
	start := 0
	for i, line := range lines {
		if strings.HasSuffix(strings.TrimSpace(line), ".") {
			blocks = append(blocks, Block{Start: start, End: i})
			start = i + 1
		}
	}
	return blocks
}

// MergeRepeats collapses each DO REPEAT block and everything up to its
// matching END REPEAT into one block, so the interior statements are never
// classified or dispatched individually. A DO REPEAT with no matching END
// REPEAT is a structural defect and fails the whole run.
func MergeRepeats(lines []string, blocks []Block) ([]Block, error) {
	var merged []Block
	for i := 0; i < len(blocks); i++ {
		b := blocks[i]
		if classify.Key(lines[b.Start]) != classify.KeyDoRepeat {
			merged = append(merged, b)
			continue
		}
		end := -1
		for j := i + 1; j < len(blocks); j++ {
			if classify.Key(lines[blocks[j].Start]) == classify.KeyEndRepeat {
				end = j
				break
			}
		}
		if end < 0 {
			return nil, fmt.Errorf("DO REPEAT at %q has no matching END REPEAT", lines[b.Start])
		}
		merged = append(merged, Block{Start: b.Start, End: blocks[end].End})
		i = end
	}
	return merged, nil
}
