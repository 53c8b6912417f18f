package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitOneBlockPerTerminator(t *testing.T) {
	lines := []string{
		"COMPUTE y = 1.",
		"RECODE v (1=0)",
		"(ELSE=1).",
		"SORT CASES BY id.",
	}
	blocks := Split(lines)
	require.Len(t, blocks, 3)
	assert.Equal(t, Block{0, 0}, blocks[0])
	assert.Equal(t, Block{1, 2}, blocks[1])
	assert.Equal(t, Block{3, 3}, blocks[2])
}

func TestSplitPartitionsWithoutGaps(t *testing.T) {
	lines := []string{"a.", "b", "c.", "d."}
	blocks := Split(lines)
	require.Len(t, blocks, 3)
	next := 0
	for _, b := range blocks {
		assert.Equal(t, next, b.Start)
		assert.GreaterOrEqual(t, b.End, b.Start)
		next = b.End + 1
	}
	assert.Equal(t, len(lines), next)
}

func TestSplitEmpty(t *testing.T) {
	assert.Empty(t, Split(nil))
	assert.Empty(t, Split([]string{"no terminator here"}))
}

func TestBlockLines(t *testing.T) {
	lines := []string{"a.", "b", "c."}
	assert.Equal(t, []string{"b", "c."}, Block{1, 2}.Lines(lines))
}

func TestMergeRepeatsCollapsesConstruct(t *testing.T) {
	lines := []string{
		"COMPUTE y = 1.",
		"DO REPEAT r = v1 v2.",
		"COMPUTE r = r * 2.",
		"END REPEAT.",
		"SORT CASES BY id.",
	}
	blocks, err := MergeRepeats(lines, Split(lines))
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	assert.Equal(t, Block{0, 0}, blocks[0])
	assert.Equal(t, Block{1, 3}, blocks[1])
	assert.Equal(t, Block{4, 4}, blocks[2])
}

func TestMergeRepeatsUnmatched(t *testing.T) {
	lines := []string{
		"DO REPEAT r = v1 v2.",
		"COMPUTE r = r * 2.",
	}
	_, err := MergeRepeats(lines, Split(lines))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "END REPEAT")
}

func TestMergeRepeatsNoConstruct(t *testing.T) {
	lines := []string{"COMPUTE y = 1.", "SORT CASES BY id."}
	split := Split(lines)
	blocks, err := MergeRepeats(lines, split)
	require.NoError(t, err)
	assert.Equal(t, split, blocks)
}
