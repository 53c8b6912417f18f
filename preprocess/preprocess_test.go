package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDropsBlankAndCommentLines(t *testing.T) {
	lines := []string{
		"",
		"* a comment line.",
		"   ",
		"COMPUTE y = 1.",
	}
	assert.Equal(t, []string{"COMPUTE y = 1."}, Normalize(lines))
}

func TestNormalizeRemovesExecute(t *testing.T) {
	got := Normalize([]string{"EXECUTE.", "RECODE v (1=0).", "execute."})
	assert.Equal(t, []string{"RECODE v (1=0)."}, got)
}

func TestNormalizeRemovesEmbeddedExecute(t *testing.T) {
	got := Normalize([]string{"RECODE v (1=0). Execute."})
	require.Len(t, got, 1)
	assert.Equal(t, "RECODE v (1=0). .", got[0])
}

func TestNormalizeCollapsesTabsAndTrims(t *testing.T) {
	got := Normalize([]string{"  COMPUTE\ty = 1.  "})
	assert.Equal(t, []string{"COMPUTE y = 1."}, got)
}

func TestNormalizeEmptyScript(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize([]string{"* only comments.", ""}))
}

func TestScanHandles(t *testing.T) {
	lines := []string{
		`FILE HANDLE mydata /NAME="C:\data\file.txt".`,
		"GET DATA /FILE=mydata.",
	}
	handles := ScanHandles(lines)
	require.Len(t, handles, 1)
	assert.Equal(t, "mydata", handles[0].Alias)
	assert.Equal(t, 0, handles[0].Line)
}

func TestScanHandlesCaseInsensitive(t *testing.T) {
	handles := ScanHandles([]string{"file handle fh /NAME='a.txt'."})
	require.Len(t, handles, 1)
	assert.Equal(t, "fh", handles[0].Alias)
}

func TestEraseHandlesRemovesAliasAfterDeclaration(t *testing.T) {
	lines := []string{
		`FILE HANDLE mydata /NAME="data.txt".`,
		"GET DATA /FILE=mydata /TYPE=TXT.",
	}
	erased := EraseHandles(lines, ScanHandles(lines))
	// Declaration line is untouched, later occurrences are gone.
	assert.Equal(t, lines[0], erased[0])
	assert.Equal(t, "GET DATA /FILE= /TYPE=TXT.", erased[1])
}

func TestEraseHandlesDoesNotMutateInput(t *testing.T) {
	lines := []string{
		"FILE HANDLE fh /NAME='a.txt'.",
		"GET DATA /FILE=fh.",
	}
	orig := lines[1]
	EraseHandles(lines, ScanHandles(lines))
	assert.Equal(t, orig, lines[1])
}

func TestEraseHandlesLiteralSubstring(t *testing.T) {
	// The substitution is literal text, not token-aware: an alias that is
	// a substring of another identifier is erased there too.
	lines := []string{
		"FILE HANDLE da /NAME='a.txt'.",
		"COMPUTE data = 1.",
	}
	erased := EraseHandles(lines, ScanHandles(lines))
	assert.Equal(t, "COMPUTE ta = 1.", erased[1])
}

func TestEraseHandlesNoHandles(t *testing.T) {
	lines := []string{"COMPUTE y = 1."}
	assert.Equal(t, lines, EraseHandles(lines, nil))
}
