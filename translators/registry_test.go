package translators

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	tr := &Translator{Key: "testcmd", Fn: func([]string, Config) ([]string, error) {
		return []string{"# ok"}, nil
	}}
	Register(tr)
	defer delete(registry, "testcmd")

	got, ok := Get("testcmd")
	require.True(t, ok)
	assert.Equal(t, "testcmd_to_r", got.Name())
	assert.True(t, IsRegistered("testcmd"))
	assert.False(t, IsRegistered("nope"))
}

func TestNamesSorted(t *testing.T) {
	Register(&Translator{Key: "zzz"})
	Register(&Translator{Key: "aaa"})
	defer delete(registry, "zzz")
	defer delete(registry, "aaa")

	names := Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "aaa_to_r")
	assert.Contains(t, names, "zzz_to_r")
}

func TestParseDialect(t *testing.T) {
	d, ok := ParseDialect("")
	require.True(t, ok)
	assert.Equal(t, DialectXpss, d)

	d, ok = ParseDialect("base")
	require.True(t, ok)
	assert.Equal(t, DialectBase, d)

	_, ok = ParseDialect("fortran")
	assert.False(t, ok)
}

func TestStatementJoinsAndStripsTerminator(t *testing.T) {
	assert.Equal(t, "RECODE v (1=0) (ELSE=1)",
		Statement([]string{"RECODE v (1=0)", "(ELSE=1)."}))
}

func TestSubcommands(t *testing.T) {
	subs := Subcommands(`GET DATA /TYPE=TXT /FILE="a/b.txt" /DELIMITERS=","`)
	require.Len(t, subs, 3)
	assert.Equal(t, "TYPE=TXT", subs[0])
	assert.Equal(t, `FILE="a/b.txt"`, subs[1])
}

func TestSubValue(t *testing.T) {
	subs := []string{"TYPE=TXT", `FILE="a.txt"`, "BY id group"}
	v, ok := SubValue(subs, "file")
	require.True(t, ok)
	assert.Equal(t, `"a.txt"`, v)

	v, ok = SubValue(subs, "BY")
	require.True(t, ok)
	assert.Equal(t, "id group", v)

	_, ok = SubValue(subs, "MISSING")
	assert.False(t, ok)
}

func TestRExpr(t *testing.T) {
	assert.Equal(t, "x$age > 18 & x$sex == 1", RExpr("age GT 18 AND sex EQ 1"))
	assert.Equal(t, "is.na(x$v)", RExpr("SYSMIS(v)"))
}

func TestRVector(t *testing.T) {
	assert.Equal(t, `c("a", "b")`, RVector([]string{"a", "b"}))
}

func TestXpssCall(t *testing.T) {
	got := XpssCall("sort_cases", XpssArgs(`by = c("id")`))
	require.Len(t, got, 2)
	assert.Equal(t, "library(xpssr)", got[0])
	assert.Equal(t, `x <- xpss_sort_cases(x, by = c("id"))`, got[1])
}
