package sortcases

import (
	"testing"

	"github.com/statmigrate/spssr/translators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortCasesBase(t *testing.T) {
	got, err := translate([]string{"SORT CASES BY id."},
		translators.Config{Dialect: translators.DialectBase})
	require.NoError(t, err)
	assert.Equal(t, []string{"x <- x[order(x$id), ]"}, got)
}

func TestSortCasesDescending(t *testing.T) {
	got, err := translate([]string{"SORT CASES BY id name (D)."},
		translators.Config{Dialect: translators.DialectBase})
	require.NoError(t, err)
	assert.Equal(t, []string{"x <- x[order(x$id, -xtfrm(x$name)), ]"}, got)
}

func TestSortCasesAttachedDirectionTag(t *testing.T) {
	got, err := translate([]string{"SORT CASES BY id(D) name(A)."},
		translators.Config{Dialect: translators.DialectBase})
	require.NoError(t, err)
	assert.Equal(t, []string{"x <- x[order(-xtfrm(x$id), x$name), ]"}, got)
}

func TestSortCasesXpss(t *testing.T) {
	got, err := translate([]string{"SORT CASES BY id."},
		translators.Config{Dialect: translators.DialectXpss})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"library(xpssr)",
		`x <- xpss_sort_cases(x, by = c("id"))`,
	}, got)
}

func TestSortCasesMissingBy(t *testing.T) {
	_, err := translate([]string{"SORT CASES."},
		translators.Config{Dialect: translators.DialectBase})
	assert.Error(t, err)
}
