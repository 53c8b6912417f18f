package selectif

import (
	"testing"

	"github.com/statmigrate/spssr/translators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectIfBase(t *testing.T) {
	got, err := translate([]string{"SELECT IF (age GT 18)."},
		translators.Config{Dialect: translators.DialectBase})
	require.NoError(t, err)
	assert.Equal(t, []string{"x <- x[x$age > 18, ]"}, got)
}

func TestSelectIfCompoundCondition(t *testing.T) {
	got, err := translate([]string{"SELECT IF (age GT 18) AND (sex EQ 1)."},
		translators.Config{Dialect: translators.DialectBase})
	require.NoError(t, err)
	assert.Equal(t, []string{"x <- x[(x$age > 18) & (x$sex == 1), ]"}, got)
}

func TestSelectIfEmptyCondition(t *testing.T) {
	_, err := translate([]string{"SELECT IF."},
		translators.Config{Dialect: translators.DialectBase})
	assert.Error(t, err)
}
