package valuelabels

import (
	"testing"

	"github.com/statmigrate/spssr/translators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueLabelsBase(t *testing.T) {
	got, err := translate([]string{"VALUE LABELS sex 1 'male' 2 'female'."},
		translators.Config{Dialect: translators.DialectBase})
	require.NoError(t, err)
	assert.Equal(t, []string{
		`x$sex <- factor(x$sex, levels = c(1, 2), labels = c("male", "female"))`,
	}, got)
}

func TestValueLabelsQuotedLabelWithSpaces(t *testing.T) {
	got, err := translate([]string{"VALUE LABELS grade 1 'very low'."},
		translators.Config{Dialect: translators.DialectBase})
	require.NoError(t, err)
	assert.Contains(t, got[0], `labels = c("very low")`)
}

func TestAddValueLabels(t *testing.T) {
	got, err := translate([]string{"ADD VALUE LABELS sex 3 'other'."},
		translators.Config{Dialect: translators.DialectBase})
	require.NoError(t, err)
	assert.Contains(t, got[0], "factor(x$sex")
}

func TestValueLabelsUnpaired(t *testing.T) {
	_, err := translate([]string{"VALUE LABELS sex 1 'male' 2."},
		translators.Config{Dialect: translators.DialectBase})
	assert.Error(t, err)
}
