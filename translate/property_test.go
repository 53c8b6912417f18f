package translate

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/statmigrate/spssr/translators"
)

// Running the pipeline twice over the same script and configuration must
// produce byte-identical output: no hidden nondeterminism, in particular none
// from the import-deduplication step.
func TestTranslateDeterminismProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	statements := gen.OneConstOf(
		"GET FILE='data.sav'.",
		"COMPUTE total = price * qty.",
		"RECODE total (0=0) (ELSE=1).",
		"SORT CASES BY total.",
		"MATCH FILES /FILE=* /FILE='extra.sav' /BY id.",
		"SAVE OUTFILE='out.sav'.",
	)

	for _, dialect := range []translators.Dialect{translators.DialectXpss, translators.DialectBase} {
		opts := Options{Dialect: dialect}
		properties.Property("idempotent output, dialect "+dialect.String(), prop.ForAll(
			func(lines []string) bool {
				first, err1 := Translate(lines, opts)
				second, err2 := Translate(lines, opts)
				if err1 != nil || err2 != nil {
					return err1 != nil && err2 != nil && err1.Error() == err2.Error()
				}
				return first.String() == second.String()
			},
			gen.SliceOf(statements),
		))
	}

	properties.Property("header appears exactly once, after any imports", prop.ForAll(
		func(lines []string) bool {
			script, err := Translate(lines, Options{Dialect: translators.DialectBase})
			if err != nil {
				return false
			}
			count := 0
			headerAt := -1
			for i, line := range script.Lines {
				if line == Header {
					count++
					headerAt = i
				}
			}
			if count != 1 {
				return false
			}
			for i := 0; i < headerAt; i++ {
				if script.Lines[i] == "" || script.Lines[i][0] != 'l' {
					return false
				}
			}
			return true
		},
		gen.SliceOf(statements),
	))

	properties.TestingRun(t)
}
