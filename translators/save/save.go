// Package save translates SAVE OUTFILE statements. In pass-through mode the
// statement is suppressed entirely: the caller keeps working on the in-memory
// data frame instead of materializing it.
package save

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "save", Fn: translate})
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	if cfg.PassThrough {
		return nil, nil
	}

	stmt := translators.Statement(lines)
	subs := translators.Subcommands(stmt)
	file, ok := translators.SubValue(subs, "OUTFILE")
	if !ok {
		file, ok = translators.SubValue([]string{translators.Rest(stmt, 1)}, "OUTFILE")
		if !ok {
			return nil, fmt.Errorf("SAVE without OUTFILE: %s", stmt)
		}
	}

	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("save", translators.XpssArgs(
			"file = "+translators.RString(file),
		)), nil
	}

	out := translators.Unquote(file)
	if strings.HasSuffix(strings.ToLower(out), ".sav") {
		out = out[:len(out)-4] + ".rds"
	}
	return []string{
		fmt.Sprintf("saveRDS(x, %s)", translators.RString(out)),
	}, nil
}
