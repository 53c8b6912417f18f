// Package getdata translates GET DATA statements (text and CSV imports).
package getdata

import (
	"fmt"
	"strings"

	"github.com/statmigrate/spssr/translators"
)

func init() {
	translators.Register(&translators.Translator{Key: "getdata", Fn: translate})
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	stmt := translators.Statement(lines)
	subs := translators.Subcommands(stmt)

	file, ok := translators.SubValue(subs, "FILE")
	if !ok {
		return nil, fmt.Errorf("GET DATA without /FILE: %s", stmt)
	}

	sep := ","
	if d, ok := translators.SubValue(subs, "DELIMITERS"); ok {
		sep = translators.Unquote(d)
		if sep == "\\t" {
			sep = "\t"
		}
	}

	// FIRSTCASE=2 conventionally means row 1 is a header.
	header := "FALSE"
	if fc, ok := translators.SubValue(subs, "FIRSTCASE"); ok && strings.TrimSpace(fc) != "1" {
		header = "TRUE"
	}

	if cfg.Dialect == translators.DialectXpss {
		return translators.XpssCall("get_data", translators.XpssArgs(
			"file = "+translators.RString(file),
			"sep = "+translators.RString(sep),
		)), nil
	}
	return []string{
		fmt.Sprintf("x <- read.table(%s, sep = %s, header = %s, stringsAsFactors = FALSE)",
			translators.RString(file), translators.RString(sep), header),
	}, nil
}
