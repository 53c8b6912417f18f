// Package filehandle translates FILE HANDLE statements. The alias itself was
// already erased from the remaining script during preprocessing, so the
// declaration needs no R counterpart.
package filehandle

import "github.com/statmigrate/spssr/translators"

func init() {
	translators.Register(&translators.Translator{Key: "filehandle", Fn: translate})
}

func translate(lines []string, cfg translators.Config) ([]string, error) {
	return nil, nil
}
