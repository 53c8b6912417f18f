// Package translators holds the registry mapping canonical command keys to
// per-command SPSS→R translators. Translator packages register themselves via
// init(); import them with blank imports before running the pipeline.
package translators

import (
	"sort"
	"strings"
)

// Dialect selects the R idiom translators emit.
type Dialect int

const (
	// DialectXpss emits calls into the companion xpssr R package.
	DialectXpss Dialect = iota
	// DialectBase emits plain base-R data.frame idiom.
	DialectBase
)

func (d Dialect) String() string {
	if d == DialectBase {
		return "base"
	}
	return "xpss"
}

// ParseDialect resolves a dialect name from the CLI or config file.
func ParseDialect(name string) (Dialect, bool) {
	switch strings.ToLower(name) {
	case "", "xpss":
		return DialectXpss, true
	case "base", "r":
		return DialectBase, true
	}
	return DialectXpss, false
}

// Config carries the two run-wide flags every translator receives. It is set
// once per run and never mutated.
type Config struct {
	Dialect Dialect
	// PassThrough suppresses materializing commands (SAVE and friends) so
	// the caller keeps operating on the in-memory data frame.
	PassThrough bool
}

// Func converts one statement block's lines into R source lines. Translators
// are pure functions of their inputs; errors abort the whole run.
type Func func(lines []string, cfg Config) ([]string, error)

// Translator binds a canonical command key to its translation function.
type Translator struct {
	// Key is the canonical command key (e.g. "recode", "sortcases").
	Key string
	// Fn produces the R lines for one block.
	Fn Func
}

// Name returns the conventional dispatch name, the key plus the _to_r suffix.
func (t *Translator) Name() string { return t.Key + "_to_r" }

var registry = make(map[string]*Translator)

// Register adds a translator to the global registry. Called from init() in
// the per-command packages.
func Register(t *Translator) {
	registry[t.Key] = t
}

// Get returns the translator registered for a canonical command key.
func Get(key string) (*Translator, bool) {
	t, ok := registry[key]
	return t, ok
}

// IsRegistered reports whether a canonical command key has a translator.
func IsRegistered(key string) bool {
	_, ok := registry[key]
	return ok
}

// Names returns the sorted dispatch names of all registered translators.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, t := range registry {
		names = append(names, t.Name())
	}
	sort.Strings(names)
	return names
}
