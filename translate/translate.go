// Package translate orchestrates the SPSS→R pipeline: normalize lines,
// segment statement blocks, classify command keys, dispatch to the registered
// translators and assemble the generated R script.
package translate

import (
	"fmt"
	"os"
	"strings"

	"github.com/statmigrate/spssr/classify"
	"github.com/statmigrate/spssr/preprocess"
	"github.com/statmigrate/spssr/segment"
	"github.com/statmigrate/spssr/translators"
)

// DefaultOutput is the sink filename used when no output path is given.
const DefaultOutput = "translated.R"

// Options are the run-wide flags, captured once per invocation.
type Options struct {
	Dialect     translators.Dialect
	PassThrough bool
}

// Script is the generated R script artifact.
type Script struct {
	Lines []string
}

// String renders the script with one line per row and a trailing newline.
func (s *Script) String() string {
	return strings.Join(s.Lines, "\n") + "\n"
}

// WriteFile serializes the script to path, or to DefaultOutput when path is
// empty. One line per row, no quoting.
func (s *Script) WriteFile(path string) error {
	if path == "" {
		path = DefaultOutput
	}
	if err := os.WriteFile(path, []byte(s.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// File reads an SPSS syntax file and translates it.
func File(path string, opts Options) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	src := strings.ReplaceAll(string(data), "\r\n", "\n")
	return Translate(strings.Split(src, "\n"), opts)
}

// Translate runs the whole pipeline over raw script lines. All errors are
// fatal to the run; there is no partial output. An empty (or all-comment)
// script yields a script containing only the header line.
func Translate(lines []string, opts Options) (*Script, error) {
	norm := preprocess.Normalize(lines)
	norm = preprocess.EraseHandles(norm, preprocess.ScanHandles(norm))

	blocks := segment.Split(norm)
	blocks, err := segment.MergeRepeats(norm, blocks)
	if err != nil {
		return nil, &StructuralError{Msg: err.Error()}
	}

	// Classify every block and reject unknown keys before any translator
	// runs, so a bad statement late in the script cannot leave half a
	// translation behind.
	keys := make([]string, len(blocks))
	for i, b := range blocks {
		stmt := b.Lines(norm)
		if len(stmt) == 0 {
			return nil, &StructuralError{Msg: fmt.Sprintf("statement block %d has no lines", i+1)}
		}
		keys[i] = classify.Key(stmt[0])
		if !translators.IsRegistered(keys[i]) {
			return nil, &DispatchError{Key: keys[i], Source: stmt[0]}
		}
	}

	cfg := translators.Config{Dialect: opts.Dialect, PassThrough: opts.PassThrough}
	perBlock := make([][]string, 0, len(blocks))
	for i, b := range blocks {
		tr, _ := translators.Get(keys[i])
		out, err := tr.Fn(b.Lines(norm), cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tr.Name(), err)
		}
		perBlock = append(perBlock, out)
	}

	return &Script{Lines: assemble(perBlock)}, nil
}
