// Package cmd is the spssr command-line surface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/statmigrate/spssr/translate"
	"github.com/statmigrate/spssr/translators"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Execute runs the spssr CLI with the given version string. Import translator
// packages via blank imports before calling this function so they register
// via init().
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "spssr",
		Usage:                  "Translate SPSS syntax files to R",
		Version:                version,
		UseShortOptionHandling: true,
		Flags:                  translateFlags(),
		// Allow `spssr script.sps` as shorthand for `spssr translate script.sps`
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 0 && isSyntaxFile(cmd.Args().First()) {
				return translateAction(ctx, cmd)
			}
			return cli.DefaultShowRootCommandHelp(cmd)
		},
		Commands: []*cli.Command{
			{
				Name:      "translate",
				Usage:     "Translate a syntax file and write the R script",
				ArgsUsage: "<file.sps>",
				Flags:     translateFlags(),
				Action:    translateAction,
			},
			{
				Name:      "emit",
				Usage:     "Print the generated R source to stdout",
				ArgsUsage: "<file.sps>",
				Flags:     translateFlags(),
				Action:    emitAction,
			},
			{
				Name:      "watch",
				Usage:     "Retranslate whenever the syntax file changes",
				ArgsUsage: "<file.sps>",
				Flags:     translateFlags(),
				Action:    watchAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func translateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "dialect",
			Aliases: []string{"d"},
			Usage:   "Output dialect: xpss or base",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file (default: " + translate.DefaultOutput + ")",
		},
		&cli.BoolFlag{
			Name:  "pass-through",
			Usage: "Suppress SAVE-style statements; keep working in memory",
		},
	}
}

// runOptions resolves translation options from flags layered over the
// optional spssr.toml project config.
func runOptions(cmd *cli.Command) (translate.Options, string, error) {
	cfg := loadConfig()

	name := cmd.String("dialect")
	if name == "" {
		name = cfg.Dialect
	}
	dialect, ok := translators.ParseDialect(name)
	if !ok {
		return translate.Options{}, "", fmt.Errorf("unknown dialect %q (want xpss or base)", name)
	}

	output := cmd.String("output")
	if output == "" {
		output = cfg.Output
	}

	opts := translate.Options{
		Dialect:     dialect,
		PassThrough: cmd.Bool("pass-through") || cfg.PassThrough,
	}
	return opts, output, nil
}

func translateAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: spssr translate <file.sps>")
	}
	opts, output, err := runOptions(cmd)
	if err != nil {
		return err
	}
	script, err := translate.File(cmd.Args().First(), opts)
	if err != nil {
		return err
	}
	if err := script.WriteFile(output); err != nil {
		return err
	}
	if output == "" {
		output = translate.DefaultOutput
	}
	fmt.Fprintf(os.Stderr, "%s: %d lines\n", output, len(script.Lines))
	return nil
}

func emitAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: spssr emit <file.sps>")
	}
	opts, _, err := runOptions(cmd)
	if err != nil {
		return err
	}
	script, err := translate.File(cmd.Args().First(), opts)
	if err != nil {
		return err
	}
	fmt.Print(script.String())
	return nil
}

// colors returns ANSI escapes for status output, empty when stderr is not a
// terminal or NO_COLOR is set.
func colors() (ok, fail, reset string) {
	if os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stderr.Fd())) {
		return "", "", ""
	}
	return "\033[32m", "\033[31m", "\033[0m"
}

func isSyntaxFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".sps")
}
