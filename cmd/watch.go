package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/statmigrate/spssr/translate"
	"github.com/urfave/cli/v3"
)

// watchAction retranslates the syntax file on every write until interrupted.
// Watching the directory instead of the file survives editors that replace
// the file on save.
func watchAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: spssr watch <file.sps>")
	}
	opts, output, err := runOptions(cmd)
	if err != nil {
		return err
	}

	path, err := filepath.Abs(cmd.Args().First())
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	ok, fail, reset := colors()
	retranslate := func() {
		script, err := translate.File(path, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s%v%s\n", fail, err, reset)
			return
		}
		if err := script.WriteFile(output); err != nil {
			fmt.Fprintf(os.Stderr, "%s%v%s\n", fail, err, reset)
			return
		}
		target := output
		if target == "" {
			target = translate.DefaultOutput
		}
		fmt.Fprintf(os.Stderr, "%s%s: %d lines%s\n", ok, target, len(script.Lines), reset)
	}

	retranslate()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, open := <-watcher.Events:
			if !open {
				return nil
			}
			if event.Name != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			retranslate()
		case err, open := <-watcher.Errors:
			if !open {
				return nil
			}
			fmt.Fprintf(os.Stderr, "%swatch error: %v%s\n", fail, err, reset)
		}
	}
}
