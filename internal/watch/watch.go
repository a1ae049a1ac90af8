// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch re-converts a document every time it changes on disk, so the
// converted copy always reflects the latest edit.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pdiddy/latex-converter/internal/convert"
	"github.com/pdiddy/latex-converter/pkg/types"
)

// Options configures a watch loop.
type Options struct {
	// File controls where the converted copy is written. OutputDir is required.
	File types.FileOptions

	// Settle is the quiet period after the last event before re-converting.
	// Editors often emit several events per save.
	Settle time.Duration

	// OnConvert, if set, is called after every conversion.
	OnConvert func(types.FileResult)
}

// Run converts path once and then again after every write to it, until ctx
// is cancelled. Status lines go to w. The parent directory is watched rather
// than the file itself so that editors which save by renaming a temp file
// over the original keep being tracked.
func Run(ctx context.Context, path string, opts Options, w io.Writer) error {
	if opts.File.OutputDir == "" {
		return errors.New("watch needs an output directory: converting in place would retrigger the watch")
	}
	opts.File.InPlace = false
	opts.File.DryRun = false
	opts.File.WriteUnchanged = true
	if opts.Settle <= 0 {
		opts.Settle = types.DefaultWatchSettle
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	run := func() {
		res := convert.ConvertFile(path, opts.File, w)
		if opts.OnConvert != nil {
			opts.OnConvert(res)
		}
	}
	run()
	fmt.Fprintf(w, "watching %s (Ctrl-C to stop)\n", path)

	timer := time.NewTimer(opts.Settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Name != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			timer.Reset(opts.Settle)
		case <-timer.C:
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w, "watch error: %v\n", err)
		}
	}
}
