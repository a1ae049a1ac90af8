package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/latex-converter/internal/watch"
	"github.com/pdiddy/latex-converter/pkg/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-convert a file into --output-dir every time it is saved",
	Long: `Watch converts a file once and then again after every save, writing the
converted copy into --output-dir. Stop it with Ctrl-C.

In-place conversion is not available here: rewriting the watched file would
trigger another conversion.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.OutputDir == "" {
		return fmt.Errorf("--output-dir is required (or set output_dir in the config file)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watch.Run(ctx, args[0], watch.Options{
		File:   types.FileOptions{OutputDir: cfg.OutputDir},
		Settle: cfg.WatchSettle,
	}, os.Stderr)
}

func init() {
	watchCmd.Flags().String("output-dir", "", "directory for the converted copy")
	watchCmd.Flags().Duration("settle", 0, "quiet period after a save before converting (default 100ms)")

	rootCmd.AddCommand(watchCmd)
}
