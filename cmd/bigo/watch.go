package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	bigo "github.com/blukebill/BigO"
	"github.com/blukebill/BigO/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file.c> [file.c ...]",
	Short: "Re-analyze files whenever they change",
	Long:  "Analyzes each file once, then watches for modifications and prints a fresh report after each change. Stop with Ctrl-C.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	hook, err := loadEnrichHook(cfg)
	if err != nil {
		return err
	}

	analyzer := bigo.New()
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	report := func(path string) {
		rep, err := analyzeFile(ctx, analyzer, hook, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[watch] %v\n", err)
			return
		}
		if err := printReport(os.Stdout, cfg, rep); err != nil {
			fmt.Fprintf(os.Stderr, "[watch] %v\n", err)
		}
	}

	for _, path := range args {
		report(path)
	}

	w, err := watcher.New(time.Duration(cfg.Watch.DebounceMS) * time.Millisecond)
	if err != nil {
		return err
	}
	defer w.Close()

	err = w.Watch(args, func(paths []string) {
		for _, path := range paths {
			report(path)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "[watch] watching %d file(s)\n", len(args))
	<-ctx.Done()
	return nil
}
