package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	bigo "github.com/blukebill/BigO"
	"github.com/blukebill/BigO/internal/config"
	"github.com/blukebill/BigO/internal/enrich"
)

var flagEnrich string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.c> [file.c ...]",
	Short: "Analyze C source files",
	Long:  "Parses each file, prints the AST descriptor and summary, and — with an enrichment script — a note computed from the summary.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&flagEnrich, "enrich", "", "Risor script evaluated over each summary (default from config)")
}

// fileReport pairs one input file with its analysis output.
type fileReport struct {
	File string `json:"file"`
	*bigo.Result
	Note string `json:"note,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	hook, err := loadEnrichHook(cfg)
	if err != nil {
		return err
	}

	analyzer := bigo.New()
	reports := make([]fileReport, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			rep, err := analyzeFile(ctx, analyzer, hook, path)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, rep := range reports {
		if err := printReport(os.Stdout, cfg, rep); err != nil {
			return err
		}
	}
	return nil
}

func analyzeFile(ctx context.Context, analyzer *bigo.Analyzer, hook *enrich.Hook, path string) (fileReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileReport{}, fmt.Errorf("reading %s: %w", path, err)
	}

	res, err := analyzer.Analyze(ctx, bigo.LanguageC, string(data))
	if err != nil {
		return fileReport{}, fmt.Errorf("analyzing %s: %w", path, err)
	}

	rep := fileReport{File: path, Result: res}
	if hook != nil {
		note, err := hook.Run(ctx, res)
		if err != nil {
			return fileReport{}, fmt.Errorf("enriching %s: %w", path, err)
		}
		rep.Note = note
	}
	return rep, nil
}

// loadEnrichHook resolves the enrichment script: flag first, then config.
func loadEnrichHook(cfg *config.Config) (*enrich.Hook, error) {
	script := flagEnrich
	if script == "" {
		script = cfg.Enrich.Script
	}
	if script == "" {
		return nil, nil
	}
	return enrich.Load(script)
}
