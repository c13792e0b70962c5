package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	bigo "github.com/blukebill/BigO"
	"github.com/blukebill/BigO/internal/config"
)

// printReport writes one file's analysis in the configured format.
func printReport(w io.Writer, cfg *config.Config, rep fileReport) error {
	if cfg.Output.Format == "json" {
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report for %s: %w", rep.File, err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}
	printTextReport(w, cfg.Output.Colors, rep)
	return nil
}

func printTextReport(w io.Writer, colors bool, rep fileReport) {
	header := color.New(color.Bold)
	fnName := color.New(color.FgCyan)
	recursive := color.New(color.FgYellow)
	rel := color.New(color.FgGreen)
	if !colors {
		for _, c := range []*color.Color{header, fnName, recursive, rel} {
			c.DisableColor()
		}
	}

	header.Fprintf(w, "%s\n", rep.File)
	fmt.Fprintf(w, "  root: %s, loops: %d, calls: %d\n",
		rep.AST.RootType, len(rep.Summary.Loops), len(rep.Summary.Calls))

	for _, fn := range rep.Summary.Functions {
		fnName.Fprintf(w, "  %s", fn.Name)
		fmt.Fprintf(w, "  loops=%d depth=%d", fn.LoopCount, fn.MaxLoopDepth)
		if fn.SizeParam != "" {
			fmt.Fprintf(w, " size=%s", fn.SizeParam)
		}
		if fn.IsRecursive {
			recursive.Fprintf(w, " recursive")
		}
		fmt.Fprintln(w)
		if fn.Recurrence != nil {
			rel.Fprintf(w, "    %s\n", recurrenceString(fn.Name, fn.Recurrence))
		}
	}

	if rep.Summary.Recurrence != nil {
		r := rep.Summary.Recurrence
		rel.Fprintf(w, "  T(n) = %dT(n/%d) + %s\n", r.A, r.B, r.F)
	}
	if rep.Note != "" {
		fmt.Fprintf(w, "  note: %s\n", rep.Note)
	}
	fmt.Fprintln(w)
}

// recurrenceString renders a recurrence in the T(n) = aT(...) + f form.
func recurrenceString(fn string, r *bigo.Recurrence) string {
	var body string
	switch r.Model {
	case bigo.ModelDivide:
		body = fmt.Sprintf("%dT(n/%d)", r.A, r.B)
	case bigo.ModelDecrease:
		body = fmt.Sprintf("%dT(n-%d)", r.A, r.C)
	default:
		body = fmt.Sprintf("%dT(?)", r.A)
	}
	s := fmt.Sprintf("%s: T(n) = %s + %s", fn, body, r.F)
	if r.BAmbiguous {
		s += " (b ambiguous)"
	}
	return s
}
