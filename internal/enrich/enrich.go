// Package enrich evaluates an optional Risor script over an analysis result.
// The script sees two globals, "ast" and "summary", holding the result
// documents as plain maps, and whatever it evaluates to is surfaced as a
// note next to the CLI report. Scripts cannot alter the result itself, so
// the wire shape of the analyzer output stays fixed.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/risor-io/risor"
	"github.com/risor-io/risor/object"

	bigo "github.com/blukebill/BigO"
)

// Hook is a loaded enrichment script.
type Hook struct {
	source string
	label  string
}

// Load reads a Risor script from disk.
func Load(path string) (*Hook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("enrich: load script %s: %w", path, err)
	}
	return &Hook{source: string(data), label: path}, nil
}

// FromSource wraps inline Risor source, mainly for tests.
func FromSource(src string) *Hook {
	return &Hook{source: src, label: "<inline>"}
}

// Run evaluates the script against the result and returns the script's value
// rendered as a string. A script evaluating to nil yields "".
func (h *Hook) Run(ctx context.Context, res *bigo.Result) (string, error) {
	ast, err := toMap(res.AST)
	if err != nil {
		return "", err
	}
	summary, err := toMap(res.Summary)
	if err != nil {
		return "", err
	}

	out, err := risor.Eval(ctx, h.source,
		risor.WithGlobal("ast", ast),
		risor.WithGlobal("summary", summary),
	)
	if err != nil {
		return "", fmt.Errorf("enrich: script %s: %w", h.label, err)
	}
	return render(out), nil
}

// toMap round-trips a result document through JSON so the script sees the
// exact wire field names.
func toMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("enrich: encode document: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("enrich: decode document: %w", err)
	}
	return m, nil
}

func render(out object.Object) string {
	switch v := out.(type) {
	case nil:
		return ""
	case *object.NilType:
		return ""
	case *object.String:
		return v.Value()
	default:
		return out.Inspect()
	}
}
