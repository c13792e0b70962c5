// Package bigo extracts algorithmic-complexity evidence from C source text.
// It parses a snippet with tree-sitter, walks the concrete syntax tree, and
// produces a minimal AST descriptor plus a semantic summary: per-function
// loop statistics, outgoing calls, and — for self-recursive functions — an
// inferred recurrence relation of the form T(n) = a·T(n/b) + f(n) or
// T(n) = a·T(n−c) + f(n).
//
// # Pipeline
//
// A single call drives the whole analysis:
//
//	a := bigo.New()
//	res, err := a.Analyze(ctx, "c", code)
//
// The walker visits function definitions, loops, assignments, and call
// expressions. On entering a function it selects a size parameter (the
// parameter named "n", or the rightmost non-pointer parameter). Self-calls
// are matched against three size-reducing idioms over that parameter:
// n/k, n>>k, and n-c, either directly in the argument or through a local
// alias such as "mid = n/2". The aggregated evidence becomes an (a, b|c, f)
// tuple on the function record and in the summary's recurrences list.
//
// Solving a recurrence to a closed-form bound is out of scope; a separate
// analyzer service consumes the summary for that. Only the "c" language is
// supported. Any other language yields the empty-summary shape rather than
// an error.
//
// # Surrounding services
//
// internal/server exposes the analyzer over HTTP (POST /parse), optionally
// recording each analysis in a SQLite history store (internal/store).
// cmd/bigo is the CLI entry point: serve, analyze, and watch.
package bigo
