package bigo

import "fmt"

// Result is the pair returned by Analyze: the AST descriptor and the
// semantic summary. It marshals to the exact document the HTTP transport
// returns from POST /parse.
type Result struct {
	AST     ASTDescriptor `json:"ast"`
	Summary Summary       `json:"summary"`
}

// ASTDescriptor is the minimal description of the parsed tree.
type ASTDescriptor struct {
	Language string `json:"language"`
	RootType string `json:"rootType"`
}

// Summary holds everything the walker collected, in source traversal order.
type Summary struct {
	Loops       []LoopRecord      `json:"loops"`
	Calls       []string          `json:"calls"`
	Functions   []FunctionRecord  `json:"functions"`
	Recurrences []RecurrenceEntry `json:"recurrences"`

	// Recurrence is a convenience mirror, published only when exactly one
	// recurrence was inferred and it is a divide recurrence with b > 1.
	Recurrence *SummaryRecurrence `json:"recurrence,omitempty"`
}

// LoopRecord describes one for/while statement. Bound is always the literal
// "n"; the bound expression is not analyzed at this stage. Depth is the
// 1-based nesting level at which the loop was encountered.
type LoopRecord struct {
	Kind  string `json:"kind"`
	Bound string `json:"bound"`
	Depth int    `json:"depth"`
}

// FunctionRecord summarizes one function definition.
type FunctionRecord struct {
	Name           string      `json:"name"`
	IsRecursive    bool        `json:"is_recursive"`
	Calls          []string    `json:"calls"`
	LoopCount      int         `json:"loopCount"`
	MaxLoopDepth   int         `json:"maxLoopDepth"`
	SizeParam      string      `json:"sizeParam,omitempty"`
	SizeParamIndex *int        `json:"sizeParamIndex,omitempty"`
	Recurrence     *Recurrence `json:"recurrence,omitempty"`
}

// Recurrence is the inferred recurrence for one recursive function.
// A counts syntactic self-calls. F is the per-level work, derived from the
// function's loop nesting depth. B is set for the divide model (b >= 2),
// C for the decrease model (c >= 1).
type Recurrence struct {
	A          int    `json:"a"`
	F          string `json:"f"`
	B          int    `json:"b,omitempty"`
	Model      string `json:"model,omitempty"`
	C          int    `json:"c,omitempty"`
	BAmbiguous bool   `json:"b_ambiguous,omitempty"`
}

// RecurrenceEntry is the top-level flattened form of a Recurrence, tagged
// with its enclosing function name.
type RecurrenceEntry struct {
	Function   string `json:"function"`
	A          int    `json:"a"`
	F          string `json:"f"`
	B          int    `json:"b,omitempty"`
	Model      string `json:"model,omitempty"`
	C          int    `json:"c,omitempty"`
	BAmbiguous bool   `json:"b_ambiguous,omitempty"`
}

// SummaryRecurrence is the {a, b, f} convenience object.
type SummaryRecurrence struct {
	A int    `json:"a"`
	B int    `json:"b"`
	F string `json:"f"`
}

// Recurrence models.
const (
	ModelDivide   = "divide"
	ModelDecrease = "decrease"
)

// newResult builds the empty-summary shape for the given input language.
// All arrays marshal as [] rather than null.
func newResult(language string) *Result {
	if language == "" {
		language = "unknown"
	}
	return &Result{
		AST: ASTDescriptor{Language: language, RootType: "unknown"},
		Summary: Summary{
			Loops:       []LoopRecord{},
			Calls:       []string{},
			Functions:   []FunctionRecord{},
			Recurrences: []RecurrenceEntry{},
		},
	}
}

// finalize publishes the convenience recurrence when the summary holds
// exactly one divide recurrence with b > 1.
func (r *Result) finalize() {
	if len(r.Summary.Recurrences) != 1 {
		return
	}
	e := r.Summary.Recurrences[0]
	if e.Model == ModelDivide && e.B > 1 {
		r.Summary.Recurrence = &SummaryRecurrence{A: e.A, B: e.B, F: e.F}
	}
}

// workPerLevel maps a function's maximum loop nesting depth to the f(n)
// term of its recurrence: 0 -> "1", 1 -> "n", d -> "n^d".
func workPerLevel(maxLoopDepth int) string {
	switch {
	case maxLoopDepth <= 0:
		return "1"
	case maxLoopDepth == 1:
		return "n"
	default:
		return fmt.Sprintf("n^%d", maxLoopDepth)
	}
}
