package bigo

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// frame is the mutable per-function state maintained during traversal.
// It is reset on function entry and folded into the summary on exit. C has
// no nested function definitions, but the walker saves and restores the
// enclosing frame anyway so a degenerate tree cannot corrupt state.
type frame struct {
	currentFn string
	calls     []string

	loopDepth    int
	maxLoopDepth int
	loopCount    int

	hasSizeParam   bool
	sizeParamName  string
	sizeParamIndex int
	aliases        aliasTable

	sawRecursiveCall bool
	selfCalls        int
	hasDivide        bool
	divideB          int
	bAmbiguous       bool
	hasDecrease      bool
	decreaseC        int
}

// walker drives the depth-first traversal, accumulating into summary.
type walker struct {
	src     []byte
	summary *Summary
	frame   frame
}

func newWalker(src []byte, summary *Summary) *walker {
	return &walker{src: src, summary: summary, frame: frame{aliases: make(aliasTable)}}
}

// walk dispatches on node type and descends.
func (w *walker) walk(n *sitter.Node) {
	if n == nil {
		return
	}
	switch n.Type() {
	case "function_definition":
		w.visitFunction(n)
		return
	case "for_statement", "while_statement":
		w.visitLoop(n)
		return
	case "assignment_expression":
		left := n.ChildByFieldName("left")
		right := n.ChildByFieldName("right")
		w.trackAlias(firstIdentifier(left, w.src), right)
	case "init_declarator":
		w.trackAlias(firstIdentifier(n, w.src), n.ChildByFieldName("value"))
	case "call_expression":
		w.visitCall(n)
	}
	w.walkChildren(n)
}

func (w *walker) walkChildren(n *sitter.Node) {
	for i := 0; i < int(n.ChildCount()); i++ {
		w.walk(n.Child(i))
	}
}

// visitFunction enters a fresh frame for a function definition, selects the
// size parameter, traverses the body, and folds the frame into the summary.
func (w *walker) visitFunction(n *sitter.Node) {
	saved := w.frame
	w.frame = frame{
		currentFn: firstIdentifier(n.ChildByFieldName("declarator"), w.src),
		aliases:   make(aliasTable),
	}
	if sp, ok := selectSizeParam(n, w.src); ok {
		w.frame.hasSizeParam = true
		w.frame.sizeParamName = sp.name
		w.frame.sizeParamIndex = sp.index
	}

	w.walkChildren(n)
	w.finishFunction()
	w.frame = saved
}

// finishFunction appends the FunctionRecord for the frame being left, plus a
// recurrence entry when the function called itself.
func (w *walker) finishFunction() {
	f := &w.frame
	if f.currentFn == "" {
		return
	}

	rec := FunctionRecord{
		Name:         f.currentFn,
		IsRecursive:  f.sawRecursiveCall,
		Calls:        f.calls,
		LoopCount:    f.loopCount,
		MaxLoopDepth: f.maxLoopDepth,
	}
	if rec.Calls == nil {
		rec.Calls = []string{}
	}
	if f.hasSizeParam {
		rec.SizeParam = f.sizeParamName
		idx := f.sizeParamIndex
		rec.SizeParamIndex = &idx
	}

	if f.sawRecursiveCall {
		r := &Recurrence{A: f.selfCalls, F: workPerLevel(f.maxLoopDepth)}
		if f.hasDecrease {
			r.Model = ModelDecrease
			r.C = f.decreaseC
		}
		// Divide evidence overrides decrease when both are present.
		if f.hasDivide && f.divideB > 1 {
			r.Model = ModelDivide
			r.B = f.divideB
			r.C = 0
		}
		r.BAmbiguous = f.bAmbiguous
		rec.Recurrence = r

		w.summary.Recurrences = append(w.summary.Recurrences, RecurrenceEntry{
			Function:   f.currentFn,
			A:          r.A,
			F:          r.F,
			B:          r.B,
			Model:      r.Model,
			C:          r.C,
			BAmbiguous: r.BAmbiguous,
		})
	}

	w.summary.Functions = append(w.summary.Functions, rec)
}

// visitLoop records the loop at its encounter depth and descends one level
// deeper.
func (w *walker) visitLoop(n *sitter.Node) {
	kind := "for"
	if n.Type() == "while_statement" {
		kind = "while"
	}
	depth := w.frame.loopDepth + 1
	w.summary.Loops = append(w.summary.Loops, LoopRecord{Kind: kind, Bound: "n", Depth: depth})
	w.frame.loopCount++
	if depth > w.frame.maxLoopDepth {
		w.frame.maxLoopDepth = depth
	}

	w.frame.loopDepth++
	w.walkChildren(n)
	w.frame.loopDepth--
}

// trackAlias learns lhs -> reduction when the right-hand side reduces the
// size parameter.
func (w *walker) trackAlias(lhs string, rhs *sitter.Node) {
	if w.frame.currentFn == "" || !w.frame.hasSizeParam || rhs == nil {
		return
	}
	w.frame.aliases.learn(lhs, analyzeReduction(nodeText(rhs, w.src), w.frame.sizeParamName))
}

// visitCall records the call target and, when the target is the enclosing
// function itself, gathers recurrence evidence from its arguments.
func (w *walker) visitCall(n *sitter.Node) {
	name := nodeText(n.ChildByFieldName("function"), w.src)
	if name == "" {
		return
	}
	w.summary.Calls = append(w.summary.Calls, name)
	if w.frame.currentFn == "" {
		return
	}
	w.frame.calls = append(w.frame.calls, name)
	if name == w.frame.currentFn {
		w.frame.sawRecursiveCall = true
		w.analyzeSelfCall(n)
	}
}

// analyzeSelfCall inspects the size-parameter argument of a self-call. The
// argument text is matched against the reduction idioms directly; a bare
// identifier falls back to the alias table.
func (w *walker) analyzeSelfCall(n *sitter.Node) {
	w.frame.selfCalls++
	if !w.frame.hasSizeParam {
		return
	}

	args := n.ChildByFieldName("arguments")
	if args == nil {
		return
	}
	text := strings.TrimSpace(nodeText(args, w.src))
	text = strings.TrimPrefix(text, "(")
	text = strings.TrimSuffix(text, ")")
	tokens := strings.Split(text, ",")
	if w.frame.sizeParamIndex >= len(tokens) {
		return
	}
	token := strings.TrimSpace(tokens[w.frame.sizeParamIndex])

	r := analyzeReduction(token, w.frame.sizeParamName)
	if r.kind == reduceNone && isPlainIdentifier(token) {
		r = w.frame.aliases.lookup(token)
	}
	switch r.kind {
	case reduceDivide, reduceShift:
		w.considerDivideB(r.divideFactor())
	case reduceDecrement:
		w.considerDecrease(r.k)
	}
}

// considerDivideB folds one observed divide factor into the frame: the
// smallest factor wins, and distinct factors flag ambiguity.
func (w *walker) considerDivideB(b int) {
	f := &w.frame
	if !f.hasDivide {
		f.hasDivide = true
		f.divideB = b
		return
	}
	if b != f.divideB {
		f.bAmbiguous = true
		if b < f.divideB {
			f.divideB = b
		}
	}
}

// considerDecrease keeps the smallest observed decrement.
func (w *walker) considerDecrease(c int) {
	f := &w.frame
	if !f.hasDecrease || c < f.decreaseC {
		f.hasDecrease = true
		f.decreaseC = c
	}
}
