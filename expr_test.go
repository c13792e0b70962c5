package bigo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeReduction(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		param string
		kind  reductionKind
		k     int
	}{
		{"divide", "n/2", "n", reduceDivide, 2},
		{"divide with spaces", "  n / 3 ", "n", reduceDivide, 3},
		{"divide trailing semicolon", "n/2;", "n", reduceDivide, 2},
		{"divide trailing junk after int", "n/2 + 1", "n", reduceDivide, 2},
		{"divide by one rejected", "n/1", "n", reduceNone, 0},
		{"divide non-numeric", "n/m", "n", reduceNone, 0},
		{"shift", "n>>1", "n", reduceShift, 1},
		{"shift by zero", "n>>0", "n", reduceShift, 0},
		{"shift spaced", "n >> 2", "n", reduceShift, 2},
		{"decrease", "n-1", "n", reduceDecrement, 1},
		{"decrease spaced", "n - 2", "n", reduceDecrement, 2},
		{"decrease by zero rejected", "n-0", "n", reduceNone, 0},
		{"param absent", "m/2", "n", reduceNone, 0},
		{"empty param", "n/2", "", reduceNone, 0},
		{"empty expr", "", "n", reduceNone, 0},
		{"plain identifier", "n", "n", reduceNone, 0},
		{"divide wins over minus", "n-1/2", "n", reduceDivide, 2},
		{"size alias name", "size/4", "size", reduceDivide, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := analyzeReduction(tt.expr, tt.param)
			assert.Equal(t, tt.kind, r.kind)
			assert.Equal(t, tt.k, r.k)
		})
	}
}

func TestReductionDivideFactor(t *testing.T) {
	assert.Equal(t, 4, reduction{kind: reduceDivide, k: 4}.divideFactor())
	assert.Equal(t, 2, reduction{kind: reduceShift, k: 1}.divideFactor())
	assert.Equal(t, 1, reduction{kind: reduceShift, k: 0}.divideFactor())
	assert.Equal(t, 0, reduction{kind: reduceDecrement, k: 1}.divideFactor())
	assert.Equal(t, 0, reduction{}.divideFactor())

	// Shift amounts beyond the clamp stay within int range.
	assert.Equal(t, 1<<maxShift, reduction{kind: reduceShift, k: 40}.divideFactor())
}

func TestAliasTable(t *testing.T) {
	aliases := make(aliasTable)

	aliases.learn("mid", reduction{kind: reduceDivide, k: 2})
	assert.Equal(t, reduction{kind: reduceDivide, k: 2}, aliases.lookup("mid"))

	// Last matching assignment wins.
	aliases.learn("mid", reduction{kind: reduceDecrement, k: 1})
	assert.Equal(t, reduction{kind: reduceDecrement, k: 1}, aliases.lookup("mid"))

	// Non-matching assignments leave the entry alone.
	aliases.learn("mid", reduction{})
	assert.Equal(t, reduction{kind: reduceDecrement, k: 1}, aliases.lookup("mid"))

	assert.Equal(t, reduction{}, aliases.lookup("unknown"))
}
