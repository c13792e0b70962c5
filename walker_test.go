package bigo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalker_AliasViaAssignment(t *testing.T) {
	res := analyze(t, "c", `
int m(int n){
  int mid;
  mid = n / 2;
  if(n<2) return 1;
  return m(mid);
}`)

	require.Len(t, res.Summary.Recurrences, 1)
	e := res.Summary.Recurrences[0]
	assert.Equal(t, ModelDivide, e.Model)
	assert.Equal(t, 2, e.B)
}

func TestWalker_AliasLastWriteWins(t *testing.T) {
	res := analyze(t, "c", `
int m(int n){
  int k = n / 4;
  k = n - 1;
  if(n<2) return 1;
  return m(k);
}`)

	require.Len(t, res.Summary.Recurrences, 1)
	e := res.Summary.Recurrences[0]
	assert.Equal(t, ModelDecrease, e.Model)
	assert.Equal(t, 1, e.C)
}

func TestWalker_AliasDoesNotLeakAcrossFunctions(t *testing.T) {
	res := analyze(t, "c", `
int a(int n){ int mid = n / 2; return mid; }
int b(int n){ if(n<2) return 1; return b(mid); }
`)

	require.Len(t, res.Summary.Recurrences, 1)
	e := res.Summary.Recurrences[0]
	assert.Equal(t, "b", e.Function)
	// b's frame never saw a's alias; no model evidence is attributed.
	assert.Empty(t, e.Model)
}

func TestWalker_DecreaseKeepsSmallest(t *testing.T) {
	res := analyze(t, "c", "int f(int n){ if(n<4) return 1; return f(n-3)+f(n-1); }")

	require.Len(t, res.Summary.Recurrences, 1)
	e := res.Summary.Recurrences[0]
	assert.Equal(t, ModelDecrease, e.Model)
	assert.Equal(t, 1, e.C)
	assert.Equal(t, 2, e.A)
}

func TestWalker_ArgumentIndexOutOfRange(t *testing.T) {
	// The recursive call passes fewer arguments than the size-parameter
	// index requires; evidence extraction aborts but a still counts.
	res := analyze(t, "c", "void s(int* a, int n){ if(n<2) return; s(a); }")

	require.Len(t, res.Summary.Recurrences, 1)
	e := res.Summary.Recurrences[0]
	assert.Equal(t, 1, e.A)
	assert.Empty(t, e.Model)
}

func TestWalker_LoopsInsideRecursion(t *testing.T) {
	res := analyze(t, "c", `
int p(int n){
  if(n<2) return 1;
  for(int i=0;i<n;i++){
    for(int j=0;j<n;j++){}
  }
  return p(n/2);
}`)

	require.Len(t, res.Summary.Functions, 1)
	fn := res.Summary.Functions[0]
	assert.Equal(t, 2, fn.LoopCount)
	assert.Equal(t, 2, fn.MaxLoopDepth)
	require.NotNil(t, fn.Recurrence)
	assert.Equal(t, "n^2", fn.Recurrence.F)
	assert.Equal(t, ModelDivide, fn.Recurrence.Model)
}

func TestWalker_LoopDepthResetsBetweenFunctions(t *testing.T) {
	res := analyze(t, "c", `
void a(int n){ for(int i=0;i<n;i++){} }
void b(int n){ for(int i=0;i<n;i++){} }
`)

	require.Len(t, res.Summary.Loops, 2)
	assert.Equal(t, 1, res.Summary.Loops[0].Depth)
	assert.Equal(t, 1, res.Summary.Loops[1].Depth)

	require.Len(t, res.Summary.Functions, 2)
	for _, fn := range res.Summary.Functions {
		assert.Equal(t, 1, fn.LoopCount)
		assert.Equal(t, 1, fn.MaxLoopDepth)
	}
}

func TestWalker_MutualRecursionIsNotSelfRecursion(t *testing.T) {
	res := analyze(t, "c", `
int even(int n){ if(n==0) return 1; return odd(n-1); }
int odd(int n){ if(n==0) return 0; return even(n-1); }
`)

	require.Len(t, res.Summary.Functions, 2)
	for _, fn := range res.Summary.Functions {
		assert.False(t, fn.IsRecursive)
	}
	assert.Empty(t, res.Summary.Recurrences)
}

func TestWalker_NestedCallsAreAllRecorded(t *testing.T) {
	res := analyze(t, "c", "int f(int n){ return g(h(n)); }")

	assert.Equal(t, []string{"g", "h"}, res.Summary.Calls)
	require.Len(t, res.Summary.Functions, 1)
	assert.Equal(t, []string{"g", "h"}, res.Summary.Functions[0].Calls)
}
