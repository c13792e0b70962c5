package enrich

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	bigo "github.com/blukebill/BigO"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, code string) *bigo.Result {
	t.Helper()
	res, err := bigo.New().Analyze(context.Background(), "c", code)
	require.NoError(t, err)
	return res
}

func TestRun_StringResult(t *testing.T) {
	res := analyze(t, "int f(int n){ if(n<=1) return 1; return f(n-1); }")

	note, err := FromSource(`"checked"`).Run(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, "checked", note)
}

func TestRun_SummaryIsVisible(t *testing.T) {
	res := analyze(t, "int f(int n){ if(n<=1) return 1; return f(n-1); }")

	note, err := FromSource(`sprintf("functions=%d", len(summary["functions"]))`).
		Run(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, "functions=1", note)
}

func TestRun_ASTIsVisible(t *testing.T) {
	res := analyze(t, "int x;")

	note, err := FromSource(`ast["rootType"]`).Run(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, "translation_unit", note)
}

func TestRun_NilResultIsEmpty(t *testing.T) {
	res := analyze(t, "int x;")

	note, err := FromSource(`nil`).Run(context.Background(), res)
	require.NoError(t, err)
	assert.Empty(t, note)
}

func TestRun_ScriptError(t *testing.T) {
	res := analyze(t, "int x;")

	_, err := FromSource(`undefined_name`).Run(context.Background(), res)
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.risor")
	require.NoError(t, os.WriteFile(path, []byte(`"loaded"`), 0o644))

	h, err := Load(path)
	require.NoError(t, err)

	note, err := h.Run(context.Background(), analyze(t, "int x;"))
	require.NoError(t, err)
	assert.Equal(t, "loaded", note)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.risor"))
	require.Error(t, err)
}
