package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoneSince/construct/internal/construct"
)

// resetFlags restores the package-level flag variables cobra binds to,
// so tests don't leak state into each other via the shared globals.
func resetFlags(t *testing.T) {
	t.Helper()
	inputPath = ""
	outputPath = ""
	debug = false
}

func TestRunMissingFlagsReturnsFlagExitError(t *testing.T) {
	resetFlags(t)
	err := run(newRootCmd(), nil)
	require.Error(t, err)
	var fe *flagExitError
	require.ErrorAs(t, err, &fe)
}

func TestRunMissingOutputOnlyStillFlagExitError(t *testing.T) {
	resetFlags(t)
	inputPath = "irrelevant.con"
	err := run(newRootCmd(), nil)
	require.Error(t, err)
	var fe *flagExitError
	require.ErrorAs(t, err, &fe)
}

func TestRunCompilesInputToOutput(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "prog.con")
	out := filepath.Join(dir, "prog.asm")
	require.NoError(t, os.WriteFile(in, []byte("function main():\n\tret\n"), 0644))

	inputPath = in
	outputPath = out

	require.NoError(t, run(newRootCmd(), nil))

	asm, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(asm), "_start:")
}

func TestRunMissingInputFileIsIOError(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	inputPath = filepath.Join(dir, "does-not-exist.con")
	outputPath = filepath.Join(dir, "out.asm")

	err := run(newRootCmd(), nil)
	require.Error(t, err)
	var ce *construct.CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, construct.IOError, ce.Kind)
}

func TestRunPropagatesCompileError(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.con")
	require.NoError(t, os.WriteFile(in, []byte("function main():\n\t\tret\n"), 0644))

	inputPath = in
	outputPath = filepath.Join(dir, "out.asm")

	err := run(newRootCmd(), nil)
	require.Error(t, err)
	var ce *construct.CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, construct.IndentationJump, ce.Kind)
}

func TestFlagErrorFuncWrapsUnknownFlags(t *testing.T) {
	resetFlags(t)
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--not-a-real-flag"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	var fe *flagExitError
	require.ErrorAs(t, err, &fe)
}
