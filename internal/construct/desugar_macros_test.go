package construct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstituteMacroBasic(t *testing.T) {
	assert.Equal(t, "rdi", substituteMacro("count", "count", "rdi"))
	assert.Equal(t, "[rdi+4]", substituteMacro("[count+4]", "count", "rdi"))
}

func TestSubstituteMacroNoMatch(t *testing.T) {
	assert.Equal(t, "other", substituteMacro("other", "count", "rdi"))
}

func TestSubstituteMacroDigitIsABoundary(t *testing.T) {
	// The original's boundary check excludes only letters and
	// underscore; a trailing digit is a valid boundary, so "x" matches
	// the leading "x" of "x1" — see Open Question decision 7.
	assert.Equal(t, "rdi1", substituteMacro("x1", "x", "rdi"))
}

func TestSubstituteMacroUnderscoreBlocksBoundary(t *testing.T) {
	assert.Equal(t, "x_count", substituteMacro("x_count", "count", "rdi"))
}

func TestSubstituteMacroLetterBlocksBoundary(t *testing.T) {
	assert.Equal(t, "counter", substituteMacro("counter", "count", "rdi"))
}

func TestFindMacroBoundaryScansPastInvalidLeftmostMatch(t *testing.T) {
	// The leftmost raw match of "count" (index 1, inside "xcount") is
	// not boundary-valid, because the "x" right before it blocks it; the
	// later standalone "count" must still be found.
	pos, ok := findMacroBoundary("xcount + count", "count")
	assert.True(t, ok)
	assert.Equal(t, len("xcount + "), pos)
}

func TestDesugarMacrosAppliesToCmdOperands(t *testing.T) {
	macroDef := macroNode("count", "rdi", 0)
	cmd := cmdNode("mov", "count", "1", 0)

	var known []Macro
	DesugarMacros([]*Node{macroDef, cmd}, &known)

	assert.Equal(t, "rdi", cmd.Arg1)
	require.Len(t, known, 1)
}

func TestDesugarMacrosLeaksForwardAcrossNestedScope(t *testing.T) {
	// A macro defined inside an If body leaks to a later top-level
	// sibling, matching the original's single shared macro list — see
	// Open Question decision 4.
	innerMacro := macroNode("v", "rax", 1)
	ifTok := &Node{Kind: KindIf, Cond: Condition{Arg1: "rax", Op: CmpE, Arg2: "0"}, Children: []*Node{innerMacro}}
	laterCmd := cmdNode("mov", "v", "1", 0)

	var known []Macro
	DesugarMacros([]*Node{ifTok, laterCmd}, &known)

	assert.Equal(t, "rax", laterCmd.Arg1)
}

func TestDesugarMacrosAppliesToWhileCondition(t *testing.T) {
	macroDef := macroNode("lim", "10", 0)
	whileTok := &Node{Kind: KindWhile, Cond: Condition{Arg1: "rax", Op: CmpL, Arg2: "lim"}}

	var known []Macro
	DesugarMacros([]*Node{macroDef, whileTok}, &known)

	assert.Equal(t, "10", whileTok.Cond.Arg2)
}
