package construct

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeReassertsDepth(t *testing.T) {
	child := cmdNode("inc", "rax", "", 99)
	parent := &Node{Kind: KindIf, Indentation: 5, Children: []*Node{child}}
	Normalize([]*Node{parent})

	assert.Equal(t, 0, parent.Indentation)
	assert.Equal(t, 1, child.Indentation)
}

func TestLinearizeFlattensStructuralNodes(t *testing.T) {
	innerCmd := cmdNode("inc", "rax", "", 2)
	ifTok := &Node{Kind: KindIf, Children: []*Node{innerCmd}}
	outerCmd := cmdNode("nop", "", "", 0)

	flat := Linearize([]*Node{ifTok, outerCmd})
	assert.Equal(t, []*Node{innerCmd, outerCmd}, flat)
}

func TestLinearizeRecursesThroughNestedStructuralNodes(t *testing.T) {
	leaf := cmdNode("ret", "", "", 0)
	inner := &Node{Kind: KindWhile, Children: []*Node{leaf}}
	outer := &Node{Kind: KindFunction, Children: []*Node{inner}}

	flat := Linearize([]*Node{outer})
	assert.Equal(t, []*Node{leaf}, flat)
}

func TestEmitRendersEachKind(t *testing.T) {
	tokens := []*Node{
		{Kind: KindSection, Section: ".text"},
		tagNode("_start", 0),
		cmdNode("mov", "rax", "60", 0),
		cmdNode("ret", "", "", 0),
		{Kind: KindData, DataLine: "msg db \"hi\", 0"},
	}
	got := Emit(tokens)
	want := "section .text\n_start:\nmov rax, 60\nret\nmsg db \"hi\", 0\n"
	assert.Equal(t, want, got)
}

func TestEmitSkipsStructuralAndUnresolvedKinds(t *testing.T) {
	tokens := []*Node{
		{Kind: KindIf},
		{Kind: KindWhile},
		{Kind: KindFunction},
		{Kind: KindMacro},
		{Kind: KindFuncall},
		{Kind: KindSyscall},
		cmdNode("ret", "", "", 0),
	}
	assert.Equal(t, "ret\n", Emit(tokens))
}
