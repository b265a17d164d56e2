package construct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesugarIfsExpandsBody(t *testing.T) {
	body := cmdNode("inc", "rax", "", 1)
	ifTok := &Node{
		Kind:        KindIf,
		Indentation: 0,
		Cond:        Condition{Arg1: "rax", Op: CmpE, Arg2: "0"},
		Children:    []*Node{body},
	}

	ctx := NewContext()
	require.NoError(t, DesugarIfs(ctx, []*Node{ifTok}))

	require.Len(t, ifTok.Children, 4)
	assert.Equal(t, "cmp", ifTok.Children[0].Command)
	assert.Equal(t, "jne", ifTok.Children[1].Command)
	assert.Equal(t, "endif0", ifTok.Children[1].Arg1)
	assert.Same(t, body, ifTok.Children[2])
	assert.Equal(t, KindTag, ifTok.Children[3].Kind)
	assert.Equal(t, "endif0", ifTok.Children[3].Tag)
}

func TestDesugarIfsNestedIncrementsCounterInnerFirst(t *testing.T) {
	inner := &Node{Kind: KindIf, Indentation: 1, Cond: Condition{Arg1: "rbx", Op: CmpG, Arg2: "1"}}
	outer := &Node{
		Kind:        KindIf,
		Indentation: 0,
		Cond:        Condition{Arg1: "rax", Op: CmpE, Arg2: "0"},
		Children:    []*Node{inner},
	}

	ctx := NewContext()
	require.NoError(t, DesugarIfs(ctx, []*Node{outer}))

	assert.Equal(t, "endif1", outer.Children[len(outer.Children)-1].Tag)
	assert.Equal(t, 2, ctx.IfCounter)
}
