package construct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesugarWhilesExpandsBody(t *testing.T) {
	body := cmdNode("inc", "rax", "", 1)
	while := &Node{
		Kind:        KindWhile,
		Indentation: 0,
		Cond:        Condition{Arg1: "rax", Op: CmpL, Arg2: "10"},
		Children:    []*Node{body},
	}

	ctx := NewContext()
	require.NoError(t, DesugarWhiles(ctx, []*Node{while}))

	require.Len(t, while.Children, 6)
	assert.Equal(t, KindTag, while.Children[0].Kind)
	assert.Equal(t, "startwhile0", while.Children[0].Tag)
	assert.Equal(t, "cmp", while.Children[1].Command)
	assert.Equal(t, "rax", while.Children[1].Arg1)
	assert.Equal(t, "10", while.Children[1].Arg2)
	assert.Equal(t, "jge", while.Children[2].Command)
	assert.Equal(t, "endwhile0", while.Children[2].Arg1)
	assert.Same(t, body, while.Children[3])
	assert.Equal(t, "jmp", while.Children[4].Command)
	assert.Equal(t, "startwhile0", while.Children[4].Arg1)
	assert.Equal(t, KindTag, while.Children[5].Kind)
	assert.Equal(t, "endwhile0", while.Children[5].Tag)
}

func TestDesugarWhilesCountersIncrementAndNestFirst(t *testing.T) {
	inner := &Node{Kind: KindWhile, Indentation: 1, Cond: Condition{Arg1: "rbx", Op: CmpE, Arg2: "0"}}
	outer := &Node{
		Kind:        KindWhile,
		Indentation: 0,
		Cond:        Condition{Arg1: "rax", Op: CmpL, Arg2: "10"},
		Children:    []*Node{inner},
	}

	ctx := NewContext()
	require.NoError(t, DesugarWhiles(ctx, []*Node{outer}))

	// inner recurses first, so it claims while-tag index 0; outer gets 1.
	assert.Equal(t, "startwhile1", outer.Children[0].Tag)
	assert.Equal(t, 2, ctx.WhileCounter)
}
