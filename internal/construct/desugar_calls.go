package construct

import (
	"strconv"

	"github.com/samber/lo"
)

// marshalArgs implements the call-site register marshalling algorithm
// (ported from push_args): given the argument expressions of a
// `call`/`syscall` in source order, produce the sequence of
// push/pop/mov instructions that gets them into rdi, rsi, rdx, rcx,
// r8, r9 (arguments 6 and beyond go on the stack) without clobbering
// a register's original value before every read of it has happened.
//
// The three phases, in order:
//
//  1. Stack arguments (index >= 6) are pushed last-to-first, so they
//     land on the stack in call order for a callee that pops them
//     left to right.
//  2. Any of the first six argument registers whose CURRENT contents
//     are needed as a later argument value get pushed — in an order
//     chosen so popping them back (phase 3) restores each one at the
//     exact step that first reads it, before anything overwrites it.
//  3. Each of the first six arguments is materialized into its target
//     register: from the stack (pop) if its original register's value
//     had to be preserved, by copying from wherever that value
//     currently lives if it was moved by an earlier step in this same
//     phase, or by evaluating the argument expression directly if it
//     isn't a register read at all. A target register already holding
//     its own argument value requires no instruction at all.
func marshalArgs(args []string, bw Bitwidth) ([]*Node, error) {
	var out []*Node
	n := len(args)

	if n > 6 {
		pushes := lo.Map(lo.Reverse(append([]string(nil), args[6:]...)), func(a string, _ int) *Node {
			return cmdNode("push", a, "", 0)
		})
		out = append(out, pushes...)
	}

	regArgsSize := n
	if regArgsSize > 6 {
		regArgsSize = 6
	}

	// firstRead[reg] is the lowest argument index that reads reg's
	// current value as an operand; 6 means "never read".
	var firstRead [7]int
	for i := range firstRead {
		firstRead[i] = 6
	}
	for i := 0; i < regArgsSize; i++ {
		reg := RegisterIndex(args[i])
		if i < firstRead[reg] {
			firstRead[reg] = i
		}
	}

	// readOrder[fr] names the register (if any) that is both read for
	// the first time at argument index fr and itself due to be
	// overwritten before fr (because its home slot comes before fr) —
	// exactly the registers that must be saved before materialization
	// begins.
	var readOrder [6]int
	for i := range readOrder {
		readOrder[i] = 6
	}
	for fr := 0; fr < regArgsSize; fr++ {
		for reg := 0; reg < regArgsSize; reg++ {
			if fr == firstRead[reg] && firstRead[reg] > reg {
				readOrder[fr] = reg
			}
		}
	}

	// Push in reverse of read order, so popping in phase 3 (which
	// proceeds in argument-index order) restores each saved register
	// exactly when its value is first needed.
	for fr := 5; fr >= 0; fr-- {
		if readOrder[fr] == 6 {
			continue
		}
		reg, err := RegisterForIndex(readOrder[fr], bw)
		if err != nil {
			return nil, err
		}
		out = append(out, cmdNode("push", reg, "", 0))
	}

	// currentValPlace[reg] tracks where reg's original value lives
	// right now: itself, another register it's been moved into, or 6
	// meaning "on the stack" (pushed in the previous phase).
	var currentValPlace [6]int
	for i := range currentValPlace {
		currentValPlace[i] = i
	}
	for reg := 0; reg < regArgsSize; reg++ {
		if firstRead[reg] > reg {
			currentValPlace[reg] = 6
		}
	}

	for i := 0; i < regArgsSize; i++ {
		wantedReg := RegisterIndex(args[i])
		dst, err := RegisterForIndex(i, bw)
		if err != nil {
			return nil, err
		}

		if wantedReg == 6 {
			out = append(out, cmdNode("mov", dst, args[i], 0))
			continue
		}

		switch {
		case currentValPlace[wantedReg] == 6:
			out = append(out, cmdNode("pop", dst, "", 0))
			currentValPlace[wantedReg] = i
		case i != currentValPlace[wantedReg]:
			src, err := RegisterForIndex(currentValPlace[wantedReg], bw)
			if err != nil {
				return nil, err
			}
			out = append(out, cmdNode("mov", dst, src, 0))
			if i < currentValPlace[wantedReg] {
				currentValPlace[wantedReg] = i
			}
		default:
			// already in place: elided, matching the original's
			// "nop" instruction that is built and then discarded.
		}
	}

	return out, nil
}

// DesugarFuncalls replaces every Funcall node, wherever it occurs in
// the tree, with the argument-marshalling instructions followed by a
// `call` command. Children are processed first so a funcall nested
// inside an If/While/Function body is desugared before its ancestor's
// list is rebuilt. Rather than the original's insert-then-rewind-
// iterator (`it = tokens.insert(it+1, ...) - 1`), which mutates the
// very slice being iterated, each level's replacement nodes are
// collected into a fresh output slice and the input is discarded once
// the walk completes — see SPEC_FULL.md §9's "tree mutation during
// iteration" note.
func DesugarFuncalls(ctx *Context, tokens []*Node) ([]*Node, error) {
	out := make([]*Node, 0, len(tokens))
	for _, tok := range tokens {
		children, err := DesugarFuncalls(ctx, tok.Children)
		if err != nil {
			return nil, err
		}
		tok.Children = children

		if tok.Kind != KindFuncall {
			out = append(out, tok)
			continue
		}

		argTokens, err := marshalArgs(tok.Args, ctx.Bitwidth)
		if err != nil {
			return nil, err
		}
		for _, a := range argTokens {
			a.Indentation = tok.Indentation
		}
		out = append(out, argTokens...)
		out = append(out, cmdNode("call", tok.FuncName, "", tok.Indentation))
	}
	return out, nil
}

// DesugarSyscalls replaces every Syscall node with its argument
// marshalling followed by `mov rax, <number>` and `syscall`, using the
// same children-first, rebuild-and-append approach as DesugarFuncalls.
func DesugarSyscalls(ctx *Context, tokens []*Node) ([]*Node, error) {
	out := make([]*Node, 0, len(tokens))
	for _, tok := range tokens {
		children, err := DesugarSyscalls(ctx, tok.Children)
		if err != nil {
			return nil, err
		}
		tok.Children = children

		if tok.Kind != KindSyscall {
			out = append(out, tok)
			continue
		}

		argTokens, err := marshalArgs(tok.Args, ctx.Bitwidth)
		if err != nil {
			return nil, err
		}
		for _, a := range argTokens {
			a.Indentation = tok.Indentation
		}
		out = append(out, argTokens...)
		out = append(out, cmdNode("mov", "rax", strconv.FormatUint(uint64(tok.SyscallNumber), 10), tok.Indentation))
		out = append(out, cmdNode("syscall", "", "", tok.Indentation))
	}
	return out, nil
}
