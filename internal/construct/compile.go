package construct

import (
	"fmt"
	"io"
)

// Options configures a single Compile call.
type Options struct {
	// Debug, when set, makes Compile write one progress line to Trace
	// after each pipeline stage.
	Debug bool
	Trace io.Writer
}

// Compile translates Construct source text into NASM assembly text,
// running the full pipeline in its fixed order (ported from main's
// driver in construct.cpp): lex, prepend the synthetic `global
// _start` entry point, delinearize, desugar functions/ifs/whiles/
// funcalls/syscalls/macros in that order, normalize indentation,
// linearize, emit.
//
// Compile allocates a fresh *Context per call, so concurrent calls
// from multiple goroutines never share label counters or bitwidth
// state — see SPEC_FULL.md §5.
func Compile(src string, opts Options) (string, error) {
	ctx := NewContext()

	tokens, err := ParseConstruct(src)
	if err != nil {
		return "", err
	}
	opts.trace("lex: %d tokens", len(tokens))

	tokens = append([]*Node{cmdNode("global _start", "", "", 0)}, tokens...)

	tree, err := Delinearize(tokens)
	if err != nil {
		return "", err
	}
	opts.trace("delinearize: %d top-level tokens", len(tree))

	if err := DesugarFunctions(ctx, tree); err != nil {
		return "", err
	}
	opts.trace("desugar functions")

	if err := DesugarIfs(ctx, tree); err != nil {
		return "", err
	}
	opts.trace("desugar ifs")

	if err := DesugarWhiles(ctx, tree); err != nil {
		return "", err
	}
	opts.trace("desugar whiles")

	tree, err = DesugarFuncalls(ctx, tree)
	if err != nil {
		return "", err
	}
	opts.trace("desugar funcalls: %d top-level tokens", len(tree))

	tree, err = DesugarSyscalls(ctx, tree)
	if err != nil {
		return "", err
	}
	opts.trace("desugar syscalls: %d top-level tokens", len(tree))

	var macros []Macro
	DesugarMacros(tree, &macros)
	opts.trace("desugar macros: %d macros applied", len(macros))

	Normalize(tree)

	flat := Linearize(tree)
	opts.trace("linearize: %d flat tokens", len(flat))

	output := Emit(flat)
	opts.trace("emit: %d bytes", len(output))

	return output, nil
}

func (o Options) trace(format string, args ...interface{}) {
	if !o.Debug || o.Trace == nil {
		return
	}
	fmt.Fprintf(o.Trace, "debug: "+format+"\n", args...)
}
