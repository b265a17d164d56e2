package construct

import "strings"

// Normalize re-asserts indentation = parent.indentation + 1 on every
// node in a single pre-order walk, overwriting whatever the desugar
// passes left on nodes they built or re-parented (ported from
// set_indentation). Root-level nodes are treated as children of the
// synthetic indentation -1 root, so they end up at indentation 0.
func Normalize(tokens []*Node) {
	normalize(tokens, -1)
}

func normalize(tokens []*Node, parentIndentation int) {
	for _, tok := range tokens {
		tok.Indentation = parentIndentation + 1
		normalize(tok.Children, tok.Indentation)
	}
}

// Linearize flattens the tree: every If/While/Function node is
// replaced in its sibling list by its own children, recursively,
// until no structural node remains at any level. The result is the
// flat token sequence Emit renders.
func Linearize(tokens []*Node) []*Node {
	out := make([]*Node, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == KindIf || tok.Kind == KindWhile || tok.Kind == KindFunction {
			out = append(out, Linearize(tok.Children)...)
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Emit renders a flat, linearized token sequence as NASM source text.
// Macro tokens stay in the tree after the macro pass and reach this
// point; they are dropped here. Funcall, Syscall, If, While and
// Function tokens should not survive linearization; encountering one
// here means an earlier pass left the tree in an inconsistent state.
// All six kinds are silently skipped rather than rendered, mirroring
// tokens_to_nasm's own skip list.
func Emit(tokens []*Node) string {
	var b strings.Builder
	for _, tok := range tokens {
		switch tok.Kind {
		case KindWhile, KindIf, KindFunction, KindMacro, KindFuncall, KindSyscall:
			continue
		case KindSection:
			b.WriteString("section ")
			b.WriteString(tok.Section)
		case KindTag:
			b.WriteString(tok.Tag)
			b.WriteString(":")
		case KindCmd:
			b.WriteString(tok.Command)
			if tok.Arg1 != "" {
				b.WriteString(" ")
				b.WriteString(tok.Arg1)
			}
			if tok.Arg2 != "" {
				b.WriteString(", ")
				b.WriteString(tok.Arg2)
			}
		case KindData:
			b.WriteString(tok.DataLine)
		}
		b.WriteString("\n")
	}
	return b.String()
}
