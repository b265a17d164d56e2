package construct

// DesugarWhiles rewrites every While node's children in place,
// recursing first (apply_whiles recurses into (*it)->tokens before
// acting on the node itself, so a while nested inside a while gets
// its own start/end tags assigned before the outer one). A While
// becomes:
//
//	startwhile<n>:
//	cmp arg1, arg2
//	j<inverse-cmp> endwhile<n>
//	... original body ...
//	jmp startwhile<n>
//	endwhile<n>:
//
// The node's Kind stays KindWhile; Linearize later splices its
// Children into the surrounding list and discards the wrapper.
func DesugarWhiles(ctx *Context, tokens []*Node) error {
	for _, tok := range tokens {
		if err := DesugarWhiles(ctx, tok.Children); err != nil {
			return err
		}
		if tok.Kind != KindWhile {
			continue
		}

		start, end := ctx.nextWhileTags()
		body := tok.Children
		tok.Children = nil
		tok.Children = append(tok.Children, tagNode(start, tok.Indentation))
		tok.Children = append(tok.Children, cmdNode("cmp", tok.Cond.Arg1, tok.Cond.Arg2, tok.Indentation))
		tok.Children = append(tok.Children, cmdNode("j"+tok.Cond.Op.Inverse().String(), end, "", tok.Indentation))
		tok.Children = append(tok.Children, body...)
		tok.Children = append(tok.Children, cmdNode("jmp", start, "", tok.Indentation))
		tok.Children = append(tok.Children, tagNode(end, tok.Indentation))
	}
	return nil
}
