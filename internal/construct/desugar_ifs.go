package construct

// DesugarIfs rewrites every If node's children in place, recursing
// into children first (mirrors apply_ifs). An If becomes:
//
//	cmp arg1, arg2
//	j<inverse-cmp> endif<n>
//	... original body ...
//	endif<n>:
func DesugarIfs(ctx *Context, tokens []*Node) error {
	for _, tok := range tokens {
		if err := DesugarIfs(ctx, tok.Children); err != nil {
			return err
		}
		if tok.Kind != KindIf {
			continue
		}

		end := ctx.nextIfTag()
		body := tok.Children
		tok.Children = nil
		tok.Children = append(tok.Children, cmdNode("cmp", tok.Cond.Arg1, tok.Cond.Arg2, tok.Indentation))
		tok.Children = append(tok.Children, cmdNode("j"+tok.Cond.Op.Inverse().String(), end, "", tok.Indentation))
		tok.Children = append(tok.Children, body...)
		tok.Children = append(tok.Children, tagNode(end, tok.Indentation))
	}
	return nil
}
