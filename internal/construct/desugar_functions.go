package construct

// DesugarFunctions rewrites every top-level Function node in place.
// Unlike DesugarIfs/DesugarWhiles it does not recurse into nested
// bodies — the original apply_functions only ever walks the list it
// is handed, never a function's own Children — because Construct does
// not support nested function definitions; Delinearize already
// rejects those with a SyntaxError, so nothing here needs to look for
// them. A Function named "main" is retargeted to "_start" (System
// V/ELF's real entry point), and each declared parameter is bound to
// its call-order argument register via a synthetic macro definition
// so the macro pass can substitute the register name for the
// parameter name throughout the body:
//
//	<name>:
//	!param0 rdi
//	!param1 rsi
//	... original body ...
//	ret
func DesugarFunctions(ctx *Context, tokens []*Node) error {
	for _, tok := range tokens {
		if tok.Kind != KindFunction {
			continue
		}

		name := tok.FuncName
		if name == "main" {
			name = "_start"
		}

		body := tok.Children
		tok.Children = nil
		tok.Children = append(tok.Children, tagNode(name, tok.Indentation))
		for i, param := range tok.Params {
			reg, err := RegisterForIndex(i, ctx.Bitwidth)
			if err != nil {
				return err
			}
			tok.Children = append(tok.Children, macroNode(param.Name, reg, tok.Indentation))
		}
		tok.Children = append(tok.Children, body...)
		tok.Children = append(tok.Children, cmdNode("ret", "", "", tok.Indentation))
	}
	return nil
}
