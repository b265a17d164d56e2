package construct

// Delinearize rebuilds the flat, indentation-tagged token list
// produced by ParseConstruct into a tree. A synthetic root Section
// node at indentation -1 stands in for "the top of the file" so the
// same push/pop loop handles the root level and every nested level
// uniformly.
//
// Algorithm (ported from delinearize_tokens): keep a stack of "current
// parent" nodes, starting with the synthetic root. For each token in
// source order, compare its indentation to the stack top's:
//   - if the token is no deeper than the current parent (delta <= 0),
//     pop the stack (parent depth - token depth + 1) times before
//     attaching it — this unwinds back out to the ancestor the token
//     actually nests under, however many levels that takes;
//   - attach the token as a child of whatever is now on top;
//   - if the token itself opens a new nesting level (While, If,
//     Function), push it as the new parent for subsequent tokens.
//
// The loop also enforces the hardening decision in DESIGN.md: a
// Function token encountered while a Function is already on the
// parent stack is a SyntaxError rather than silently mis-nested
// output.
func Delinearize(tokens []*Node) ([]*Node, error) {
	root := &Node{Kind: KindSection, Indentation: -1}
	stack := []*Node{root}

	inFunction := false
	funcDepth := -1

	for _, tok := range tokens {
		top := stack[len(stack)-1]
		delta := tok.Indentation - top.Indentation
		if delta <= 0 {
			pops := -delta + 1
			if pops > len(stack) {
				pops = len(stack)
			}
			stack = stack[:len(stack)-pops]
			if len(stack) == 0 {
				stack = []*Node{root}
			}
			if inFunction && len(stack)-1 <= funcDepth {
				inFunction = false
				funcDepth = -1
			}
			top = stack[len(stack)-1]
		}

		if tok.Kind == KindFunction && inFunction {
			return nil, newError(SyntaxError, "nested function definitions are not supported: %s", tok.FuncName)
		}

		top.Children = append(top.Children, tok)

		if tok.Kind == KindWhile || tok.Kind == KindIf || tok.Kind == KindFunction {
			stack = append(stack, tok)
			if tok.Kind == KindFunction {
				inFunction = true
				funcDepth = len(stack) - 2
			}
		}
	}

	return root.Children, nil
}
