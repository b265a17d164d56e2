package construct

import "strings"

const alphaAndBang = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ!"

// ParseConstruct splits code into its physical lines and parses each
// non-blank one into a Node, in source order, with Indentation set to
// its leading-tab count. A line is blank (and skipped entirely,
// without affecting indentation-jump tracking) when it contains none
// of a letter or `!`, matching the original's "does this line contain
// any alphabetic character" guard — this also quietly skips
// whitespace-only and punctuation-only lines.
//
// Errors are wrapped with the 0-based index of the physical line
// within code (counting skipped blank lines) and the raw line text,
// the same context the original attaches at the parse_construct call
// site.
func ParseConstruct(code string) ([]*Node, error) {
	lines := strings.Split(code, "\n")
	var tokens []*Node
	inData := false

	for i, raw := range lines {
		if !containsAny(raw, alphaAndBang) {
			continue
		}

		node, err := parseLine(raw, inData)
		if err == nil {
			node.Indentation = countLeadingTabs(raw)
			if len(tokens) > 0 && node.Indentation-tokens[len(tokens)-1].Indentation > 1 {
				err = newError(IndentationJump,
					"extra indentation: indentation jumped from %d to %d",
					tokens[len(tokens)-1].Indentation, node.Indentation)
			}
		}
		if err != nil {
			return nil, wrapLineError(err, i, raw)
		}

		if node.Kind == KindSection && (node.Section == ".data" || node.Section == ".bss") {
			inData = true
		} else if node.Kind == KindSection && node.Section == ".text" {
			inData = false
		}

		tokens = append(tokens, node)
	}
	return tokens, nil
}

func containsAny(s, set string) bool {
	return strings.IndexAny(s, set) >= 0
}

// classify determines a canonicalized line's Kind. Order matters: a
// bare `name:` tag must be checked before the while/if/function/macro
// keyword checks, and the call/syscall funcall shapes must be checked
// before falling through to DATA/CMD. This mirrors get_token_type's
// fixed if-chain exactly.
func classify(line string, inData bool) Kind {
	fields := split(line, " ")
	first := ""
	if len(fields) > 0 {
		first = fields[0]
	}

	switch {
	case first == "section":
		return KindSection
	case !strings.Contains(line, " ") && strings.HasSuffix(line, ":"):
		return KindTag
	case first == "while":
		return KindWhile
	case first == "if":
		return KindIf
	case first == "function":
		return KindFunction
	case strings.HasPrefix(line, "!"):
		return KindMacro
	case first == "call" && strings.Contains(line, "(") && strings.Contains(line, ")"):
		return KindFuncall
	case first == "syscall" && strings.Contains(line, "(") && strings.Contains(line, ")"):
		return KindSyscall
	case inData:
		return KindData
	default:
		return KindCmd
	}
}

// parseLine canonicalizes raw (dropping tabs, collapsing runs of
// spaces), classifies the result, and dispatches to the matching
// per-kind parser.
func parseLine(raw string, inData bool) (*Node, error) {
	line := collapseLine(raw)
	kind := classify(line, inData)

	switch kind {
	case KindSection:
		return parseSection(line)
	case KindTag:
		return parseTagLine(line)
	case KindWhile:
		return parseWhile(line)
	case KindIf:
		return parseIf(line)
	case KindFunction:
		return parseFunction(line)
	case KindMacro:
		return parseMacroLine(line)
	case KindFuncall:
		return parseFuncall(line)
	case KindSyscall:
		return parseSyscall(line)
	case KindData:
		return parseData(line)
	case KindCmd:
		return parseCmd(line)
	}
	panic("ICE: unhandled Kind in parseLine")
}

// parseSection parses `section name`.
func parseSection(line string) (*Node, error) {
	fields := split(line, " ")
	if len(fields) < 2 {
		return nil, newError(SyntaxError, "invalid syntax")
	}
	return &Node{Kind: KindSection, Section: fields[1]}, nil
}

// parseTagLine parses `name:`.
func parseTagLine(line string) (*Node, error) {
	return tagNode(line[:len(line)-1], 0), nil
}

// parseWhile parses `while arg1 comp arg2:`.
func parseWhile(line string) (*Node, error) {
	fields := split(line, " :")
	if len(fields) < 4 {
		return nil, newError(SyntaxError, "invalid syntax")
	}
	op, err := ParseComparison(fields[2])
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindWhile, Cond: Condition{Arg1: fields[1], Op: op, Arg2: fields[3]}}, nil
}

// parseIf parses `if arg1 comp arg2:`.
func parseIf(line string) (*Node, error) {
	fields := split(line, " :")
	if len(fields) < 4 {
		return nil, newError(SyntaxError, "invalid syntax")
	}
	op, err := ParseComparison(fields[2])
	if err != nil {
		return nil, err
	}
	return &Node{Kind: KindIf, Cond: Condition{Arg1: fields[1], Op: op, Arg2: fields[3]}}, nil
}

// parseFunction parses `function name(arg1: len1, arg2: len2, ...):`,
// the parameter list being optional (`function name():`). Unlike the
// original's remove_duplicate-based collapsing, every parameter name
// and width is fully trimmed of surrounding whitespace — see
// DESIGN.md's "separator-adjacent whitespace" note.
func parseFunction(line string) (*Node, error) {
	parts := split(line, "()")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, newError(SyntaxError, "invalid syntax")
	}
	if strip(parts[len(parts)-1], " ") != ":" {
		return nil, newError(SyntaxError, "invalid syntax")
	}

	header := split(parts[0], " ")
	if len(header) != 2 || header[0] != "function" {
		return nil, newError(SyntaxError, "invalid syntax")
	}
	node := &Node{Kind: KindFunction, FuncName: header[1]}

	if len(parts) == 3 {
		for _, entry := range split(parts[1], ",") {
			argLen := split(entry, ":")
			if len(argLen) != 2 {
				return nil, newError(SyntaxError, "invalid syntax")
			}
			width, err := ParseBitwidth(strip(argLen[1], " "))
			if err != nil {
				return nil, err
			}
			node.Params = append(node.Params, Param{Name: strip(argLen[0], " "), Width: width})
		}
	}
	return node, nil
}

// parseCmd parses `op`, `op arg1`, or `op arg1, arg2`.
func parseCmd(line string) (*Node, error) {
	fields := split(line, ",")
	if len(fields) > 2 {
		return nil, newError(SyntaxError, "extra commas: the line has %d commas", len(fields)-1)
	}
	if strings.HasSuffix(line, ",") {
		return nil, newError(SyntaxError, "second argument does not exist")
	}

	arg2Exists := false
	arg2 := ""
	if len(fields) == 2 {
		arg2Exists = true
		arg2 = strip(fields[1], " ")
	}

	head := splitFirst(fields[0], " ")
	if len(head) == 0 {
		return nil, newError(SyntaxError, "command and first argument do not exist")
	}

	node := &Node{Kind: KindCmd, Command: head[0], Arg2: arg2}
	if len(head) == 2 {
		node.Arg1 = strip(head[1], " ")
	} else if arg2Exists {
		return nil, newError(SyntaxError, "first argument does not exist")
	}
	return node, nil
}

// parseMacroLine parses `!name value`.
func parseMacroLine(line string) (*Node, error) {
	fields := split(line, " !")
	if len(fields) < 2 {
		return nil, newError(SyntaxError, "invalid syntax")
	}
	return macroNode(fields[0], fields[1], 0), nil
}

// parseFuncall parses `call name(arg1, arg2, ...)`.
func parseFuncall(line string) (*Node, error) {
	fields := split(line, " (),")
	if len(fields) < 2 {
		return nil, newError(SyntaxError, "invalid syntax")
	}
	return &Node{Kind: KindFuncall, FuncName: fields[1], Args: append([]string(nil), fields[2:]...)}, nil
}

// parseSyscall parses `syscall name(arg1, arg2, ...)`.
func parseSyscall(line string) (*Node, error) {
	fields := split(line, " (),")
	if len(fields) < 2 {
		return nil, newError(SyntaxError, "invalid syntax")
	}
	number, err := SyscallNumber(fields[1])
	if err != nil {
		return nil, err
	}
	return &Node{
		Kind:          KindSyscall,
		SyscallName:   fields[1],
		SyscallNumber: number,
		Args:          append([]string(nil), fields[2:]...),
	}, nil
}

// parseData takes the canonicalized line verbatim: data-section lines
// are opaque payload to this compiler, never interpreted, so nothing
// is extracted from them beyond the text itself.
func parseData(line string) (*Node, error) {
	return &Node{Kind: KindData, DataLine: line}, nil
}
