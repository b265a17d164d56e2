package construct

import "fmt"

// Kind discriminates the ten token variants of the Construct language.
//
// The original compiler modeled a token as a struct holding one
// pointer per payload kind plus this discriminant, torn down through a
// ten-case destructor switch guarded by nil checks on every field.
// There is no destructor to port in Go — the garbage collector already
// reclaims an unreachable tree — so the fix is purely representational:
// Node below is a flat struct with a Kind tag and value fields that sit
// at their zero value whenever they are not meaningful for that Kind,
// the same shape the desugar passes build their own AST/IR nodes with
// (a Kind enum plus a handful of reused fields, never one struct per
// variant).
type Kind int

const (
	KindSection Kind = iota
	KindTag
	KindWhile
	KindIf
	KindFunction
	KindCmd
	KindMacro
	KindFuncall
	KindSyscall
	KindData
)

func (k Kind) String() string {
	switch k {
	case KindSection:
		return "Section"
	case KindTag:
		return "Tag"
	case KindWhile:
		return "While"
	case KindIf:
		return "If"
	case KindFunction:
		return "Function"
	case KindCmd:
		return "Cmd"
	case KindMacro:
		return "Macro"
	case KindFuncall:
		return "Funcall"
	case KindSyscall:
		return "Syscall"
	case KindData:
		return "Data"
	}
	panic(fmt.Sprintf("ICE: unhandled Kind %d in Kind.String", int(k)))
}

// Comparison is the closed set of condition operators usable in `if`
// and `while` headers.
type Comparison int

const (
	CmpE Comparison = iota
	CmpNE
	CmpL
	CmpG
	CmpLE
	CmpGE
)

func (c Comparison) String() string {
	switch c {
	case CmpE:
		return "e"
	case CmpNE:
		return "ne"
	case CmpL:
		return "l"
	case CmpG:
		return "g"
	case CmpLE:
		return "le"
	case CmpGE:
		return "ge"
	}
	panic(fmt.Sprintf("ICE: unhandled Comparison %d in Comparison.String", int(c)))
}

// Inverse returns the logically negated comparison, used to turn a
// branch-if-true condition into the branch-past-the-block jcc the
// desugar passes emit. Inverse(Inverse(op)) == op for all six ops.
func (c Comparison) Inverse() Comparison {
	switch c {
	case CmpE:
		return CmpNE
	case CmpNE:
		return CmpE
	case CmpL:
		return CmpGE
	case CmpG:
		return CmpLE
	case CmpLE:
		return CmpG
	case CmpGE:
		return CmpL
	}
	panic(fmt.Sprintf("ICE: unhandled Comparison %d in Comparison.Inverse", int(c)))
}

// ParseComparison maps the textual operator keywords used in `if`/
// `while` headers to a Comparison.
func ParseComparison(s string) (Comparison, error) {
	switch s {
	case "e":
		return CmpE, nil
	case "ne":
		return CmpNE, nil
	case "l":
		return CmpL, nil
	case "g":
		return CmpG, nil
	case "le":
		return CmpLE, nil
	case "ge":
		return CmpGE, nil
	}
	return 0, newError(SyntaxError, "invalid comparison: %s", s)
}

// Bitwidth is one of the four operand widths a function parameter (or
// the whole program's default) can take.
type Bitwidth int

const (
	Bit8  Bitwidth = 8
	Bit16 Bitwidth = 16
	Bit32 Bitwidth = 32
	Bit64 Bitwidth = 64
)

// ParseBitwidth maps the NASM-style size directives used in function
// parameter lists to a Bitwidth.
func ParseBitwidth(s string) (Bitwidth, error) {
	switch s {
	case "db":
		return Bit8, nil
	case "dw":
		return Bit16, nil
	case "dd":
		return Bit32, nil
	case "dq":
		return Bit64, nil
	}
	return 0, newError(SyntaxError, "invalid function argument length: %s", s)
}

// Condition is the (arg1, op, arg2) triple carried by `if` and `while`
// headers.
type Condition struct {
	Arg1 string
	Op   Comparison
	Arg2 string
}

// Param is one (name, bitwidth) entry in a function's parameter list.
type Param struct {
	Name  string
	Width Bitwidth
}

// Node is a single token in the Construct tree. Indentation is the
// tab-count of the source line the token was parsed from; tokens
// fabricated by the desugar passes inherit their parent's indentation
// until the final normalization pass (Normalize) re-asserts it.
// Children is meaningful only for While, If and Function at the
// source level; the desugar passes rewrite the Children of nodes of
// those same three kinds and give no other kind any children.
//
// Only the fields relevant to Kind are ever populated; the rest sit at
// their zero value.
type Node struct {
	Kind        Kind
	Indentation int
	Children    []*Node

	Section string // Section

	Tag string // Tag

	Cond Condition // While, If

	FuncName string  // Function, Funcall
	Params   []Param // Function

	Command string // Cmd
	Arg1    string // Cmd
	Arg2    string // Cmd

	MacroName  string // Macro
	MacroValue string // Macro

	Args []string // Funcall, Syscall

	SyscallName   string // Syscall
	SyscallNumber uint16 // Syscall

	DataLine string // Data
}

// argRegisters is the System V AMD64 integer-argument register table
// indexed by [width tier][register number 0-5], transcribed from
// reg_to_str. Register number 6 is a sentinel meaning "not one of the
// six argument registers" and has no entry here.
var argRegisters = map[Bitwidth][6]string{
	Bit8:  {"dil", "sil", "dl", "cl", "r8b", "r9b"},
	Bit16: {"di", "si", "dx", "cx", "r8w", "r9w"},
	Bit32: {"edi", "esi", "edx", "ecx", "r8d", "r9d"},
	Bit64: {"rdi", "rsi", "rdx", "rcx", "r8", "r9"},
}

// registerNumber is the inverse of argRegisters: it maps any spelling
// of rdi/rsi/rdx/rcx/r8/r9 at any width back to its 0-5 argument
// index, ported from str_to_reg. Anything else — including registers
// outside the six-argument set — is "not a known argument register"
// and reports 6, the sentinel the original uses for the same purpose.
var registerNumber = map[string]int{
	"dil": 0, "di": 0, "edi": 0, "rdi": 0,
	"sil": 1, "si": 1, "esi": 1, "rsi": 1,
	"dl": 2, "dx": 2, "edx": 2, "rdx": 2,
	"cl": 3, "cx": 3, "ecx": 3, "rcx": 3,
	"r8b": 4, "r8w": 4, "r8d": 4, "r8": 4,
	"r9b": 5, "r9w": 5, "r9d": 5, "r9": 5,
}

// RegisterForIndex returns the register name for argument index (0-5)
// at the given width. index must be in [0,5]; InvalidArgument is
// raised otherwise, matching reg_to_str's behavior of having no
// mapping for any other call_num/bitwidth combination.
func RegisterForIndex(index int, w Bitwidth) (string, error) {
	regs, ok := argRegisters[w]
	if !ok || index < 0 || index > 5 {
		return "", newError(InvalidArgument, "invalid bitwidth or call_num: bitwidth=%d call_num=%d", int(w), index)
	}
	return regs[index], nil
}

// RegisterIndex returns the 0-5 argument-register index for name, or
// 6 if name does not name any of the six argument registers.
func RegisterIndex(name string) int {
	if idx, ok := registerNumber[name]; ok {
		return idx
	}
	return 6
}

func cmdNode(command, arg1, arg2 string, indentation int) *Node {
	return &Node{Kind: KindCmd, Command: command, Arg1: arg1, Arg2: arg2, Indentation: indentation}
}

func tagNode(name string, indentation int) *Node {
	return &Node{Kind: KindTag, Tag: name, Indentation: indentation}
}

func macroNode(name, value string, indentation int) *Node {
	return &Node{Kind: KindMacro, MacroName: name, MacroValue: value, Indentation: indentation}
}
