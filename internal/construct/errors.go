package construct

import "fmt"

// ErrorKind classifies the fatal conditions the compiler can report.
// The first error of any kind aborts the compilation; there is no
// recovery and no partial output.
type ErrorKind int

const (
	FlagError ErrorKind = iota
	SyntaxError
	IndentationJump
	UnknownSyscall
	InvalidArgument
	IOError
)

func (k ErrorKind) String() string {
	switch k {
	case FlagError:
		return "FlagError"
	case SyntaxError:
		return "SyntaxError"
	case IndentationJump:
		return "IndentationJump"
	case UnknownSyscall:
		return "UnknownSyscall"
	case InvalidArgument:
		return "InvalidArgument"
	case IOError:
		return "IOError"
	}
	panic(fmt.Sprintf("ICE: unhandled ErrorKind %d in ErrorKind.String", int(k)))
}

// CompileError is the single error type returned out of the pipeline.
// Line and Source are set only for errors raised while walking the
// source text line-by-line; Line is 0-based, matching the original
// compiler's use of a raw loop index rather than a 1-based line count.
type CompileError struct {
	Kind    ErrorKind
	Line    int
	HasLine bool
	Source  string
	Message string
}

func (e *CompileError) Error() string {
	if e.HasLine {
		return fmt.Sprintf("Line %d [%s]: %s", e.Line, e.Source, e.Message)
	}
	return e.Message
}

func newError(kind ErrorKind, format string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func newLineError(kind ErrorKind, line int, source string, format string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Line: line, HasLine: true, Source: source, Message: fmt.Sprintf(format, args...)}
}

// wrapLineError takes an error produced by a line-grammar parser and
// attaches "Line N [source]: " context, the same way the original
// wraps every parse_line failure at the call site.
func wrapLineError(err error, line int, source string) error {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*CompileError); ok {
		if ce.HasLine {
			return ce
		}
		return &CompileError{Kind: ce.Kind, Line: line, HasLine: true, Source: source, Message: ce.Message}
	}
	return &CompileError{Kind: SyntaxError, Line: line, HasLine: true, Source: source, Message: err.Error()}
}
