package construct

import "strconv"

// Context carries the per-compilation state the desugar passes would
// otherwise keep in process-wide globals (if_amnt, while_amnt,
// bitwidth in the original). Threading it explicitly through every
// pass, rather than reaching for package-level counters, is what
// makes Compile safe to call concurrently on independent inputs from
// multiple goroutines — see SPEC_FULL.md §5.
type Context struct {
	IfCounter    int
	WhileCounter int
	Bitwidth     Bitwidth
}

// NewContext returns a Context with its counters at zero and the
// default 64-bit operand width, matching the original's static
// initialization (if_amnt = while_amnt = 0, bitwidth = BIT64).
func NewContext() *Context {
	return &Context{Bitwidth: Bit64}
}

func (c *Context) nextIfTag() string {
	n := c.IfCounter
	c.IfCounter++
	return "endif" + strconv.Itoa(n)
}

func (c *Context) nextWhileTags() (start, end string) {
	n := c.WhileCounter
	c.WhileCounter++
	return "startwhile" + strconv.Itoa(n), "endwhile" + strconv.Itoa(n)
}
