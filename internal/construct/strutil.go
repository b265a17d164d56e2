package construct

import "strings"

// split breaks input into fields separated by runs of any character
// in delims, dropping empty fields produced by adjacent delimiters —
// e.g. split("a (b,c)", " (),") yields ["a", "b", "c"]. delims is a
// character set, not a substring to match literally; this mirrors the
// original's split(input, delims), which is used throughout the line
// grammar precisely because a single call can split on several
// punctuation characters at once.
func split(input, delims string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// splitFirst splits input into its first delimiter-separated field and
// everything after the delimiter run that follows it, undivided —
// e.g. splitFirst("mov rax, 1", " ") yields ["mov", "rax, 1"]. Used by
// parse_cmd to separate the command mnemonic from its raw argument
// text without also splitting the argument text itself.
func splitFirst(input, delims string) []string {
	isDelim := func(r rune) bool { return strings.ContainsRune(delims, r) }
	i := 0
	for i < len(input) && isDelim(rune(input[i])) {
		i++
	}
	start := i
	for i < len(input) && !isDelim(rune(input[i])) {
		i++
	}
	first := input[start:i]
	if first == "" {
		return nil
	}
	rest := input[i:]
	rest = strings.TrimLeft(rest, delims)
	if rest == "" {
		return []string{first}
	}
	return []string{first, rest}
}

// join concatenates parts with sep between them.
func join(parts []string, sep string) string {
	return strings.Join(parts, sep)
}

// removeDuplicate collapses consecutive runs of c into a single c,
// e.g. removeDuplicate("a   b", ' ') == "a b". It does not trim
// leading or trailing occurrences of c.
func removeDuplicate(input string, c byte) string {
	var b strings.Builder
	for i := 0; i < len(input); i++ {
		if input[i] == c && i > 0 && input[i-1] == c {
			continue
		}
		b.WriteByte(input[i])
	}
	return b.String()
}

// stripLeft removes any leading characters that are in delims.
func stripLeft(input, delims string) string {
	return strings.TrimLeft(input, delims)
}

// stripRight removes any trailing characters that are in delims.
func stripRight(input, delims string) string {
	return strings.TrimRight(input, delims)
}

// strip removes any leading or trailing characters that are in delims.
func strip(input, delims string) string {
	return strings.Trim(input, delims)
}

// countLeadingTabs returns the number of leading tab characters in s,
// used by parse_construct to derive a line's indentation depth.
func countLeadingTabs(s string) int {
	n := 0
	for n < len(s) && s[n] == '\t' {
		n++
	}
	return n
}

// collapseLine removes every tab and collapses runs of consecutive
// spaces to one, the same canonicalization parse_line applies to a
// raw source line before classifying and parsing it.
func collapseLine(line string) string {
	var b strings.Builder
	caughtSpace := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		isSpace := c == ' '
		if c == '\t' || (isSpace && caughtSpace) {
			continue
		}
		b.WriteByte(c)
		caughtSpace = isSpace
	}
	return b.String()
}
