package prompt

import (
	"strconv"
	"strings"
)

// ColorCode is an ANSI SGR escape sequence.
type ColorCode string

// Escape sequences used around user input.
const (
	FgGreen ColorCode = "\x1b[32m"
	FgEnd   ColorCode = "\x1b[39m"
)

// Esc builds an SGR sequence from parameter codes, e.g. Esc(32) == FgGreen.
func Esc(codes ...int) ColorCode {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = strconv.Itoa(c)
	}
	return ColorCode("\x1b[" + strings.Join(parts, ";") + "m")
}
