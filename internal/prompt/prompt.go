// Package prompt reads validated numbers and strings from an interactive
// user. What happens on bad input is decided by a Policy.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/zakazai/normtab/internal/types"
)

// Policy selects the reaction to invalid input.
type Policy int

const (
	// Reprompt prints the problem and asks again.
	Reprompt Policy = iota
	// Terminate returns an *InputError to the caller.
	Terminate
)

// ParsePolicy maps "reprompt" or "terminate" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reprompt", "":
		return Reprompt, nil
	case "terminate":
		return Terminate, nil
	default:
		return Reprompt, fmt.Errorf("unknown prompt policy %q", s)
	}
}

func (p Policy) String() string {
	if p == Terminate {
		return "terminate"
	}
	return "reprompt"
}

// InputError carries the message shown to the user.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string {
	return e.Msg
}

// ExitMessage is the line a binary prints before exiting on err. Input
// errors print their message as is, anything else gets an Error: prefix.
func ExitMessage(err error) string {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Msg
	}
	return "Error: " + err.Error()
}

// Min is a lower bound for numeric input. The zero value means no bound.
type Min struct {
	Value     float64
	Exclusive bool
	set       bool
}

// NoMin accepts any number.
var NoMin = Min{}

// AtLeast accepts numbers >= v.
func AtLeast(v float64) Min {
	return Min{Value: v, set: true}
}

// GreaterThan accepts numbers > v.
func GreaterThan(v float64) Min {
	return Min{Value: v, Exclusive: true, set: true}
}

func (m Min) allows(v float64) bool {
	if !m.set {
		return true
	}
	if m.Exclusive {
		return v > m.Value
	}
	return v >= m.Value
}

func (m Min) message() string {
	bound := strconv.FormatFloat(m.Value, 'f', -1, 64)
	if m.Exclusive {
		return fmt.Sprintf("Please input a number that is greater than %s", bound)
	}
	return fmt.Sprintf("Please input a number that is greater than or equal to %s", bound)
}

const invalidNumber = "Please input a valid number"

// Prompter asks questions on Out and reads answers from In.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	Policy Policy
	Colors bool
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer, policy Policy, colors bool) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		Policy: policy,
		Colors: colors,
	}
}

// Line prints hint and returns the trimmed answer. Input is echoed in
// green when colors are on. A final line without newline is accepted.
func (p *Prompter) Line(hint string) (string, error) {
	if p.Colors {
		hint += string(FgGreen)
	}
	if _, err := io.WriteString(p.out, hint); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if p.Colors {
		if _, werr := io.WriteString(p.out, string(FgEnd)); werr != nil {
			return "", werr
		}
	}
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", fmt.Errorf("reading input: %w", err)
		}
	}
	return strings.TrimSpace(line), nil
}

// ask runs parse until it succeeds, honouring the policy on failure.
func (p *Prompter) ask(hint string, parse func(string) (string, bool)) (string, error) {
	for {
		raw, err := p.Line(hint)
		if err != nil {
			return "", err
		}

		msg, ok := parse(raw)
		if ok {
			return raw, nil
		}

		types.GlobalLogger.Debug("rejected input %q: %s", raw, msg)
		if p.Policy == Terminate {
			return "", &InputError{Msg: msg}
		}
		if _, err := fmt.Fprintln(p.out, msg); err != nil {
			return "", err
		}
	}
}

// Number reads a float64 that satisfies min.
func (p *Prompter) Number(hint string, min Min) (float64, error) {
	var v float64
	_, err := p.ask(hint, func(raw string) (string, bool) {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return invalidNumber, false
		}
		if !min.allows(f) {
			return min.message(), false
		}
		v = f
		return "", true
	})
	return v, err
}

// Int reads an integer that satisfies min.
func (p *Prompter) Int(hint string, min Min) (int, error) {
	var v int
	_, err := p.ask(hint, func(raw string) (string, bool) {
		i, err := strconv.Atoi(raw)
		if err != nil {
			return invalidNumber, false
		}
		if !min.allows(float64(i)) {
			return min.message(), false
		}
		v = i
		return "", true
	})
	return v, err
}

// Decimal reads an exact decimal that satisfies min.
func (p *Prompter) Decimal(hint string, min Min) (decimal.Decimal, error) {
	var v decimal.Decimal
	_, err := p.ask(hint, func(raw string) (string, bool) {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return invalidNumber, false
		}
		if !min.allows(d.InexactFloat64()) {
			return min.message(), false
		}
		v = d
		return "", true
	})
	return v, err
}

// String reads a string of at least minLength characters.
func (p *Prompter) String(hint string, minLength int) (string, error) {
	return p.ask(hint, func(raw string) (string, bool) {
		if len([]rune(raw)) < minLength {
			return fmt.Sprintf("Please input a string that is at least %d characters long", minLength), false
		}
		return "", true
	})
}
