package prompt_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zakazai/normtab/internal/prompt"
)

func newPrompter(input string, policy prompt.Policy) (*prompt.Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return prompt.New(strings.NewReader(input), &out, policy, false), &out
}

func TestNumberReprompts(t *testing.T) {
	p, out := newPrompter("abc\n-1\n2.5\n", prompt.Reprompt)

	v, err := p.Number("Rate: ", prompt.AtLeast(0))
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	assert.Equal(t,
		"Rate: Please input a valid number\n"+
			"Rate: Please input a number that is greater than or equal to 0\n"+
			"Rate: ", out.String())
}

func TestNumberTerminates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		min   prompt.Min
		want  string
	}{
		{name: "not a number", input: "x\n", min: prompt.NoMin, want: "Please input a valid number"},
		{name: "exclusive bound", input: "0\n", min: prompt.GreaterThan(0), want: "Please input a number that is greater than 0"},
		{name: "inclusive bound", input: "5\n", min: prompt.AtLeast(6), want: "Please input a number that is greater than or equal to 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newPrompter(tt.input, prompt.Terminate)
			_, err := p.Number("? ", tt.min)

			var inputErr *prompt.InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.want, inputErr.Msg)
		})
	}
}

func TestIntBounds(t *testing.T) {
	p, _ := newPrompter("6\n", prompt.Terminate)
	_, err := p.Int("N: ", prompt.GreaterThan(6))
	assert.Error(t, err)

	p, _ = newPrompter("7\n", prompt.Terminate)
	n, err := p.Int("N: ", prompt.GreaterThan(6))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	p, _ = newPrompter("1.5\n3\n", prompt.Reprompt)
	n, err = p.Int("N: ", prompt.NoMin)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestDecimal(t *testing.T) {
	p, _ := newPrompter(" 35000.10 \n", prompt.Reprompt)
	d, err := p.Decimal("Cost: ", prompt.AtLeast(0))
	require.NoError(t, err)
	assert.Equal(t, "35000.1", d.String())
}

func TestString(t *testing.T) {
	p, out := newPrompter("\nab\nabc\n", prompt.Reprompt)

	s, err := p.String("Name: ", 3)
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
	assert.Equal(t, 2, strings.Count(out.String(), "Please input a string that is at least 3 characters long"))
}

func TestLastLineWithoutNewline(t *testing.T) {
	p, _ := newPrompter("42", prompt.Terminate)
	n, err := p.Int("N: ", prompt.NoMin)
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestEOF(t *testing.T) {
	p, _ := newPrompter("bad\n", prompt.Reprompt)
	_, err := p.Number("N: ", prompt.NoMin)
	assert.ErrorIs(t, err, io.EOF)
}

func TestColors(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("hi\n"), &out, prompt.Reprompt, true)

	s, err := p.String("Name: ", 1)
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
	assert.Equal(t, "Name: \x1b[32m\x1b[39m", out.String())
}

func TestEsc(t *testing.T) {
	assert.Equal(t, prompt.FgGreen, prompt.Esc(32))
	assert.Equal(t, prompt.FgEnd, prompt.Esc(39))
	assert.Equal(t, prompt.ColorCode("\x1b[1;31m"), prompt.Esc(1, 31))
}

func TestParsePolicy(t *testing.T) {
	p, err := prompt.ParsePolicy("Terminate")
	require.NoError(t, err)
	assert.Equal(t, prompt.Terminate, p)
	assert.Equal(t, "terminate", p.String())

	p, err = prompt.ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, prompt.Reprompt, p)

	_, err = prompt.ParsePolicy("sometimes")
	assert.Error(t, err)
}

type failingWriter struct {
	fail string
}

func (w failingWriter) Write(b []byte) (int, error) {
	if string(b) == w.fail {
		return 0, errors.New("write failed")
	}
	return len(b), nil
}

func TestColorResetWriteError(t *testing.T) {
	p := prompt.New(strings.NewReader("hi\n"), failingWriter{fail: string(prompt.FgEnd)}, prompt.Reprompt, true)

	_, err := p.Line("Name: ")
	assert.EqualError(t, err, "write failed")
}

func TestExitMessage(t *testing.T) {
	p, _ := newPrompter("-1\n", prompt.Terminate)
	_, err := p.Int("N: ", prompt.AtLeast(0))
	require.Error(t, err)

	assert.Equal(t, "Please input a number that is greater than or equal to 0", prompt.ExitMessage(fmt.Errorf("project 1: %w", err)))
	assert.Equal(t, "Error: boom", prompt.ExitMessage(errors.New("boom")))
}
