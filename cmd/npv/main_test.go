package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zakazai/normtab/internal/prompt"
)

func TestRunComparesProjects(t *testing.T) {
	input := strings.Join([]string{
		"2",
		"Mars", "35000", "12", "3", "10000", "27000", "19000",
		"Inception", "35000", "12", "2", "27000", "27000",
	}, "\n") + "\n"

	var out bytes.Buffer
	p := prompt.New(strings.NewReader(input), &out, prompt.Reprompt, false)

	require.NoError(t, run(p, &out))

	got := out.String()
	assert.Contains(t, got, "Net Present Value(NPV): $8,976.63")
	assert.Contains(t, got, "Net Present Value(NPV): $10,631.38")
	assert.Contains(t, got, "Project with the highest income: Mars\n")
	assert.Contains(t, got, "Project with the highest NPV: Inception\n")
}
