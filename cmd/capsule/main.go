package main

import (
	"fmt"
	"os"

	"github.com/zakazai/normtab/internal/capsule"
	"github.com/zakazai/normtab/internal/config"
	"github.com/zakazai/normtab/internal/prompt"
	"github.com/zakazai/normtab/internal/types"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	types.GlobalLogger.SetLevel(cfg.LogLevel())

	// Bad input ends the program unless NORMTAB_PROMPT_POLICY says otherwise.
	p := prompt.New(os.Stdin, os.Stdout, cfg.PromptPolicy(prompt.Terminate), cfg.Prompt.Color)

	if err := capsule.Run(p, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, prompt.ExitMessage(err))
		os.Exit(1)
	}
}
