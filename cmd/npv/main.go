package main

import (
	"fmt"
	"io"
	"os"

	"github.com/zakazai/normtab/internal/config"
	"github.com/zakazai/normtab/internal/finance"
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

	p := prompt.New(os.Stdin, os.Stdout, cfg.PromptPolicy(prompt.Reprompt), cfg.Prompt.Color)
	if err := run(p, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, prompt.ExitMessage(err))
		os.Exit(1)
	}
}

func run(p *prompt.Prompter, w io.Writer) error {
	projects, err := finance.ReadProjects(p)
	if err != nil {
		return err
	}

	for _, project := range projects {
		e, err := project.Evaluate()
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, e.Report())
	}

	income, npv, err := finance.Analyse(projects)
	if err != nil {
		return err
	}
	types.GlobalLogger.Info("compared %d projects", len(projects))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Project with the highest income: %s\n", income.Name)
	fmt.Fprintf(w, "Project with the highest NPV: %s\n", npv.Name)
	return nil
}
