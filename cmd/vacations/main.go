package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/zakazai/normtab/internal/config"
	"github.com/zakazai/normtab/internal/types"
	"github.com/zakazai/normtab/internal/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	types.GlobalLogger.SetLevel(cfg.LogLevel())

	report, err := vacation.Run(strings.NewReader(vacation.SampleCSV))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := report.Print(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing tables: %v\n", err)
		os.Exit(1)
	}

	if dir := cfg.Export.ParquetDir; dir != "" {
		paths, err := report.Export(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting tables: %v\n", err)
			os.Exit(1)
		}
		for _, path := range paths {
			types.GlobalLogger.Info("wrote %s", path)
		}
	}
}
