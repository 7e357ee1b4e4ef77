package vacation

import (
	"fmt"
	"io"

	"github.com/zakazai/normtab/internal/render"
	"github.com/zakazai/normtab/internal/storage"
)

// Report is the full output of one normalization run.
type Report struct {
	Dataset *Dataset
	Totals  *storage.Table[YearKey]
}

// Run ingests the CSV in r and aggregates it.
func Run(r io.Reader) (*Report, error) {
	ds, err := Ingest(r)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	totals, err := Aggregate(ds)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	return &Report{Dataset: ds, Totals: totals}, nil
}

// Tables lists the report's tables in print order.
func (r *Report) Tables() []storage.Tabular {
	return []storage.Tabular{r.Dataset.Employees, r.Dataset.Vacations, r.Totals}
}

var titles = map[string]string{
	EmployeeInfoTable:   "2NF Table: Employee Info",
	AnnualVacationTable: "2NF Table: Employee Annual Vacations",
	TotalVacationTable:  "Total Vacation Days Per Employee Per Year",
}

// Print writes every table under its title, separated by blank lines.
func (r *Report) Print(w io.Writer) error {
	for i, t := range r.Tables() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := render.Print(w, titles[t.TableName()], t); err != nil {
			return fmt.Errorf("render %s: %w", t.TableName(), err)
		}
	}
	return nil
}

// Export writes a parquet snapshot of every table into dir.
func (r *Report) Export(dir string) ([]string, error) {
	var paths []string
	for _, t := range r.Tables() {
		path, err := storage.WriteParquet(dir, t)
		if err != nil {
			return paths, fmt.Errorf("export %s: %w", t.TableName(), err)
		}
		if path != "" {
			paths = append(paths, path)
		}
	}
	return paths, nil
}
