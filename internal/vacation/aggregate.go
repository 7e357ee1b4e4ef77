package vacation

import (
	"errors"
	"fmt"

	"github.com/zakazai/normtab/internal/storage"
	"github.com/zakazai/normtab/internal/types"
)

// ErrUnknownEmployee is returned when a fact references an id missing from
// the employee table.
var ErrUnknownEmployee = errors.New("unknown employee")

// Aggregate sums vacation days per (employee, year), joins the employee
// details and returns the totals sorted by (name, year).
func Aggregate(ds *Dataset) (*storage.Table[YearKey], error) {
	var order []YearKey
	sums := make(map[YearKey]int)

	for _, row := range ds.Vacations.Rows() {
		fact := vacationFromRow(row)
		key := YearKey{EmployeeID: fact.EmployeeID, Year: fact.Year}
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += fact.VacationDays
	}

	totals := storage.NewTable[YearKey](TotalVacationTable, TotalVacationColumns)
	for _, key := range order {
		row, ok := ds.Employees.Get(key.EmployeeID)
		if !ok {
			return nil, fmt.Errorf("employee %s: %w", key.EmployeeID, ErrUnknownEmployee)
		}
		employee := employeeFromRow(row)

		total := EmployeeTotalVacations{
			EmployeeID: employee.ID,
			Name:       employee.Name,
			Department: employee.Department,
			Year:       key.Year,
			TotalDays:  sums[key],
		}
		totals.Add(total.Key(), total.Row())
	}

	totals.SortRows(byNameThenYear)
	types.GlobalLogger.Info("aggregated %d facts into %d totals", ds.Vacations.Len(), totals.Len())
	return totals, nil
}

func byNameThenYear(a, b types.Row) bool {
	ta, tb := totalFromRow(a), totalFromRow(b)
	if ta.Name != tb.Name {
		return ta.Name < tb.Name
	}
	return ta.Year < tb.Year
}

func totalFromRow(r types.Row) EmployeeTotalVacations {
	return EmployeeTotalVacations{
		EmployeeID: r[0].(string),
		Name:       r[1].(string),
		Department: r[2].(string),
		Year:       r[3].(int),
		TotalDays:  r[4].(int),
	}
}
