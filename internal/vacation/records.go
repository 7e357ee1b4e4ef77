// Package vacation splits the employee vacation CSV into second normal
// form tables and totals vacation days per employee and year.
package vacation

import (
	"github.com/zakazai/normtab/internal/types"
)

// Table names, also used for parquet snapshot files.
const (
	EmployeeInfoTable   = "employee_info"
	AnnualVacationTable = "employee_annual_vacations"
	TotalVacationTable  = "employee_total_vacations"
)

// daysIndent shifts day counts right inside their column.
const daysIndent = 7

// Column sets for the three tables.
var (
	EmployeeInfoColumns = []types.Column{
		{Name: "Employee Id"},
		{Name: "Employee Name"},
		{Name: "Department"},
	}
	AnnualVacationColumns = []types.Column{
		{Name: "Id"},
		{Name: "Employee Id"},
		{Name: "Year"},
		{Name: "Vacation Days", Format: types.Indent(daysIndent)},
	}
	TotalVacationColumns = []types.Column{
		{Name: "Employee Id"},
		{Name: "Employee Name"},
		{Name: "Department"},
		{Name: "Year"},
		{Name: "Total Vacation Days", Format: types.Indent(daysIndent)},
	}
)

// EmployeeInfo depends only on the employee id.
type EmployeeInfo struct {
	ID         string
	Name       string
	Department string
}

func (e EmployeeInfo) Row() types.Row {
	return types.Row{e.ID, e.Name, e.Department}
}

func employeeFromRow(r types.Row) EmployeeInfo {
	return EmployeeInfo{ID: r[0].(string), Name: r[1].(string), Department: r[2].(string)}
}

// EmployeeAnnualVacations is one raw vacation fact.
type EmployeeAnnualVacations struct {
	ID           int
	EmployeeID   string
	Year         int
	VacationDays int
}

func (v EmployeeAnnualVacations) Row() types.Row {
	return types.Row{v.ID, v.EmployeeID, v.Year, v.VacationDays}
}

func vacationFromRow(r types.Row) EmployeeAnnualVacations {
	return EmployeeAnnualVacations{
		ID:           r[0].(int),
		EmployeeID:   r[1].(string),
		Year:         r[2].(int),
		VacationDays: r[3].(int),
	}
}

// YearKey groups facts by employee and year.
type YearKey struct {
	EmployeeID string
	Year       int
}

// EmployeeTotalVacations is the summed vacation days of one YearKey.
type EmployeeTotalVacations struct {
	EmployeeID string
	Name       string
	Department string
	Year       int
	TotalDays  int
}

func (t EmployeeTotalVacations) Row() types.Row {
	return types.Row{t.EmployeeID, t.Name, t.Department, t.Year, t.TotalDays}
}

func (t EmployeeTotalVacations) Key() YearKey {
	return YearKey{EmployeeID: t.EmployeeID, Year: t.Year}
}
