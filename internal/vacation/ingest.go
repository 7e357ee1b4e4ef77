package vacation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/zakazai/normtab/internal/storage"
	"github.com/zakazai/normtab/internal/types"
)

const fieldsPerRecord = 5

// RecordError reports a CSV record that cannot be ingested.
type RecordError struct {
	Line  int
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: field %q: %v", e.Line, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Dataset holds the two 2NF tables built from the CSV.
type Dataset struct {
	Employees *storage.Table[string]
	Vacations *storage.Table[int]
}

// NewDataset creates empty tables.
func NewDataset() *Dataset {
	return &Dataset{
		Employees: storage.NewTable[string](EmployeeInfoTable, EmployeeInfoColumns),
		Vacations: storage.NewTable[int](AnnualVacationTable, AnnualVacationColumns),
	}
}

// Ingest reads the header and every record of r. Employees are stored once
// per id; every record becomes one vacation fact with a sequential id.
// Any malformed record aborts the whole batch.
func Ingest(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = fieldsPerRecord

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header: %w", io.ErrUnexpectedEOF)
		}
		return nil, recordError(err)
	}

	ds := NewDataset()
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, recordError(err)
		}

		line, _ := reader.FieldPos(0)
		employee, fact, recErr := parseRecord(record, ds.Vacations.Len()+1)
		if recErr != nil {
			recErr.Line = line
			return nil, recErr
		}

		if ds.Employees.Add(employee.ID, employee.Row()) {
			types.GlobalLogger.Debug("line %d: new employee %s", line, employee.ID)
		}
		ds.Vacations.Add(fact.ID, fact.Row())
	}

	types.GlobalLogger.Info("ingested %d vacation records for %d employees", ds.Vacations.Len(), ds.Employees.Len())
	return ds, nil
}

func parseRecord(record []string, id int) (EmployeeInfo, EmployeeAnnualVacations, *RecordError) {
	employeeID, name, department, rawYear, rawDays := record[0], record[1], record[2], record[3], record[4]

	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return EmployeeInfo{}, EmployeeAnnualVacations{}, &RecordError{Field: "Year", Err: err}
	}
	days, err := strconv.Atoi(rawDays)
	if err != nil {
		return EmployeeInfo{}, EmployeeAnnualVacations{}, &RecordError{Field: "Vacation Days", Err: err}
	}

	return EmployeeInfo{ID: employeeID, Name: name, Department: department},
		EmployeeAnnualVacations{ID: id, EmployeeID: employeeID, Year: year, VacationDays: days},
		nil
}

func recordError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &RecordError{Line: parseErr.Line, Err: err}
	}
	return err
}
