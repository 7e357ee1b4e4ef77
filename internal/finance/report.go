package finance

import (
	"fmt"
	"strings"

	"github.com/zakazai/normtab/internal/render"
)

const titleIndent = 24

var (
	headerLayout = render.RowLayout{
		Cells:     []render.Cell{{Width: 8}, {Width: 22, LeftPadding: 9}, {Width: 13, LeftPadding: 2}, {Width: 12, LeftPadding: 2}},
		Delimiter: "|",
	}
	subHeaderLayout = render.RowLayout{
		Cells:     []render.Cell{{Width: 8}, {Width: 22, LeftPadding: 4}, {Width: 13}},
		Delimiter: "|",
	}
	rowLayout = render.RowLayout{
		Cells:     []render.Cell{{Width: 8}, {Width: 22, LeftPadding: 6}, {Width: 13, LeftPadding: 4}, {Width: 12, LeftPadding: 2}},
		Delimiter: "|",
	}
)

// Report renders the per-year breakdown and the NPV summary.
func (e *Evaluation) Report() string {
	rule := rowLayout.Rule("-")

	lines := []string{
		strings.Repeat(" ", titleIndent) + e.Project.Name,
		rule,
		strings.TrimRight(headerLayout.Format("Year", "Cash", "PV Factor", "Amount"), " "),
		strings.TrimRight(subHeaderLayout.Format("", "Inflows/Outflows", ""), " "),
		rule,
	}
	for _, y := range e.Years {
		lines = append(lines, rowLayout.Format(y.Year, Currency(y.CashFlow), Factor(y.Factor), Currency(y.PresentValue)))
	}
	lines = append(lines,
		fmt.Sprintf("Total Income: %s", Currency(e.TotalIncome)),
		fmt.Sprintf("Present Value of Future Benefits: %s", Currency(e.PresentValue)),
		fmt.Sprintf("Present Value of Future Costs: %s", Currency(e.Project.UpfrontCost)),
		fmt.Sprintf("Net Present Value(NPV): %s", Currency(e.NPV)),
	)
	return strings.Join(lines, "\n")
}
