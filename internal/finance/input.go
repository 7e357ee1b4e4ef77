package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zakazai/normtab/internal/prompt"
)

// ReadProject asks for every field of one project.
func ReadProject(p *prompt.Prompter, index int) (*Project, error) {
	name, err := p.String(fmt.Sprintf("Name of project %d: ", index), 1)
	if err != nil {
		return nil, err
	}
	cost, err := p.Decimal("Upfront cost: ", prompt.AtLeast(0))
	if err != nil {
		return nil, err
	}
	rate, err := p.Decimal("Rate of return (%): ", prompt.AtLeast(0))
	if err != nil {
		return nil, err
	}
	years, err := p.Int("Duration in years: ", prompt.AtLeast(1))
	if err != nil {
		return nil, err
	}

	// years comes from the user, so flows grow as answers arrive
	var flows []decimal.Decimal
	for year := 1; year <= years; year++ {
		flow, err := p.Decimal(fmt.Sprintf("Cash inflow/outflow of year %d: ", year), prompt.NoMin)
		if err != nil {
			return nil, err
		}
		flows = append(flows, flow)
	}

	return &Project{
		Name:          name,
		UpfrontCost:   cost,
		RatePercent:   rate,
		DurationYears: years,
		CashFlows:     flows,
	}, nil
}

// ReadProjects asks how many projects to compare and reads each one.
func ReadProjects(p *prompt.Prompter) ([]*Project, error) {
	n, err := p.Int("How many projects do you want to compare? ", prompt.AtLeast(1))
	if err != nil {
		return nil, err
	}

	var projects []*Project
	for i := 1; i <= n; i++ {
		project, err := ReadProject(p, i)
		if err != nil {
			return nil, fmt.Errorf("project %d: %w", i, err)
		}
		projects = append(projects, project)
	}
	return projects, nil
}
