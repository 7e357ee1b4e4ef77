// Package finance evaluates investment projects by net present value.
package finance

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoProjects is returned by Analyse for an empty project list.
	ErrNoProjects = errors.New("no projects to analyse")
	// ErrInvalidProject wraps every validation failure.
	ErrInvalidProject = errors.New("invalid project")
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Project is an investment with an upfront cost and yearly cash flows.
type Project struct {
	Name          string
	UpfrontCost   decimal.Decimal
	RatePercent   decimal.Decimal // annual discount rate, e.g. 12 for 12%
	DurationYears int
	CashFlows     []decimal.Decimal // one per year, outflows negative
}

// YearResult is the discounted cash flow of a single year.
type YearResult struct {
	Year         int
	CashFlow     decimal.Decimal
	Factor       decimal.Decimal
	PresentValue decimal.Decimal
}

// Evaluation is the outcome of discounting a project.
type Evaluation struct {
	Project      *Project
	Years        []YearResult
	TotalIncome  decimal.Decimal
	PresentValue decimal.Decimal
	NPV          decimal.Decimal
}

// Validate checks the project is internally consistent.
func (p *Project) Validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidProject)
	case p.DurationYears < 1:
		return fmt.Errorf("%w: %s: duration must be at least one year", ErrInvalidProject, p.Name)
	case len(p.CashFlows) != p.DurationYears:
		return fmt.Errorf("%w: %s: %d cash flows for %d years", ErrInvalidProject, p.Name, len(p.CashFlows), p.DurationYears)
	case p.UpfrontCost.IsNegative():
		return fmt.Errorf("%w: %s: negative upfront cost", ErrInvalidProject, p.Name)
	case p.RatePercent.IsNegative():
		return fmt.Errorf("%w: %s: negative rate", ErrInvalidProject, p.Name)
	}
	return nil
}

// TotalIncome is the undiscounted sum of all cash flows.
func (p *Project) TotalIncome() decimal.Decimal {
	return decimal.Sum(decimal.Zero, p.CashFlows...)
}

// DiscountFactor returns 1/(1+rate)^year.
func DiscountFactor(ratePercent decimal.Decimal, year int) decimal.Decimal {
	base := one.Add(ratePercent.Div(hundred))
	growth := one
	for i := 0; i < year; i++ {
		growth = growth.Mul(base)
	}
	return one.Div(growth)
}

// Evaluate discounts every year's cash flow and computes the NPV.
func (p *Project) Evaluate() (*Evaluation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	e := &Evaluation{
		Project:      p,
		Years:        make([]YearResult, 0, p.DurationYears),
		TotalIncome:  p.TotalIncome(),
		PresentValue: decimal.Zero,
	}
	for i, cash := range p.CashFlows {
		year := i + 1
		factor := DiscountFactor(p.RatePercent, year)
		pv := cash.Mul(factor)
		e.Years = append(e.Years, YearResult{Year: year, CashFlow: cash, Factor: factor, PresentValue: pv})
		e.PresentValue = e.PresentValue.Add(pv)
	}
	e.NPV = e.PresentValue.Sub(p.UpfrontCost)
	return e, nil
}

// Analyse returns the project with the highest total income and the one
// with the highest NPV. Ties keep the earlier project.
func Analyse(projects []*Project) (highestIncome, highestNPV *Project, err error) {
	if len(projects) == 0 {
		return nil, nil, ErrNoProjects
	}

	var bestIncome, bestNPV decimal.Decimal
	for _, p := range projects {
		e, err := p.Evaluate()
		if err != nil {
			return nil, nil, err
		}
		if highestIncome == nil || e.TotalIncome.GreaterThan(bestIncome) {
			highestIncome, bestIncome = p, e.TotalIncome
		}
		if highestNPV == nil || e.NPV.GreaterThan(bestNPV) {
			highestNPV, bestNPV = p, e.NPV
		}
	}
	return highestIncome, highestNPV, nil
}
