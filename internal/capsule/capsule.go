// Package capsule tabulates the volume, surface area and circumference of
// capsules with growing radius.
package capsule

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/zakazai/normtab/internal/prompt"
	"github.com/zakazai/normtab/internal/render"
)

// Intro is printed before the prompts.
const Intro = "The program prints the volume, surface area and circumference of a capsule " +
	"having radius r ranging from 6 to N in increments of 6 and side length a"

const (
	InitialRadius = 6
	RadiusStep    = 6
)

var layout = render.Widths(12, 16, 20, 13)

// Measures of one capsule.
type Measures struct {
	Radius        int
	Volume        float64
	SurfaceArea   float64
	Circumference float64
}

// Measure computes a capsule of radius r and cylinder side length a.
func Measure(r int, a float64) Measures {
	radius := float64(r)
	circumference := 2 * math.Pi * radius
	return Measures{
		Radius:        r,
		Circumference: circumference,
		SurfaceArea:   4*math.Pi*(radius*radius) + circumference*a,
		Volume:        a*math.Pi*(radius*radius) + (4.0/3.0)*math.Pi*(radius*radius*radius),
	}
}

// Series returns the measures for radii 6, 12, ... up to maxRadius.
func Series(maxRadius int, a float64) []Measures {
	var out []Measures
	for r := InitialRadius; r <= maxRadius; r += RadiusStep {
		out = append(out, Measure(r, a))
	}
	return out
}

// Table renders the header, a dash rule and one line per capsule.
func Table(series []Measures) string {
	header := layout.Format("Radius", "Volume", "Surface Area", "Circumference")
	lines := []string{header, strings.Repeat("-", len(header))}
	for _, m := range series {
		lines = append(lines, layout.Format(
			m.Radius,
			fmt.Sprintf("%.3f", m.Volume),
			fmt.Sprintf("%.4f", m.SurfaceArea),
			fmt.Sprintf("%.4f", m.Circumference),
		))
	}
	return strings.Join(lines, "\n")
}

// Run prints the intro, asks for N and a, and prints the table.
func Run(p *prompt.Prompter, w io.Writer) error {
	if _, err := fmt.Fprintln(w, Intro); err != nil {
		return err
	}

	maxRadius, err := p.Int("Enter the value for N: ", prompt.GreaterThan(InitialRadius))
	if err != nil {
		return err
	}
	side, err := p.Number("Enter the length of side a: ", prompt.GreaterThan(0))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, Table(Series(maxRadius, side)))
	return err
}
