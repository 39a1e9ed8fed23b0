//go:build plot
// +build plot

package ga2

import (
	"math"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

type plttr struct {
	*plot.Plot
	nlines int
}

func newplttr() *plttr {
	p := plot.New()
	p.X.Min, p.X.Max = -2, 2
	p.Y.Min, p.Y.Max = -2, 2
	p.Add(plotter.NewGrid())
	return &plttr{Plot: p}
}

func (p *plttr) addVector(lbl string, m Multivector) {
	xys := make(plotter.XYs, 2)
	xys[1].X = float64(m.Vec2()[0])
	xys[1].Y = float64(m.Vec2()[1])
	ln, err := plotter.NewLine(xys)
	if err != nil {
		panic(err)
	}

	ln.LineStyle.Width = vg.Points(2)
	ln.LineStyle.Color = plotutil.Color(p.nlines)
	p.nlines++

	p.Add(ln)
	p.Legend.Add(lbl, ln)
}

func (p *plttr) save(t *testing.T, name string) {
	t.Helper()
	if err := p.Save(5*vg.Inch, 5*vg.Inch, name); err != nil {
		t.Fatal(err)
	}
}

// TestPlotRotorSweep draws e1 swept by successive twelfth-turn rotor
// applications; eyeball ga2_rotor.png for even spacing and unit length.
func TestPlotRotorSweep(t *testing.T) {
	p := newplttr()

	r := NewRotor(math.Pi / 6)
	v := Vector(1, 0)
	for i := 0; i < 12; i++ {
		p.addVector("step "+string(rune('a'+i)), v)
		v = r.Apply(v)
	}

	p.save(t, "ga2_rotor.png")
}

// TestPlotComposed draws the same sweep done by composed rotors
// applied once each; the two images should match.
func TestPlotComposed(t *testing.T) {
	p := newplttr()

	step := NewRotor(math.Pi / 6)
	r := Rotor(Scalar(1))
	for i := 0; i < 12; i++ {
		p.addVector("step "+string(rune('a'+i)), r.Apply(Vector(1, 0)))
		r = r.Compose(step)
	}

	p.save(t, "ga2_rotor_composed.png")
}
