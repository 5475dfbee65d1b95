// Package trace records node values step by step and renders them as
// waveforms.
//
package trace

import (
	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// A Probe names a node to sample.
//
type Probe struct {
	Label string
	Node  *logicsim.Node
}

// DefaultProbes returns a probe on every switch output followed by every bulb
// input, in circuit order, labelled with the component name.
//
func DefaultProbes(c *logicsim.Circuit) []Probe {
	var ps []Probe
	for _, s := range c.Switches() {
		ps = append(ps, Probe{s.Name, s.Output("Q")})
	}
	for _, b := range c.Bulbs() {
		ps = append(ps, Probe{b.Name, b.Input("A")})
	}
	return ps
}

// A Recorder steps a circuit and samples its probes after each step.
//
type Recorder struct {
	c       *logicsim.Circuit
	probes  []Probe
	samples [][]bool // samples[probe][step]
}

// NewRecorder returns a recorder for c. If no probe is given, DefaultProbes is
// used.
//
func NewRecorder(c *logicsim.Circuit, probes ...Probe) *Recorder {
	if len(probes) == 0 {
		probes = DefaultProbes(c)
	}
	return &Recorder{c: c, probes: probes, samples: make([][]bool, len(probes))}
}

func (r *Recorder) sample() {
	for i, p := range r.probes {
		r.samples[i] = append(r.samples[i], p.Node.Value())
	}
}

// Run takes an initial sample if none has been taken yet, then steps the
// circuit up to ticks times, sampling after each step. It stops early and
// returns true once a step reports no change.
//
func (r *Recorder) Run(ticks int) bool {
	if ticks < 1 {
		ticks = logicsim.DefaultTicks
	}
	if r.Len() == 0 {
		r.sample()
	}
	for i := 0; i < ticks; i++ {
		changed := r.c.Step()
		r.sample()
		if !changed {
			return true
		}
	}
	return false
}

// Probes returns the recorder's probes.
//
func (r *Recorder) Probes() []Probe { return r.probes }

// Len returns the number of samples taken per probe.
//
func (r *Recorder) Len() int {
	if len(r.samples) == 0 {
		return 0
	}
	return len(r.samples[0])
}

// Samples returns the samples of probe i.
//
func (r *Recorder) Samples(i int) []bool { return r.samples[i] }

// Plot renders one square wave per probe, stacked from top to bottom in probe
// order, and saves it to path. The file format is selected by the extension:
// .png, .svg, .pdf, etc.
//
func (r *Recorder) Plot(path string) error {
	if r.Len() == 0 {
		return errors.New("nothing to plot")
	}
	p := plot.New()
	p.Title.Text = "Trace"
	p.X.Label.Text = "step"
	p.Y.Tick.Marker = r.ticks()
	p.Y.Min = -0.5
	p.Y.Max = float64(2*len(r.probes)) - 0.5

	for i, pr := range r.probes {
		l, err := plotter.NewLine(r.wave(i))
		if err != nil {
			return errors.Wrap(err, pr.Label)
		}
		l.Color = plotutil.Color(i)
		l.Width = vg.Points(1.5)
		p.Add(l)
	}
	p.Add(plotter.NewGrid())

	h := vg.Length(len(r.probes)) * 0.6 * vg.Inch
	if h < 2*vg.Inch {
		h = 2 * vg.Inch
	}
	return errors.Wrap(p.Save(8*vg.Inch, h, path), "failed to save plot")
}

// offset of probe i on the Y axis.
func (r *Recorder) offset(i int) float64 {
	return float64(2 * (len(r.probes) - 1 - i))
}

// wave returns the square wave points of probe i.
//
func (r *Recorder) wave(i int) plotter.XYs {
	s := r.samples[i]
	off := r.offset(i)
	pts := make(plotter.XYs, 0, 2*len(s))
	for step, v := range s {
		y := off
		if v {
			y++
		}
		pts = append(pts, plotter.XY{X: float64(step), Y: y}, plotter.XY{X: float64(step + 1), Y: y})
	}
	return pts
}

type labelTicks []plot.Tick

func (t labelTicks) Ticks(min, max float64) []plot.Tick { return t }

func (r *Recorder) ticks() plot.Ticker {
	ts := make(labelTicks, len(r.probes))
	for i, pr := range r.probes {
		ts[i] = plot.Tick{Value: r.offset(i) + 0.5, Label: pr.Label}
	}
	return ts
}
