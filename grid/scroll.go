package grid

import (
	"math"

	"fyne.io/fyne/v2"
)

// Fyne wheel deltas are about 40 per notch.
const wheelNotch = float32(40)

// wheelPager turns wheel and touchpad scrolling into whole page steps.
// Small touchpad deltas accumulate until they add up to a notch.
type wheelPager struct {
	acc float32
}

// steps adds a scroll delta and returns the pages to move, positive meaning
// forward. Scrolling up or left goes back.
func (w *wheelPager) steps(d fyne.Delta) int {
	delta := d.DY
	if abs32(d.DX) > abs32(d.DY) {
		delta = d.DX
	}
	if math.IsNaN(float64(delta)) || math.IsInf(float64(delta), 0) {
		return 0
	}

	w.acc += delta

	var steps int
	for w.acc >= wheelNotch {
		steps--
		w.acc -= wheelNotch
	}
	for w.acc <= -wheelNotch {
		steps++
		w.acc += wheelNotch
	}
	return steps
}

// Scrolled pages with the mouse wheel. It is ignored while a drag is active.
func (g *PagedGrid) Scrolled(e *fyne.ScrollEvent) {
	if g.dragging || g.engine.Touching() {
		return
	}
	steps := g.wheel.steps(e.Scrolled)
	if steps == 0 {
		return
	}
	target := g.engine.Page() + steps
	target = max(g.engine.MinPage(), min(target, g.engine.MaxPage()-1))
	g.engine.SetPage(target)
}

var _ fyne.Scrollable = (*PagedGrid)(nil)
