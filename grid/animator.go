package grid

import (
	"time"

	"fyne.io/fyne/v2"
)

// Tweener runs a transition of the content offset from one value to another.
// step is called with intermediate values, done once the target is reached.
// The returned function stops the transition; done is not called after it.
type Tweener interface {
	Tween(from, to float32, d time.Duration, step func(float32), done func()) (stop func())
}

// fyneTweener animates with fyne.Animation, so step and done run on the UI
// goroutine.
type fyneTweener struct{}

func (fyneTweener) Tween(from, to float32, d time.Duration, step func(float32), done func()) func() {
	finished := false
	a := fyne.NewAnimation(d, func(p float32) {
		if finished {
			return
		}
		step(from + (to-from)*p)
		if p >= 1 {
			finished = true
			done()
		}
	})
	a.Curve = fyne.AnimationEaseInOut
	a.Start()
	return a.Stop
}

// immediateTweener jumps straight to the target. Used where there is no
// animation loop, e.g. in a terminal.
type immediateTweener struct{}

func (immediateTweener) Tween(_, to float32, _ time.Duration, step func(float32), done func()) func() {
	step(to)
	done()
	return func() {}
}

// ImmediateTweener returns a Tweener without intermediate steps.
func ImmediateTweener() Tweener {
	return immediateTweener{}
}

// animate transitions the content to the given page.
func (g *Grid) animate(page int) {
	g.stopTween()
	target := -float32(page) * g.layout.container.Width
	finished := false
	stop := g.tweener.Tween(g.offset, target, g.config.TransitionDuration, g.setOffset, func() {
		finished = true
		g.stop = nil
		if g.OnTransitionEnd != nil {
			g.OnTransitionEnd(page)
		}
	})
	if !finished {
		g.stop = stop
	}
}

func (g *Grid) stopTween() {
	if g.stop == nil {
		return
	}
	stop := g.stop
	g.stop = nil
	stop()
}

func (g *Grid) setOffset(x float32) {
	g.offset = x
	if g.OnOffsetChanged != nil {
		g.OnOffsetChanged(x)
	}
}
