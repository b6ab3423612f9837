package grid

import (
	"time"

	"fyne.io/fyne/v2"
)

// resizeLayout wraps another layout and reports real size changes of the
// objects it lays out, or of the window around them.
type resizeLayout struct {
	internal fyne.Layout
	onResize func()

	externalSize     func() fyne.Size
	lastSize         fyne.Size
	lastExternalSize fyne.Size
	lastFired        time.Time
	timer            *time.Timer
}

func (r *resizeLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	r.internal.Layout(objects, size)
	if r.onResize == nil {
		return
	}

	internalChanged := abs32(size.Width-r.lastSize.Width) >= 0.5 || abs32(size.Height-r.lastSize.Height) >= 0.5
	if internalChanged {
		r.lastSize = size
	}

	externalChanged := false
	if r.externalSize != nil {
		external := r.externalSize()
		externalChanged = abs32(external.Width-r.lastExternalSize.Width) >= 0.5 || abs32(external.Height-r.lastExternalSize.Height) >= 0.5
		if externalChanged {
			r.lastExternalSize = external
		}
	}

	// Layout also runs on plain refreshes.
	if !internalChanged && !externalChanged {
		return
	}

	r.scheduleResize()
}

func (r *resizeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return r.internal.MinSize(objects)
}

// scheduleResize runs onResize outside of the layout pass and coalesces
// bursts while a window is being dragged to a new size.
func (r *resizeLayout) scheduleResize() {
	const minInterval = 60 * time.Millisecond

	now := time.Now()
	elapsed := now.Sub(r.lastFired)
	if elapsed >= minInterval {
		r.lastFired = now
		fyne.Do(r.onResize)
		return
	}

	delay := minInterval - elapsed
	if r.timer == nil {
		r.timer = time.AfterFunc(delay, func() {
			fyne.Do(func() {
				r.timer = nil
				r.lastFired = time.Now()
				if r.onResize != nil {
					r.onResize()
				}
			})
		})
		return
	}
	r.timer.Reset(delay)
}
