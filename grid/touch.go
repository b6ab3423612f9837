package grid

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
)

type touchSession struct {
	start       fyne.Position
	startTime   time.Time
	startOffset float32
	didMove     bool
	count       int
}

func (s *touchSession) active() bool {
	return s.count > 0
}

func (s *touchSession) begin(pos fyne.Position, ts time.Time, offset float32) {
	s.start = pos
	s.startTime = ts
	s.startOffset = offset
	s.didMove = false
	s.count = 1
}

func (s *touchSession) end() {
	s.count = 0
}

// touchIsMove reports whether pos is far enough from start, horizontally, to
// count as a drag.
func touchIsMove(start, pos fyne.Position, threshold float32) bool {
	return abs32(pos.X-start.X) >= threshold
}

// rubberBand damps a drag of dx that pulls past the first or last page.
func rubberBand(dx float32, page, minPage, maxPage int) float32 {
	if page == minPage && dx > 0 {
		return dx / 2
	}
	if page == maxPage-1 && dx < 0 {
		return dx / 2
	}
	return dx
}

// decidePage picks the page a drag of the given horizontal distance lands on.
// The recognizer is only consulted when the distance alone keeps the current
// page. The result is clamped to [minPage, maxPage-1].
func decidePage(current, minPage, maxPage int, distance, pageWidth, scrollBias float32, rec GestureRecognizer) int {
	candidate := current
	limit := pageWidth/2 - scrollBias
	if distance > limit {
		candidate = current - 1
	} else if distance < -limit {
		candidate = current + 1
	}

	if candidate == current && rec != nil && rec.State() == GestureRecognized {
		switch rec.Direction() {
		case SwipeRight:
			candidate = current - 1
		case SwipeLeft:
			candidate = current + 1
		}
	}

	if maxPage <= minPage {
		return current
	}
	if candidate < minPage {
		candidate = minPage
	}
	if candidate > maxPage-1 {
		candidate = maxPage - 1
	}
	return candidate
}

// OnTouchEvent feeds one pointer event into the grid. Only one gesture is
// tracked at a time; a start while a gesture is active is ignored.
func (g *Grid) OnTouchEvent(phase TouchPhase, pos fyne.Position, ts time.Time) {
	if obs, ok := g.recognizer.(TouchObserver); ok {
		obs.ObserveTouch(phase, pos, ts)
	}

	switch phase {
	case TouchStart:
		if g.touch.active() {
			return
		}
		g.stopTween()
		g.touch.begin(pos, ts, g.offset)

	case TouchMove:
		if !g.touch.active() {
			return
		}
		g.touch.didMove = g.touch.didMove || touchIsMove(g.touch.start, pos, g.config.MoveThreshold)
		if g.touch.didMove {
			g.updateContentPosition(pos)
		}

	case TouchEnd:
		if !g.touch.active() {
			return
		}
		g.touch.didMove = g.touch.didMove || touchIsMove(g.touch.start, pos, g.config.MoveThreshold)
		if g.touch.didMove {
			g.updateContentPosition(pos)
			g.finishDrag(pos)
		} else {
			g.settle()
			g.selectAt(pos)
		}
		g.touch.end()

	case TouchCancel:
		if !g.touch.active() {
			return
		}
		if g.touch.didMove {
			g.animate(g.page)
		} else {
			g.settle()
		}
		if g.recognizer != nil {
			g.recognizer.Reset()
		}
		g.touch.end()
	}
}

func (g *Grid) updateContentPosition(pos fyne.Position) {
	dx := rubberBand(pos.X-g.touch.start.X, g.page, g.MinPage(), g.MaxPage())
	g.setOffset(g.touch.startOffset + dx)
}

func (g *Grid) finishDrag(pos fyne.Position) {
	distance := pos.X - g.touch.start.X
	page := decidePage(g.page, g.MinPage(), g.MaxPage(), distance, g.layout.PageWidth, g.config.ScrollBias, g.recognizer)
	if page != g.page {
		g.SetPage(page)
	} else {
		g.animate(g.page)
	}

	if g.recognizer != nil {
		g.recognizer.Reset()
	}
}

// settle finishes a page transition that a touch interrupted without moving.
func (g *Grid) settle() {
	if g.offset != -float32(g.page)*g.layout.container.Width {
		g.animate(g.page)
	}
}

func (g *Grid) selectAt(pos fyne.Position) {
	index, ok := g.ItemForPosition(pos)
	if !ok || g.delegate == nil {
		return
	}
	g.delegate.DidSelectItem(index, g.items[index].Handle)
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
