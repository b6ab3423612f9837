package grid

import (
	"time"

	"fyne.io/fyne/v2"
)

const (
	defaultSwipeDistance = 30
	swipeMaxDuration     = 300 * time.Millisecond
)

// SwipeRecognizer recognizes a quick horizontal flick. It is the default
// tie-breaker of a Grid and learns about the gesture through ObserveTouch.
type SwipeRecognizer struct {
	// MinDistance is the horizontal travel a flick needs, in the same
	// units as the grid layout.
	MinDistance float32

	state     GestureState
	direction SwipeDirection

	tracking  bool
	start     fyne.Position
	startTime time.Time
}

// NewSwipeRecognizer returns an idle recognizer.
func NewSwipeRecognizer() *SwipeRecognizer {
	return &SwipeRecognizer{MinDistance: defaultSwipeDistance}
}

func (s *SwipeRecognizer) State() GestureState {
	return s.state
}

func (s *SwipeRecognizer) Direction() SwipeDirection {
	return s.direction
}

// Reset returns the recognizer to idle.
func (s *SwipeRecognizer) Reset() {
	s.state = GestureIdle
	s.direction = SwipeNone
	s.tracking = false
}

func (s *SwipeRecognizer) ObserveTouch(phase TouchPhase, pos fyne.Position, ts time.Time) {
	switch phase {
	case TouchStart:
		if s.tracking {
			return
		}
		s.tracking = true
		s.start = pos
		s.startTime = ts
		s.state = GestureIdle
		s.direction = SwipeNone
	case TouchMove, TouchEnd:
		if !s.tracking || s.state == GestureRecognized {
			return
		}
		s.evaluate(pos, ts)
		if phase == TouchEnd {
			s.tracking = false
		}
	case TouchCancel:
		s.Reset()
	}
}

func (s *SwipeRecognizer) evaluate(pos fyne.Position, ts time.Time) {
	if ts.Sub(s.startTime) > swipeMaxDuration {
		return
	}
	dx := pos.X - s.start.X
	dy := pos.Y - s.start.Y
	if abs32(dx) < s.MinDistance || abs32(dx) <= 2*abs32(dy) {
		return
	}

	s.state = GestureRecognized
	if dx < 0 {
		s.direction = SwipeLeft
	} else {
		s.direction = SwipeRight
	}
}

var _ GestureRecognizer = (*SwipeRecognizer)(nil)
var _ TouchObserver = (*SwipeRecognizer)(nil)
