package grid

import (
	"errors"
	"image"
	"time"

	"fyne.io/fyne/v2"
)

const (
	defaultCellSize           = 128
	defaultCellMargin         = 12
	defaultMoveThreshold      = 10
	defaultScrollBias         = 40
	defaultTransitionDuration = 300 * time.Millisecond
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid grid config")

// Orientation selects the outer margin preset.
type Orientation int

const (
	// Portrait is used when the container is taller than it is wide
	Portrait Orientation = iota
	// Landscape is used otherwise
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Margins are the outer margins between the container edge and the cells.
type Margins struct {
	Top, Left, Bottom, Right float32
}

// Config holds the cell metrics and gesture tuning of a grid.
type Config struct {
	CellSize           fyne.Size
	CellMargin         float32
	MoveThreshold      float32
	ScrollBias         float32
	TransitionDuration time.Duration
	Margins            map[Orientation]Margins
}

// DefaultConfig returns the stock 128px cell configuration.
func DefaultConfig() Config {
	return Config{
		CellSize:           fyne.NewSquareSize(defaultCellSize),
		CellMargin:         defaultCellMargin,
		MoveThreshold:      defaultMoveThreshold,
		ScrollBias:         defaultScrollBias,
		TransitionDuration: defaultTransitionDuration,
		Margins: map[Orientation]Margins{
			Portrait:  {Top: 20, Left: 10, Bottom: 20, Right: 15},
			Landscape: {Top: 40, Left: 64, Bottom: 20, Right: 64},
		},
	}
}

// Validate reports whether the cell metrics can produce a layout.
func (c Config) Validate() error {
	if c.CellSize.Width <= 0 || c.CellSize.Height <= 0 {
		return errors.Join(ErrInvalidConfig, errors.New("cell size must be positive"))
	}
	if c.CellMargin < 0 {
		return errors.Join(ErrInvalidConfig, errors.New("cell margin must not be negative"))
	}
	if c.MoveThreshold < 0 {
		return errors.Join(ErrInvalidConfig, errors.New("move threshold must not be negative"))
	}
	return nil
}

func (c Config) margins(o Orientation) Margins {
	return c.Margins[o]
}

// Rect is an axis aligned rectangle in content coordinates.
// X2 and Y2 are exclusive.
type Rect struct {
	X1, Y1, X2, Y2 float32
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p fyne.Position) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

func (r Rect) Position() fyne.Position {
	return fyne.NewPos(r.X1, r.Y1)
}

func (r Rect) Size() fyne.Size {
	return fyne.NewSize(r.X2-r.X1, r.Y2-r.Y1)
}

// VisualHandle is an externally owned visual element. The grid only positions
// it and attaches content, it never creates or destroys it.
type VisualHandle interface {
	Place(rect Rect)
	SetTitle(title string)
	SetThumbnail(img image.Image)
}

// DataSource supplies the items shown by a grid.
//
// Thumbnail is asynchronous and may call back at most once, or never. The
// callback must be delivered on the goroutine that drives the grid.
type DataSource interface {
	Count() int
	TitleForIndex(index int) string
	ElementForIndex(index int) VisualHandle
	Thumbnail(index int, callback func(image.Image))
}

// Delegate is told when an item is tapped.
type Delegate interface {
	DidSelectItem(index int, handle VisualHandle)
}

// DelegateFunc adapts a function to the Delegate interface.
type DelegateFunc func(index int, handle VisualHandle)

func (f DelegateFunc) DidSelectItem(index int, handle VisualHandle) {
	f(index, handle)
}

// GestureState is the recognition state of a GestureRecognizer.
type GestureState int

const (
	GestureIdle GestureState = iota
	GestureRecognized
)

// SwipeDirection is the direction of a recognized swipe.
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeLeft
	SwipeRight
)

// GestureRecognizer breaks ties when a drag was too short to change page.
type GestureRecognizer interface {
	State() GestureState
	Direction() SwipeDirection
	Reset()
}

// TouchObserver is implemented by recognizers that want to see the raw pointer
// stream. The grid forwards every event before acting on it.
type TouchObserver interface {
	ObserveTouch(phase TouchPhase, pos fyne.Position, ts time.Time)
}

// TouchPhase is the lifecycle phase of a pointer event.
type TouchPhase int

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
	TouchCancel
)

func (p TouchPhase) String() string {
	switch p {
	case TouchStart:
		return "start"
	case TouchMove:
		return "move"
	case TouchEnd:
		return "end"
	case TouchCancel:
		return "cancel"
	}
	return "unknown"
}
