package grid

import (
	"image"
	"log/slog"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
)

// Grid is the state of one paginated grid: layout, items, current page, the
// content offset and the gesture in progress. All methods must be called from
// the goroutine that delivers the pointer events.
type Grid struct {
	config      Config
	orientation Orientation
	layout      Layout

	source     DataSource
	delegate   Delegate
	recognizer GestureRecognizer
	tweener    Tweener
	logger     *slog.Logger

	items  []*Item
	page   int
	offset float32
	touch  touchSession
	stop   func()

	// OnOffsetChanged is called whenever the horizontal content offset moves.
	OnOffsetChanged func(x float32)
	// OnTransitionEnd is called when a page transition or snap-back settles.
	OnTransitionEnd func(page int)
	// OnReload is called after the items were rebuilt from the data source.
	OnReload func()
}

// Option customises a Grid.
type Option func(*Grid)

// WithRecognizer replaces the default SwipeRecognizer.
func WithRecognizer(r GestureRecognizer) Option {
	return func(g *Grid) {
		g.recognizer = r
	}
}

// WithTweener replaces the fyne.Animation based transition.
func WithTweener(t Tweener) Option {
	return func(g *Grid) {
		g.tweener = t
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(g *Grid) {
		g.logger = l
	}
}

// WithOrientation sets the initial orientation.
func WithOrientation(o Orientation) Option {
	return func(g *Grid) {
		g.orientation = o
	}
}

// New creates an empty grid. Call Resize to give it a container size; the
// first size that fits a cell loads the data source.
func New(cfg Config, source DataSource, delegate Delegate, opts ...Option) *Grid {
	g := &Grid{
		config:     cfg,
		source:     source,
		delegate:   delegate,
		recognizer: NewSwipeRecognizer(),
		tweener:    fyneTweener{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetDataSource replaces the data source and reloads.
func (g *Grid) SetDataSource(source DataSource) {
	g.source = source
	g.ReloadData()
}

// SetDelegate replaces the selection delegate.
func (g *Grid) SetDelegate(delegate Delegate) {
	g.delegate = delegate
}

// Layout returns the current geometry.
func (g *Grid) Layout() Layout {
	return g.layout
}

// Offset returns the horizontal content offset.
func (g *Grid) Offset() float32 {
	return g.offset
}

// Orientation returns the margin preset in use.
func (g *Grid) Orientation() Orientation {
	return g.orientation
}

// Items returns the placement records in index order.
func (g *Grid) Items() []*Item {
	return g.items
}

// Touching reports whether a gesture is in progress.
func (g *Grid) Touching() bool {
	return g.touch.active()
}

// ItemForPosition hit-tests a position in container coordinates against the
// current page.
func (g *Grid) ItemForPosition(pos fyne.Position) (int, bool) {
	return itemForPosition(g.items, pos, g.page, g.layout.container.Width)
}

// Resize updates the container size.
func (g *Grid) Resize(size fyne.Size) {
	g.SetGeometry(size, g.orientation)
}

// SetOrientation switches the margin preset and recomputes the layout.
func (g *Grid) SetOrientation(o Orientation) {
	g.SetGeometry(g.layout.container, o)
}

// SetGeometry applies a container size and orientation in one relayout.
func (g *Grid) SetGeometry(size fyne.Size, o Orientation) {
	g.orientation = o
	g.relayout(computeLayout(g.config, o, size))
}

func (g *Grid) relayout(next Layout) {
	prev := g.layout
	g.layout = next

	if !next.sameGrid(prev) {
		g.logger.Debug("grid relayout",
			"rows", next.Rows, "cols", next.Cols, "orientation", g.orientation)
		g.stopTween()
		g.page = 0
		g.setOffset(0)
		g.ReloadData()
		return
	}

	if next.container == prev.container && next.top == prev.top && next.OffsetLeft == prev.OffsetLeft {
		return
	}

	// Same rows and cols: keep the items and the page, only move the cells.
	for i, item := range g.items {
		rect, ok := next.Placement(i)
		if !ok {
			continue
		}
		item.Rect = rect
		if item.Handle != nil {
			item.Handle.Place(rect)
		}
	}
	if !g.touch.active() {
		g.stopTween()
		g.setOffset(-float32(g.page) * next.container.Width)
	}
}

// ReloadData discards every item and rebuilds them from the data source.
func (g *Grid) ReloadData() {
	g.items = nil
	if g.source != nil {
		count := g.source.Count()
		for i := 0; i < count; i++ {
			g.add(i, g.source.TitleForIndex(i))
		}
	}

	if g.page >= g.MaxPage() {
		g.stopTween()
		g.page = 0
		g.setOffset(0)
	}

	if g.OnReload != nil {
		g.OnReload()
	}
}

func (g *Grid) add(index int, title string) {
	rect, ok := g.layout.Placement(len(g.items))
	if !ok {
		return
	}

	item := &Item{
		Index:  index,
		ID:     uuid.New(),
		Rect:   rect,
		Handle: g.source.ElementForIndex(index),
	}
	g.items = append(g.items, item)

	if item.Handle == nil {
		return
	}
	item.Handle.Place(rect)
	item.Handle.SetTitle(title)

	id := item.ID
	g.source.Thumbnail(index, func(img image.Image) {
		if img == nil {
			return
		}
		if index >= len(g.items) || g.items[index].ID != id {
			g.logger.Debug("discarding stale thumbnail", "index", index)
			return
		}
		g.items[index].Handle.SetThumbnail(img)
	})
}
