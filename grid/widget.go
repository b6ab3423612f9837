package grid

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const pageControlHeight = 20

// PagedGrid shows a Grid as a Fyne widget. Drags page through the grid, taps
// select an item.
type PagedGrid struct {
	widget.BaseWidget

	engine  *Grid
	content *fyne.Container
	pager   *pageControl
	root    *fyne.Container

	dragging bool
	lastDrag fyne.Position
	wheel    wheelPager
	now      func() time.Time
}

// NewPagedGrid creates a widget around a new Grid.
func NewPagedGrid(cfg Config, source DataSource, delegate Delegate, opts ...Option) *PagedGrid {
	g := &PagedGrid{
		content: container.NewWithoutLayout(),
		pager:   newPageControl(),
		now:     time.Now,
	}
	g.engine = New(cfg, source, delegate, opts...)
	g.engine.OnOffsetChanged = g.onOffsetChanged
	g.engine.OnTransitionEnd = g.pager.setActive
	g.engine.OnReload = g.onReload

	g.root = container.New(&resizeLayout{
		internal: &pagedGridLayout{grid: g},
		onResize: g.onResize,
		externalSize: func() fyne.Size {
			c := fyne.CurrentApp().Driver().CanvasForObject(g)
			if c == nil {
				return fyne.Size{}
			}
			return c.Size()
		},
	}, g.content, g.pager)

	g.ExtendBaseWidget(g)
	return g
}

// Engine exposes the underlying grid.
func (g *PagedGrid) Engine() *Grid {
	return g.engine
}

// ReloadData rebuilds the cells from the data source.
func (g *PagedGrid) ReloadData() {
	g.engine.ReloadData()
}

func (g *PagedGrid) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(g.root)
}

func (g *PagedGrid) Dragged(e *fyne.DragEvent) {
	now := g.now()
	if !g.dragging {
		g.dragging = true
		g.engine.OnTouchEvent(TouchStart, e.Position.Subtract(e.Dragged), now)
	}
	g.lastDrag = e.Position
	g.engine.OnTouchEvent(TouchMove, e.Position, now)
}

func (g *PagedGrid) DragEnd() {
	if !g.dragging {
		return
	}
	g.dragging = false
	g.engine.OnTouchEvent(TouchEnd, g.lastDrag, g.now())
}

func (g *PagedGrid) Tapped(e *fyne.PointEvent) {
	if g.dragging {
		return
	}
	if c := fyne.CurrentApp().Driver().CanvasForObject(g); c != nil {
		c.Focus(g)
	}
	now := g.now()
	g.engine.OnTouchEvent(TouchStart, e.Position, now)
	g.engine.OnTouchEvent(TouchEnd, e.Position, now)
}

func (g *PagedGrid) FocusGained() {}
func (g *PagedGrid) FocusLost()   {}
func (g *PagedGrid) TypedRune(rune) {}

// TypedKey pages with the arrow keys.
func (g *PagedGrid) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyLeft, fyne.KeyPageUp:
		g.engine.PreviousPage()
	case fyne.KeyRight, fyne.KeyPageDown:
		g.engine.NextPage()
	case fyne.KeyHome:
		g.engine.SetPage(g.engine.MinPage())
	case fyne.KeyEnd:
		g.engine.SetPage(g.engine.MaxPage() - 1)
	}
}

func (g *PagedGrid) onResize() {
	size := g.Size()
	o := Landscape
	if size.Height > size.Width {
		o = Portrait
	}
	g.engine.SetGeometry(size, o)
}

func (g *PagedGrid) onReload() {
	objects := make([]fyne.CanvasObject, 0, len(g.engine.Items()))
	for _, item := range g.engine.Items() {
		if o, ok := item.Handle.(fyne.CanvasObject); ok {
			objects = append(objects, o)
		}
	}
	g.content.Objects = objects
	g.pager.setPages(g.engine.PageCount(), g.engine.Page())
	g.onOffsetChanged(g.engine.Offset())
}

func (g *PagedGrid) onOffsetChanged(x float32) {
	g.content.Move(fyne.NewPos(x, 0))
	g.updateVisibility()
	g.content.Refresh()
}

// updateVisibility hides cells that are entirely outside the viewport.
func (g *PagedGrid) updateVisibility() {
	width := g.Size().Width
	offset := g.engine.Offset()
	for _, item := range g.engine.Items() {
		o, ok := item.Handle.(fyne.CanvasObject)
		if !ok {
			continue
		}
		left := item.Rect.X1 + offset
		right := item.Rect.X2 + offset
		if right <= 0 || left >= width {
			o.Hide()
		} else {
			o.Show()
		}
	}
}

type pagedGridLayout struct {
	grid *PagedGrid
}

func (l *pagedGridLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	g := l.grid
	g.content.Resize(size)
	g.content.Move(fyne.NewPos(g.engine.Offset(), 0))
	g.pager.Resize(fyne.NewSize(size.Width, pageControlHeight))
	g.pager.Move(fyne.NewPos(0, size.Height-pageControlHeight))
}

func (l *pagedGridLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	cfg := l.grid.engine.config
	return fyne.NewSize(cfg.CellSize.Width+cfg.CellMargin*2, cfg.CellSize.Height+pageControlHeight)
}

var (
	_ fyne.Draggable = (*PagedGrid)(nil)
	_ fyne.Tappable  = (*PagedGrid)(nil)
	_ fyne.Focusable = (*PagedGrid)(nil)
)
