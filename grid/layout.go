package grid

import (
	"math"

	"fyne.io/fyne/v2"
)

// Layout is the geometry derived from a container size and the cell metrics.
type Layout struct {
	Rows, Cols int
	PageWidth  float32
	OffsetLeft float32

	container fyne.Size
	cell      fyne.Size
	margin    float32
	top       float32
}

func computeLayout(cfg Config, o Orientation, container fyne.Size) Layout {
	m := cfg.margins(o)
	stepX := cfg.CellSize.Width + cfg.CellMargin
	stepY := cfg.CellSize.Height + cfg.CellMargin

	l := Layout{
		container: container,
		cell:      cfg.CellSize,
		margin:    cfg.CellMargin,
		top:       m.Top,
	}
	if stepX <= 0 || stepY <= 0 {
		return l
	}

	l.Cols = floorNonNegative((container.Width - m.Left - m.Right) / stepX)
	l.Rows = floorNonNegative((container.Height - m.Top - m.Bottom) / stepY)
	l.PageWidth = float32(l.Cols)*stepX + m.Left + m.Right

	// Centre the block of cols cells and cols-1 gutters.
	block := stepX*float32(l.Cols) - cfg.CellMargin
	l.OffsetLeft = float32(math.Floor(float64(container.Width-block) / 2))
	return l
}

func floorNonNegative(v float32) int {
	if v <= 0 || math.IsNaN(float64(v)) {
		return 0
	}
	return int(math.Floor(float64(v)))
}

// ItemsPerPage is rows*cols, zero when nothing fits.
func (l Layout) ItemsPerPage() int {
	return l.Rows * l.Cols
}

// sameGrid reports whether rows and cols match.
func (l Layout) sameGrid(o Layout) bool {
	return l.Rows == o.Rows && l.Cols == o.Cols
}

// Placement returns the cell rectangle for the n-th item, and false when no
// cell fits in the container.
func (l Layout) Placement(n int) (Rect, bool) {
	perPage := l.ItemsPerPage()
	if perPage <= 0 || n < 0 {
		return Rect{}, false
	}

	page := n / perPage
	onPage := n % perPage
	row := onPage / l.Cols
	col := onPage % l.Cols

	x := l.container.Width*float32(page) + l.OffsetLeft + (l.cell.Width+l.margin)*float32(col)
	y := l.top + (l.cell.Height+l.margin)*float32(row)
	return Rect{X1: x, Y1: y, X2: x + l.cell.Width, Y2: y + l.cell.Height}, true
}

// pageCount is ceil(count/perPage), zero when nothing fits.
func (l Layout) pageCount(count int) int {
	perPage := l.ItemsPerPage()
	if perPage <= 0 || count <= 0 {
		return 0
	}
	return (count + perPage - 1) / perPage
}
