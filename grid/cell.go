package grid

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Cell is the Fyne VisualHandle: a placeholder icon or box art thumbnail with
// the title underneath.
type Cell struct {
	widget.BaseWidget

	icon      *widget.Icon
	thumbnail *canvas.Image
	label     *widget.Label
	bg        *canvas.Rectangle
}

// NewCell creates an empty cell.
func NewCell() *Cell {
	c := &Cell{
		icon:      widget.NewIcon(theme.FileApplicationIcon()),
		thumbnail: canvas.NewImageFromImage(nil),
		label:     widget.NewLabel(""),
		bg:        canvas.NewRectangle(theme.Color(theme.ColorNameSelection)),
	}
	c.thumbnail.FillMode = canvas.ImageFillContain
	c.thumbnail.Hide()
	c.bg.Hide()
	c.label.Alignment = fyne.TextAlignCenter
	c.label.Truncation = fyne.TextTruncateEllipsis
	c.ExtendBaseWidget(c)
	return c
}

func (c *Cell) CreateRenderer() fyne.WidgetRenderer {
	return &cellRenderer{cell: c}
}

// Place moves the cell to its rectangle in content coordinates.
func (c *Cell) Place(r Rect) {
	c.Move(r.Position())
	c.Resize(r.Size())
}

func (c *Cell) SetTitle(title string) {
	c.label.SetText(title)
}

// SetThumbnail swaps the placeholder icon for img.
func (c *Cell) SetThumbnail(img image.Image) {
	if img == nil {
		return
	}
	c.thumbnail.Image = img
	c.thumbnail.Refresh()
	c.icon.Hide()
	c.thumbnail.Show()
	c.Refresh()
}

// Title returns the text shown under the artwork.
func (c *Cell) Title() string {
	return c.label.Text
}

// HasThumbnail reports whether box art replaced the placeholder.
func (c *Cell) HasThumbnail() bool {
	return c.thumbnail.Image != nil
}

// SetHighlighted shows or hides the selection background.
func (c *Cell) SetHighlighted(on bool) {
	if on {
		c.bg.Show()
	} else {
		c.bg.Hide()
	}
	c.Refresh()
}

type cellRenderer struct {
	cell *Cell
}

func (r *cellRenderer) Layout(size fyne.Size) {
	r.cell.bg.Resize(size)

	labelHeight := r.cell.label.MinSize().Height
	side := fyne.Min(size.Width, size.Height-labelHeight) - theme.Padding()*2
	if side < 0 {
		side = 0
	}
	art := fyne.NewSquareSize(side)
	artPos := fyne.NewPos((size.Width-side)/2, theme.Padding())

	r.cell.icon.Resize(art)
	r.cell.icon.Move(artPos)
	r.cell.thumbnail.Resize(art)
	r.cell.thumbnail.Move(artPos)

	r.cell.label.Resize(fyne.NewSize(size.Width, labelHeight))
	r.cell.label.Move(fyne.NewPos(0, size.Height-labelHeight))
}

func (r *cellRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(defaultCellSize)
}

func (r *cellRenderer) Refresh() {
	r.cell.bg.Refresh()
	r.cell.icon.Refresh()
	r.cell.thumbnail.Refresh()
	r.cell.label.Refresh()
}

func (r *cellRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.cell.bg, r.cell.icon, r.cell.thumbnail, r.cell.label}
}

func (r *cellRenderer) Destroy() {}

var _ VisualHandle = (*Cell)(nil)
