package grid

import (
	"fyne.io/fyne/v2"
	"github.com/google/uuid"
)

// Item is the placement record of one data source entry.
type Item struct {
	Index  int
	ID     uuid.UUID
	Rect   Rect
	Handle VisualHandle
}

// itemForPosition translates a container position into content coordinates
// for the given page and returns the first item containing it.
func itemForPosition(items []*Item, pos fyne.Position, page int, containerWidth float32) (int, bool) {
	p := fyne.NewPos(pos.X+float32(page)*containerWidth, pos.Y)
	for i, item := range items {
		if item.Rect.Contains(p) {
			return i, true
		}
	}
	return -1, false
}
