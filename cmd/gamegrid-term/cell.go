package main

import (
	"fmt"
	"image"

	"github.com/alexballas/xpagegrid/grid"
	"github.com/alexballas/xpagegrid/library"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// termCell is a grid cell drawn with box characters. Box art is shown as a
// shaded fill in the average colour of the thumbnail.
type termCell struct {
	rect   grid.Rect
	title  string
	art    lipgloss.Color
	hasArt bool
}

func (c *termCell) Place(r grid.Rect)     { c.rect = r }
func (c *termCell) SetTitle(title string) { c.title = title }

func (c *termCell) SetThumbnail(img image.Image) {
	if img == nil {
		return
	}
	c.art = averageColor(img)
	c.hasArt = true
}

// averageColor samples img on a coarse raster.
func averageColor(img image.Image) lipgloss.Color {
	b := img.Bounds()
	stepX := max(b.Dx()/16, 1)
	stepY := max(b.Dy()/16, 1)

	var r, g, bl, n uint64
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		for x := b.Min.X; x < b.Max.X; x += stepX {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			r += uint64(cr >> 8)
			g += uint64(cg >> 8)
			bl += uint64(cb >> 8)
			n++
		}
	}
	if n == 0 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r/n, g/n, bl/n))
}

// thumbnailMsg carries a finished thumbnail back into the Update loop.
type thumbnailMsg struct {
	img      image.Image
	callback func(image.Image)
}

// gameSource serves catalog games as termCells.
type gameSource struct {
	games      []library.Game
	thumbnails *grid.ThumbnailManager
	send       func(tea.Msg)
}

func (s *gameSource) Count() int { return len(s.games) }

func (s *gameSource) TitleForIndex(index int) string {
	return s.games[index].Title
}

func (s *gameSource) ElementForIndex(int) grid.VisualHandle {
	return &termCell{}
}

func (s *gameSource) Thumbnail(index int, callback func(image.Image)) {
	path := s.games[index].Artwork
	if path == "" || s.thumbnails == nil {
		return
	}
	if img := s.thumbnails.LoadMemoryOnly(path); img != nil {
		callback(img)
		return
	}
	if s.send == nil {
		return
	}
	s.thumbnails.Load(path, func(img image.Image) {
		s.send(thumbnailMsg{img: img, callback: callback})
	})
}

var (
	_ grid.VisualHandle = (*termCell)(nil)
	_ grid.DataSource   = (*gameSource)(nil)
)
