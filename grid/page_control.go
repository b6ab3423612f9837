package grid

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const pageDotSize = 8

// pageControl is the row of dots under the grid, one per page.
type pageControl struct {
	widget.BaseWidget

	box    *fyne.Container
	dots   []*canvas.Circle
	active int
}

func newPageControl() *pageControl {
	p := &pageControl{box: container.NewHBox()}
	p.ExtendBaseWidget(p)
	return p
}

func (p *pageControl) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewCenter(p.box))
}

// setPages rebuilds the dots. An empty grid has none.
func (p *pageControl) setPages(count, active int) {
	p.dots = nil
	p.box.Objects = nil
	for range count {
		dot := canvas.NewCircle(theme.Color(theme.ColorNameDisabled))
		p.dots = append(p.dots, dot)
		p.box.Add(container.NewGridWrap(fyne.NewSquareSize(pageDotSize), dot))
	}
	p.setActive(active)
	p.box.Refresh()
}

func (p *pageControl) setActive(active int) {
	p.active = active
	for i, dot := range p.dots {
		if i == active {
			dot.FillColor = theme.Color(theme.ColorNamePrimary)
		} else {
			dot.FillColor = theme.Color(theme.ColorNameDisabled)
		}
		dot.Refresh()
	}
}
