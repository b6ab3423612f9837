package grid

// MinPage is always 0.
func (g *Grid) MinPage() int {
	return 0
}

// MaxPage is one past the last page, 0 when the grid is empty or no cell fits.
func (g *Grid) MaxPage() int {
	return g.layout.pageCount(len(g.items))
}

// PageCount is the number of pages.
func (g *Grid) PageCount() int {
	return g.MaxPage() - g.MinPage()
}

// Page returns the current page.
func (g *Grid) Page() int {
	return g.page
}

// SetPage moves to page p. It is a no-op when p is the current page or lies
// outside [MinPage, MaxPage).
func (g *Grid) SetPage(p int) {
	if p == g.page || p < g.MinPage() || p >= g.MaxPage() {
		return
	}
	g.logger.Debug("page changed", "from", g.page, "to", p)
	g.page = p
	g.animate(p)
}

// NextPage moves one page forward when possible.
func (g *Grid) NextPage() {
	g.SetPage(g.page + 1)
}

// PreviousPage moves one page back when possible.
func (g *Grid) PreviousPage() {
	g.SetPage(g.page - 1)
}
