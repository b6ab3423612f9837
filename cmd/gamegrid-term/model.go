package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"github.com/alexballas/xpagegrid/grid"
	"github.com/alexballas/xpagegrid/library"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dotStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	activeDot     = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

// A flick across a third of a cell is enough in a terminal.
const termSwipeDistance = 6

// termConfig measures the grid in terminal cells.
func termConfig() grid.Config {
	cfg := grid.DefaultConfig()
	cfg.CellSize = fyne.NewSize(18, 6)
	cfg.CellMargin = 2
	cfg.MoveThreshold = 2
	cfg.ScrollBias = 4
	cfg.Margins = map[grid.Orientation]grid.Margins{
		grid.Portrait:  {Top: 1, Left: 1, Bottom: 3, Right: 1},
		grid.Landscape: {Top: 1, Left: 2, Bottom: 3, Right: 2},
	}
	return cfg
}

type model struct {
	engine *grid.Grid
	source *gameSource

	width, height int
	selected      int
	status        string
	pressed       bool
	now           func() time.Time
}

func newModel(games []library.Game, thumbnails *grid.ThumbnailManager) *model {
	m := &model{
		source:   &gameSource{games: games, thumbnails: thumbnails},
		selected: -1,
		now:      time.Now,
	}
	swipe := grid.NewSwipeRecognizer()
	swipe.MinDistance = termSwipeDistance
	m.engine = grid.New(termConfig(), m.source, grid.DelegateFunc(m.didSelect),
		grid.WithTweener(grid.ImmediateTweener()), grid.WithRecognizer(swipe))
	return m
}

func (m *model) didSelect(index int, _ grid.VisualHandle) {
	m.selected = index
	g := m.source.games[index]
	m.status = g.Title + "  " + g.Path
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// Terminal cells are about twice as tall as they are wide.
		o := grid.Landscape
		if msg.Height*2 > msg.Width {
			o = grid.Portrait
		}
		m.engine.SetGeometry(fyne.NewSize(float32(msg.Width), float32(msg.Height)), o)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h", "pgup":
			m.engine.PreviousPage()
		case "right", "l", "pgdown":
			m.engine.NextPage()
		case "home", "g":
			m.engine.SetPage(m.engine.MinPage())
		case "end", "G":
			m.engine.SetPage(m.engine.MaxPage() - 1)
		case "esc":
			if m.pressed {
				m.pressed = false
				m.engine.OnTouchEvent(grid.TouchCancel, fyne.Position{}, m.now())
			}
		}

	case thumbnailMsg:
		msg.callback(msg.img)
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	pos := fyne.NewPos(float32(msg.X), float32(msg.Y))
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			m.engine.PreviousPage()
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			m.engine.NextPage()
		case tea.MouseButtonLeft:
			m.pressed = true
			m.engine.OnTouchEvent(grid.TouchStart, pos, m.now())
		}
	case tea.MouseActionMotion:
		if m.pressed {
			m.engine.OnTouchEvent(grid.TouchMove, pos, m.now())
		}
	case tea.MouseActionRelease:
		if m.pressed {
			m.pressed = false
			m.engine.OnTouchEvent(grid.TouchEnd, pos, m.now())
		}
	}
}

func (m *model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	s := newScreen(m.width, m.height)
	border := s.addStyle(borderStyle)
	selected := s.addStyle(selectedStyle)
	title := s.addStyle(titleStyle)

	offset := m.engine.Offset()
	for _, item := range m.engine.Items() {
		cell, ok := item.Handle.(*termCell)
		if !ok {
			continue
		}
		style := border
		if item.Index == m.selected {
			style = selected
		}
		m.drawCell(s, cell, offset, style, title)
	}

	m.drawDots(s)
	s.text(1, m.height-1, m.statusLine(), s.addStyle(statusStyle))
	return s.render()
}

func (m *model) drawCell(s *screen, cell *termCell, offset float32, border, title int) {
	x := round(cell.rect.X1 + offset)
	y := round(cell.rect.Y1)
	w := round(cell.rect.X2) - round(cell.rect.X1)
	h := round(cell.rect.Y2) - round(cell.rect.Y1)
	if x+w <= 0 || x >= s.width {
		return
	}

	s.box(x, y, w, h, border)
	if cell.hasArt {
		art := s.addStyle(lipgloss.NewStyle().Foreground(cell.art))
		for j := 1; j < h-2; j++ {
			s.text(x+1, y+j, strings.Repeat("▓", max(w-2, 0)), art)
		}
	}

	text := truncate(cell.title, w-2)
	s.text(x+1+(w-2-len([]rune(text)))/2, y+h-2, text, title)
}

func (m *model) drawDots(s *screen) {
	pages := m.engine.PageCount()
	if pages == 0 {
		return
	}
	normal := s.addStyle(dotStyle)
	active := s.addStyle(activeDot)

	x := (m.width - (pages*2 - 1)) / 2
	for p := range pages {
		if p == m.engine.Page() {
			s.set(x+p*2, m.height-2, '●', active)
		} else {
			s.set(x+p*2, m.height-2, '○', normal)
		}
	}
}

func (m *model) statusLine() string {
	if m.status != "" {
		return m.status
	}
	if len(m.source.games) == 0 {
		return "no games, scan a folder with gamegrid scan  q quits"
	}
	return fmt.Sprintf("%d games  page %d/%d  q quits",
		len(m.source.games), m.engine.Page()+1, m.engine.PageCount())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
