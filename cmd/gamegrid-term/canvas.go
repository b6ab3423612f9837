package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// screen is a fixed size character buffer. Every rune carries an index into
// styles, 0 being unstyled. Writes outside the buffer are dropped, which is
// how cells sliding off the edge get clipped.
type screen struct {
	width, height int
	runes         [][]rune
	marks         [][]int
	styles        []lipgloss.Style
}

func newScreen(width, height int) *screen {
	s := &screen{
		width:  width,
		height: height,
		runes:  make([][]rune, height),
		marks:  make([][]int, height),
		styles: []lipgloss.Style{lipgloss.NewStyle()},
	}
	for y := range height {
		s.runes[y] = []rune(strings.Repeat(" ", width))
		s.marks[y] = make([]int, width)
	}
	return s
}

func (s *screen) addStyle(st lipgloss.Style) int {
	s.styles = append(s.styles, st)
	return len(s.styles) - 1
}

func (s *screen) set(x, y int, r rune, style int) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.runes[y][x] = r
	s.marks[y][x] = style
}

func (s *screen) text(x, y int, text string, style int) {
	for i, r := range []rune(text) {
		s.set(x+i, y, r, style)
	}
}

// box draws a rounded border of w×h with its top left corner at x,y.
func (s *screen) box(x, y, w, h, style int) {
	if w < 2 || h < 2 {
		return
	}
	for i := 1; i < w-1; i++ {
		s.set(x+i, y, '─', style)
		s.set(x+i, y+h-1, '─', style)
	}
	for j := 1; j < h-1; j++ {
		s.set(x, y+j, '│', style)
		s.set(x+w-1, y+j, '│', style)
	}
	s.set(x, y, '╭', style)
	s.set(x+w-1, y, '╮', style)
	s.set(x, y+h-1, '╰', style)
	s.set(x+w-1, y+h-1, '╯', style)
}

func (s *screen) render() string {
	var out strings.Builder
	for y := range s.height {
		if y > 0 {
			out.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= s.width; x++ {
			if x < s.width && s.marks[y][x] == s.marks[y][start] {
				continue
			}
			run := string(s.runes[y][start:x])
			if mark := s.marks[y][start]; mark == 0 {
				out.WriteString(run)
			} else {
				out.WriteString(s.styles[mark].Render(run))
			}
			start = x
		}
	}
	return out.String()
}
