// Package canvas renders widgets into a fixed-size cell buffer.
package canvas

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/regenrek/dragbox/internal/rect"
	"github.com/regenrek/dragbox/internal/tui/icons"
	"github.com/regenrek/dragbox/internal/tui/mouse"
	"github.com/regenrek/dragbox/internal/tui/theme"
)

// Box is one widget as drawn.
type Box struct {
	ID      string
	Title   string
	Rect    mouse.Rect
	Color   lipgloss.Color
	Active  bool
	Locked  bool
	Handles map[rect.Handle]mouse.Rect
}

type cell struct {
	ch    rune
	style int
}

// Canvas is a grid of styled cells. Style 0 is unstyled.
type Canvas struct {
	w, h   int
	cells  []cell
	styles []lipgloss.Style
	glyphs icons.IconSet
}

// New returns a blank canvas of w x h cells.
func New(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{w: w, h: h, cells: make([]cell, w*h), styles: []lipgloss.Style{lipgloss.NewStyle()}, glyphs: icons.Active()}
	for i := range c.cells {
		c.cells[i] = cell{ch: ' '}
	}
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

func (c *Canvas) addStyle(s lipgloss.Style) int {
	c.styles = append(c.styles, s)
	return len(c.styles) - 1
}

func (c *Canvas) set(x, y int, ch rune, style int) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{ch: ch, style: style}
}

// At returns the rune drawn at (x, y), or zero when out of range.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0
	}
	return c.cells[y*c.w+x].ch
}

// Backdrop marks grid intersections so snapping is visible. Nothing is
// drawn for a one-cell grid.
func (c *Canvas) Backdrop(grid rect.Grid) {
	gx, gy := int(grid.X), int(grid.Y)
	if gx <= 1 && gy <= 1 {
		return
	}
	if gx < 1 {
		gx = 1
	}
	if gy < 1 {
		gy = 1
	}
	style := c.addStyle(theme.Backdrop)
	for y := 0; y < c.h; y += gy {
		for x := 0; x < c.w; x += gx {
			c.set(x, y, c.glyphs.Dot, style)
		}
	}
}

// DrawBox draws b over whatever is already on the canvas. Parts outside the
// canvas are clipped.
func (c *Canvas) DrawBox(b Box) {
	r := b.Rect
	if r.Empty() {
		return
	}
	frameStyle := theme.Frame
	if b.Active {
		frameStyle = theme.FrameActive
	}
	frame := c.addStyle(frameStyle.Foreground(b.Color))
	body := c.addStyle(lipgloss.NewStyle().Foreground(theme.TextSecondary))
	title := c.addStyle(lipgloss.NewStyle().Foreground(b.Color).Bold(true))

	border := lipgloss.RoundedBorder()
	right := r.X + r.W - 1
	bottom := r.Y + r.H - 1
	for y := r.Y; y <= bottom; y++ {
		for x := r.X; x <= right; x++ {
			ch := ' '
			style := body
			switch {
			case r.W == 1 || r.H == 1:
				ch, style = c.glyphs.Tiny, frame
			case x == r.X && y == r.Y:
				ch, style = firstRune(border.TopLeft), frame
			case x == right && y == r.Y:
				ch, style = firstRune(border.TopRight), frame
			case x == r.X && y == bottom:
				ch, style = firstRune(border.BottomLeft), frame
			case x == right && y == bottom:
				ch, style = firstRune(border.BottomRight), frame
			case y == r.Y || y == bottom:
				ch, style = firstRune(border.Top), frame
			case x == r.X || x == right:
				ch, style = firstRune(border.Left), frame
			}
			c.set(x, y, ch, style)
		}
	}
	if r.W > 4 {
		label := b.Title
		if b.Locked {
			label = c.glyphs.Lock + " " + label
		}
		label = ansi.Truncate(label, r.W-4, c.glyphs.Ellipsis)
		c.text(r.X+2, r.Y, label, title)
	}
	if r.H > 2 && r.W > 2 {
		info := ansi.Truncate(fmt.Sprintf("%dx%d @ %d,%d", r.W, r.H, r.X, r.Y), r.W-2, "")
		c.text(r.X+1, r.Y+1, info, body)
	}
	if len(b.Handles) > 0 {
		grip := c.addStyle(theme.Handle)
		for _, cellRect := range b.Handles {
			c.set(cellRect.X, cellRect.Y, c.glyphs.Handle, grip)
		}
	}
}

func (c *Canvas) text(x, y int, s string, style int) {
	for _, ch := range s {
		if ansi.StringWidth(string(ch)) != 1 {
			ch = '?'
		}
		c.set(x, y, ch, style)
		x++
	}
}

// Render returns the canvas as h lines of exactly w cells.
func (c *Canvas) Render() string {
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		current := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current <= 0 {
				out.WriteString(run.String())
			} else {
				out.WriteString(c.styles[current].Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteRune(cl.ch)
		}
		flush()
	}
	return out.String()
}

// Plain returns the canvas runes without styling, one line per row.
func (c *Canvas) Plain() string {
	var out strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < c.w; x++ {
			out.WriteRune(c.cells[y*c.w+x].ch)
		}
	}
	return out.String()
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
