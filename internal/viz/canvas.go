package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/trajsim/internal/ballistics"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

// Set sets a pixel at (x, y) in sub-pixel coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawTrajectory joins consecutive samples with line segments.
func (c *Canvas) DrawTrajectory(vp Viewport, traj ballistics.Trajectory) {
	if len(traj) == 0 {
		return
	}
	px, py := vp.MapInt(traj[0].X, traj[0].Y)
	c.Set(px, py)
	for _, s := range traj[1:] {
		x, y := vp.MapInt(s.X, s.Y)
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}
}

// DrawMarker fills a 2x2 sub-pixel block centred on (x, y).
func (c *Canvas) DrawMarker(x, y int) {
	for dy := -1; dy <= 0; dy++ {
		for dx := -1; dx <= 0; dx++ {
			c.Set(x+dx, y+dy)
		}
	}
}

// DrawAxes draws the ground line and the launch axis.
func (c *Canvas) DrawAxes() {
	w, h := c.SubWidth()-1, c.SubHeight()-1
	c.DrawLine(0, h, w, h)
	c.DrawLine(0, 0, 0, h)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Layer is a canvas rendered in its own style.
type Layer struct {
	Canvas *Canvas
	Style  lipgloss.Style
}

// Compose merges same-sized layers cell by cell. Dots from every layer are
// kept; a cell takes the style of the last layer that set a dot in it.
func Compose(layers ...Layer) string {
	if len(layers) == 0 {
		return ""
	}
	base := layers[0].Canvas

	var b strings.Builder
	var run []rune
	owner := -1

	flush := func() {
		if len(run) == 0 {
			return
		}
		if owner < 0 {
			b.WriteString(string(run))
		} else {
			b.WriteString(layers[owner].Style.Render(string(run)))
		}
		run = run[:0]
	}

	for row := 0; row < base.Height; row++ {
		for col := 0; col < base.Width; col++ {
			cell := rune(0x2800)
			top := -1
			for i, l := range layers {
				r := l.Canvas.Grid[row][col]
				if r > 0x2800 {
					cell |= r
					top = i
				}
			}
			if top != owner {
				flush()
				owner = top
			}
			run = append(run, cell)
		}
		flush()
		owner = -1
		b.WriteByte('\n')
	}
	return b.String()
}
