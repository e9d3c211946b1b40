package viz

import "github.com/san-kum/trajsim/internal/ballistics"

// headroom is the margin left beyond the furthest range and peak height.
const headroom = 1.1

// Viewport maps world coordinates (metres, y up) onto a pixel rectangle
// whose y axis points down.
type Viewport struct {
	XMin, XMax    float64
	YMin, YMax    float64
	Left, Top     float64
	Width, Height float64
}

func NewViewport(xmax, ymax float64, left, top, width, height float64) Viewport {
	return Viewport{
		XMax:   xmax,
		YMax:   ymax,
		Left:   left,
		Top:    top,
		Width:  width,
		Height: height,
	}
}

// FitComparison sizes the world window to 1.1 times the largest range and
// peak height of either path. A zero extent borrows the other one.
func FitComparison(cmp *ballistics.Comparison, left, top, width, height float64) Viewport {
	xmax := headroom * max(cmp.VacuumSummary.Range, cmp.DragSummary.Range)
	ymax := headroom * max(cmp.VacuumSummary.MaxHeight, cmp.DragSummary.MaxHeight)

	const minSpan = 1e-9
	if xmax < minSpan {
		xmax = ymax
	}
	if ymax < minSpan {
		ymax = xmax
	}
	if xmax < minSpan {
		xmax, ymax = 1, 1
	}
	return NewViewport(xmax, ymax, left, top, width, height)
}

// ForCanvas fits cmp onto the canvas sub-pixel grid.
func ForCanvas(cmp *ballistics.Comparison, c *Canvas) Viewport {
	return FitComparison(cmp, 0, 0, float64(c.SubWidth()-1), float64(c.SubHeight()-1))
}

// Map converts a world point to pixel coordinates.
func (v Viewport) Map(x, y float64) (float64, float64) {
	px := v.Left + (x-v.XMin)/(v.XMax-v.XMin)*v.Width
	py := v.Top + v.Height - (y-v.YMin)/(v.YMax-v.YMin)*v.Height
	return px, py
}

// MapInt is Map rounded to the nearest pixel.
func (v Viewport) MapInt(x, y float64) (int, int) {
	px, py := v.Map(x, y)
	return int(px + 0.5), int(py + 0.5)
}
