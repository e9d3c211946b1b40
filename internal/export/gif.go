package export

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/san-kum/trajsim/internal/ballistics"
	"github.com/san-kum/trajsim/internal/viz"
)

type GIFOptions struct {
	Width, Height int
	// MaxFrames caps the frame count by striding over samples; 0 keeps all.
	MaxFrames int
	// Delay and HoldDelay are in hundredths of a second.
	Delay     int
	HoldDelay int
}

func DefaultGIFOptions() GIFOptions {
	return GIFOptions{
		Width:     640,
		Height:    400,
		MaxFrames: 300,
		Delay:     4,
		HoldDelay: 100,
	}
}

const (
	bgIndex uint8 = iota
	axisIndex
	vacuumIndex
	dragIndex
	markerIndex
)

var gifPalette = color.Palette{
	color.White,
	color.RGBA{0x60, 0x60, 0x60, 0xff},
	color.RGBA{0x1f, 0x77, 0xb4, 0xff},
	color.RGBA{0xd6, 0x27, 0x28, 0xff},
	color.Black,
}

const gifMargin = 20

// WriteGIF animates both flights growing sample by sample and holds on the
// final frame.
func WriteGIF(w io.Writer, cmp *ballistics.Comparison, opts GIFOptions) error {
	def := DefaultGIFOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.Delay <= 0 {
		opts.Delay = def.Delay
	}
	if opts.HoldDelay <= 0 {
		opts.HoldDelay = def.HoldDelay
	}

	indices := cmp.FrameIndices(opts.MaxFrames)
	if len(indices) == 0 {
		return errors.New("export: nothing to animate")
	}

	vp := viz.FitComparison(cmp, gifMargin, gifMargin,
		float64(opts.Width-2*gifMargin), float64(opts.Height-2*gifMargin))

	anim := gif.GIF{LoopCount: 0}
	for k, i := range indices {
		img := image.NewPaletted(image.Rect(0, 0, opts.Width, opts.Height), gifPalette)
		drawAxes(img, vp)
		drawPath(img, vp, cmp.Vacuum.Head(i+1), vacuumIndex)
		drawPath(img, vp, cmp.Drag.Head(i+1), dragIndex)
		for _, traj := range []ballistics.Trajectory{cmp.Vacuum, cmp.Drag} {
			if traj.Len() > 0 {
				s := traj.At(i)
				drawMarker(img, vp, s.X, s.Y)
			}
		}

		delay := opts.Delay
		if k == len(indices)-1 {
			delay = opts.HoldDelay
		}
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, delay)
	}

	return gif.EncodeAll(w, &anim)
}

func drawAxes(img *image.Paletted, vp viz.Viewport) {
	x0, y0 := vp.MapInt(0, 0)
	x1, _ := vp.MapInt(vp.XMax, 0)
	_, y1 := vp.MapInt(0, vp.YMax)
	drawLine(img, x0, y0, x1, y0, axisIndex)
	drawLine(img, x0, y0, x0, y1, axisIndex)
}

func drawPath(img *image.Paletted, vp viz.Viewport, traj ballistics.Trajectory, c uint8) {
	if len(traj) == 0 {
		return
	}
	px, py := vp.MapInt(traj[0].X, traj[0].Y)
	img.SetColorIndex(px, py, c)
	for _, s := range traj[1:] {
		x, y := vp.MapInt(s.X, s.Y)
		drawLine(img, px, py, x, y, c)
		px, py = x, y
	}
}

func drawMarker(img *image.Paletted, vp viz.Viewport, x, y float64) {
	cx, cy := vp.MapInt(x, y)
	const r = 4
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				img.SetColorIndex(cx+dx, cy+dy, markerIndex)
			}
		}
	}
}

// drawLine is Bresenham's algorithm; out-of-bounds pixels are dropped by
// SetColorIndex.
func drawLine(img *image.Paletted, x0, y0, x1, y1 int, c uint8) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
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
		img.SetColorIndex(x0, y0, c)
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

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
