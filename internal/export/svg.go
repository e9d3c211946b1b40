package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/trajsim/internal/ballistics"
	"github.com/san-kum/trajsim/internal/viz"
)

const Title = "Projectile Motion: Vacuum vs Air Resistance"

type SVGOptions struct {
	Width, Height int
	Background    string
	VacuumColor   string
	DragColor     string
	Ticks         int
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:       1000,
		Height:      600,
		Background:  "#ffffff",
		VacuumColor: "#1f77b4",
		DragColor:   "#d62728",
		Ticks:       5,
	}
}

type margins struct{ left, right, top, bottom float64 }

var plotMargins = margins{left: 70, right: 30, top: 50, bottom: 60}

// plotViewport fits the comparison into the drawable area inside the margins.
func plotViewport(cmp *ballistics.Comparison, w, h int) viz.Viewport {
	return viz.FitComparison(cmp,
		plotMargins.left, plotMargins.top,
		float64(w)-plotMargins.left-plotMargins.right,
		float64(h)-plotMargins.top-plotMargins.bottom)
}

// ComparisonToSVG draws both trajectories with axes, legend and a summary box.
func ComparisonToSVG(cmp *ballistics.Comparison, opts SVGOptions) string {
	def := DefaultSVGOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.Ticks <= 0 {
		opts.Ticks = def.Ticks
	}

	vp := plotViewport(cmp, opts.Width, opts.Height)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">
<rect width="100%%" height="100%%" fill="%s"/>
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.Background))

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="30" text-anchor="middle" font-size="18" font-weight="bold">%s</text>
`, float64(opts.Width)/2, Title))

	writeAxes(&sb, vp, opts.Ticks)

	writePath(&sb, vp, cmp.Vacuum, opts.VacuumColor, "vacuum")
	writePath(&sb, vp, cmp.Drag, opts.DragColor, "drag")

	writeLegend(&sb, vp, opts)
	writeSummaryBox(&sb, vp, cmp)

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeAxes(sb *strings.Builder, vp viz.Viewport, ticks int) {
	x0, y0 := vp.Map(0, 0)
	x1, _ := vp.Map(vp.XMax, 0)
	_, y1 := vp.Map(0, vp.YMax)

	sb.WriteString(`<g stroke="#000000" stroke-width="1">
`)
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x0, y0, x1, y0))
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x0, y0, x0, y1))
	sb.WriteString("</g>\n")

	sb.WriteString(`<g font-size="11" fill="#333333">
`)
	for i := 0; i <= ticks; i++ {
		f := float64(i) / float64(ticks)

		wx := f * vp.XMax
		px, _ := vp.Map(wx, 0)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#dddddd"/>
`, px, y0, px, y1))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle">%.0f</text>
`, px, y0+16, wx))

		wy := f * vp.YMax
		_, py := vp.Map(0, wy)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#dddddd"/>
`, x0, py, x1, py))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="end">%.1f</text>
`, x0-6, py+4, wy))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-size="13">Horizontal Distance (m)</text>
`, (x0+x1)/2, y0+40))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-size="13" transform="rotate(-90 %.1f %.1f)">Vertical Height (m)</text>
`, x0-50, (y0+y1)/2, x0-50, (y0+y1)/2))
}

func writePath(sb *strings.Builder, vp viz.Viewport, traj ballistics.Trajectory, color, id string) {
	if len(traj) == 0 {
		return
	}

	sb.WriteString(fmt.Sprintf(`<path id="%s" fill="none" stroke="%s" stroke-width="2" d="M`, id, color))
	for i, s := range traj {
		x, y := vp.Map(s.X, s.Y)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString(`"/>
`)
}

func writeLegend(sb *strings.Builder, vp viz.Viewport, opts SVGOptions) {
	x := vp.Left + vp.Width - 170
	y := vp.Top + 10

	sb.WriteString(fmt.Sprintf(`<g font-size="12">
<rect x="%.1f" y="%.1f" width="160" height="48" fill="#ffffff" stroke="#999999"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
<text x="%.1f" y="%.1f">Vacuum</text>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
<text x="%.1f" y="%.1f">With Air Resistance</text>
</g>
`,
		x, y,
		x+8, y+16, x+32, y+16, opts.VacuumColor,
		x+40, y+20,
		x+8, y+36, x+32, y+36, opts.DragColor,
		x+40, y+40))
}

func writeSummaryBox(sb *strings.Builder, vp viz.Viewport, cmp *ballistics.Comparison) {
	x := vp.Left + 10
	y := vp.Top + 10

	lines := []string{
		"VACUUM",
		fmt.Sprintf("Range: %.1f m", cmp.VacuumSummary.Range),
		fmt.Sprintf("Height: %.1f m", cmp.VacuumSummary.MaxHeight),
		fmt.Sprintf("Time: %.2f s", cmp.VacuumSummary.FlightTime),
		"",
		"AIR DRAG",
		fmt.Sprintf("Range: %.1f m", cmp.DragSummary.Range),
		fmt.Sprintf("Height: %.1f m", cmp.DragSummary.MaxHeight),
		fmt.Sprintf("Time: %.2f s", cmp.DragSummary.FlightTime),
	}

	sb.WriteString(fmt.Sprintf(`<g font-size="11" font-family="monospace">
<rect x="%.1f" y="%.1f" width="150" height="%d" fill="#f5deb3" fill-opacity="0.8" stroke="#999999"/>
`, x, y, 14*len(lines)+10))
	for i, line := range lines {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">%s</text>
`, x+8, y+18+float64(14*i), line))
	}
	sb.WriteString("</g>\n")
}
