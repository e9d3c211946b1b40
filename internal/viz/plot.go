package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/trajsim/internal/ballistics"
)

// Plot charts height against sample index for both paths. The shorter
// series holds its last value so both span the same width.
func Plot(cmp *ballistics.Comparison, width, height int) string {
	n := max(cmp.Frames(), 2)
	vac := make([]float64, n)
	drag := make([]float64, n)
	for i := range n {
		vac[i] = cmp.Vacuum.At(i).Y
		drag[i] = cmp.Drag.At(i).Y
	}

	return asciigraph.PlotMany([][]float64{vac, drag},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.Caption("height (m): vacuum blue, drag red"),
	)
}
