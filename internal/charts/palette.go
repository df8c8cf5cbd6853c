package charts

import (
	"fmt"
	"math/rand"
)

// palette is the fixed ordered colour set shared by all multi-series
// widgets.
var palette = []string{
	"rgba(255, 99, 132, 0.8)",
	"rgba(54, 162, 235, 0.8)",
	"rgba(255, 206, 86, 0.8)",
	"rgba(75, 192, 192, 0.8)",
	"rgba(153, 102, 255, 0.8)",
	"rgba(255, 159, 64, 0.8)",
	"rgba(199, 199, 199, 0.8)",
	"rgba(83, 102, 255, 0.8)",
	"rgba(78, 205, 196, 0.8)",
	"rgba(255, 99, 255, 0.8)",
	"rgba(107, 91, 149, 0.8)",
	"rgba(66, 133, 244, 0.8)",
}

// Colors returns n colours, drawing from the palette first and
// synthesizing random RGB values beyond its length. The overflow is
// not seeded; reproducibility across renders is not required.
func Colors(n int) []string {
	colors := make([]string, 0, n)
	colors = append(colors, palette[:min(n, len(palette))]...)

	for i := len(colors); i < n; i++ {
		colors = append(colors, fmt.Sprintf(
			"rgba(%d, %d, %d, 0.8)",
			rand.Intn(256),
			rand.Intn(256),
			rand.Intn(256),
		))
	}

	return colors
}
