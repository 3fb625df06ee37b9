package pdftext

import (
	"math"

	"github.com/mutasi-dev/mutasi/internal/model"
)

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(math.Round(v * 255))
}

func gray(g float64) model.RGB {
	c := channel(g)
	return model.RGB{R: c, G: c, B: c}
}

func rgb(r, g, b float64) model.RGB {
	return model.RGB{R: channel(r), G: channel(g), B: channel(b)}
}

func cmyk(c, m, y, k float64) model.RGB {
	return rgb((1-c)*(1-k), (1-m)*(1-k), (1-y)*(1-k))
}

// fillColor interprets sc/scn operands by component count. Pattern names
// and other non-numeric operands are ignored.
func fillColor(comps []float64, prev model.RGB) model.RGB {
	switch len(comps) {
	case 1:
		return gray(comps[0])
	case 3:
		return rgb(comps[0], comps[1], comps[2])
	case 4:
		return cmyk(comps[0], comps[1], comps[2], comps[3])
	}
	return prev
}
