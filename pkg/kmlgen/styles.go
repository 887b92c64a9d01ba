package kmlgen

import (
	"fmt"
	"image/color"

	"github.com/mazznoer/colorgrad"
	kml "github.com/twpayne/go-kml"
	"github.com/twpayne/go-kml/icon"
)

const (
	NUM_GRAD = 20
	GRAD_RED = 0
	GRAD_RGN = 1
	GRAD_YOR = 2
)

const (
	BS_NAME_DESC = iota
	BS_DESC_ONLY
)

func GradientIndex(name string) int {
	switch name {
	case "rdgn":
		return GRAD_RGN
	case "yor":
		return GRAD_YOR
	default:
		return GRAD_RED
	}
}

// gradientColours samples NUM_GRAD+1 evenly spaced colours. Sequential ramps
// are reversed so the first places get the strongest colour.
func gradientColours(gidx int) []color.RGBA {
	var grad colorgrad.Gradient
	switch gidx {
	case GRAD_RGN:
		grad = colorgrad.RdYlGn()
	case GRAD_YOR:
		grad = colorgrad.YlOrRd()
	default:
		grad = colorgrad.Reds()
	}
	cols := make([]color.RGBA, 0, NUM_GRAD+1)
	for i := 0; i <= NUM_GRAD; i++ {
		k := i
		if gidx != GRAD_RGN {
			k = NUM_GRAD - i
		}
		r, g, b, _ := grad.At(float64(k) / NUM_GRAD).RGBA()
		cols = append(cols, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xa0})
	}
	return cols
}

func gradStyleID(step int) string {
	return fmt.Sprintf("styleGrad%03d", step*5)
}

// gradStep maps the 1-based placemark index onto a gradient step.
func gradStep(idx, total int) int {
	if total <= 1 {
		return 0
	}
	return (idx - 1) * NUM_GRAD / (total - 1)
}

func balloonStyle(bs uint8) *kml.CompoundElement {
	if bs == BS_NAME_DESC {
		return kml.BalloonStyle(kml.BgColor(color.RGBA{R: 0xde, G: 0xde, B: 0xde, A: 0x40}),
			kml.Text(`<b><font size="+2">$[name]</font></b><br/><br/>$[description]<br/>`))
	}
	return kml.BalloonStyle(kml.BgColor(color.RGBA{R: 0xde, G: 0xde, B: 0xde, A: 0x40}),
		kml.Text(`$[description]`))
}

func placeStyles(gidx int) []kml.Element {
	var styles []kml.Element
	for j, c := range gradientColours(gidx) {
		styles = append(styles, kml.SharedStyle(
			gradStyleID(j),
			kml.IconStyle(
				kml.Scale(0.8),
				kml.Color(c),
				kml.Icon(
					kml.Href(icon.PaletteHref(2, 18)),
				),
			),
		).Add(balloonStyle(BS_NAME_DESC)))
	}
	return styles
}
