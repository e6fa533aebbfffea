package chart

import (
	"image/color"

	"gopkg.in/go-playground/colors.v1" //nolint
)

const barAlpha = 0xcc

var (
	primaryColor   = mustParse("#2E86AB", barAlpha)
	secondaryColor = mustParse("#A23B72", barAlpha)
	axisColor      = mustParse("#CCCCCC", 0xff)
	gridColor      = mustParse("#B0B0B0", 0x4d)
	headerColor    = mustParse("#2E86AB", 0xff)
	stripeColor    = mustParse("#F5F5F5", 0xff)

	// seriesPalette colours grouped bars, cycling by series index.
	seriesPalette = []color.NRGBA{
		primaryColor,
		secondaryColor,
		mustParse("#F18F01", barAlpha),
		mustParse("#C73E1D", barAlpha),
	}
)

// SeriesColor returns the palette colour of the i-th series.
func SeriesColor(i int) color.NRGBA {
	return seriesPalette[i%len(seriesPalette)]
}

func mustParse(hex string, alpha uint8) color.NRGBA {
	clr, err := colors.ParseHEX(hex)
	if err != nil {
		panic(err)
	}
	rgb := clr.ToRGB()

	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: alpha}
}
