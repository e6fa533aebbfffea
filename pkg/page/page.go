// Package page defines the renderable page contract shared by generators and the emitter,
// together with the static text pages of the report.
package page

import (
	"image/color"
	"regexp"
	"strings"

	"github.com/go-fonts/liberation/liberationsansbold"
	"github.com/go-fonts/liberation/liberationsansbolditalic"
	"github.com/go-fonts/liberation/liberationsansitalic"
	"github.com/pkg/errors"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Page is a renderable report page.
// Draw must only depend on the page itself so the same page can be drawn to several canvases.
type Page interface {
	// Name is the logical name of the page, used for progress output and file names.
	Name() string
	// Size is the natural size of the page.
	Size() (w, h vg.Length)
	// Draw renders the page onto c, filling c's rectangle.
	Draw(c draw.Canvas)
}

// Portrait is the size of the text pages (US Letter).
var Portrait = [2]vg.Length{8.5 * vg.Inch, 11 * vg.Inch}

// ReportFont is the typeface used by every page.
var ReportFont = font.Font{Typeface: "Liberation", Variant: "Sans"}

// The PDF backend registers every face under an empty style and then selects it with a
// bold or italic style, which it cannot resolve. Bold and italic faces are therefore
// registered as variants of their own, keeping a normal weight and style.
var variants = map[xfont.Weight]map[xfont.Style]string{
	xfont.WeightNormal: {xfont.StyleNormal: "Sans", xfont.StyleItalic: "SansItalic"},
	xfont.WeightBold:   {xfont.StyleNormal: "SansBold", xfont.StyleItalic: "SansBoldItalic"},
}

func init() {
	faces := map[string][]byte{
		"SansItalic":     liberationsansitalic.TTF,
		"SansBold":       liberationsansbold.TTF,
		"SansBoldItalic": liberationsansbolditalic.TTF,
	}

	coll := make(font.Collection, 0, len(faces))
	for variant, ttf := range faces {
		face, err := opentype.Parse(ttf)
		if err != nil {
			panic(errors.Wrapf(err, "unable to parse font %s", variant))
		}
		coll = append(coll, font.Face{
			Font: font.Font{Typeface: ReportFont.Typeface, Variant: font.Variant(variant)},
			Face: face,
		})
	}
	font.DefaultCache.Add(coll)
}

// Font returns the report font at size points. Weights other than bold are drawn normal;
// styles other than italic are drawn upright.
func Font(size float64, weight xfont.Weight, style xfont.Style) font.Font {
	if weight != xfont.WeightBold {
		weight = xfont.WeightNormal
	}
	if style != xfont.StyleItalic {
		style = xfont.StyleNormal
	}

	fnt := ReportFont
	fnt.Variant = font.Variant(variants[weight][style])

	return font.From(fnt, vg.Points(size))
}

// Style returns a text style of the report font.
func Style(size float64, weight xfont.Weight, style xfont.Style) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    Font(size, weight, style),
		XAlign:  draw.XCenter,
		YAlign:  draw.YCenter,
		Handler: plot.DefaultTextHandler,
	}
}

// Bold is a shortcut for a bold, upright style.
func Bold(size float64) text.Style {
	return Style(size, xfont.WeightBold, xfont.StyleNormal)
}

// Regular is a shortcut for a normal weight, upright style.
func Regular(size float64) text.Style {
	return Style(size, xfont.WeightNormal, xfont.StyleNormal)
}

// Italic is a shortcut for a normal weight, italic style.
func Italic(size float64) text.Style {
	return Style(size, xfont.WeightNormal, xfont.StyleItalic)
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a page name into a short filesystem-safe identifier.
func Slug(name string) string {
	slug := nonSlug.ReplaceAllString(strings.ToLower(name), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		return "page"
	}

	return slug
}

// Fill paints the whole canvas with clr.
func Fill(c draw.Canvas, clr color.Color) {
	c.SetColor(clr)
	c.Fill(c.Rectangle.Path())
}
