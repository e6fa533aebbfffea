// Package chart turns survey datasets into chart and table pages.
//
// Every generator is a pure function of a dataset and its parameters: it returns a fresh page
// and never touches shared drawing state.
package chart

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/askiada/survey-report/pkg/dataset"
	"github.com/askiada/survey-report/pkg/page"
)

// Size is the size of chart and table pages.
var Size = [2]vg.Length{10 * vg.Inch, 8 * vg.Inch}

const (
	// VerticalHeadroom is the value axis margin of vertical bar charts, relative to the maximum value.
	VerticalHeadroom = 1.15
	// HorizontalHeadroom is the value axis margin of horizontal bar charts.
	HorizontalHeadroom = 1.2

	barWidth     = 0.8
	groupWidth   = 0.35
	groupSeam    = 0.05
	labelPadding = 3
)

var (
	ErrNoValueColumn = errors.New("a value column must be set")
	ErrEmptyDataset  = errors.New("dataset has no rows")
)

// Chart is a page holding a single plot.
type Chart struct {
	name string
	Plot *plot.Plot
}

func (c *Chart) Name() string { return c.name }

func (c *Chart) Size() (w, h vg.Length) { return Size[0], Size[1] }

func (c *Chart) Draw(dc draw.Canvas) {
	c.Plot.Draw(dc)
}

var _ page.Page = (*Chart)(nil)

// newPlot returns a plot with the report styling: light axis lines, a bold title and
// grid lines along the value axis only.
func newPlot(title string, horizontal bool) *plot.Plot {
	plt := plot.New()
	plt.Title.Text = title
	plt.Title.TextStyle.Font = page.Font(16, xfont.WeightBold, xfont.StyleNormal)
	plt.Title.Padding = vg.Points(20)

	for _, axis := range []*plot.Axis{&plt.X, &plt.Y} {
		axis.LineStyle.Color = axisColor
		axis.Tick.LineStyle.Color = axisColor
		axis.Label.TextStyle.Font = page.Font(12, xfont.WeightBold, xfont.StyleNormal)
		axis.Tick.Label.Font = page.Font(10, xfont.WeightNormal, xfont.StyleNormal)
	}

	grid := plotter.NewGrid()
	grid.Horizontal.Color = gridColor
	grid.Vertical.Color = gridColor
	if horizontal {
		grid.Horizontal.Color = nil
	} else {
		grid.Vertical.Color = nil
	}
	plt.Add(grid)

	return plt
}

// series reads the category labels and one value column of ds.
func series(ds *dataset.Dataset, category, value string) ([]string, []float64, error) {
	if value == "" {
		return nil, nil, ErrNoValueColumn
	}
	if ds.Len() == 0 {
		return nil, nil, ErrEmptyDataset
	}
	names, err := ds.Strings(category)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to read categories")
	}
	values, err := ds.Floats(value)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to read values")
	}

	return names, values, nil
}

func maxOf(values ...[]float64) float64 {
	maxValue := math.Inf(-1)
	for _, vs := range values {
		for _, v := range vs {
			maxValue = math.Max(maxValue, v)
		}
	}

	return maxValue
}

// bars draws one series of bars. Width and offset are expressed in category units so the
// layout does not depend on the canvas size.
type bars struct {
	values     []float64
	width      float64
	offset     float64
	color      color.Color
	horizontal bool
}

// span returns the category-axis extent of the i-th bar.
func (b *bars) span(i int) (lo, hi float64) {
	center := float64(i) + b.offset

	return center - b.width/2, center + b.width/2
}

func (b *bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, v := range b.values {
		lo, hi := b.span(i)
		var pts []vg.Point
		if b.horizontal {
			x0, x1 := trX(0), trX(v)
			y0, y1 := trY(lo), trY(hi)
			pts = []vg.Point{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}}
		} else {
			x0, x1 := trX(lo), trX(hi)
			y0, y1 := trY(0), trY(v)
			pts = []vg.Point{{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}}
		}
		c.FillPolygon(b.color, c.ClipPolygonXY(pts))
	}
}

func (b *bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	catMin, catMax := -0.5, float64(len(b.values))-0.5
	if len(b.values) > 0 {
		lo, _ := b.span(0)
		_, hi := b.span(len(b.values) - 1)
		catMin, catMax = math.Min(catMin, lo), math.Max(catMax, hi)
	}
	valMin, valMax := 0.0, 0.0
	for _, v := range b.values {
		valMin = math.Min(valMin, v)
		valMax = math.Max(valMax, v)
	}
	if b.horizontal {
		return valMin, valMax, catMin, catMax
	}

	return catMin, catMax, valMin, valMax
}

func (b *bars) Thumbnail(c *draw.Canvas) {
	c.FillPolygon(b.color, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	})
}

// valueLabels annotates every bar of b with its formatted value, just past the bar's end.
func valueLabels(b *bars, fmtKind Format, size float64) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(b.values))
	texts := make([]string, len(b.values))
	for i, v := range b.values {
		lo, hi := b.span(i)
		center := (lo + hi) / 2
		if b.horizontal {
			xys[i] = plotter.XY{X: v, Y: center}
		} else {
			xys[i] = plotter.XY{X: center, Y: v}
		}
		texts[i] = FormatValue(v, fmtKind)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, errors.Wrap(err, "unable to create value labels")
	}

	for i := range labels.TextStyle {
		sty := page.Bold(size)
		if b.horizontal {
			sty.XAlign = draw.XLeft
			sty.YAlign = draw.YCenter
		} else {
			sty.XAlign = draw.XCenter
			sty.YAlign = draw.YBottom
		}
		labels.TextStyle[i] = sty
	}
	if b.horizontal {
		labels.Offset = vg.Point{X: vg.Points(labelPadding)}
	} else {
		labels.Offset = vg.Point{Y: vg.Points(labelPadding)}
	}

	return labels, nil
}
