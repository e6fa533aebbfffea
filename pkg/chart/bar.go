package chart

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg/draw"

	"github.com/askiada/survey-report/pkg/dataset"
)

// BarChart renders a vertical bar chart of the first value column against the category column.
// The value axis spans [0, 1.15 × max] so the value labels are never clipped.
func BarChart(ds *dataset.Dataset, params Params) (*Chart, error) {
	names, values, err := series(ds, params.Category, params.value())
	if err != nil {
		return nil, err
	}

	plt := newPlot(params.Title, false)
	bar := &bars{values: values, width: barWidth, color: primaryColor}
	labels, err := valueLabels(bar, params.Format, 10)
	if err != nil {
		return nil, err
	}
	plt.Add(bar, labels)

	plt.NominalX(names...)
	plt.X.Label.Text = params.Category
	plt.Y.Label.Text = params.YLabel
	if params.Rotation != 0 {
		plt.X.Tick.Label.Rotation = params.Rotation * math.Pi / 180
		plt.X.Tick.Label.XAlign = draw.XRight
	}

	plt.X.Min, plt.X.Max = -0.5, float64(len(values))-0.5
	plt.Y.Min, plt.Y.Max = 0, maxOf(values)*VerticalHeadroom

	return &Chart{name: params.Name, Plot: plt}, nil
}

// HorizontalBarChart renders categories along the vertical axis and values along the
// horizontal one, with value labels left-aligned past each bar's end.
// The value axis spans [0, 1.2 × max].
func HorizontalBarChart(ds *dataset.Dataset, params Params) (*Chart, error) {
	names, values, err := series(ds, params.Category, params.value())
	if err != nil {
		return nil, err
	}

	plt := newPlot(params.Title, true)
	bar := &bars{values: values, width: barWidth, color: secondaryColor, horizontal: true}
	labels, err := valueLabels(bar, params.Format, 10)
	if err != nil {
		return nil, err
	}
	plt.Add(bar, labels)

	plt.NominalY(names...)
	plt.Y.Label.Text = params.Category
	plt.X.Label.Text = params.XLabel

	plt.Y.Min, plt.Y.Max = -0.5, float64(len(values))-0.5
	plt.X.Min, plt.X.Max = 0, maxOf(values)*HorizontalHeadroom

	return &Chart{name: params.Name, Plot: plt}, nil
}

// GroupedBarChart renders one bar per value column for every category. Bars have a fixed
// width, are separated by a small seam and are centred around their category.
func GroupedBarChart(ds *dataset.Dataset, params Params) (*Chart, error) {
	if len(params.Values) == 0 {
		return nil, ErrNoValueColumn
	}

	plt := newPlot(params.Title, false)
	all := make([][]float64, 0, len(params.Values))
	var names []string
	for i, column := range params.Values {
		categories, values, err := series(ds, params.Category, column)
		if err != nil {
			return nil, errors.Wrapf(err, "series %s", column)
		}
		names = categories
		all = append(all, values)

		group := &bars{
			values: values,
			width:  groupWidth * (1 - groupSeam),
			offset: GroupOffset(i, len(params.Values)),
			color:  SeriesColor(i),
		}
		labels, err := valueLabels(group, params.Format, 9)
		if err != nil {
			return nil, err
		}
		plt.Add(group, labels)
		plt.Legend.Add(column, group)
	}
	plt.Legend.Top = true

	plt.NominalX(names...)
	plt.X.Label.Text = params.XLabel
	plt.Y.Label.Text = params.YLabel

	extent := groupExtent(len(params.Values))
	plt.X.Min, plt.X.Max = -extent, float64(len(names))-1+extent
	plt.Y.Min, plt.Y.Max = 0, maxOf(all...)*VerticalHeadroom

	return &Chart{name: params.Name, Plot: plt}, nil
}

// GroupOffset is the offset, in category units, of the i-th of n series from the category centre.
func GroupOffset(i, n int) float64 {
	return (float64(i) - float64(n)/2 + 0.5) * groupWidth
}

// groupExtent is the distance from a category centre to the outer edge of its group of n
// bars, and at least half a category.
func groupExtent(n int) float64 {
	edge := math.Abs(GroupOffset(0, n)) + groupWidth*(1-groupSeam)/2

	return math.Max(0.5, edge)
}
