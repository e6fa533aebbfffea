package chart_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/askiada/survey-report/pkg/chart"
	"github.com/askiada/survey-report/pkg/dataset"
	"github.com/askiada/survey-report/pkg/page"
)

const adoption = `Product,Percent,Employers
PPO,78.5,120
HDHP/HSA,64,98
HMO,22.25,34
EPO,9,14
`

const contributions = `Tier,Employer,Employee
Employee Only,85,15
Employee + Spouse,70,30
Family,65,35
`

func readDataset(t *testing.T, content string) *dataset.Dataset {
	t.Helper()

	ds, err := dataset.Read(strings.NewReader(content))
	require.NoError(t, err)

	return ds
}

func drawPage(t *testing.T, p page.Page) {
	t.Helper()

	w, h := p.Size()
	c := vgimg.New(w, h)
	assert.NotPanics(t, func() { p.Draw(draw.New(c)) })
}

func TestBarChart(t *testing.T) {
	t.Parallel()

	ds := readDataset(t, adoption)
	c, err := chart.BarChart(ds, chart.Params{
		Name:     "product_mix_offered",
		Category: "Product",
		Values:   []string{"Percent"},
		Title:    "Medical Plan Types Offered",
		YLabel:   "% of Employers",
		Rotation: 45,
		Format:   chart.Percent,
	})
	require.NoError(t, err)

	assert.Equal(t, "product_mix_offered", c.Name())
	assert.Equal(t, "Medical Plan Types Offered", c.Plot.Title.Text)
	assert.Equal(t, 0.0, c.Plot.Y.Min)
	assert.InDelta(t, 78.5*chart.VerticalHeadroom, c.Plot.Y.Max, 1e-9)
	assert.InDelta(t, -0.5, c.Plot.X.Min, 1e-9)
	assert.InDelta(t, 3.5, c.Plot.X.Max, 1e-9)
	assert.NotZero(t, c.Plot.X.Tick.Label.Rotation)

	w, h := c.Size()
	assert.Equal(t, chart.Size[0], w)
	assert.Equal(t, chart.Size[1], h)
	drawPage(t, c)
}

func TestHorizontalBarChart(t *testing.T) {
	t.Parallel()

	ds := readDataset(t, adoption)
	c, err := chart.HorizontalBarChart(ds, chart.Params{
		Name:     "employers",
		Category: "Product",
		Values:   []string{"Employers"},
		Title:    "Employers",
		XLabel:   "Count",
		Format:   chart.Raw,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, c.Plot.X.Min)
	assert.InDelta(t, 120*chart.HorizontalHeadroom, c.Plot.X.Max, 1e-9)
	assert.InDelta(t, 3.5, c.Plot.Y.Max, 1e-9)
	assert.Equal(t, "Count", c.Plot.X.Label.Text)
	drawPage(t, c)
}

func TestGroupedBarChart(t *testing.T) {
	t.Parallel()

	ds := readDataset(t, contributions)
	c, err := chart.GroupedBarChart(ds, chart.Params{
		Name:     "contributions",
		Category: "Tier",
		Values:   []string{"Employer", "Employee"},
		Title:    "Contribution Split",
		Format:   chart.Percent,
	})
	require.NoError(t, err)

	assert.InDelta(t, 85*chart.VerticalHeadroom, c.Plot.Y.Max, 1e-9)
	assert.InDelta(t, 2.5, c.Plot.X.Max, 1e-9)
	assert.True(t, c.Plot.Legend.Top)
	drawPage(t, c)
}

func TestGroupedBarChartManySeries(t *testing.T) {
	t.Parallel()

	ds := readDataset(t, "Plan,EE,ES,EC,EF\nPPO,150,300,280,450\nHMO,95,210,190,320\n")
	params := chart.Params{Name: "tiers", Category: "Plan", Values: []string{"EE", "ES", "EC", "EF"}}
	c, err := chart.GroupedBarChart(ds, params)
	require.NoError(t, err)

	// outer bars end 0.525 + 0.35*0.95/2 away from their category
	assert.InDelta(t, -0.69125, c.Plot.X.Min, 1e-9)
	assert.InDelta(t, 1.69125, c.Plot.X.Max, 1e-9)
	assert.LessOrEqual(t, c.Plot.X.Min, chart.GroupOffset(0, 4)-0.35*0.95/2+1e-9)
	drawPage(t, c)
}

func TestGroupOffset(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0, chart.GroupOffset(0, 1), 1e-9)
	assert.InDelta(t, -0.175, chart.GroupOffset(0, 2), 1e-9)
	assert.InDelta(t, 0.175, chart.GroupOffset(1, 2), 1e-9)
	for n := 1; n <= 5; n++ {
		for i := 0; i < n; i++ {
			assert.InDelta(t, -chart.GroupOffset(i, n), chart.GroupOffset(n-1-i, n), 1e-9)
		}
	}
}

func TestChartErrors(t *testing.T) {
	t.Parallel()

	ds := readDataset(t, adoption)
	empty := readDataset(t, "Product,Percent\n")

	tests := []struct {
		name   string
		ds     *dataset.Dataset
		params chart.Params
		want   error
	}{
		{
			name:   "no value column",
			ds:     ds,
			params: chart.Params{Category: "Product"},
			want:   chart.ErrNoValueColumn,
		},
		{
			name:   "categorical values",
			ds:     ds,
			params: chart.Params{Category: "Percent", Values: []string{"Product"}},
			want:   dataset.ErrNotNumeric,
		},
		{
			name:   "unknown category",
			ds:     ds,
			params: chart.Params{Category: "Plan", Values: []string{"Percent"}},
			want:   dataset.ErrUnknownColumn,
		},
		{
			name:   "empty dataset",
			ds:     empty,
			params: chart.Params{Category: "Product", Values: []string{"Percent"}},
			want:   chart.ErrEmptyDataset,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := chart.BarChart(tt.ds, tt.params)
			assert.ErrorIs(t, err, tt.want)
			_, err = chart.HorizontalBarChart(tt.ds, tt.params)
			assert.ErrorIs(t, err, tt.want)
			_, err = chart.GroupedBarChart(tt.ds, tt.params)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTablePage(t *testing.T) {
	t.Parallel()

	ds := readDataset(t, contributions)
	tbl, err := chart.TablePage(ds, chart.Params{Name: "appendix", Title: "Contribution Detail"})
	require.NoError(t, err)

	assert.Equal(t, "appendix", tbl.Name())
	assert.Equal(t, []string{"Tier", "Employer", "Employee"}, tbl.Header)
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, []string{"Employee + Spouse", "70", "30"}, tbl.Rows[1])
	drawPage(t, tbl)

	headerOnly, err := chart.TablePage(readDataset(t, "A,B\n"), chart.Params{Name: "empty"})
	require.NoError(t, err)
	drawPage(t, headerOnly)
}

func TestRowFill(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, chart.RowFill(0), chart.RowFill(1))
	assert.NotEqual(t, chart.RowFill(1), chart.RowFill(2))
	assert.Equal(t, chart.RowFill(1), chart.RowFill(3))
	assert.Equal(t, chart.RowFill(2), chart.RowFill(4))
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := chart.DefaultRegistry()
	assert.Equal(t, []chart.Kind{chart.KindBar, chart.KindGroupedBar, chart.KindHorizontalBar, chart.KindTable}, reg.Kinds())

	gen, err := reg.Get(chart.KindBar)
	require.NoError(t, err)
	p, err := gen(readDataset(t, adoption), chart.Params{Name: "bar", Category: "Product", Values: []string{"Percent"}})
	require.NoError(t, err)
	assert.Equal(t, "bar", p.Name())

	p, err = gen(readDataset(t, adoption), chart.Params{Name: "bar", Category: "Product"})
	require.ErrorIs(t, err, chart.ErrNoValueColumn)
	assert.Nil(t, p)

	_, err = reg.Get("pie")
	assert.ErrorIs(t, err, chart.ErrUnknownKind)

	err = reg.Register(chart.KindTable, func(*dataset.Dataset, chart.Params) (page.Page, error) { return nil, nil })
	assert.ErrorIs(t, err, chart.ErrKindRegistered)
	assert.ErrorIs(t, reg.Register("pie", nil), chart.ErrGeneratorMustBeSet)
}
