package chart

import (
	"image/color"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/askiada/survey-report/pkg/dataset"
	"github.com/askiada/survey-report/pkg/page"
)

const (
	tableFontSize    = 11
	tableMinFontSize = 6
	cellPadding      = 4
)

// tableBox is the area of the page covered by the table, as (left, bottom, width, height)
// fractions of the page.
var tableBox = [4]float64{0.1, 0.1, 0.8, 0.7}

// Table is a page rendering a dataset as a grid with a styled header row and alternating
// row shading.
type Table struct {
	name   string
	Title  string
	Header []string
	Rows   [][]string
}

// TablePage renders every column of ds as a table.
func TablePage(ds *dataset.Dataset, params Params) (*Table, error) {
	return &Table{
		name:   params.Name,
		Title:  params.Title,
		Header: ds.Columns(),
		Rows:   ds.Rows(),
	}, nil
}

func (t *Table) Name() string { return t.name }

func (t *Table) Size() (w, h vg.Length) { return Size[0], Size[1] }

// RowFill returns the background of a table row. Row 0 is the header.
func RowFill(row int) color.Color {
	switch {
	case row == 0:
		return headerColor
	case row%2 == 0:
		return stripeColor
	default:
		return color.White
	}
}

// cell returns the rectangle of the cell at (row, col) on c. Row 0 is the header.
func (t *Table) cell(c draw.Canvas, row, col int) vg.Rectangle {
	left, bottom := c.X(tableBox[0]), c.Y(tableBox[1])
	width := c.X(tableBox[0]+tableBox[2]) - left
	height := c.Y(tableBox[1]+tableBox[3]) - bottom

	cellW := width / vg.Length(len(t.Header))
	cellH := height / vg.Length(len(t.Rows)+1)
	top := bottom + height

	return vg.Rectangle{
		Min: vg.Point{X: left + vg.Length(col)*cellW, Y: top - vg.Length(row+1)*cellH},
		Max: vg.Point{X: left + vg.Length(col+1)*cellW, Y: top - vg.Length(row)*cellH},
	}
}

func (t *Table) Draw(c draw.Canvas) {
	page.Fill(c, color.White)

	title := page.Bold(16)
	title.YAlign = draw.YBottom
	c.FillText(title, vg.Point{X: c.X(0.5), Y: c.Y(tableBox[1]+tableBox[3]) + vg.Points(20)}, t.Title)

	if len(t.Header) == 0 {
		return
	}

	edge := draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}
	rows := append([][]string{t.Header}, t.Rows...)
	for r, cells := range rows {
		for col, txt := range cells {
			rect := t.cell(c, r, col)
			c.FillPolygon(RowFill(r), rectangle(rect))
			c.StrokeLines(edge, append(rectangle(rect), rect.Min))

			sty := page.Regular(tableFontSize)
			if r == 0 {
				sty = page.Bold(tableFontSize)
				sty.Color = color.White
			}
			sty = fit(sty, txt, rect.Size().X-2*vg.Points(cellPadding))
			c.FillText(sty, vg.Point{X: (rect.Min.X + rect.Max.X) / 2, Y: (rect.Min.Y + rect.Max.Y) / 2}, txt)
		}
	}
}

// fit shrinks the font of sty until txt is at most width wide.
func fit(sty text.Style, txt string, width vg.Length) text.Style {
	for sty.Width(txt) > width && sty.Font.Size > vg.Points(tableMinFontSize) {
		sty.Font.Size -= vg.Points(0.5)
	}

	return sty
}

func rectangle(r vg.Rectangle) []vg.Point {
	return []vg.Point{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Min.X, Y: r.Max.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Max.X, Y: r.Min.Y},
	}
}

var _ page.Page = (*Table)(nil)
