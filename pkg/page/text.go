package page

import (
	"image/color"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	wrapWidth   = 80
	lineSpacing = 1.5
)

// Item is a line of text placed at a position expressed as fractions of the page.
type Item struct {
	X, Y  float64
	Text  string
	Style text.Style
}

// Layout is a page made of positioned text items on a white background.
type Layout struct {
	name  string
	w, h  vg.Length
	Items []Item
}

// NewLayout returns an empty layout page.
func NewLayout(name string, w, h vg.Length) *Layout {
	return &Layout{name: name, w: w, h: h}
}

// Add appends a text item.
func (l *Layout) Add(x, y float64, txt string, sty text.Style) *Layout {
	l.Items = append(l.Items, Item{X: x, Y: y, Text: txt, Style: sty})
	return l
}

func (l *Layout) Name() string { return l.name }

func (l *Layout) Size() (w, h vg.Length) { return l.w, l.h }

func (l *Layout) Draw(c draw.Canvas) {
	Fill(c, color.White)
	for _, item := range l.Items {
		c.FillText(item.Style, vg.Point{X: c.X(item.X), Y: c.Y(item.Y)}, item.Text)
	}
}

// Text is a text-only page: a centred title and word-wrapped paragraphs.
type Text struct {
	*Layout
	Title string
	Lines []string
}

// TextPage builds a text page. Paragraphs in body are separated by blank lines and are
// wrapped at 80 columns.
func TextPage(name, title, body string) *Text {
	page := &Text{
		Layout: NewLayout(name, Portrait[0], Portrait[1]),
		Title:  title,
		Lines:  Wrap(body, wrapWidth),
	}

	titleStyle := Bold(20)
	titleStyle.YAlign = draw.YTop
	page.Add(0.5, 0.95, title, titleStyle)

	return page
}

// Wrap splits body into paragraphs on blank lines, wraps each one at width columns and
// returns the resulting lines with an empty line between paragraphs.
func Wrap(body string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(body, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		paragraph = strings.Join(strings.Fields(paragraph), " ")
		for _, line := range strings.Split(wrapParagraph(paragraph, width), "\n") {
			lines = append(lines, strings.TrimRight(line, " "))
		}
	}

	return lines
}

// wrapParagraph breaks on spaces only, then hard-wraps words longer than width.
func wrapParagraph(paragraph string, width int) string {
	ww := wordwrap.NewWriter(width)
	ww.Breakpoints = nil
	_, _ = ww.Write([]byte(paragraph))
	_ = ww.Close()

	return wrap.String(ww.String(), width)
}

func (t *Text) Draw(c draw.Canvas) {
	t.Layout.Draw(c)

	body := Regular(11)
	body.XAlign = draw.XLeft
	body.YAlign = draw.YTop

	step := body.Font.Size * lineSpacing
	pt := vg.Point{X: c.X(0.1), Y: c.Y(0.85)}
	for _, line := range t.Lines {
		if line != "" {
			c.FillText(body, pt, line)
		}
		pt.Y -= step
	}
}

var (
	_ Page = (*Layout)(nil)
	_ Page = (*Text)(nil)
)
