// Package emit writes report pages to a multi-page PDF document and to one PNG image per page.
package emit

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/askiada/survey-report/internal/config"
	"github.com/askiada/survey-report/pkg/page"
)

const dirPerm = 0o755

var (
	ErrClosed          = errors.New("emitter is closed")
	ErrInvalidPageSize = errors.New("page size must be positive")
)

// Entry describes an emitted page.
type Entry struct {
	// Index is the 1-based position of the page in the document.
	Index     int
	Name      string
	ImagePath string
}

// Emitter appends pages to a PDF document and rasterizes each of them. Pages are numbered in
// the order they are emitted.
type Emitter struct {
	layout config.Layout
	doc    *vgpdf.Canvas
	width  vg.Length
	height vg.Length
	count  int
	closed bool
}

// New creates the output directories and an empty document.
func New(layout config.Layout) (*Emitter, error) {
	for _, dir := range []string{layout.OutDir, layout.FiguresDir, filepath.Dir(layout.PDF)} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return nil, errors.Wrapf(err, "unable to create directory %s", dir)
		}
	}

	w, h := layout.PageSize()
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidPageSize, "document page %vx%v", w, h)
	}

	return &Emitter{
		layout: layout,
		doc:    vgpdf.New(w, h),
		width:  w,
		height: h,
	}, nil
}

// Emit draws p on the next page of the document and writes its image.
func (e *Emitter) Emit(p page.Page) (Entry, error) {
	if e.closed {
		return Entry{}, ErrClosed
	}
	pw, ph := p.Size()
	if pw <= 0 || ph <= 0 {
		return Entry{}, errors.Wrapf(ErrInvalidPageSize, "page %s", p.Name())
	}

	// vgpdf starts with an open page.
	if e.count > 0 {
		e.doc.NextPage()
	}
	e.count++
	fit(e.doc, e.width, e.height, p)

	entry := Entry{
		Index:     e.count,
		Name:      p.Name(),
		ImagePath: filepath.Join(e.layout.FiguresDir, FileName(e.count, p.Name())),
	}
	if err := e.writeImage(entry.ImagePath, p); err != nil {
		return Entry{}, err
	}

	return entry, nil
}

// Count returns the number of emitted pages.
func (e *Emitter) Count() int {
	return e.count
}

// FileName returns the image file name of the page emitted at index.
func FileName(index int, name string) string {
	return fmt.Sprintf("page_%02d_%s.png", index, page.Slug(name))
}

// Close writes the PDF document. The emitter cannot be used afterwards.
func (e *Emitter) Close() (err error) {
	if e.closed {
		return ErrClosed
	}
	e.closed = true

	file, err := os.Create(e.layout.PDF)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", e.layout.PDF)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "unable to close file %s", e.layout.PDF)
		}
	}()

	if _, err = e.doc.WriteTo(file); err != nil {
		return errors.Wrapf(err, "unable to write pdf %s", e.layout.PDF)
	}

	return nil
}

func (e *Emitter) writeImage(path string, p page.Page) (err error) {
	w, h := p.Size()
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(e.layout.DPI))
	p.Draw(draw.New(img))

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", path)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "unable to close file %s", path)
		}
	}()

	if _, err = (vgimg.PngCanvas{Canvas: img}).WriteTo(file); err != nil {
		return errors.Wrapf(err, "unable to write png %s", path)
	}

	return nil
}

// fit draws p on c, scaled uniformly to the largest size that fits in w x h and centred.
func fit(c vg.Canvas, w, h vg.Length, p page.Page) {
	pw, ph := p.Size()
	scale := math.Min(float64(w/pw), float64(h/ph))

	c.Push()
	defer c.Pop()
	c.Translate(vg.Point{
		X: (w - pw*vg.Length(scale)) / 2,
		Y: (h - ph*vg.Length(scale)) / 2,
	})
	c.Scale(scale, scale)
	p.Draw(draw.NewCanvas(c, pw, ph))
}
