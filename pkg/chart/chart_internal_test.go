package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarsSpan(t *testing.T) {
	t.Parallel()

	b := &bars{values: []float64{1, 2}, width: 0.4, offset: -0.2}
	lo, hi := b.span(1)
	assert.InDelta(t, 0.6, lo, 1e-9)
	assert.InDelta(t, 1.0, hi, 1e-9)
}

func TestBarsDataRange(t *testing.T) {
	t.Parallel()

	b := &bars{values: []float64{3, 7, 5}}
	xmin, xmax, ymin, ymax := b.DataRange()
	assert.Equal(t, []float64{-0.5, 2.5, 0, 7}, []float64{xmin, xmax, ymin, ymax})

	b.horizontal = true
	xmin, xmax, ymin, ymax = b.DataRange()
	assert.Equal(t, []float64{0, 7, -0.5, 2.5}, []float64{xmin, xmax, ymin, ymax})
}

func TestValueLabels(t *testing.T) {
	t.Parallel()

	labels, err := valueLabels(&bars{values: []float64{1234, 50}, width: barWidth}, Currency, 10)
	assert.NoError(t, err)
	assert.Equal(t, []string{"$1,234", "$50"}, labels.Labels)
	assert.Equal(t, 1234.0, labels.XYs[0].Y)
}

func TestGroupExtent(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.5, groupExtent(1), 1e-9)
	assert.InDelta(t, 0.5, groupExtent(2), 1e-9)
	assert.InDelta(t, 0.35+0.16625, groupExtent(3), 1e-9)
	assert.InDelta(t, 0.525+0.16625, groupExtent(4), 1e-9)

	b := &bars{values: []float64{3, 7}, width: 0.3325, offset: -0.525}
	xmin, xmax, _, _ := b.DataRange()
	assert.InDelta(t, -0.69125, xmin, 1e-9)
	assert.InDelta(t, 1.5, xmax, 1e-9)
}
