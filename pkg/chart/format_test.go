package chart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/survey-report/pkg/chart"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  float64
		format chart.Format
		want   string
	}{
		{name: "percent", value: 42.5, format: chart.Percent, want: "42.5%"},
		{name: "percent rounds to one decimal", value: 12.345, format: chart.Percent, want: "12.3%"},
		{name: "currency", value: 1234, format: chart.Currency, want: "$1,234"},
		{name: "currency rounds", value: 617.6, format: chart.Currency, want: "$618"},
		{name: "currency large", value: 1250000, format: chart.Currency, want: "$1,250,000"},
		{name: "raw", value: 17, format: chart.Raw, want: "17"},
		{name: "raw fraction", value: 2.25, format: chart.Raw, want: "2.25"},
		{name: "unknown", value: 1234, format: chart.Format("scientific"), want: "1234"},
		{name: "empty", value: 0.5, format: "", want: "0.5"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, chart.FormatValue(tt.value, tt.format))
		})
	}
}

func TestFormatKnown(t *testing.T) {
	t.Parallel()

	assert.True(t, chart.Percent.Known())
	assert.True(t, chart.Currency.Known())
	assert.True(t, chart.Raw.Known())
	assert.False(t, chart.Format("").Known())
	assert.False(t, chart.Format("Percent").Known())
}

func TestSeriesColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, chart.SeriesColor(0), chart.SeriesColor(4))
	assert.Equal(t, chart.SeriesColor(1), chart.SeriesColor(5))
	assert.NotEqual(t, chart.SeriesColor(0), chart.SeriesColor(1))
	assert.Equal(t, uint8(0xcc), chart.SeriesColor(2).A)
}
