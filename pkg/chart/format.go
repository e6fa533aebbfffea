package chart

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Format selects how values are printed on bar labels.
type Format string

const (
	Percent  Format = "percent"
	Currency Format = "currency"
	Raw      Format = "raw"
)

// Known reports whether f is one of the supported formats.
func (f Format) Known() bool {
	switch f {
	case Percent, Currency, Raw:
		return true
	default:
		return false
	}
}

// FormatValue prints value according to f. Unknown formats fall back to the plain form.
func FormatValue(value float64, f Format) string {
	switch f {
	case Percent:
		return fmt.Sprintf("%.1f%%", value)
	case Currency:
		return "$" + humanize.Comma(int64(math.RoundToEven(value)))
	default:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
}
