package report

import (
	"github.com/pkg/errors"
)

var (
	ErrConfigMustBeSet = errors.New("config must be set")
	ErrNilPage         = errors.New("generator returned no page")
	ErrGeneratorPanic  = errors.New("generator panicked")
	ErrEmitPanic       = errors.New("page panicked while drawing")
)

// Failure is a catalog entry left out of the report.
type Failure struct {
	// Position is the 1-based position of the entry in the catalog.
	Position int
	Name     string
	Label    string
	Err      error
}
