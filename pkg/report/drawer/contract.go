package drawer

import (
	"time"

	"github.com/askiada/survey-report/pkg/report/measure"
)

// Drawer is an interface that defines the methods for drawing a report run.
type Drawer interface {
	// AddPage adds a page to the run graph.
	AddPage(name string) error
	// AddLink adds a link between two consecutive pages.
	AddLink(parentName, childName string) error
	// MarkFailed flags a page that was skipped, and the link leading to it.
	MarkFailed(parentName, name, reason string) error
	// SetTotalTime sets the total time of the page.
	SetTotalTime(name string, totalTime time.Duration) error
	// AddMeasure adds a measure to the run drawer.
	AddMeasure(measure measure.Measure) error
	// Draw writes the run graph.
	Draw() error
}
