package model

import "time"

// RunOption defines the interface for report run options.
type RunOption interface {
	// New initialises the run option.
	New() error
	// PreparePage runs before the page is generated. parentPage is the last page that
	// succeeded, or StartPage.
	PreparePage(parentPage, page *PageInfo) error
	// OnPageOutput runs once the page has been generated and emitted.
	OnPageOutput(parentPage, page *PageInfo, generationDuration, emissionDuration time.Duration) error
	// OnPageFailure runs when the page is skipped.
	OnPageFailure(parentPage, page *PageInfo, err error) error
	// Finish runs after the last page. lastPage is the last page that succeeded.
	Finish(lastPage *PageInfo, totalDuration time.Duration) error
}
