package model

type pageKind string

const (
	BoundaryPageKind = "boundary"
	TextPageKind     = "text"
	DataPageKind     = "data"
)

// PageInfo describes a page of the run.
type PageInfo struct {
	Kind pageKind
	// Index is the position of the page in the run, starting at 1. Boundaries have index 0.
	Index int
	Name  string
	Label string
}

var (
	StartPage = &PageInfo{Kind: BoundaryPageKind, Name: "start"}
	EndPage   = &PageInfo{Kind: BoundaryPageKind, Name: "end"}
)
