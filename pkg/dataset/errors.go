package dataset

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrNotFound       = errors.New("file not found")
	ErrEmpty          = errors.New("csv has no header")
	ErrUnknownColumn  = errors.New("unknown column")
	ErrMissingColumns = errors.New("missing required columns")
	ErrNotNumeric     = errors.New("column is not numeric")
)

// MissingColumnsError lists the required columns absent from a CSV file.
type MissingColumnsError struct {
	Path    string
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns in %s: [%s]", e.Path, strings.Join(e.Missing, ", "))
}

func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrMissingColumns
}

// NotNumericError is returned when numbers are requested from a categorical column.
type NotNumericError struct {
	Column string
}

func (e *NotNumericError) Error() string {
	return fmt.Sprintf("column %q is not numeric", e.Column)
}

func (e *NotNumericError) Is(target error) bool {
	return target == ErrNotNumeric
}
