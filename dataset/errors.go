package dataset

import "fmt"

// Error is a wrapper for specific error conditions that carry no extra
// information. These are defined as global variables so callers can compare
// against them directly.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

var (
	ErrEmptyDataset = Error{"dataset has no rows"}
	ErrNotCoerced   = Error{"feature columns have not been coerced to numeric form"}
)

// MalformedRowError reports a row whose column count disagrees with the
// first row of the dataset, or an empty row.
type MalformedRowError struct {
	Row  int
	Got  int
	Want int
}

func (err MalformedRowError) Error() string {
	if err.Got == 0 {
		return fmt.Sprintf("row %d is empty", err.Row)
	}
	return fmt.Sprintf("row %d has %d columns, want %d", err.Row, err.Got, err.Want)
}

// NumericParseError reports a feature cell that could not be converted to a
// floating-point value.
type NumericParseError struct {
	Row   int
	Col   int
	Value string
}

func (err NumericParseError) Error() string {
	return fmt.Sprintf("row %d, column %d: cannot parse %q as a number", err.Row, err.Col, err.Value)
}
