package dataset

import "errors"

var (
	// ErrEmptyDataset indicates that no observation survived reading.
	ErrEmptyDataset = errors.New("dataset: no observations")

	// ErrMissingHeader indicates WithHeader(true) on an input without any record.
	ErrMissingHeader = errors.New("dataset: missing header")

	// ErrColumnOutOfRange indicates a record shorter than the selected column
	// or a negative column index.
	ErrColumnOutOfRange = errors.New("dataset: column out of range")

	// ErrParse indicates malformed CSV or a field that Ints cannot convert.
	ErrParse = errors.New("dataset: parse error")
)
