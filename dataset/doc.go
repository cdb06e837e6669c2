// Package dataset loads observation sequences from delimited text files.
//
// 📄 Input shape:
//
//	One observation per record, taken from a single column of a CSV (or
//	TSV) file. Blank lines are skipped and fields are whitespace-trimmed,
//	so a plain newline-separated list of symbols is a valid dataset too.
//
// ⚙️ Usage:
//
//	rolls, err := dataset.Load("rolls.csv", dataset.WithHeader(true), dataset.WithColumn(1))
//	ints, err := dataset.Ints(rolls)
//
// Errors: ErrEmptyDataset, ErrMissingHeader, ErrColumnOutOfRange, ErrParse.
package dataset
