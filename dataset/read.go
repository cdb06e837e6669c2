package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Read returns the selected column of every non-blank record in r.
func Read(r io.Reader, opts ...Option) ([]string, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.Comma = o.Delimiter
	cr.Comment = o.Comment
	cr.FieldsPerRecord = -1 // ragged rows are checked per column below
	cr.TrimLeadingSpace = true

	var (
		out    []string
		header = o.Header
		line   int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		line, _ = cr.FieldPos(0)
		if blank(rec) {
			continue
		}
		if header {
			header = false

			continue
		}
		if o.Column >= len(rec) {
			return nil, fmt.Errorf("%w: line %d has %d fields, column %d requested",
				ErrColumnOutOfRange, line, len(rec), o.Column)
		}
		out = append(out, strings.TrimSpace(rec[o.Column]))
	}
	if header {
		return nil, ErrMissingHeader
	}
	if len(out) == 0 {
		return nil, ErrEmptyDataset
	}

	return out, nil
}

// Load opens path and reads it with Read. A ".tsv" extension selects a tab
// delimiter unless WithDelimiter overrides it.
func Load(path string, opts ...Option) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		opts = append([]Option{WithDelimiter('\t')}, opts...)
	}
	obs, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return obs, nil
}

// Ints converts every field to an int.
func Ints(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, s := range fields {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: observation %d: %q is not an integer", ErrParse, i, s)
		}
		out[i] = v
	}

	return out, nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}

	return true
}
