package dataset

import (
	"fmt"
	"unicode/utf8"
)

// Option configures Read and Load.
type Option func(*Options)

// Options is the resolved reader configuration.
type Options struct {
	// Delimiter separates fields. Default ','.
	Delimiter rune

	// Comment starts an ignored line when non-zero.
	Comment rune

	// Header discards the first record.
	Header bool

	// Column selects the 0-based field holding the observation.
	Column int

	err error
}

// DefaultOptions returns a comma-delimited, header-less, first-column reader.
func DefaultOptions() Options {
	return Options{Delimiter: ',', Column: 0}
}

// WithDelimiter sets the field separator.
func WithDelimiter(r rune) Option {
	return func(o *Options) {
		if r == 0 || r == '\r' || r == '\n' || r == '"' || r == utf8.RuneError {
			o.err = fmt.Errorf("%w: invalid delimiter %q", ErrParse, r)

			return
		}
		o.Delimiter = r
	}
}

// WithComment sets the comment marker; lines starting with it are ignored.
func WithComment(r rune) Option {
	return func(o *Options) { o.Comment = r }
}

// WithHeader discards the first record when h is true.
func WithHeader(h bool) Option {
	return func(o *Options) { o.Header = h }
}

// WithColumn selects the field index holding the observation.
func WithColumn(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: column %d", ErrColumnOutOfRange, c)

			return
		}
		o.Column = c
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
