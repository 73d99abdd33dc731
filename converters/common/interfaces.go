package common

import "io"

// RowReader yields the header row on the first call, then one record per
// call, and io.EOF once the source is exhausted. *encoding/csv.Reader and
// csvutil.Reader share this shape.
type RowReader interface {
	Read() ([]string, error)
}

// Driver defines the interface that must be implemented by a source package.
type Driver interface {
	// Open returns a RowReader over source.
	Open(source io.Reader, config *ConversionConfig) (RowReader, error)
}
