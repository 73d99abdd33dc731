package common

import (
	"io"
	"strings"
)

const utf8BOM = "\uFEFF"

// StripBOM removes a UTF-8 BOM from the first cell of a header row.
func StripBOM(header []string) []string {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	return header
}

// PadRow extends row with empty cells up to targetLen. Longer rows are left
// alone so the decoder can reject them.
func PadRow(row []string, targetLen int) []string {
	if len(row) < targetLen {
		row = append(row, make([]string, targetLen-len(row))...)
	}
	return row
}

// SliceReader serves rows that were fully loaded into memory. The first row
// is the header.
type SliceReader struct {
	rows [][]string
	pos  int
	pad  bool
}

// Ensure SliceReader implements RowReader
var _ RowReader = (*SliceReader)(nil)

// NewSliceReader returns a RowReader over rows. When pad is true, records
// shorter than the header are padded with empty cells; spreadsheets drop
// trailing blank cells, so a short row there means blank values.
func NewSliceReader(rows [][]string, pad bool) *SliceReader {
	return &SliceReader{rows: rows, pad: pad}
}

// Read implements RowReader
func (s *SliceReader) Read() ([]string, error) {
	if s.pos >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++

	if s.pos == 1 {
		return StripBOM(row), nil
	}
	if s.pad {
		row = PadRow(row, len(s.rows[0]))
	}
	return row, nil
}
