package products

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jszwec/csvutil"
)

// errNoHeader is wrapped by the SchemaError returned for an empty source.
var errNoHeader = errors.New("source has no header row")

// ValidateHeader checks that header names exactly the product columns, in any
// order. Duplicate names are reported as unexpected.
func ValidateHeader(header []string) error {
	known := make(map[string]bool, len(Columns))
	for _, c := range Columns {
		known[c] = true
	}

	seen := make(map[string]bool, len(header))
	var unexpected []string
	for _, h := range header {
		if !known[h] || seen[h] {
			unexpected = append(unexpected, h)
		}
		seen[h] = true
	}

	var missing []string
	for _, c := range Columns {
		if !seen[c] {
			missing = append(missing, c)
		}
	}

	if len(missing) > 0 || len(unexpected) > 0 {
		return &SchemaError{Missing: missing, Unexpected: unexpected}
	}
	return nil
}

// Decode reads a header row followed by data records from r and returns one
// Product per record, in read order. Any malformed record aborts the whole
// decode; there is no partial result.
func Decode(r csvutil.Reader) ([]Product, error) {
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SchemaError{Missing: Columns, Err: errNoHeader}
		}
		return nil, recordError(0, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if err := ValidateHeader(header); err != nil {
		return nil, err
	}

	dec, err := csvutil.NewDecoder(r, header...)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	dec.DisallowMissingColumns = true

	var out []Product
	for rec := 1; ; rec++ {
		var p Product
		if err := dec.Decode(&p); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, recordError(rec, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// recordError classifies a read failure. Width and quoting problems belong
// to the data; anything else is left for the caller to treat as I/O.
func recordError(rec int, err error) error {
	var pe *csv.ParseError
	if errors.Is(err, csvutil.ErrFieldCount) || errors.As(err, &pe) {
		return &SchemaError{Record: rec, Err: err}
	}
	return fmt.Errorf("failed to read record %d: %w", rec, err)
}
