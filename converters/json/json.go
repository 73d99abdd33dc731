package json

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/darianmavgo/mkinsert/converters"
	"github.com/darianmavgo/mkinsert/converters/common"
	"github.com/darianmavgo/mkinsert/products"

	"github.com/jszwec/csvutil"
)

func init() {
	converters.Register("json", &jsonDriver{})
}

type jsonDriver struct{}

func (d *jsonDriver) Open(source io.Reader, config *common.ConversionConfig) (common.RowReader, error) {
	return NewJSONReader(source, config)
}

// JSONReader serves a JSON array of flat product objects as header plus
// records. The root may be the array itself or an object wrapping it, as in
// {"produits": [...]}.
type JSONReader struct {
	header  []string
	objects []map[string]json.RawMessage
	pos     int // -1 until the header has been returned
}

// Ensure JSONReader implements RowReader
var _ common.RowReader = (*JSONReader)(nil)

// NewJSONReader decodes the whole document. The header is the sorted key
// set of the first object; an empty array yields the product columns so the
// result is an empty statement rather than an error.
func NewJSONReader(r io.Reader, config *common.ConversionConfig) (*JSONReader, error) {
	dec := json.NewDecoder(bufio.NewReaderSize(r, 65536))

	var root json.RawMessage
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	list, key, err := findArray(root)
	if err != nil {
		return nil, err
	}

	objects := make([]map[string]json.RawMessage, len(list))
	for i, elem := range list {
		if err := json.Unmarshal(elem, &objects[i]); err != nil || objects[i] == nil {
			return nil, fmt.Errorf("element %d is not a JSON object", i)
		}
	}

	header := products.Columns
	if len(objects) > 0 {
		header = extractRawHeaders(objects[0])
	}

	if config != nil && config.Verbose {
		if key != "" {
			log.Printf("[MKINSERT] JSON: reading %d objects from key %q", len(objects), key)
		} else {
			log.Printf("[MKINSERT] JSON: reading %d objects from root array", len(objects))
		}
	}

	return &JSONReader{header: header, objects: objects, pos: -1}, nil
}

// findArray returns the root array, or the array held by the first key (in
// sorted order) of a root object.
func findArray(root json.RawMessage) ([]json.RawMessage, string, error) {
	var list []json.RawMessage
	if isArray(root) {
		if err := json.Unmarshal(root, &list); err != nil {
			return nil, "", err
		}
		return list, "", nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(root, &obj); err != nil {
		return nil, "", fmt.Errorf("expected JSON object or array at root")
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !isArray(obj[k]) {
			continue
		}
		if err := json.Unmarshal(obj[k], &list); err != nil {
			return nil, "", err
		}
		return list, k, nil
	}
	return nil, "", fmt.Errorf("no array of objects found in JSON")
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func extractRawHeaders(row map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Read implements RowReader. An object whose key set differs from the
// header is reported as a field count error.
func (j *JSONReader) Read() ([]string, error) {
	if j.pos < 0 {
		j.pos = 0
		return append([]string(nil), j.header...), nil
	}
	if j.pos >= len(j.objects) {
		return nil, io.EOF
	}
	obj := j.objects[j.pos]
	j.pos++

	if len(obj) != len(j.header) {
		return nil, fmt.Errorf("object %d has %d keys, expected %d: %w", j.pos, len(obj), len(j.header), csvutil.ErrFieldCount)
	}
	row := make([]string, len(j.header))
	for i, k := range j.header {
		raw, ok := obj[k]
		if !ok {
			return nil, fmt.Errorf("object %d lacks key %q: %w", j.pos, k, csvutil.ErrFieldCount)
		}
		val, err := cellText(raw)
		if err != nil {
			return nil, fmt.Errorf("object %d key %q: %w", j.pos, k, err)
		}
		row[i] = val
	}
	return row, nil
}

// cellText renders one JSON value the way it would appear in a CSV export:
// strings unquoted, numbers verbatim, booleans as t/f, null as empty, and
// nested objects or arrays as compact JSON text.
func cellText(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	case 'n':
		return "", nil
	case 't':
		return "t", nil
	case 'f':
		return "f", nil
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	return string(trimmed), nil
}
