package products

import (
	"fmt"
	"strings"
)

// AccessError reports a file that could not be opened, read or written.
type AccessError struct {
	Op   string // "open", "read", "create", "write", "rename"
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// SchemaError reports input that does not have the product table shape:
// a header with missing or unknown columns, or a record of the wrong width.
type SchemaError struct {
	Record     int // 1-based data record index, 0 for header problems
	Missing    []string
	Unexpected []string
	Err        error
}

func (e *SchemaError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing columns: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, "unexpected columns: "+strings.Join(e.Unexpected, ", "))
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	msg := strings.Join(parts, "; ")
	if e.Record > 0 {
		return fmt.Sprintf("invalid record %d: %s", e.Record, msg)
	}
	return "invalid header: " + msg
}

func (e *SchemaError) Unwrap() error { return e.Err }
