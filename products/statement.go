package products

import (
	"fmt"
	"regexp"
	"strings"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// ValidateTable rejects table names that would need quoting, optionally
// schema-qualified ("public.products").
func ValidateTable(table string) error {
	if !identifier.MatchString(table) {
		return fmt.Errorf("invalid table name %q", table)
	}
	return nil
}

// InsertHeader returns the statement's first line naming table and columns.
func InsertHeader(table string) string {
	return fmt.Sprintf("INSERT INTO %s (%s)", table, strings.Join(Columns, ", "))
}

// BuildInsert renders rows as a single INSERT statement. With no rows the
// VALUES list is left empty, which is not executable but is still produced.
func BuildInsert(table string, rows []Product, opt Options) string {
	var b strings.Builder
	b.Grow(128 + len(rows)*160) // Heuristic pre-allocation

	b.WriteString(InsertHeader(table))
	b.WriteString("\nVALUES\n")
	for i, p := range rows {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(ValueTuple(p, opt))
	}
	b.WriteByte(';')
	return b.String()
}
