package products

import "strings"

const (
	// NullToken replaces empty values.
	NullToken = "NULL"

	// JSONCast is appended to the variants literal.
	JSONCast = "::jsonb"
)

// Options tunes literal rendering.
type Options struct {
	// EscapeQuotes doubles embedded single quotes in quoted literals. Off by
	// default, in which case a value containing ' yields invalid SQL.
	EscapeQuotes bool
}

func quote(s string, opt Options) string {
	if opt.EscapeQuotes {
		s = strings.ReplaceAll(s, "'", "''")
	}
	return "'" + s + "'"
}

// textLiteral renders a free-text column. The empty check runs before quoting
// so an empty value is never emitted as ''.
func textLiteral(s string, opt Options) string {
	if s == "" {
		return NullToken
	}
	return quote(s, opt)
}

func numberLiteral(s string) string {
	if s == "" {
		return NullToken
	}
	return s
}

func boolLiteral(s string) string {
	if s == "t" {
		return "true"
	}
	return "false"
}

// jsonLiteral has no NULL handling: an empty value renders as ''::jsonb.
func jsonLiteral(s string, opt Options) string {
	return quote(s, opt) + JSONCast
}

// Values renders p as SQL literals in Columns order.
func (p Product) Values(opt Options) []string {
	return []string{
		numberLiteral(p.ID),
		textLiteral(p.Name, opt),
		textLiteral(p.Description, opt),
		numberLiteral(p.Price),
		numberLiteral(p.Stock),
		numberLiteral(p.CategoryID),
		textLiteral(p.ImageURL, opt),
		textLiteral(p.Brand, opt),
		jsonLiteral(p.Variants, opt),
		textLiteral(p.StoreType, opt),
		boolLiteral(p.Featured),
	}
}

// ValueTuple renders p as one parenthesized VALUES entry.
func ValueTuple(p Product, opt Options) string {
	return "(" + strings.Join(p.Values(opt), ", ") + ")"
}
