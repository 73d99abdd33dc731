// Package products holds the product record and turns a set of them into a
// single PostgreSQL INSERT statement.
//
// Every column is kept as the raw text read from the source. Rendering rules
// decide per column whether a value is emitted bare, quoted, cast to jsonb or
// mapped to a boolean.
package products

// Product is one input row of the products table.
type Product struct {
	ID          string `csv:"id"`
	Name        string `csv:"name"`
	Description string `csv:"description"`
	Price       string `csv:"price"`
	Stock       string `csv:"stock"`
	CategoryID  string `csv:"category_id"`
	ImageURL    string `csv:"image_url"`
	Brand       string `csv:"brand"`
	Variants    string `csv:"variants"`
	StoreType   string `csv:"store_type"`
	Featured    string `csv:"featured"`
}

// Columns is the fixed column order of the products table. Headers and value
// tuples both follow it.
var Columns = []string{
	"id",
	"name",
	"description",
	"price",
	"stock",
	"category_id",
	"image_url",
	"brand",
	"variants",
	"store_type",
	"featured",
}

// DefaultTable is the target table name.
const DefaultTable = "products"
