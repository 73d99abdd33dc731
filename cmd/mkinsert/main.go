// Command mkinsert turns all_products.csv into products_insert.sql, a single
// INSERT statement for the products table. Settings can be overridden by an
// optional mkinsert.hcl in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/darianmavgo/mkinsert/config"
	"github.com/darianmavgo/mkinsert/converters"
	_ "github.com/darianmavgo/mkinsert/converters/all"
)

// run loads the settings at cfgPath (defaults when absent) and performs one export.
func run(cfgPath string) (*config.Config, int, error) {
	cfg, err := config.LoadOptional(cfgPath)
	if err != nil {
		return nil, 0, err
	}
	n, err := converters.ExportInsert(cfg)
	return cfg, n, err
}

func main() {
	cfg, n, err := run(config.DefaultFile)
	if err != nil {
		fmt.Printf("Error exporting products: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully wrote %d products from %s to %s\n", n, cfg.Input, cfg.Output)
}
