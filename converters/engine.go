package converters

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/darianmavgo/mkinsert/config"
	"github.com/darianmavgo/mkinsert/converters/common"
	"github.com/darianmavgo/mkinsert/products"
)

// DriverFor picks the registered driver name for path by its extension.
func DriverFor(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return "csv", nil
	case ".xlsx", ".xlsm":
		return "excel", nil
	case ".html", ".htm":
		return "html", nil
	case ".json":
		return "json", nil
	}
	return "", fmt.Errorf("unsupported file type: %q", ext)
}

// ExportInsert reads every product from cfg.Input and writes one INSERT
// statement to cfg.Output. The whole document is built in memory first; the
// output file is only created once every record has been decoded. It returns
// the number of products written.
func ExportInsert(cfg *config.Config) (int, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	driverName, err := DriverFor(cfg.Input)
	if err != nil {
		return 0, err
	}

	inputFile, err := os.Open(cfg.Input)
	if err != nil {
		return 0, &products.AccessError{Op: "open", Path: cfg.Input, Err: err}
	}
	defer inputFile.Close()

	reader, err := Open(driverName, inputFile, &common.ConversionConfig{
		Delimiter: cfg.Comma(),
		Sheet:     cfg.Sheet,
		Verbose:   cfg.Verbose,
	})
	if err != nil {
		return 0, &products.AccessError{Op: "read", Path: cfg.Input, Err: err}
	}

	rows, err := products.Decode(reader)
	if err != nil {
		var se *products.SchemaError
		if errors.As(err, &se) {
			return 0, fmt.Errorf("%s: %w", cfg.Input, err)
		}
		return 0, &products.AccessError{Op: "read", Path: cfg.Input, Err: err}
	}
	if cfg.Verbose {
		log.Printf("[MKINSERT] Read %d products from %s (driver %s)", len(rows), cfg.Input, driverName)
	}

	doc := products.BuildInsert(cfg.Table, rows, products.Options{EscapeQuotes: cfg.EscapeQuotes})
	if err := WriteFileAtomic(cfg.Output, []byte(doc)); err != nil {
		return 0, err
	}
	if cfg.Verbose {
		log.Printf("[MKINSERT] Wrote %d bytes to %s", len(doc), cfg.Output)
	}
	return len(rows), nil
}
