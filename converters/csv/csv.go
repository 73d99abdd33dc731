package csv

import (
	"bufio"
	"encoding/csv"
	"io"
	"log"

	"github.com/darianmavgo/mkinsert/converters"
	"github.com/darianmavgo/mkinsert/converters/common"
)

func init() {
	converters.Register("csv", &csvDriver{})
}

type csvDriver struct{}

func (d *csvDriver) Open(source io.Reader, config *common.ConversionConfig) (common.RowReader, error) {
	return NewCSVReader(source, config), nil
}

// CSVReader reads comma-separated product rows.
type CSVReader struct {
	csvReader  *csv.Reader
	headerRead bool
}

// Ensure CSVReader implements RowReader
var _ common.RowReader = (*CSVReader)(nil)

// NewCSVReader creates a CSVReader from an io.Reader with optional config.
// Every record must have as many fields as the header. Quotes inside an
// unquoted field are kept as text, so 12" Pizza Stone reads as written.
func NewCSVReader(r io.Reader, config *common.ConversionConfig) *CSVReader {
	reader := csv.NewReader(bufio.NewReaderSize(r, 65536))
	reader.LazyQuotes = true
	if config != nil {
		if config.Delimiter != 0 {
			reader.Comma = config.Delimiter
		}
		if config.Verbose {
			log.Printf("[MKINSERT] CSV: delimiter %q", reader.Comma)
		}
	}
	return &CSVReader{csvReader: reader}
}

// Read implements RowReader
func (c *CSVReader) Read() ([]string, error) {
	row, err := c.csvReader.Read()
	if err != nil {
		return nil, err
	}
	if !c.headerRead {
		c.headerRead = true
		row = common.StripBOM(row)
	}
	return row, nil
}
