package excel

import (
	"fmt"
	"io"
	"log"

	"github.com/darianmavgo/mkinsert/converters"
	"github.com/darianmavgo/mkinsert/converters/common"

	"github.com/xuri/excelize/v2"
)

func init() {
	converters.Register("excel", &excelDriver{})
}

type excelDriver struct{}

func (d *excelDriver) Open(source io.Reader, config *common.ConversionConfig) (common.RowReader, error) {
	return NewExcelReader(source, config)
}

// NewExcelReader loads one worksheet into memory and returns a RowReader
// over it. The sheet named in config is used, or the first sheet. Fully
// blank rows are skipped and short rows are padded to the header width.
func NewExcelReader(r io.Reader, config *common.ConversionConfig) (*common.SliceReader, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel stream: %w", err)
	}
	defer f.Close()

	sheetName := ""
	if config != nil {
		sheetName = config.Sheet
	}
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("no sheets found in Excel file")
		}
		sheetName = sheets[0]
	}

	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows iterator for sheet %s: %w", sheetName, err)
	}
	defer rows.Close()

	var all [][]string
	for rows.Next() {
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("failed to read row for sheet %s: %w", sheetName, err)
		}
		if isBlank(cols) {
			continue
		}
		all = append(all, cols)
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate sheet %s: %w", sheetName, err)
	}

	if config != nil && config.Verbose {
		log.Printf("[MKINSERT] Excel: read %d rows from sheet %s", len(all), sheetName)
	}
	return common.NewSliceReader(all, true), nil
}

func isBlank(cols []string) bool {
	for _, c := range cols {
		if c != "" {
			return false
		}
	}
	return true
}
