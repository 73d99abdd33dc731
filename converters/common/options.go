package common

// ConversionConfig stores configuration options for reading a source.
type ConversionConfig struct {
	Delimiter rune   // Delimiter used for CSV parsing, ',' when zero
	Sheet     string // Worksheet to read from Excel sources, first sheet when empty
	Verbose   bool   // Enable detailed logging
}
