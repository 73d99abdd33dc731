package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/darianmavgo/mkinsert/products"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

const (
	// DefaultFile is the optional settings file read from the working directory.
	DefaultFile = "mkinsert.hcl"

	DefaultInput  = "all_products.csv"
	DefaultOutput = "products_insert.sql"
)

// Config represents the application configuration.
type Config struct {
	Input        string `hcl:"input,optional"`
	Output       string `hcl:"output,optional"`
	Table        string `hcl:"table,optional"`
	Sheet        string `hcl:"sheet,optional"`
	Delimiter    string `hcl:"delimiter,optional"`
	EscapeQuotes bool   `hcl:"escape_quotes,optional"`
	Verbose      bool   `hcl:"verbose,optional"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Table:  products.DefaultTable,
	}
}

// Validate reports settings that cannot produce a usable statement.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input path is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if c.Delimiter != "" {
		r, size := utf8.DecodeRuneInString(c.Delimiter)
		if size != len(c.Delimiter) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
			return fmt.Errorf("delimiter must be a single character other than a quote or newline, got %q", c.Delimiter)
		}
	}
	return products.ValidateTable(c.Table)
}

// Comma returns the CSV field separator, or 0 for the reader's default.
func (c *Config) Comma() rune {
	if c.Delimiter == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Load reads the configuration from the given HCL file.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	cfg := DefaultConfig()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional behaves like Load but returns the defaults when path does
// not exist.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Export writes the configuration to the specified file in HCL format.
func Export(path string, cfg *Config) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	root.SetAttributeValue("input", cty.StringVal(cfg.Input))
	root.SetAttributeValue("output", cty.StringVal(cfg.Output))
	root.SetAttributeValue("table", cty.StringVal(cfg.Table))
	if cfg.Sheet != "" {
		root.SetAttributeValue("sheet", cty.StringVal(cfg.Sheet))
	}
	if cfg.Delimiter != "" {
		root.SetAttributeValue("delimiter", cty.StringVal(cfg.Delimiter))
	}
	root.SetAttributeValue("escape_quotes", cty.BoolVal(cfg.EscapeQuotes))
	root.SetAttributeValue("verbose", cty.BoolVal(cfg.Verbose))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	_, err = file.Write(f.Bytes())
	if err != nil {
		return fmt.Errorf("failed to write config to file: %w", err)
	}

	return nil
}
