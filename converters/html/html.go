package html

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/darianmavgo/mkinsert/converters"
	"github.com/darianmavgo/mkinsert/converters/common"

	"golang.org/x/net/html"
)

func init() {
	converters.Register("html", &htmlDriver{})
}

type htmlDriver struct{}

func (d *htmlDriver) Open(source io.Reader, config *common.ConversionConfig) (common.RowReader, error) {
	return NewHTMLReader(source, config)
}

// NewHTMLReader parses the first <table> in the document. Its first row is
// the header; th and td cells are treated alike.
func NewHTMLReader(r io.Reader, config *common.ConversionConfig) (*common.SliceReader, error) {
	doc, err := html.Parse(bufio.NewReaderSize(r, 65536))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	table := findTable(doc)
	if table == nil {
		return nil, fmt.Errorf("no tables found in HTML")
	}
	rows := extractRows(table)
	if config != nil && config.Verbose {
		log.Printf("[MKINSERT] HTML: read %d rows from first table", len(rows))
	}
	return common.NewSliceReader(rows, false), nil
}

func findTable(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "table" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTable(c); t != nil {
			return t
		}
	}
	return nil
}

func extractRows(n *html.Node) [][]string {
	var rows [][]string
	var visitRows func(*html.Node)
	visitRows = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "tr" {
			var row []string
			for c := node.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					row = append(row, extractText(c))
				}
			}
			rows = append(rows, row)
			return // Don't look for TRs inside TRs
		}

		for c := node.FirstChild; c != nil; c = c.NextSibling {
			// Don't traverse into nested tables
			if c.Type == html.ElementNode && c.Data == "table" {
				continue
			}
			visitRows(c)
		}
	}
	visitRows(n)
	return rows
}

func extractText(n *html.Node) string {
	var sb strings.Builder
	extractTextRecursive(n, &sb)
	return strings.TrimSpace(sb.String())
}

func extractTextRecursive(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractTextRecursive(c, sb)
	}
}
