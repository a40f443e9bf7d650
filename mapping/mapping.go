// Package mapping loads the affiliate URL to saved product page table and resolves links against it.
package mapping

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/raushankrgupta/product-card-splicer/models"
	"github.com/xuri/excelize/v2"
)

// Column headers of the mapping table
const (
	ColumnURL       = "URL"
	ColumnLocalHTML = "Local HTML"
)

var (
	// ErrMissingColumn is returned when the header row lacks URL or Local HTML.
	ErrMissingColumn = errors.New("mapping table is missing a required column")

	// ErrUnsupportedFormat is returned for files that are neither spreadsheets nor CSV.
	ErrUnsupportedFormat = errors.New("unsupported mapping file format")
)

// Resolve returns the local product document mapped to url.
// A miss means the link is not a product link.
func Resolve(links models.LinkMapping, url string) (string, bool) {
	path, ok := links[url]
	return path, ok
}

// Load reads the mapping table at path (.xlsx, .xlsm or .csv)
func Load(path string) (models.LinkMapping, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readSpreadsheet(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("read mapping %s: %w", path, err)
	}
	return FromRows(rows)
}

// FromRows folds a header row plus data rows into a LinkMapping. Later rows win on duplicate URLs.
func FromRows(rows [][]string) (models.LinkMapping, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty table: %w", ErrMissingColumn)
	}

	urlCol, localCol := -1, -1
	for i, header := range rows[0] {
		switch {
		case strings.EqualFold(strings.TrimSpace(header), ColumnURL):
			urlCol = i
		case strings.EqualFold(strings.TrimSpace(header), ColumnLocalHTML):
			localCol = i
		}
	}
	if urlCol < 0 {
		return nil, fmt.Errorf("%q: %w", ColumnURL, ErrMissingColumn)
	}
	if localCol < 0 {
		return nil, fmt.Errorf("%q: %w", ColumnLocalHTML, ErrMissingColumn)
	}

	links := make(models.LinkMapping)
	for _, row := range rows[1:] {
		url := cell(row, urlCol)
		if url == "" {
			continue
		}
		links[url] = cell(row, localCol)
	}
	return links, nil
}

// cell returns the trimmed value at idx; spreadsheet rows omit trailing empty cells
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func readSpreadsheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}
	return rows, nil
}
