package ingestion

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// normalizeHeader maps a raw column label to its canonical snake_case key:
// lowercase, spaces to underscores, everything outside [a-z0-9_] stripped.
// "Final Price After Discount ($)" becomes "final_price_after_discount_",
// which is why lookups also probe the trailing-underscore variant.
func normalizeHeader(h string) string {
	h = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
	var b strings.Builder
	for _, r := range h {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// table is a file read into memory: normalized headers plus one map per row,
// keyed by normalized header, values trimmed.
type table struct {
	headers []string
	rows    []map[string]string
}

// get returns the cell for a normalized key, probing the trailing-underscore
// variant produced by units in the original label.
func get(row map[string]string, key string) string {
	if v, ok := row[key]; ok {
		return v
	}
	return row[key+"_"]
}

// readTable loads a .csv or .xlsx file. The first sheet of a workbook is
// used; short rows are padded, long rows truncated to the header width.
func readTable(path string) (*table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}
}

func readCSV(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return buildTable(records)
}

func readXLSX(path string) (*table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return buildTable(records)
}

func buildTable(records [][]string) (*table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = normalizeHeader(h)
	}

	t := &table{headers: headers}
	for _, rec := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(rec) {
				row[h] = strings.TrimSpace(rec[i])
			} else {
				row[h] = ""
			}
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

func (t *table) hasHeader(name string) bool {
	for _, h := range t.headers {
		if h == name {
			return true
		}
	}
	return false
}
