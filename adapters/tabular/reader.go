package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"healthcharts/domain/table"
	"healthcharts/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading delimited tabular files (CSV and XLSX)
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" || ext == ".xls" {
		fileType = "xlsx"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// Load reads the file into a Table of raw text cells. The first row is the
// header; cell values are whitespace-trimmed and empty cells read as missing.
// A missing, unreadable, or malformed file is a fatal load error.
func (r *DataReader) Load() (*table.Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.LoadError(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath), err)
	}

	switch r.fileType {
	case "csv":
		return r.loadCSV()
	case "xlsx":
		return r.loadExcel()
	default:
		return nil, errors.LoadError(fmt.Sprintf("unsupported file type: %s", r.fileType), nil)
	}
}

// loadCSV reads CSV data into a table
func (r *DataReader) loadCSV() (*table.Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.LoadError("failed to open CSV file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.LoadError("failed to read CSV file", err)
	}

	if len(rows) == 0 {
		return nil, errors.LoadError("CSV file has no header row", nil)
	}

	return r.buildTable(rows), nil
}

// loadExcel reads XLSX data from Sheet1 into a table
func (r *DataReader) loadExcel() (*table.Table, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.LoadError("failed to open Excel file", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.LoadError("failed to read Sheet1", err)
	}

	if len(rows) == 0 {
		return nil, errors.LoadError("Excel file has no header row", nil)
	}

	return r.buildTable(rows), nil
}

// buildTable converts raw string rows into a Table of text cells
func (r *DataReader) buildTable(rows [][]string) *table.Table {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	t := table.New(headers)
	for i := 1; i < len(rows); i++ {
		row := make(table.Row, len(headers))
		for j, cell := range rows[i] {
			if j < len(headers) {
				// NewTextCell maps empty strings to missing cells
				row[headers[j]] = table.NewTextCell(strings.TrimSpace(cell))
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}
