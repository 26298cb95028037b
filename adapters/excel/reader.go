package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"gotrend/domain/core"
	"gotrend/domain/trend"
)

// Column headers accepted for the two required fields, matched after
// trimming and lowercasing. First hit wins.
var (
	valueHeaders = []string{"value", "response", "y"}
	groupHeaders = []string{"group", "dose", "level"}
)

// DataReader handles reading grouped observations from Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := ext
	switch ext {
	case ".csv":
		fileType = "csv"
	case ".xlsx", ".xlsm":
		fileType = "xlsx"
	}
	return &DataReader{filePath: filePath, fileType: fileType, sheet: "Sheet1"}
}

// NewDataReaderWithSheet creates a reader bound to a specific worksheet.
// The sheet only matters for Excel input; CSV ignores it.
func NewDataReaderWithSheet(filePath, sheet string) *DataReader {
	r := NewDataReader(filePath)
	if sheet != "" {
		r.sheet = sheet
	}
	return r
}

// ReadObservations reads the file into (value, group label) pairs in file order
func (r *DataReader) ReadObservations() ([]trend.Observation, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	// Check if file exists
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, core.NewNotFoundError("dataset file", r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVObservations()
	case "xlsx":
		return r.readExcelObservations()
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedFormat, r.fileType)
	}
}

// readExcelObservations reads one worksheet into observations
func (r *DataReader) readExcelObservations() ([]trend.Observation, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()
	fileOpenTime := time.Since(startTime)
	log.Printf("[DataReader] Excel file opened in %.2fms", float64(fileOpenTime.Nanoseconds())/1e6)

	readStart := time.Now()
	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.sheet, err)
	}
	readTime := time.Since(readStart)
	log.Printf("[DataReader] %s read in %.2fms (%d rows)", r.sheet, float64(readTime.Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: need a header row and at least one data row", core.ErrEmptyDataset)
	}

	return r.parseRows(rows)
}

// readCSVObservations reads a CSV file into observations
func (r *DataReader) readCSVObservations() ([]trend.Observation, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	readTime := time.Since(readStart)
	log.Printf("[DataReader] CSV file read in %.2fms (%d rows)", float64(readTime.Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: need a header row and at least one data row", core.ErrEmptyDataset)
	}

	return r.parseRows(rows)
}

// parseRows converts raw string rows into observations. The first row is
// the header; fully empty rows are skipped; any other unparseable cell
// fails the whole read.
func (r *DataReader) parseRows(rows [][]string) ([]trend.Observation, error) {
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	valueCol, err := findColumn(headers, valueHeaders, "value")
	if err != nil {
		return nil, err
	}
	groupCol, err := findColumn(headers, groupHeaders, "group")
	if err != nil {
		return nil, err
	}

	observations := make([]trend.Observation, 0, len(rows)-1)
	for rowIdx, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		// Data rows are 1-based and come after the header.
		fileRow := rowIdx + 2

		value, err := parseCell(row, valueCol, headers[valueCol], fileRow)
		if err != nil {
			return nil, err
		}
		group, err := parseCell(row, groupCol, headers[groupCol], fileRow)
		if err != nil {
			return nil, err
		}
		observations = append(observations, trend.Observation{Value: value, Group: group})
	}

	if len(observations) == 0 {
		return nil, fmt.Errorf("%w: all rows were empty", core.ErrEmptyDataset)
	}

	log.Printf("[DataReader] Parsed %d observations (value=%q, group=%q)",
		len(observations), headers[valueCol], headers[groupCol])
	return observations, nil
}

// findColumn locates the first header matching one of the accepted names
func findColumn(headers []string, accepted []string, field string) (int, error) {
	for _, name := range accepted {
		for i, h := range headers {
			if strings.EqualFold(h, name) {
				return i, nil
			}
		}
	}
	return 0, core.NewMissingColumnError(field, headers)
}

// parseCell reads one numeric cell. Excel rows drop trailing empty cells,
// so a short row reads as an empty cell, which is still an error here.
func parseCell(row []string, col int, header string, fileRow int) (float64, error) {
	raw := ""
	if col < len(row) {
		raw = strings.TrimSpace(row[col])
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, core.NewBadCellError(header, fileRow, raw)
	}
	return value, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
