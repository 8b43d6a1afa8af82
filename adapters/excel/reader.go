package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tajir/domain/record"
	"tajir/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader turns an uploaded Excel or CSV file into the record shape the
// analytics engine consumes. The engine never touches file formats; this
// adapter is its only supplier.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader for the given file, dispatching on extension
func NewDataReader(filePath string) *DataReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// Read parses the file into records plus the header order. Header order
// matters downstream: role detection tiebreaks on column position.
func (r *DataReader) Read() ([]record.Record, []string, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, nil, errors.NotFound(fmt.Sprintf("%s file %s", r.fileType, r.filePath))
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readXLSX()
	default:
		return nil, nil, errors.FileUnsupported(r.fileType)
	}
}

func (r *DataReader) readCSV() ([]record.Record, []string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse CSV file")
	}
	return rowsToRecords(rows)
}

func (r *DataReader) readXLSX() ([]record.Record, []string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	// First sheet, whatever it is named; storefront exports rarely use
	// more than one.
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New(errors.CodeFileInvalid, "workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read sheet %s", sheets[0])
	}
	return rowsToRecords(rows)
}

// rowsToRecords maps a header row plus data rows into records. Cells
// beyond the header width are dropped; short rows leave their trailing
// columns missing.
func rowsToRecords(rows [][]string) ([]record.Record, []string, error) {
	if len(rows) == 0 {
		return []record.Record{}, []string{}, nil
	}

	headers := make([]string, 0, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("column_%d", i+1)
		}
		headers = append(headers, h)
	}

	records := make([]record.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(record.Record, len(headers))
		for i, header := range headers {
			if i < len(row) {
				rec[header] = record.NewStringValue(strings.TrimSpace(row[i]))
			} else {
				rec[header] = record.Missing()
			}
		}
		records = append(records, rec)
	}
	return records, headers, nil
}
