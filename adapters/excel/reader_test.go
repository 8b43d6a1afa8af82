package excel

import (
	"os"
	"path/filepath"
	"testing"

	"tajir/domain/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeTempCSV(t, "Order Date,Total Amount,Product\n2024-01-15,100.50,Abaya\n2024-01-16,75,Hat\n")

	records, headers, err := NewDataReader(path).Read()
	require.NoError(t, err)

	assert.Equal(t, []string{"Order Date", "Total Amount", "Product"}, headers)
	require.Len(t, records, 2)
	assert.Equal(t, "100.50", record.AsString(records[0]["Total Amount"]))
	assert.Equal(t, "Hat", record.AsString(records[1]["Product"]))
}

func TestReadCSV_ShortRowsLeaveTrailingMissing(t *testing.T) {
	path := writeTempCSV(t, "a,b,c\n1,2\n")

	records, _, err := NewDataReader(path).Read()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0]["c"].IsBlank())
	assert.Equal(t, "2", record.AsString(records[0]["b"]))
}

func TestReadCSV_BlankHeadersGetPositionalNames(t *testing.T) {
	path := writeTempCSV(t, "a,,c\n1,2,3\n")

	_, headers, err := NewDataReader(path).Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "column_2", "c"}, headers)
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "a,b\n")

	records, headers, err := NewDataReader(path).Read()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, []string{"a", "b"}, headers)
}

func TestReadCSV_ArabicContent(t *testing.T) {
	path := writeTempCSV(t, "التاريخ,الاجمالي\n2024-01-15,١٠٠\n")

	records, headers, err := NewDataReader(path).Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"التاريخ", "الاجمالي"}, headers)
	require.Len(t, records, 1)
	assert.Equal(t, "١٠٠", record.AsString(records[0]["الاجمالي"]))
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Order Date", "Total Amount"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"2024-01-15", "100.50"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	records, headers, err := NewDataReader(path).Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"Order Date", "Total Amount"}, headers)
	require.Len(t, records, 1)
	assert.Equal(t, "100.50", record.AsString(records[0]["Total Amount"]))
}

func TestRead_MissingFile(t *testing.T) {
	_, _, err := NewDataReader("/nonexistent/orders.csv").Read()
	assert.Error(t, err)
}
