package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"plain integer", "100", 100, true},
		{"decimal", "116.67", 116.67, true},
		{"thousands separator", "1,250.50", 1250.50, true},
		{"sar symbol", "100.50 ر.س", 100.50, true},
		{"sar word", "250 ريال", 250, true},
		{"latin currency code", "SAR 99.99", 99.99, true},
		{"dollar sign", "$42.00", 42, true},
		{"percent", "15%", 15, true},
		{"accounting negative", "(123.45)", -123.45, true},
		{"arabic indic digits", "١٢٣", 123, true},
		{"arabic decimal separator", "٥٠٫٢٥", 50.25, true},
		{"internal spaces", "1 250", 1250, true},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"text", "free shipping", 0, false},
		{"date string", "2024-01-15", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFloat(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"iso date", "2024-01-15", "2024-01-15", true},
		{"rfc3339", "2024-01-15T10:30:00Z", "2024-01-15", true},
		{"space datetime", "2024-01-15 10:30:00", "2024-01-15", true},
		{"day first slashes", "15/01/2024", "2024-01-15", true},
		{"slash ymd", "2024/01/15", "2024-01-15", true},
		{"dashed dmy", "15-01-2024", "2024-01-15", true},
		{"month name", "Jan 2, 2024", "2024-01-02", true},
		{"arabic indic iso", "٢٠٢٤-٠١-١٥", "2024-01-15", true},
		{"unix seconds", "1705276800", "2024-01-15", true},
		{"order number outside unix range", "12345", "", false},
		{"empty", "", "", false},
		{"free text", "pending", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTime(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got.UTC().Format("2006-01-02"))
			}
		})
	}
}

func TestAsFloat(t *testing.T) {
	assert.True(t, func() bool { _, ok := AsFloat(NewNumberValue(5)); return ok }())

	f, ok := AsFloat(NewStringValue("100.50 SAR"))
	require.True(t, ok)
	assert.InDelta(t, 100.50, f, 1e-9)

	_, ok = AsFloat(Missing())
	assert.False(t, ok)

	_, ok = AsFloat(NewBoolValue(true))
	assert.False(t, ok)
}

func TestAsTime_NumericCell(t *testing.T) {
	ts, ok := AsTime(NewNumberValue(1705276800))
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), ts)

	_, ok = AsTime(NewNumberValue(100))
	assert.False(t, ok)
}

func TestCellValueBlankness(t *testing.T) {
	assert.True(t, Missing().IsBlank())
	assert.True(t, NewStringValue("").IsBlank())
	assert.True(t, CellValue{Type: ValueTypeString, StringVal: ptr("   ")}.IsBlank())
	assert.False(t, NewStringValue("Riyadh").IsBlank())
	assert.False(t, NewNumberValue(0).IsBlank())
}

func TestFromAny(t *testing.T) {
	assert.Equal(t, ValueTypeMissing, FromAny(nil).Type)
	assert.Equal(t, ValueTypeNumber, FromAny(3.14).Type)
	assert.Equal(t, ValueTypeNumber, FromAny(7).Type)
	assert.Equal(t, ValueTypeBool, FromAny(true).Type)
	assert.Equal(t, ValueTypeString, FromAny("hat").Type)
	// Empty strings collapse straight to missing.
	assert.Equal(t, ValueTypeMissing, FromAny("").Type)
}

func ptr(s string) *string { return &s }
