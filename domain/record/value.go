package record

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record is one row of uploaded tabular data: column name to cell value.
// Column names are free-form and may be Latin or Arabic.
type Record map[string]CellValue

// CellValue represents a typed cell with deterministic coercion
type CellValue struct {
	Type      ValueType `json:"type"`
	StringVal *string   `json:"string_val,omitempty"`
	NumberVal *float64  `json:"number_val,omitempty"`
	BoolVal   *bool     `json:"bool_val,omitempty"`
	IsMissing bool      `json:"is_missing"`
}

// ValueType defines the storage type for cell values
type ValueType string

const (
	ValueTypeString  ValueType = "string"
	ValueTypeNumber  ValueType = "number"
	ValueTypeBool    ValueType = "bool"
	ValueTypeMissing ValueType = "missing"
)

// NewStringValue creates a string cell value
func NewStringValue(s string) CellValue {
	if s == "" {
		return CellValue{Type: ValueTypeMissing, IsMissing: true}
	}
	return CellValue{Type: ValueTypeString, StringVal: &s}
}

// NewNumberValue creates a numeric cell value
func NewNumberValue(n float64) CellValue {
	return CellValue{Type: ValueTypeNumber, NumberVal: &n}
}

// NewBoolValue creates a boolean cell value
func NewBoolValue(b bool) CellValue {
	return CellValue{Type: ValueTypeBool, BoolVal: &b}
}

// Missing creates a missing cell value
func Missing() CellValue {
	return CellValue{Type: ValueTypeMissing, IsMissing: true}
}

// FromAny converts an arbitrary JSON-compatible value into a CellValue.
// Uploaded rows arrive as map[string]interface{} from the JSON or file
// layer; everything funnels through here.
func FromAny(v interface{}) CellValue {
	switch t := v.(type) {
	case nil:
		return Missing()
	case string:
		return NewStringValue(t)
	case float64:
		return NewNumberValue(t)
	case float32:
		return NewNumberValue(float64(t))
	case int:
		return NewNumberValue(float64(t))
	case int64:
		return NewNumberValue(float64(t))
	case bool:
		return NewBoolValue(t)
	default:
		return NewStringValue(fmt.Sprintf("%v", t))
	}
}

// FromRow converts a raw row into a Record
func FromRow(row map[string]interface{}) Record {
	rec := make(Record, len(row))
	for k, v := range row {
		rec[k] = FromAny(v)
	}
	return rec
}

// String returns the string representation of the value
func (v CellValue) String() string {
	switch v.Type {
	case ValueTypeString:
		if v.StringVal != nil {
			return *v.StringVal
		}
	case ValueTypeNumber:
		if v.NumberVal != nil {
			return fmt.Sprintf("%g", *v.NumberVal)
		}
	case ValueTypeBool:
		if v.BoolVal != nil {
			return fmt.Sprintf("%t", *v.BoolVal)
		}
	case ValueTypeMissing:
		return ""
	}
	return ""
}

// IsBlank reports whether the cell is missing or holds only whitespace.
// Blankness, not Go nil-ness, is what the cleaning rules test.
func (v CellValue) IsBlank() bool {
	if v.IsMissing || v.Type == ValueTypeMissing {
		return true
	}
	if v.Type == ValueTypeString && v.StringVal != nil {
		return strings.TrimSpace(*v.StringVal) == ""
	}
	return false
}

// Float returns the numeric value when the cell already holds a number
func (v CellValue) Float() (float64, bool) {
	if v.Type == ValueTypeNumber && v.NumberVal != nil {
		return *v.NumberVal, true
	}
	return 0, false
}

// MarshalJSON flattens the cell to its primitive JSON form. Persisted
// analysis results carry plain values, not the tagged union.
func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.Type {
	case ValueTypeNumber:
		if v.NumberVal != nil {
			return []byte(fmt.Sprintf("%g", *v.NumberVal)), nil
		}
	case ValueTypeString:
		if v.StringVal != nil {
			return json.Marshal(*v.StringVal)
		}
	case ValueTypeBool:
		if v.BoolVal != nil {
			return []byte(fmt.Sprintf("%t", *v.BoolVal)), nil
		}
	}
	return []byte("null"), nil
}
