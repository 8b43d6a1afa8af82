package record

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Fallible coercion from raw cells to the types the analyzers aggregate on.
// The rules are deterministic and locale-tolerant: uploads mix currency
// symbols, thousands separators, Arabic-Indic digits and assorted date
// formats, and a cell that fails to coerce is skipped, never fatal.

// currencyTokens are stripped before numeric parsing. SAR variants first
// since most uploads come from Saudi storefronts.
var currencyTokens = []string{"ر.س", "ريال", "SAR", "$", "€", "£", "¥", "USD", "EUR", "AED"}

// dateFormats tried in order by AsTime
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"02-01-2006",
	"02-Jan-2006",
	"Jan 2, 2006",
}

// arabicIndicDigits maps ٠١٢٣٤٥٦٧٨٩ onto ASCII digits
var arabicIndicDigits = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"٫", ".", "٬", ",",
)

// AsFloat attempts to coerce a cell to a finite float64.
// Numeric cells pass through; string cells go through normalization:
// currency symbols, percent signs and grouping separators are stripped,
// parenthesized values are negated, Arabic-Indic digits are transliterated.
func AsFloat(v CellValue) (float64, bool) {
	if v.IsMissing {
		return 0, false
	}
	if f, ok := v.Float(); ok {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	}
	if v.Type != ValueTypeString || v.StringVal == nil {
		return 0, false
	}
	return ParseFloat(*v.StringVal)
}

// ParseFloat applies the normalization rules to a raw string
func ParseFloat(s string) (float64, bool) {
	cleaned := strings.TrimSpace(arabicIndicDigits.Replace(s))
	if cleaned == "" {
		return 0, false
	}

	// Accounting convention: (123.45) means -123.45
	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = strings.TrimSuffix(strings.TrimPrefix(cleaned, "("), ")")
		negative = true
	}

	for _, tok := range currencyTokens {
		cleaned = strings.ReplaceAll(cleaned, tok, "")
	}
	cleaned = strings.ReplaceAll(cleaned, "%", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.TrimSpace(cleaned)

	if negative {
		cleaned = "-" + cleaned
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// AsTime attempts to coerce a cell to a timestamp. String cells are tried
// against the known format list; numeric cells are treated as Unix seconds
// when they fall in a plausible range.
func AsTime(v CellValue) (time.Time, bool) {
	if v.IsMissing {
		return time.Time{}, false
	}
	if f, ok := v.Float(); ok {
		return unixInRange(int64(f))
	}
	if v.Type != ValueTypeString || v.StringVal == nil {
		return time.Time{}, false
	}
	return ParseTime(*v.StringVal)
}

// ParseTime parses a raw string against the known date formats
func ParseTime(s string) (time.Time, bool) {
	cleaned := strings.TrimSpace(arabicIndicDigits.Replace(s))
	if cleaned == "" {
		return time.Time{}, false
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, true
		}
	}
	if unix, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
		return unixInRange(unix)
	}
	return time.Time{}, false
}

func unixInRange(unix int64) (time.Time, bool) {
	// Seconds between 2000-01-01 and 2100-01-01; anything else is more
	// likely an order number than a timestamp.
	if unix > 946684800 && unix < 4102444800 {
		return time.Unix(unix, 0).UTC(), true
	}
	return time.Time{}, false
}

// AsString returns the trimmed string form of a cell, empty when missing
func AsString(v CellValue) string {
	return strings.TrimSpace(v.String())
}
