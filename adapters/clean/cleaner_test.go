package clean

import (
	"testing"

	"tajir/domain/record"
	"tajir/domain/roles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRoles = roles.ColumnRoleMap{
	roles.RoleProduct:       "product",
	roles.RoleCity:          "city",
	roles.RoleCountry:       "country",
	roles.RoleVAT:           "vat",
	roles.RoleShippingCost:  "shipping",
	roles.RoleOrderStatus:   "status",
	roles.RolePaymentMethod: "payment",
}

func orderRow(cells map[string]record.CellValue) record.Record {
	return record.Record(cells)
}

func str(s string) record.CellValue { return record.NewStringValue(s) }

func TestCleanProductNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dash sku suffix", "Blue Abaya - SKU: AB-123", "Blue Abaya"},
		{"paren sku suffix", "Blue Abaya (SKU: AB-123)", "Blue Abaya"},
		{"qty suffix", "Blue Abaya (Qty: 3)", "Blue Abaya"},
		{"bare parenthetical", "Blue Abaya (large)", "Blue Abaya"},
		{"stacked parentheticals", "Blue Abaya (red) (large)", "Blue Abaya"},
		{"sku behind parenthetical", "Blue Abaya (SKU: AB-123) (large)", "Blue Abaya"},
		{"quoted with suffix", `"Blue Abaya (large)"`, "Blue Abaya"},
		{"surrounding quotes", `"Blue Abaya"`, "Blue Abaya"},
		{"clean name untouched", "Blue Abaya", "Blue Abaya"},
		{"arabic name untouched", "عباية زرقاء", "عباية زرقاء"},
		{"case insensitive sku", "Hat - sku: h1", "Hat"},
	}
	cleaner := NewCleaner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []record.Record{orderRow(map[string]record.CellValue{"product": str(tt.input)})}
			cleaned := cleaner.Clean(records, roles.ColumnRoleMap{roles.RoleProduct: "product"})
			assert.Equal(t, tt.want, record.AsString(cleaned[0]["product"]))
		})
	}
}

func TestCleanVATAndShipping(t *testing.T) {
	tests := []struct {
		name     string
		vat      string
		shipping string
		wantVAT  float64
		wantShip float64
	}{
		{"numeric passthrough", "15.50", "10", 15.50, 10},
		{"none synonyms", "none", "n/a", 0, 0},
		{"free shipping", "15", "free", 15, 0},
		{"arabic free shipping", "15", "مجاني", 15, 0},
		{"currency suffix", "7.5 ر.س", "25 SAR", 7.5, 25},
		{"unparsable coerces to zero", "garbage", "???", 0, 0},
		{"blank coerces to zero", "", "", 0, 0},
	}
	cleaner := NewCleaner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []record.Record{orderRow(map[string]record.CellValue{
				"vat": str(tt.vat), "shipping": str(tt.shipping),
			})}
			cleaned := cleaner.Clean(records, testRoles)

			vat, ok := cleaned[0]["vat"].Float()
			require.True(t, ok)
			assert.InDelta(t, tt.wantVAT, vat, 1e-9)

			ship, ok := cleaned[0]["shipping"].Float()
			require.True(t, ok)
			assert.InDelta(t, tt.wantShip, ship, 1e-9)
		})
	}
}

func TestCollapseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"completed", StatusCompleted},
		{"Complete", StatusCompleted},
		{"DONE", StatusCompleted},
		{"مكتمل", StatusCompleted},
		{"تم التوصيل", StatusCompleted},
		{"pending", StatusNotCompleted},
		{"cancelled", StatusNotCompleted},
		{"", StatusNotCompleted},
		{StatusCompleted, StatusCompleted},
		{StatusNotCompleted, StatusNotCompleted},
	}
	cleaner := NewCleaner()
	for _, tt := range tests {
		records := []record.Record{orderRow(map[string]record.CellValue{"status": str(tt.input)})}
		cleaned := cleaner.Clean(records, testRoles)
		assert.Equal(t, tt.want, record.AsString(cleaned[0]["status"]), "input %q", tt.input)
	}
}

func TestDomesticDefaults(t *testing.T) {
	tests := []struct {
		name        string
		payment     string
		city        string
		country     string
		wantCity    string
		wantCountry string
	}{
		{"mada fills both", "mada", "", "", "Riyadh", "Saudi Arabia"},
		{"arabic mada", "مدى", "", "", "Riyadh", "Saudi Arabia"},
		{"stc pay", "STC Pay", "", "", "Riyadh", "Saudi Arabia"},
		{"cash on delivery arabic", "الدفع عند الاستلام", "", "", "Riyadh", "Saudi Arabia"},
		{"foreign method untouched", "visa", "", "", "", ""},
		{"existing city blocks default", "mada", "Jeddah", "", "Jeddah", ""},
		{"existing country blocks default", "mada", "", "Kuwait", "", "Kuwait"},
	}
	cleaner := NewCleaner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []record.Record{orderRow(map[string]record.CellValue{
				"payment": str(tt.payment), "city": str(tt.city), "country": str(tt.country),
			})}
			cleaned := cleaner.Clean(records, testRoles)
			assert.Equal(t, tt.wantCity, record.AsString(cleaned[0]["city"]))
			assert.Equal(t, tt.wantCountry, record.AsString(cleaned[0]["country"]))
		})
	}
}

// Cleaning twice must produce exactly what cleaning once produced.
func TestCleanIsIdempotent(t *testing.T) {
	records := []record.Record{
		orderRow(map[string]record.CellValue{
			"product": str("Abaya (SKU: A1)"), "vat": str("none"), "shipping": str("free"),
			"status": str("تم التوصيل"), "payment": str("mada"), "city": str(""), "country": str(""),
		}),
		orderRow(map[string]record.CellValue{
			"product": str("Hat - SKU: H2"), "vat": str("7.5"), "shipping": str("10 SAR"),
			"status": str("pending"), "payment": str("visa"), "city": str("Dubai"), "country": str("UAE"),
		}),
		orderRow(map[string]record.CellValue{
			"product": str("Blue Abaya (red) (large)"), "vat": str("0"), "shipping": str("0"),
			"status": str("completed"), "payment": str("tabby"), "city": str(""), "country": str(""),
		}),
	}
	cleaner := NewCleaner()

	once := cleaner.Clean(records, testRoles)
	twice := cleaner.Clean(once, testRoles)
	// Stacked suffixes must be fully stripped on the first pass, not one
	// group per pass.
	assert.Equal(t, "Blue Abaya", record.AsString(once[2]["product"]))
	assert.Equal(t, once, twice)
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	original := orderRow(map[string]record.CellValue{
		"product": str("Abaya (SKU: A1)"), "status": str("done"),
	})
	records := []record.Record{original}

	NewCleaner().Clean(records, testRoles)

	assert.Equal(t, "Abaya (SKU: A1)", record.AsString(original["product"]))
	assert.Equal(t, "done", record.AsString(original["status"]))
}

func TestCleanSkipsUndetectedRoles(t *testing.T) {
	records := []record.Record{orderRow(map[string]record.CellValue{
		"product": str("Abaya (SKU: A1)"),
	})}
	cleaned := NewCleaner().Clean(records, roles.ColumnRoleMap{})
	assert.Equal(t, "Abaya (SKU: A1)", record.AsString(cleaned[0]["product"]))
}
