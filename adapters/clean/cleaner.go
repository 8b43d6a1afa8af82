package clean

import (
	"regexp"
	"strings"

	"tajir/domain/record"
	"tajir/domain/roles"
)

// Cleaner normalizes detected e-commerce columns: product names lose SKU
// noise, Saudi payment methods default the blank city/country, VAT and
// shipping text variants collapse to numbers, and order status collapses
// to a binary Completed / Not Completed.
//
// Cleaning never mutates its input and is idempotent: every rule checks
// for the terminal-state value before rewriting, so re-running produces
// no further change.
type Cleaner struct{}

// NewCleaner creates a cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

const (
	StatusCompleted    = "Completed"
	StatusNotCompleted = "Not Completed"

	defaultCity    = "Riyadh"
	defaultCountry = "Saudi Arabia"
)

// saudiPaymentMethods are the payment methods that imply a domestic order,
// used to default a blank city/country. Matched lowercase and trimmed.
var saudiPaymentMethods = map[string]bool{
	"mada":                 true,
	"مدى":                  true,
	"stcpay":               true,
	"stc pay":              true,
	"tamara":               true,
	"تمارا":                true,
	"tabby":                true,
	"تابي":                 true,
	"sadad":                true,
	"سداد":                 true,
	"applepay":             true,
	"apple pay":            true,
	"cod":                  true,
	"cash on delivery":     true,
	"الدفع عند الاستلام":   true,
}

// noneSynonyms collapse to zero for VAT and shipping columns
var noneSynonyms = map[string]bool{
	"none": true,
	"zero": true,
	"n/a":  true,
	"nil":  true,
	"na":   true,
	"-":    true,
}

// shippingNoneSynonyms additionally collapse to zero for shipping only
var shippingNoneSynonyms = map[string]bool{
	"free":  true,
	"مجاني": true,
}

// completedTokens are the localized order-status values meaning fulfilled
var completedTokens = map[string]bool{
	"completed":  true,
	"complete":   true,
	"done":       true,
	"مكتمل":      true,
	"تم التوصيل": true,
}

// Product-name suffixes stripped in order. The bare parenthetical pattern
// runs last so "(SKU: x)" and "(Qty: 3)" are credited to their own rules.
var (
	skuDashPattern   = regexp.MustCompile(`(?i)\s*-\s*SKU:\s*\S+\s*$`)
	skuParenPattern  = regexp.MustCompile(`(?i)\s*\(SKU:[^)]*\)\s*$`)
	qtyParenPattern  = regexp.MustCompile(`(?i)\s*\(Qty:[^)]*\)\s*$`)
	bareParenPattern = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
)

// Clean returns a new record sequence with normalized values for the
// product, city, country, VAT, shipping and order-status columns, for
// whichever of those roles were detected. Rules for absent roles are
// skipped; the input slice and its records are left untouched.
func (c *Cleaner) Clean(records []record.Record, detected roles.ColumnRoleMap) []record.Record {
	if len(records) == 0 {
		return []record.Record{}
	}

	productCol, hasProduct := detected.Column(roles.RoleProduct)
	cityCol, hasCity := detected.Column(roles.RoleCity)
	countryCol, hasCountry := detected.Column(roles.RoleCountry)
	vatCol, hasVAT := detected.Column(roles.RoleVAT)
	shippingCol, hasShipping := detected.Column(roles.RoleShippingCost)
	statusCol, hasStatus := detected.Column(roles.RoleOrderStatus)
	paymentCol, hasPayment := detected.Column(roles.RolePaymentMethod)

	cleaned := make([]record.Record, len(records))
	for i, rec := range records {
		out := make(record.Record, len(rec))
		for k, v := range rec {
			out[k] = v
		}

		if hasProduct {
			out[productCol] = cleanProductName(out[productCol])
		}
		if hasVAT {
			out[vatCol] = coerceMoney(out[vatCol], noneSynonyms)
		}
		if hasShipping {
			out[shippingCol] = coerceShipping(out[shippingCol])
		}
		if hasStatus {
			out[statusCol] = collapseStatus(out[statusCol])
		}
		if hasPayment && hasCity && hasCountry {
			applyDomesticDefaults(out, paymentCol, cityCol, countryCol)
		}

		cleaned[i] = out
	}
	return cleaned
}

// cleanProductName strips SKU/quantity suffixes, trailing parentheticals
// and surrounding quotes. The strip rules are anchored at the end of the
// name, so stacked suffixes ("Abaya (red) (large)") expose a new trailing
// group each time one is removed; the pass repeats until a full pass
// changes nothing. Every rule only ever shortens the name, so the loop
// terminates.
func cleanProductName(v record.CellValue) record.CellValue {
	name := record.AsString(v)
	if name == "" {
		return v
	}

	for {
		next := skuDashPattern.ReplaceAllString(name, "")
		next = skuParenPattern.ReplaceAllString(next, "")
		next = qtyParenPattern.ReplaceAllString(next, "")
		next = bareParenPattern.ReplaceAllString(next, "")
		next = strings.Trim(next, `"'`)
		next = strings.TrimSpace(next)
		if next == name {
			break
		}
		name = next
	}

	if name == "" {
		return record.Missing()
	}
	return record.NewStringValue(name)
}

// coerceMoney collapses blanks and "none" synonyms to 0 and parses the
// rest as a number. Unparsable non-empty values coerce to 0 rather than
// failing: one bad cell must not abort the aggregate.
func coerceMoney(v record.CellValue, synonyms map[string]bool) record.CellValue {
	if f, ok := v.Float(); ok {
		return record.NewNumberValue(f)
	}
	if v.IsBlank() {
		return record.NewNumberValue(0)
	}
	s := strings.ToLower(record.AsString(v))
	if synonyms[s] {
		return record.NewNumberValue(0)
	}
	if f, ok := record.AsFloat(v); ok {
		return record.NewNumberValue(f)
	}
	return record.NewNumberValue(0)
}

func coerceShipping(v record.CellValue) record.CellValue {
	s := strings.ToLower(record.AsString(v))
	if shippingNoneSynonyms[s] {
		return record.NewNumberValue(0)
	}
	return coerceMoney(v, noneSynonyms)
}

// collapseStatus maps localized completed tokens to "Completed" and every
// other value, empty included, to "Not Completed". No partial or pending
// state survives the collapse.
func collapseStatus(v record.CellValue) record.CellValue {
	s := record.AsString(v)
	if s == StatusCompleted || s == StatusNotCompleted {
		return v
	}
	if completedTokens[strings.ToLower(s)] {
		return record.NewStringValue(StatusCompleted)
	}
	return record.NewStringValue(StatusNotCompleted)
}

// applyDomesticDefaults fills a blank city and country for known Saudi
// payment methods. Never overwrites a non-blank value, and only fires when
// both are blank.
func applyDomesticDefaults(rec record.Record, paymentCol, cityCol, countryCol string) {
	method := strings.ToLower(record.AsString(rec[paymentCol]))
	if !saudiPaymentMethods[method] {
		return
	}
	if rec[cityCol].IsBlank() && rec[countryCol].IsBlank() {
		rec[cityCol] = record.NewStringValue(defaultCity)
		rec[countryCol] = record.NewStringValue(defaultCountry)
	}
}
