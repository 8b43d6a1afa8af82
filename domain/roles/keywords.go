package roles

// Keyword tables for name-based role detection. Static, immutable data
// passed into the detector rather than hardcoded control flow, so the
// bilingual vocabulary can be extended and tested independently of the
// matching algorithm. Patterns are case-insensitive substrings, listed in
// priority order: the first pattern that matches any column name wins.
//
// Arabic keywords cover the storefront exports this engine most often
// sees (Salla, Zid and similar Saudi platforms).

// DefaultKeywords returns the built-in bilingual pattern table
func DefaultKeywords() map[Role][]string {
	return map[Role][]string{
		RoleRevenue: {
			"revenue", "total amount", "grand total", "order total", "total",
			"amount", "price", "subtotal", "sales",
			"اجمالي", "الاجمالي", "المجموع", "سعر", "المبلغ", "الايرادات",
		},
		RoleQuantity: {
			"quantity", "qty", "units", "count",
			"كمية", "الكمية", "عدد",
		},
		RoleVAT: {
			"vat", "tax", "ضريبة", "الضريبة",
		},
		RoleShippingCost: {
			"shipping cost", "shipping", "delivery fee", "delivery cost", "freight",
			"شحن", "الشحن", "التوصيل",
		},
		RoleDate: {
			"order date", "purchase date", "date", "created at", "time",
			"تاريخ الطلب", "تاريخ", "التاريخ",
		},
		RoleCustomer: {
			"customer id", "customer", "client", "buyer", "user id", "user",
			"عميل", "العميل", "المشتري", "الزبون",
		},
		RoleProduct: {
			"product name", "product", "item", "sku name", "title",
			"منتج", "المنتج", "الصنف", "السلعة",
		},
		RoleOrderStatus: {
			"order status", "status", "state",
			"حالة الطلب", "الحالة", "حالة",
		},
		RolePaymentMethod: {
			"payment method", "payment", "pay method",
			"طريقة الدفع", "الدفع", "وسيلة الدفع",
		},
		RoleCity: {
			"city", "مدينة", "المدينة",
		},
		RoleCountry: {
			"country", "دولة", "الدولة", "البلد",
		},
	}
}
