package roles

// Role is the semantic business meaning a column can play in a dataset
type Role string

const (
	RoleRevenue       Role = "revenue"
	RoleDate          Role = "date"
	RoleCustomer      Role = "customer"
	RoleProduct       Role = "product"
	RoleQuantity      Role = "quantity"
	RoleCity          Role = "city"
	RoleCountry       Role = "country"
	RoleVAT           Role = "vat"
	RoleShippingCost  Role = "shippingCost"
	RoleOrderStatus   Role = "orderStatus"
	RolePaymentMethod Role = "paymentMethod"
)

// ColumnRoleMap maps semantic roles to the concrete column name carrying
// that meaning in a given dataset. Absent entries mean "undetected".
type ColumnRoleMap map[Role]string

// Column returns the column name detected for the role
func (m ColumnRoleMap) Column(r Role) (string, bool) {
	name, ok := m[r]
	return name, ok
}

// Has reports whether every given role was detected
func (m ColumnRoleMap) Has(rs ...Role) bool {
	for _, r := range rs {
		if _, ok := m[r]; !ok {
			return false
		}
	}
	return true
}

// Missing returns the subset of the given roles with no detected column,
// in the order given, for error messages.
func (m ColumnRoleMap) Missing(rs ...Role) []string {
	var missing []string
	for _, r := range rs {
		if _, ok := m[r]; !ok {
			missing = append(missing, string(r))
		}
	}
	return missing
}

// Clone returns a copy so callers can overlay hints without mutating input
func (m ColumnRoleMap) Clone() ColumnRoleMap {
	out := make(ColumnRoleMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// DetectionOrder fixes the priority in which roles claim columns. A column
// claimed by an earlier role is excluded from later ones, so the more
// specific patterns must resolve first.
var DetectionOrder = []Role{
	RoleRevenue,
	RoleQuantity,
	RoleVAT,
	RoleShippingCost,
	RoleDate,
	RoleCustomer,
	RoleProduct,
	RoleOrderStatus,
	RolePaymentMethod,
	RoleCity,
	RoleCountry,
}
