// Package crm implements the BasicAuth protected, tenant aware CRM sample API.
package crm

// Customer is the API model of a CRM customer.
type Customer struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	// Extensions holds custom field extensions as exposed by the API.
	Extensions map[string]any `json:"extensions,omitempty"`
}

// CustomersResponse returns a list of customers.
type CustomersResponse struct {
	Value []Customer `json:"value"`
}

// customerData is one raw datastore record, including custom field extensions
// on the datastore level.
type customerData struct {
	id         int
	firstName  string
	lastName   string
	email      string
	extensions map[string]any
}

// Since the CRM service is tenant aware, the customer data is different for
// each tenant, although the customer ID is unique across tenants.
var customerTable = map[string][]customerData{
	"T1": {
		{id: 1, firstName: "Ingmar", lastName: "Filov", email: "ifilov0@example.com",
			extensions: map[string]any{"customT1Field1": "Custom Field Value ABC"}},
		{id: 2, firstName: "Gleda", lastName: "Rosendahl", email: "grosendahl1@example.com"},
		{id: 3, firstName: "Jodi", lastName: "Gilligan", email: "jgilligan2@example.com",
			extensions: map[string]any{"customT1Field1": "Custom Field Value XYZ"}},
		{id: 4, firstName: "Angele", lastName: "Engley", email: "aengley3@example.com"},
		{id: 5, firstName: "Broddie", lastName: "Salling", email: "bsalling4@example.com"},
		{id: 6, firstName: "Fabe", lastName: "Mayhou", email: "fmayhou5@example.com"},
		{id: 7, firstName: "Christen", lastName: "Izkovicz", email: "cizkovicz6@example.com"},
		{id: 8, firstName: "Kerwin", lastName: "Timcke", email: "ktimcke7@example.com"},
		{id: 9, firstName: "Rayshell", lastName: "Raikes", email: "rraikes8@example.com"},
		{id: 10, firstName: "Lacie", lastName: "Tick", email: "ltick9@example.com"},
		{id: 11, firstName: "Julieta", lastName: "Bugby", email: "jbugbya@example.com"},
		{id: 12, firstName: "Inna", lastName: "Baldin", email: "ibaldinb@example.com"},
	},
	"T2": {
		{id: 13, firstName: "Georgianna", lastName: "Stenning", email: "gstenningc@example.com"},
		{id: 14, firstName: "Lorrie", lastName: "Woodes", email: "lwoodesd@example.com"},
		{id: 15, firstName: "Dasya", lastName: "Havelin", email: "dhaveline@example.com"},
		{id: 16, firstName: "Janna", lastName: "Beekman", email: "jbeekmanf@example.com"},
		{id: 17, firstName: "Carlie", lastName: "Divill", email: "cdivillg@example.com"},
	},
}

// CustomersForTenant maps the raw records of one tenant to the API model.
// An unknown tenant yields an empty list, not an error.
func CustomersForTenant(tenantID string) []Customer {
	records := customerTable[tenantID]
	out := make([]Customer, len(records))
	for i, rec := range records {
		out[i] = Customer{
			ID:         rec.id,
			FirstName:  rec.firstName,
			LastName:   rec.lastName,
			Email:      rec.email,
			Extensions: rec.extensions,
		}
	}
	return out
}
