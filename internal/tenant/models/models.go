package models

// APIName identifies one of the optional APIs a tenant can enable.
// Astronomy and Health are always available and are not listed here.
type APIName string

const APICRM APIName = "crm"

// EntityTypeCustomer is the only entity type that currently supports field extensions.
const EntityTypeCustomer = "Customer"

// FieldType constrains the JSON schema type of a tenant-injected property.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeNumber FieldType = "number"
)

// FieldSpec describes one tenant-injected schema property.
type FieldSpec struct {
	Type        FieldType `json:"type"`
	Description string    `json:"description"`
}

// Configuration is the per-tenant value object owned by the tenant directory.
// Immutable after load; lives for the process lifetime.
type Configuration struct {
	// EnabledAPIs lists the APIs that have been enabled (bought) by this tenant.
	EnabledAPIs []APIName
	// FieldExtensions holds additional schema properties per entity type,
	// keyed by entity type name, then field name.
	FieldExtensions map[string]map[string]FieldSpec
}

// IsAPIEnabled reports whether the tenant has the given API enabled.
func (c Configuration) IsAPIEnabled(name APIName) bool {
	for _, api := range c.EnabledAPIs {
		if api == name {
			return true
		}
	}
	return false
}

// CustomerFieldExtensions returns the field extensions declared for the
// Customer entity type, or nil if there are none.
func (c Configuration) CustomerFieldExtensions() map[string]FieldSpec {
	if c.FieldExtensions == nil {
		return nil
	}
	return c.FieldExtensions[EntityTypeCustomer]
}

// UserContext carries the authenticated user identity and tenant scope through
// the request context. It is a value type and never mutated after creation.
type UserContext struct {
	UserName      string
	TenantID      string
	Configuration Configuration
}
