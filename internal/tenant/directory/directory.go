// Package directory holds the static tenant directory of the reference
// application: tenant configurations, the global-to-local tenant id mapping,
// and the (intentionally insecure) API user table.
package directory

import (
	"fmt"

	"ordref/internal/tenant/models"
	dErrors "ordref/pkg/domain-errors"
)

// user is one entry of the credential table.
type user struct {
	password string
	tenantID string
}

// Directory is the read-only tenant directory. All maps are populated once at
// construction and never written afterwards, so concurrent readers never race.
type Directory struct {
	tenants       map[string]models.Configuration
	globalToLocal map[string]string
	users         map[string]user
}

// NewDefault builds the directory with the static sample data of the
// reference application.
func NewDefault() *Directory {
	return &Directory{
		tenants: map[string]models.Configuration{
			// Tenant T1 has all APIs enabled and a field extension on the Customer entity type.
			"T1": {
				EnabledAPIs: []models.APIName{models.APICRM},
				FieldExtensions: map[string]map[string]models.FieldSpec{
					models.EntityTypeCustomer: {
						"customT1Field1": {
							Type:        models.FieldTypeString,
							Description: "Custom Field 1 (added by Tenant T1)",
						},
					},
				},
			},
			// Tenant T2 has not enabled or bought the CRM API functionality.
			"T2": {
				EnabledAPIs: []models.APIName{},
			},
		},
		globalToLocal: map[string]string{
			"740000101": "T1",
			"740000102": "T2",
		},
		users: map[string]user{
			"foo":  {password: "bar", tenantID: "T1"},
			"foo2": {password: "bar", tenantID: "T1"},
			"bar":  {password: "foo", tenantID: "T2"},
		},
	}
}

// Lookup returns the configuration of a local tenant id.
// An id that is not in the directory yields a configuration-not-found error,
// which the boundary layer surfaces as a server-side failure.
func (d *Directory) Lookup(localTenantID string) (models.Configuration, error) {
	cfg, ok := d.tenants[localTenantID]
	if !ok {
		return models.Configuration{}, dErrors.NewWithTarget(
			dErrors.CodeConfigurationNotFound,
			fmt.Sprintf("no tenant configuration found for tenant id %q", localTenantID),
			localTenantID,
		)
	}
	return cfg, nil
}

// MapGlobal translates a global tenant id into a local one. The mapping is not
// total: an unmapped global id reports ok=false and downstream consumers
// degrade to the tenant-neutral behavior instead of failing closed.
func (d *Directory) MapGlobal(globalTenantID string) (string, bool) {
	local, ok := d.globalToLocal[globalTenantID]
	return local, ok
}

// Authenticate validates a username/password pair against the fixed credential
// table and returns the user context on success.
//
// Credentials are compared in plaintext on every request. This is acceptable
// only because this is a non-production sample.
func (d *Directory) Authenticate(username, password string) (models.UserContext, error) {
	u, ok := d.users[username]
	if !ok || u.password != password {
		return models.UserContext{}, dErrors.New(
			dErrors.CodeUnauthorized,
			fmt.Sprintf("Unknown username %q and password combination", username),
		)
	}
	cfg, err := d.Lookup(u.tenantID)
	if err != nil {
		return models.UserContext{}, err
	}
	return models.UserContext{
		UserName:      username,
		TenantID:      u.tenantID,
		Configuration: cfg,
	}, nil
}
