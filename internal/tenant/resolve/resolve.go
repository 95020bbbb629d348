// Package resolve extracts tenant identifiers from incoming requests and
// dispatches between the discovery access strategies.
package resolve

import (
	"net/http"
	"strings"
)

// Tenant identifying header names. Both are also accepted as query parameters
// of the same name for demo convenience.
const (
	HeaderLocalTenantID  = "local-tenant-id"
	HeaderGlobalTenantID = "global-tenant-id"
)

// Strategy names the access strategy a request resolved to.
type Strategy string

const (
	StrategyLocalTenantID  Strategy = "open-local-tenant-id"
	StrategyGlobalTenantID Strategy = "open-global-tenant-id"
	StrategyOpen           Strategy = "open"
)

// TenantIDs is the raw header/query extraction result. No validation of the
// id format happens at this layer; any non-empty string is accepted.
type TenantIDs struct {
	LocalTenantID  string
	GlobalTenantID string
}

// TenantIDsFromRequest reads the tenant identifying headers, normalizing
// array-valued headers to a single string. A query parameter of the same name
// takes precedence over the header value.
func TenantIDsFromRequest(r *http.Request) TenantIDs {
	return TenantIDs{
		LocalTenantID:  headerOrQuery(r, HeaderLocalTenantID),
		GlobalTenantID: headerOrQuery(r, HeaderGlobalTenantID),
	}
}

func headerOrQuery(r *http.Request, name string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	// TODO: repeated header values collapse without a separator ("A","B" -> "AB");
	// changing this needs a product decision since the joined value is observable.
	return strings.Join(r.Header.Values(name), "")
}

// GlobalMapper translates a global tenant id into a local one.
// The mapping is not required to be total.
type GlobalMapper interface {
	MapGlobal(globalTenantID string) (string, bool)
}

// Resolution is the outcome of the access-strategy dispatch: which strategy
// the request used and the local tenant id it scoped to. LocalTenantID is
// empty for the open strategy, and for a global id missing from the mapping,
// in which case consumers degrade to the tenant-neutral document.
type Resolution struct {
	Strategy       Strategy
	LocalTenantID  string
	GlobalTenantID string
}

// Resolve selects exactly one of the three resolution paths, in fixed
// precedence order: local tenant id beats global tenant id beats none.
func (t TenantIDs) Resolve(mapper GlobalMapper) Resolution {
	if t.LocalTenantID != "" {
		return Resolution{
			Strategy:      StrategyLocalTenantID,
			LocalTenantID: t.LocalTenantID,
		}
	}
	if t.GlobalTenantID != "" {
		local, _ := mapper.MapGlobal(t.GlobalTenantID)
		return Resolution{
			Strategy:       StrategyGlobalTenantID,
			LocalTenantID:  local,
			GlobalTenantID: t.GlobalTenantID,
		}
	}
	return Resolution{Strategy: StrategyOpen}
}

// HasTenant reports whether any tenant identifying value was supplied,
// regardless of whether it mapped to a known local tenant.
func (t TenantIDs) HasTenant() bool {
	return t.LocalTenantID != "" || t.GlobalTenantID != ""
}
