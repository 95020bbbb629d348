package ord

import (
	"context"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ordref/internal/tenant/models"
)

// ConfigurationLookup resolves a local tenant id to its configuration.
// The tenant directory satisfies this.
type ConfigurationLookup interface {
	Lookup(localTenantID string) (models.Configuration, error)
}

// Projection derives tenant specific document variants from the shared base
// template. The base is read-only; every variant works on a deep copy.
type Projection struct {
	base   Document
	lookup ConfigurationLookup
	tracer trace.Tracer
}

// NewProjection creates a projection over the given base document.
func NewProjection(base Document, lookup ConfigurationLookup) *Projection {
	return &Projection{
		base:   base,
		lookup: lookup,
		tracer: otel.Tracer("ordref/ord"),
	}
}

// SystemVersion returns the tenant-neutral document. It is served as-is and
// must not be mutated by callers.
func (p *Projection) SystemVersion() Document {
	return p.base
}

// ForTenant projects the base document for one system instance.
//
// The copy always gets the system-instance perspective. Without a local tenant
// id the copy is otherwise unmodified (the degradation path for unmapped
// global ids). With a tenant id, the description gains a disclosure sentence
// and API resources the tenant has not enabled are removed by ordId equality.
// A non-empty id that is missing from the directory is a service
// misconfiguration and fails the projection.
func (p *Projection) ForTenant(ctx context.Context, localTenantID string) (Document, error) {
	_, span := p.tracer.Start(ctx, "ord.project",
		trace.WithAttributes(attribute.String("tenant.local_id", localTenantID)))
	defer span.End()

	doc := p.base.Clone()
	doc.Perspective = PerspectiveSystemInstance

	if localTenantID == "" {
		return doc, nil
	}

	doc.Description += fmt.Sprintf("\nThis ORD Document is specific to tenant %q", localTenantID)

	cfg, err := p.lookup.Lookup(localTenantID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Document{}, err
	}

	if !cfg.IsAPIEnabled(models.APICRM) {
		// Do not describe the CRM API if the tenant does not have it available.
		doc.APIResources = slices.DeleteFunc(doc.APIResources, func(r APIResource) bool {
			return r.OrdID == CRMAPIOrdID
		})
	}

	return doc, nil
}
