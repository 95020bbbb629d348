package ord

import "slices"

// Clone returns a deep copy of the document. Every nested slice, map, and
// pointer is copied so tenant projections can freely mutate the result while
// the shared base template stays untouched.
func (d Document) Clone() Document {
	out := d
	out.PolicyLevels = slices.Clone(d.PolicyLevels)
	if d.DescribedSystemInstance != nil {
		instance := *d.DescribedSystemInstance
		out.DescribedSystemInstance = &instance
	}
	if d.DescribedSystemVersion != nil {
		version := *d.DescribedSystemVersion
		out.DescribedSystemVersion = &version
	}
	out.Products = slices.Clone(d.Products)
	out.Packages = clonePackages(d.Packages)
	out.ConsumptionBundles = cloneConsumptionBundles(d.ConsumptionBundles)
	out.APIResources = cloneAPIResources(d.APIResources)
	out.EventResources = cloneEventResources(d.EventResources)
	out.EntityTypes = slices.Clone(d.EntityTypes)
	out.Tombstones = slices.Clone(d.Tombstones)
	return out
}

func clonePackages(in []Package) []Package {
	if in == nil {
		return nil
	}
	out := make([]Package, len(in))
	for i, p := range in {
		p.PartOfProducts = slices.Clone(p.PartOfProducts)
		p.Tags = slices.Clone(p.Tags)
		p.PackageLinks = slices.Clone(p.PackageLinks)
		p.Links = slices.Clone(p.Links)
		if p.Labels != nil {
			labels := make(map[string][]string, len(p.Labels))
			for k, v := range p.Labels {
				labels[k] = slices.Clone(v)
			}
			p.Labels = labels
		}
		out[i] = p
	}
	return out
}

func cloneConsumptionBundles(in []ConsumptionBundle) []ConsumptionBundle {
	if in == nil {
		return nil
	}
	out := make([]ConsumptionBundle, len(in))
	for i, b := range in {
		b.CredentialExchangeStrategies = slices.Clone(b.CredentialExchangeStrategies)
		out[i] = b
	}
	return out
}

func cloneAPIResources(in []APIResource) []APIResource {
	if in == nil {
		return nil
	}
	out := make([]APIResource, len(in))
	for i, r := range in {
		r.PartOfConsumptionBundles = slices.Clone(r.PartOfConsumptionBundles)
		r.APIResourceLinks = slices.Clone(r.APIResourceLinks)
		r.ResourceDefinitions = cloneResourceDefinitions(r.ResourceDefinitions)
		r.EntryPoints = slices.Clone(r.EntryPoints)
		if r.Extensible != nil {
			ext := *r.Extensible
			r.Extensible = &ext
		}
		r.EntityTypeMappings = cloneEntityTypeMappings(r.EntityTypeMappings)
		r.ChangelogEntries = slices.Clone(r.ChangelogEntries)
		out[i] = r
	}
	return out
}

func cloneEventResources(in []EventResource) []EventResource {
	if in == nil {
		return nil
	}
	out := make([]EventResource, len(in))
	for i, r := range in {
		r.ResourceDefinitions = cloneResourceDefinitions(r.ResourceDefinitions)
		if r.Extensible != nil {
			ext := *r.Extensible
			r.Extensible = &ext
		}
		r.EntityTypeMappings = cloneEntityTypeMappings(r.EntityTypeMappings)
		out[i] = r
	}
	return out
}

func cloneResourceDefinitions(in []ResourceDefinition) []ResourceDefinition {
	if in == nil {
		return nil
	}
	out := make([]ResourceDefinition, len(in))
	for i, def := range in {
		def.AccessStrategies = slices.Clone(def.AccessStrategies)
		out[i] = def
	}
	return out
}

func cloneEntityTypeMappings(in []EntityTypeMapping) []EntityTypeMapping {
	if in == nil {
		return nil
	}
	out := make([]EntityTypeMapping, len(in))
	for i, m := range in {
		m.EntityTypeTargets = slices.Clone(m.EntityTypeTargets)
		out[i] = m
	}
	return out
}
