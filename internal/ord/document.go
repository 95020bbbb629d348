// Package ord models the Open Resource Discovery document of the reference
// application and its per-tenant projection.
package ord

// Document is an ORD document: a tree of packages, API resources, event
// resources, entity types, and tombstones, each carrying a stable ordId that
// is unique within the document.
//
// The base document is a read-only template shared across concurrent requests.
// It is never mutated in place; per-tenant variants always work on a Clone.
type Document struct {
	OpenResourceDiscovery    string              `json:"openResourceDiscovery"`
	PolicyLevels             []string            `json:"policyLevels,omitempty"`
	Perspective              string              `json:"perspective,omitempty"`
	Description              string              `json:"description,omitempty"`
	DescribedSystemInstance  *SystemInstance     `json:"describedSystemInstance,omitempty"`
	DescribedSystemVersion   *SystemVersion      `json:"describedSystemVersion,omitempty"`
	Products                 []Product           `json:"products,omitempty"`
	Packages                 []Package           `json:"packages,omitempty"`
	ConsumptionBundles       []ConsumptionBundle `json:"consumptionBundles,omitempty"`
	APIResources             []APIResource       `json:"apiResources,omitempty"`
	EventResources           []EventResource     `json:"eventResources,omitempty"`
	EntityTypes              []EntityType        `json:"entityTypes,omitempty"`
	Tombstones               []Tombstone         `json:"tombstones,omitempty"`
}

// SystemInstance describes the system instance exposing this document.
type SystemInstance struct {
	BaseURL string `json:"baseUrl"`
}

// SystemVersion describes the version of the system exposing this document.
type SystemVersion struct {
	Version string `json:"version"`
}

// Product is a commercial product grouping of packages.
type Product struct {
	OrdID            string `json:"ordId"`
	Title            string `json:"title"`
	Vendor           string `json:"vendor"`
	ShortDescription string `json:"shortDescription"`
}

// Package groups resources that belong and are published together.
type Package struct {
	OrdID            string              `json:"ordId"`
	Title            string              `json:"title"`
	ShortDescription string              `json:"shortDescription"`
	Description      string              `json:"description"`
	Version          string              `json:"version"`
	PolicyLevel      string              `json:"policyLevel,omitempty"`
	PartOfProducts   []string            `json:"partOfProducts,omitempty"`
	Vendor           string              `json:"vendor,omitempty"`
	Tags             []string            `json:"tags,omitempty"`
	PackageLinks     []TypedLink         `json:"packageLinks,omitempty"`
	Links            []TitledLink        `json:"links,omitempty"`
	Labels           map[string][]string `json:"labels,omitempty"`
}

// TypedLink is a link classified by its type, e.g. "license".
type TypedLink struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// TitledLink is a link with a human readable title.
type TitledLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ConsumptionBundle is a named grouping of API/event resources that share one
// access and credential model.
type ConsumptionBundle struct {
	OrdID                        string                       `json:"ordId"`
	Version                      string                       `json:"version"`
	LastUpdate                   string                       `json:"lastUpdate,omitempty"`
	Title                        string                       `json:"title"`
	ShortDescription             string                       `json:"shortDescription"`
	Description                  string                       `json:"description,omitempty"`
	CredentialExchangeStrategies []CredentialExchangeStrategy `json:"credentialExchangeStrategies,omitempty"`
}

// CredentialExchangeStrategy declares how credentials for a bundle are obtained.
type CredentialExchangeStrategy struct {
	Type              string `json:"type"`
	CustomType        string `json:"customType,omitempty"`
	CustomDescription string `json:"customDescription,omitempty"`
}

// AccessStrategy declares the mechanism by which a document or resource
// definition is reachable (open, header based, credential based).
type AccessStrategy struct {
	Type              string `json:"type"`
	CustomType        string `json:"customType,omitempty"`
	CustomDescription string `json:"customDescription,omitempty"`
}

// ResourceDefinition points at a machine readable definition of a resource,
// e.g. an OpenAPI or AsyncAPI file.
type ResourceDefinition struct {
	Type             string           `json:"type"`
	MediaType        string           `json:"mediaType"`
	URL              string           `json:"url"`
	AccessStrategies []AccessStrategy `json:"accessStrategies,omitempty"`
}

// BundleReference references a consumption bundle by ordId.
type BundleReference struct {
	OrdID string `json:"ordId"`
}

// Extensible describes whether and how a resource can be extended.
type Extensible struct {
	Supported   string `json:"supported"`
	Description string `json:"description,omitempty"`
}

// EntityTypeMapping maps a resource to the entity types it exposes.
type EntityTypeMapping struct {
	EntityTypeTargets []OrdIDRef `json:"entityTypeTargets,omitempty"`
}

// OrdIDRef references another ORD resource by ordId.
type OrdIDRef struct {
	OrdID string `json:"ordId"`
}

// ChangelogEntry records one released change of a resource.
type ChangelogEntry struct {
	Version       string `json:"version"`
	Date          string `json:"date"`
	ReleaseStatus string `json:"releaseStatus"`
}

// APIResource describes one API exposed by the application.
type APIResource struct {
	OrdID                    string               `json:"ordId"`
	Title                    string               `json:"title"`
	ShortDescription         string               `json:"shortDescription"`
	Description              string               `json:"description"`
	Version                  string               `json:"version"`
	LastUpdate               string               `json:"lastUpdate,omitempty"`
	Visibility               string               `json:"visibility"`
	ReleaseStatus            string               `json:"releaseStatus"`
	SystemInstanceAware      bool                 `json:"systemInstanceAware,omitempty"`
	PartOfPackage            string               `json:"partOfPackage"`
	PartOfConsumptionBundles []BundleReference    `json:"partOfConsumptionBundles,omitempty"`
	APIProtocol              string               `json:"apiProtocol"`
	APIResourceLinks         []TypedLink          `json:"apiResourceLinks,omitempty"`
	ResourceDefinitions      []ResourceDefinition `json:"resourceDefinitions,omitempty"`
	EntryPoints              []string             `json:"entryPoints,omitempty"`
	Extensible               *Extensible          `json:"extensible,omitempty"`
	EntityTypeMappings       []EntityTypeMapping  `json:"entityTypeMappings,omitempty"`
	ChangelogEntries         []ChangelogEntry     `json:"changelogEntries,omitempty"`
}

// EventResource describes one event catalog exposed by the application.
type EventResource struct {
	OrdID               string               `json:"ordId"`
	Title               string               `json:"title"`
	ShortDescription    string               `json:"shortDescription"`
	Description         string               `json:"description"`
	Version             string               `json:"version"`
	LastUpdate          string               `json:"lastUpdate,omitempty"`
	ReleaseStatus       string               `json:"releaseStatus"`
	Visibility          string               `json:"visibility"`
	PartOfPackage       string               `json:"partOfPackage"`
	ResourceDefinitions []ResourceDefinition `json:"resourceDefinitions,omitempty"`
	Extensible          *Extensible          `json:"extensible,omitempty"`
	EntityTypeMappings  []EntityTypeMapping  `json:"entityTypeMappings,omitempty"`
}

// EntityType describes a business object exposed through the APIs.
type EntityType struct {
	OrdID         string `json:"ordId"`
	LocalID       string `json:"localId"`
	Version       string `json:"version"`
	Title         string `json:"title"`
	Level         string `json:"level"`
	Description   string `json:"description"`
	Visibility    string `json:"visibility"`
	ReleaseStatus string `json:"releaseStatus"`
	PartOfPackage string `json:"partOfPackage"`
}

// Tombstone marks a removed resource so consumers can clean up.
type Tombstone struct {
	OrdID       string `json:"ordId"`
	RemovalDate string `json:"removalDate"`
}
