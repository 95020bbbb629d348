package ord

import "time"

// AppNamespace is the ORD namespace of this application.
// This is just a fake namespace; a real one needs to be registered first.
const AppNamespace = "sap.xref"

// vendorSAPReference assumes that the vendor "SAP" is already defined and just
// references it via ORD ID.
const vendorSAPReference = "sap:vendor:SAP:"

// Perspectives of the two served document variants.
const (
	PerspectiveSystemVersion  = "system-version"
	PerspectiveSystemInstance = "system-instance"
)

// OrdIDs of the resources that tenant projection needs to address.
const (
	APIPackageOrdID         = AppNamespace + ":package:ord-reference-app-apis:v1"
	EventsPackageOrdID      = AppNamespace + ":package:ord-reference-app:v1"
	NoAuthBundleOrdID       = AppNamespace + ":consumptionBundle:noAuth:v1"
	BasicAuthBundleOrdID    = AppNamespace + ":consumptionBundle:basicAuth:v1"
	AstronomyAPIOrdID       = AppNamespace + ":apiResource:astronomy:v1"
	CRMAPIOrdID             = AppNamespace + ":apiResource:crm:v1"
	CostObjectEventOrdID    = AppNamespace + ":eventResource:odm-finance-costobject:v0"
	ConstellationTypeOrdID  = AppNamespace + ":entityType:Constellation:v1"
	AstronomyTombstoneOrdID = AppNamespace + ":apiResource:astronomy:v0"
)

// OpenAccessStrategy is the unrestricted access strategy.
var OpenAccessStrategy = AccessStrategy{Type: "open"}

// GlobalTenantIDAccessStrategy selects the tenant via a global tenant ID header.
var GlobalTenantIDAccessStrategy = AccessStrategy{
	Type:       "custom",
	CustomType: AppNamespace + ":open-global-tenant-id:v1",
	CustomDescription: "The metadata information is openly accessible but system instance aware.\n" +
		"The tenant is selected by providing a global tenant ID header.\n" +
		"To understand how to use this access strategy, please read the documentation on the " +
		"[ORD Reference App Access Strategies](https://github.com/SAP-samples/open-resource-discovery-reference-application#access-strategies).",
}

// LocalTenantIDAccessStrategy selects the tenant via a local tenant ID header.
var LocalTenantIDAccessStrategy = AccessStrategy{
	Type:       "custom",
	CustomType: AppNamespace + ":open-local-tenant-id:v1",
	CustomDescription: "The metadata information is openly accessible but system instance aware.\n" +
		"The tenant is selected by providing a local tenant ID header.\n" +
		"To understand how to use this access strategy, please read the documentation on the " +
		"[ORD Reference App Access Strategies](https://github.com/SAP-samples/open-resource-discovery-reference-application#access-strategies).",
}

// Configuration is the ORD configuration served under
// /.well-known/open-resource-discovery. It points consumers at the available
// documents and their access strategies.
type Configuration struct {
	OpenResourceDiscoveryV1 ConfigurationV1 `json:"openResourceDiscoveryV1"`
}

type ConfigurationV1 struct {
	Documents []DocumentDescriptor `json:"documents"`
}

// DocumentDescriptor announces one servable ORD document.
type DocumentDescriptor struct {
	URL              string           `json:"url"`
	AccessStrategies []AccessStrategy `json:"accessStrategies"`
	Perspective      string           `json:"perspective,omitempty"`
}

// NewConfiguration builds the well-known configuration pointer document.
func NewConfiguration() Configuration {
	return Configuration{
		OpenResourceDiscoveryV1: ConfigurationV1{
			Documents: []DocumentDescriptor{
				// Static metadata with open access strategy, tenant headers are ignored.
				{
					URL:              "/open-resource-discovery/v1/documents/system-version",
					AccessStrategies: []AccessStrategy{OpenAccessStrategy},
					Perspective:      PerspectiveSystemVersion,
				},
				// Dynamic metadata, requires a tenant header and the matching access strategy.
				{
					URL:              "/open-resource-discovery/v1/documents/system-instance",
					AccessStrategies: []AccessStrategy{GlobalTenantIDAccessStrategy, LocalTenantIDAccessStrategy},
					Perspective:      PerspectiveSystemInstance,
				},
			},
		},
	}
}

// NewBaseDocument builds the tenant-neutral discovery document describing the
// entire reference app. publicURL is the externally reachable base URL of this
// system instance; now stamps the lastUpdate of the system instance aware CRM
// resource (generated once per process, stable across requests).
func NewBaseDocument(publicURL string, now time.Time) Document {
	apiPackage := Package{
		OrdID:            APIPackageOrdID,
		Title:            "ORD Reference Application APIs",
		ShortDescription: "Open Resource Discovery Reference Application",
		Description: "This reference application demonstrates how Open Resource Discovery (ORD) can be implemented, " +
			"demonstrating different resources and discovery aspects",
		Version:        "1.0.0",
		PolicyLevel:    "sap:core:v1",
		PartOfProducts: []string{AppNamespace + ":product:ord-reference-app:"},
		Vendor:         vendorSAPReference,
		Tags:           []string{"reference application"},
		PackageLinks: []TypedLink{
			{
				Type: "license",
				URL:  "https://github.com/SAP-samples/open-resource-discovery-reference-application/blob/main/LICENSE",
			},
		},
		Links: []TitledLink{
			{
				Title: "ORD Reference app description",
				URL:   "https://github.com/SAP-samples/open-resource-discovery-reference-application/blob/main/README.md",
			},
			{
				Title: "ORD Reference app GitHub repository",
				URL:   "https://github.com/SAP-samples/open-resource-discovery-reference-application/",
			},
		},
		Labels: map[string][]string{
			"customLabel": {"labels are more flexible than tags as you can define your own keys"},
		},
	}

	eventsPackage := apiPackage
	eventsPackage.OrdID = EventsPackageOrdID
	eventsPackage.Title = "ORD Reference Application Events"

	return Document{
		OpenResourceDiscovery: "1.10",
		PolicyLevels:          []string{"sap:core:v1"},
		Perspective:           PerspectiveSystemVersion,
		Description:           "This is an example ORD document which describes the entire reference app in one document.",
		DescribedSystemInstance: &SystemInstance{
			BaseURL: publicURL,
		},
		DescribedSystemVersion: &SystemVersion{
			Version: "1.0.0",
		},
		Products: []Product{
			{
				OrdID:            AppNamespace + ":product:ord-reference-app:",
				Title:            "ORD Reference App",
				Vendor:           vendorSAPReference,
				ShortDescription: "Open Resource Discovery Reference Application",
			},
		},
		Packages: []Package{apiPackage, eventsPackage},
		ConsumptionBundles: []ConsumptionBundle{
			{
				OrdID:            NoAuthBundleOrdID,
				Version:          "1.0.0",
				LastUpdate:       "2023-02-03T06:44:10Z",
				Title:            "Unprotected resources",
				ShortDescription: "Bundle of unprotected resources",
				Description: "This Consumption Bundle contains all resources of the reference app " +
					"which are unprotected and do not require authentication",
			},
			{
				OrdID:            BasicAuthBundleOrdID,
				Version:          "1.0.0",
				LastUpdate:       "2023-02-03T06:44:10Z",
				Title:            "BasicAuth protected resources",
				ShortDescription: "Bundle of protected resources",
				Description: "This Consumption Bundle contains all resources of the reference app " +
					"which share the same BasicAuth access and identity realm",
				CredentialExchangeStrategies: []CredentialExchangeStrategy{
					{
						Type:       "custom",
						CustomType: AppNamespace + ":basicAuthCredentialExchange:v1",
						CustomDescription: "The BasicAuth credentials must be created and retrieved manually.\n " +
							"Please refer to the documentation on the " +
							"[ORD Reference App API access](https://github.com/SAP-samples/open-resource-discovery-reference-application#access-strategies).",
					},
				},
			},
		},
		APIResources: []APIResource{
			newAstronomyAPIResource(),
			newCRMAPIResource(now),
		},
		EventResources: []EventResource{
			newCostObjectEventResource(),
		},
		EntityTypes: []EntityType{
			{
				OrdID:         ConstellationTypeOrdID,
				LocalID:       "Constellation",
				Version:       "1.0.0",
				Title:         "Constellation",
				Level:         "aggregate",
				Description:   "Description of the local Constellation Model",
				Visibility:    "public",
				ReleaseStatus: "active",
				PartOfPackage: APIPackageOrdID,
			},
		},
		Tombstones: []Tombstone{
			{
				OrdID:       AstronomyTombstoneOrdID,
				RemovalDate: "2021-03-12T06:44:10Z",
			},
		},
	}
}

func newAstronomyAPIResource() APIResource {
	return APIResource{
		OrdID:            AstronomyAPIOrdID,
		Title:            "Astronomy API",
		ShortDescription: "The Astronomy API allows you to discover...",
		Description:      "A longer description of this API with **markdown** \n## headers\n etc...",
		Version:          "1.0.3",
		LastUpdate:       "2023-02-03T06:44:10Z",
		Visibility:       "public",
		ReleaseStatus:    "active",
		PartOfPackage:    APIPackageOrdID,
		PartOfConsumptionBundles: []BundleReference{
			{OrdID: NoAuthBundleOrdID},
		},
		APIProtocol: "rest",
		APIResourceLinks: []TypedLink{
			{
				Type: "api-documentation",
				URL:  "/swagger-ui.html?urls.primaryName=Astronomy%20V1%20API",
			},
		},
		ResourceDefinitions: []ResourceDefinition{
			{
				Type:             "openapi-v3",
				MediaType:        "application/json",
				URL:              "/astronomy/v1/openapi/oas3.json",
				AccessStrategies: []AccessStrategy{OpenAccessStrategy},
			},
		},
		EntryPoints: []string{"/astronomy/v1"},
		Extensible:  &Extensible{Supported: "no"},
		EntityTypeMappings: []EntityTypeMapping{
			{
				EntityTypeTargets: []OrdIDRef{
					{OrdID: ConstellationTypeOrdID},
				},
			},
		},
	}
}

func newCRMAPIResource(now time.Time) APIResource {
	return APIResource{
		OrdID:               CRMAPIOrdID,
		Title:               "CRM API",
		ShortDescription:    "The CRM API allows you to manage customers...",
		Description:         "This API is **protected** via BasicAuth and is tenant aware",
		Version:             "1.0.0",
		LastUpdate:          now.UTC().Format(time.RFC3339),
		Visibility:          "internal",
		ReleaseStatus:       "beta",
		SystemInstanceAware: true,
		PartOfPackage:       APIPackageOrdID,
		PartOfConsumptionBundles: []BundleReference{
			{OrdID: BasicAuthBundleOrdID},
		},
		APIProtocol: "rest",
		APIResourceLinks: []TypedLink{
			{
				Type: "api-documentation",
				URL:  "/swagger-ui.html?urls.primaryName=CRM%20V1%20API",
			},
		},
		ResourceDefinitions: []ResourceDefinition{
			{
				Type:      "openapi-v3",
				MediaType: "application/json",
				URL:       "/crm/v1/openapi/oas3.json",
				AccessStrategies: []AccessStrategy{
					GlobalTenantIDAccessStrategy,
					LocalTenantIDAccessStrategy,
					OpenAccessStrategy,
				},
			},
		},
		EntryPoints: []string{"/crm/v1"},
		Extensible: &Extensible{
			Supported:   "manual",
			Description: "This API can be extended with custom fields.",
		},
		ChangelogEntries: []ChangelogEntry{
			{
				Version:       "0.3.0",
				Date:          "2021-05-25",
				ReleaseStatus: "beta",
			},
		},
	}
}

func newCostObjectEventResource() EventResource {
	return EventResource{
		OrdID:            CostObjectEventOrdID,
		Title:            "ODM Finance Cost Center Events",
		ShortDescription: "Example ODM finance cost center event",
		Description:      "This is an example event catalog that contains only a partial ODM finance cost center V1 event",
		Version:          "0.1.0",
		LastUpdate:       "2023-02-03T06:44:10Z",
		ReleaseStatus:    "beta",
		Visibility:       "public",
		PartOfPackage:    EventsPackageOrdID,
		ResourceDefinitions: []ResourceDefinition{
			{
				Type:      "asyncapi-v2",
				MediaType: "application/json",
				URL:       "/sap-events/v1/odm-finance-costobject.asyncapi2.json",
				AccessStrategies: []AccessStrategy{
					GlobalTenantIDAccessStrategy,
					LocalTenantIDAccessStrategy,
					OpenAccessStrategy,
				},
			},
		},
		Extensible: &Extensible{Supported: "no"},
		EntityTypeMappings: []EntityTypeMapping{
			{
				EntityTypeTargets: []OrdIDRef{
					{OrdID: "sap.odm.finance:entityType:CostObject:v1"},
				},
			},
		},
	}
}
