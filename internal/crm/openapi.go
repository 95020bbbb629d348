package crm

import (
	"fmt"

	"ordref/internal/openapi"
	"ordref/internal/tenant/models"
)

// NewOpenAPIDefinition builds the OpenAPI 3 self description of the CRM V1
// API. With a tenant id, the definition discloses the tenant and the Customer
// schema gains an extension object derived from the tenant's field extensions.
func NewOpenAPIDefinition(publicURL, localURL, tenantID string, cfg *models.Configuration) map[string]any {
	description := "This is a sample CRM API, which is system instance aware."
	customer := customerSchema()

	if tenantID != "" {
		description += fmt.Sprintf("\nThis OpenAPI Document is specific to tenant %q.", tenantID)
		if cfg != nil {
			if fields := cfg.CustomerFieldExtensions(); len(fields) > 0 {
				// Customer field extensibility support. Each FieldSpec becomes one
				// sub-property of the extension wrapper, type and description copied
				// verbatim. Collisions with base schema fields are not checked.
				// The wrapper is named "extension" (singular) while the payload
				// carries the values under "extensions".
				extensions := make(map[string]any, len(fields))
				for name, spec := range fields {
					extensions[name] = map[string]any{
						"type":        string(spec.Type),
						"description": spec.Description,
					}
				}
				customer["properties"].(map[string]any)["extension"] = map[string]any{
					"type":        "object",
					"description": "Wrapper object for customer field extensions",
					"properties":  extensions,
				}
			}
		}
	}

	schemas := map[string]any{
		"Customer": customer,
		"CustomersResponse": map[string]any{
			"type":        "object",
			"description": "Response returning a list of customers",
			"properties": map[string]any{
				"value": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/components/schemas/Customer"},
				},
			},
			"required":             []string{"value"},
			"additionalProperties": false,
		},
	}
	for name, schema := range openapi.ErrorSchemas() {
		schemas[name] = schema
	}

	return map[string]any{
		"openapi": "3.0.0",
		"info": map[string]any{
			"title":       "CRM API",
			"description": description,
			"version":     "1.0.0",
		},
		// All API resources are protected via Basic Auth.
		"security": []any{
			map[string]any{"basicAuth": []any{}},
		},
		"servers": []any{
			map[string]any{"url": publicURL + "/crm/v1"},
			map[string]any{"url": localURL + "/crm/v1"},
		},
		"tags": []any{
			map[string]any{"name": "customers", "description": "Customers"},
		},
		"paths": customerPaths(),
		"components": map[string]any{
			"securitySchemes": map[string]any{
				"basicAuth": map[string]any{
					"type":   "http",
					"scheme": "basic",
				},
			},
			"schemas":   schemas,
			"responses": openapi.StandardResponses(),
		},
	}
}

func customerSchema() map[string]any {
	return map[string]any{
		"type":        "object",
		"description": "A customer",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        "number",
				"description": "ID of the customer",
				"minimum":     0,
			},
			"firstName": map[string]any{
				"type":        "string",
				"description": "First name of the customer",
			},
			"lastName": map[string]any{
				"type":        "string",
				"description": "Last name of the customer",
			},
			"email": map[string]any{
				"type":        "string",
				"format":      "email",
				"description": "Email address of the customer",
			},
		},
		"required":             []string{"id", "firstName", "lastName", "email"},
		"additionalProperties": false,
	}
}

func customerPaths() map[string]any {
	return map[string]any{
		"/customers": map[string]any{
			"get": map[string]any{
				"operationId": "getCustomers",
				"summary":     "Returns a list of customers.",
				"description": "Longer description of this API Operation...",
				"tags":        []string{"customers"},
				"responses": map[string]any{
					"200": map[string]any{
						"description": "A JSON array of customers",
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{"$ref": "#/components/schemas/CustomersResponse"},
								"example": map[string]any{
									"value": []any{
										map[string]any{
											"id": 1, "firstName": "Hans", "lastName": "Wurst",
											"email": "hanswurst@example.com",
										},
									},
								},
							},
						},
					},
					"500": map[string]any{"$ref": "#/components/responses/500"},
				},
			},
		},
		"/customers/{id}": map[string]any{
			"get": map[string]any{
				"operationId": "getCustomer",
				"summary":     "Returns a specific customers.",
				"description": "Longer description of this API Operation...",
				"tags":        []string{"customers"},
				"parameters": []any{
					map[string]any{
						"name":        "id",
						"in":          "path",
						"required":    true,
						"description": "ID of customer to discover",
						"schema":      map[string]any{"$ref": "#/components/schemas/Customer/properties/id"},
					},
				},
				"responses": map[string]any{
					"200": map[string]any{
						"description": "The requested customer data",
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{"$ref": "#/components/schemas/Customer"},
								"example": map[string]any{
									"id": 1, "firstName": "Hans", "lastName": "Wurst",
									"email": "hanswurst@example.com",
								},
							},
						},
					},
					"400": map[string]any{"$ref": "#/components/responses/400"},
					"404": map[string]any{"$ref": "#/components/responses/404"},
					"500": map[string]any{"$ref": "#/components/responses/500"},
				},
			},
		},
	}
}
