package astronomy

import "ordref/internal/openapi"

// NewOpenAPIDefinition builds the OpenAPI 3 self description of the Astronomy
// V1 API. It is static; the definition is the same for every caller.
func NewOpenAPIDefinition(publicURL, localURL string) map[string]any {
	return map[string]any{
		"openapi": "3.0.0",
		"info": map[string]any{
			"title":       "Astronomy API",
			"description": "This is just a sample API",
			"version":     "1.0.3",
		},
		"servers": []any{
			map[string]any{"url": publicURL + "/astronomy/v1"},
			map[string]any{"url": localURL + "/astronomy/v1"},
		},
		"tags": []any{
			map[string]any{"name": "constellations", "description": "Constellations"},
		},
		"paths": map[string]any{
			"/constellations": map[string]any{
				"get": map[string]any{
					"operationId": "getConstellations",
					"summary":     "Returns a list of constellations.",
					"description": "Longer description of this API Operation...",
					"tags":        []string{"constellations"},
					"responses": map[string]any{
						"200": map[string]any{
							"description": "A JSON array of constellations",
							"content": map[string]any{
								"application/json": map[string]any{
									"schema": map[string]any{"$ref": "#/components/schemas/ConstellationsResponse"},
									"example": map[string]any{
										"value": []any{
											map[string]any{"id": "And", "name": "Andromeda"},
										},
									},
								},
							},
						},
						"500": map[string]any{"$ref": "#/components/responses/500"},
					},
				},
			},
			"/constellations/{id}": map[string]any{
				"get": map[string]any{
					"operationId": "getConstellation",
					"summary":     "Returns a specific constellations.",
					"description": "Longer description of this API Operation...",
					"tags":        []string{"constellations"},
					"parameters": []any{
						map[string]any{
							"name":        "id",
							"in":          "path",
							"required":    true,
							"description": "ID of constellation to discover",
							"schema":      map[string]any{"$ref": "#/components/schemas/Constellation/properties/id"},
						},
					},
					"responses": map[string]any{
						"200": map[string]any{
							"description": "The requested constellation JSON",
							"content": map[string]any{
								"application/json": map[string]any{
									"schema":  map[string]any{"$ref": "#/components/schemas/Constellation"},
									"example": map[string]any{"id": "And", "name": "Andromeda"},
								},
							},
						},
						"400": map[string]any{"$ref": "#/components/responses/400"},
						"404": map[string]any{"$ref": "#/components/responses/404"},
						"500": map[string]any{"$ref": "#/components/responses/500"},
					},
				},
			},
		},
		"components": map[string]any{
			"schemas":   schemas(),
			"responses": openapi.StandardResponses(),
		},
	}
}

func schemas() map[string]any {
	out := map[string]any{
		"Constellation": map[string]any{
			"type":        "object",
			"description": "A constellation",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "ID (abbreviation) of the constellation",
				},
				"name": map[string]any{
					"type":        "string",
					"description": "Name of the constellation",
				},
			},
			"required":             []string{"id", "name"},
			"additionalProperties": false,
		},
		"ConstellationsResponse": map[string]any{
			"type":        "object",
			"description": "Response returning a list of constellations",
			"properties": map[string]any{
				"value": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/components/schemas/Constellation"},
				},
			},
			"required":             []string{"value"},
			"additionalProperties": false,
		},
	}
	for name, schema := range openapi.ErrorSchemas() {
		out[name] = schema
	}
	return out
}
