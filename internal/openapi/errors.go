// Package openapi holds shared OpenAPI 3 fragments used by the self
// descriptions of the sample APIs.
package openapi

// ErrorSchemas returns the error interface JSON Schemas matching the uniform
// error envelope served by every endpoint.
func ErrorSchemas() map[string]any {
	return map[string]any{
		"ErrorResponse": map[string]any{
			"type":  "object",
			"title": "Error Response",
			"properties": map[string]any{
				"error": map[string]any{"$ref": "#/components/schemas/ErrorItem"},
			},
		},
		"ErrorItem": map[string]any{
			"type":  "object",
			"title": "Error Item",
			"properties": map[string]any{
				"code": map[string]any{
					"type":  "string",
					"title": "Technical code of the error situation to be used for support purposes",
				},
				"message": map[string]any{
					"type":  "string",
					"title": "User-facing (localizable) message, describing the error",
				},
				"target": map[string]any{
					"type":  "string",
					"title": "Describes the error related data element (e.g. using a resource path)",
				},
				"details": map[string]any{
					"type":  "array",
					"title": "Error Details",
					"items": map[string]any{"$ref": "#/components/schemas/DetailError"},
				},
			},
			"additionalProperties": true,
			"required":             []string{"code", "message"},
		},
		"DetailError": map[string]any{
			"type":        "object",
			"title":       "Detail Error",
			"description": "Error data that can be placed in the ErrorItem.details array",
			"properties": map[string]any{
				"code": map[string]any{
					"type":  "string",
					"title": "Technical code of the error situation to be used for support purposes",
				},
				"message": map[string]any{
					"type":  "string",
					"title": "User-facing (localizable) message, describing the error",
				},
			},
			"additionalProperties": true,
			"required":             []string{"code", "message"},
		},
	}
}

// ErrorResponse returns the reusable response object for one error status code.
func ErrorResponse(description, exampleCode, exampleMessage string) map[string]any {
	return map[string]any{
		"description": description,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"examples": map[string]any{
					"response": map[string]any{
						"value": map[string]any{
							"error": map[string]any{
								"code":    exampleCode,
								"message": exampleMessage,
							},
						},
					},
				},
			},
		},
	}
}

// StandardResponses returns the shared 400/401/404/500 response components.
func StandardResponses() map[string]any {
	return map[string]any{
		"400": ErrorResponse(
			"Bad Request - Invalid User Input.",
			"INVALID_USER_INPUT",
			"The request the client made is incorrect or corrupt, likely due to invalid input.",
		),
		"401": ErrorResponse(
			"Unauthorized - Action requires user authentication.",
			"UNAUTHORIZED",
			"To access the API, you have to login",
		),
		"404": ErrorResponse(
			"Not found",
			"NOT_FOUND",
			"Requested resource not found.",
		),
		"500": ErrorResponse(
			"Internal server error",
			"INTERNAL_SERVER_ERROR",
			"Internal server error occurred.",
		),
	}
}
