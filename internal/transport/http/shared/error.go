// Package shared holds the single boundary layer that translates domain errors
// into the uniform HTTP error envelope used by every endpoint.
package shared

import (
	"errors"
	"net/http"

	"ordref/internal/transport/http/json"
	dErrors "ordref/pkg/domain-errors"
)

// ErrorResponse is the uniform envelope returned on every failure.
type ErrorResponse struct {
	Error ErrorItem `json:"error"`
}

// ErrorItem follows the SAP API harmonization guideline error shape.
type ErrorItem struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Target  string           `json:"target,omitempty"`
	Details []dErrors.Detail `json:"details,omitempty"`
}

// WriteError centralizes domain error translation to HTTP responses.
// Unknown error values are coerced into the internal catch-all with a generic
// message so nothing is silently swallowed or leaked.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		json.WriteJSON(w, DomainCodeToHTTPStatus(domainErr.Code), ErrorResponse{
			Error: ErrorItem{
				Code:    DomainCodeToEnvelopeCode(domainErr.Code),
				Message: domainErr.Error(),
				Target:  domainErr.Target,
				Details: domainErr.Details,
			},
		})
		return
	}

	json.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorItem{
			Code:    DomainCodeToEnvelopeCode(dErrors.CodeInternal),
			Message: "Internal server error occurred.",
		},
	})
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
// Configuration-not-found maps to 500: the caller presented a tenant id unknown
// to the service, which is not a client-correctable input error.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeValidation:
		return http.StatusBadRequest
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeConfigurationNotFound, dErrors.CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// DomainCodeToEnvelopeCode translates domain error codes to the stable code
// strings carried in the JSON envelope.
func DomainCodeToEnvelopeCode(code dErrors.Code) string {
	switch code {
	case dErrors.CodeValidation:
		return "INVALID_USER_INPUT"
	case dErrors.CodeUnauthorized:
		return "UNAUTHORIZED"
	case dErrors.CodeNotFound:
		return "NOT_FOUND"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
