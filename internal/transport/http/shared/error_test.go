package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "ordref/pkg/domain-errors"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation maps to 400",
			err:        dErrors.New(dErrors.CodeValidation, "id must be numeric"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_USER_INPUT",
		},
		{
			name:       "unauthorized maps to 401",
			err:        dErrors.New(dErrors.CodeUnauthorized, "bad credentials"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "not found maps to 404",
			err:        dErrors.NewWithTarget(dErrors.CodeNotFound, "no constellation", "Xyz"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "configuration not found maps to 500",
			err:        dErrors.New(dErrors.CodeConfigurationNotFound, "tenant T9 not configured"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:       "foreign error coerced to catch-all",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeEnvelope(t, rec)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestWriteErrorCarriesTarget(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, dErrors.NewWithTarget(dErrors.CodeNotFound, "no customer with ID: 99", "99"))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, "99", resp.Error.Target)
}

func TestWriteErrorDoesNotLeakForeignMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("connection string postgres://secret"))

	resp := decodeEnvelope(t, rec)
	assert.Equal(t, "Internal server error occurred.", resp.Error.Message)
}
