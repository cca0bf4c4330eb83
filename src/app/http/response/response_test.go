package response_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokesapi/src/app/http/response"
	"jokesapi/src/core/domain"
)

func translate(t *testing.T, err error) (int, map[string]any, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.FromStoreError(c, log, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body, logs.String()
}

func TestFromStoreErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name: "unique violation",
			err: &domain.StoreError{
				Kind:   domain.StoreUniqueViolation,
				Code:   "23505",
				Fields: []string{"text"},
			},
			wantStatus: http.StatusConflict,
			wantBody: map[string]any{
				"error": "A record with this value already exists",
				"code":  "23505",
				"field": []any{"text"},
			},
		},
		{
			name:       "storage-raised not found",
			err:        &domain.StoreError{Kind: domain.StoreNotFound, Code: "P0002"},
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]any{"error": "Record not found", "code": "P0002"},
		},
		{
			name:       "foreign key violation",
			err:        &domain.StoreError{Kind: domain.StoreForeignKey, Code: "23503"},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Related record not found", "code": "23503"},
		},
		{
			name:       "required relation violation",
			err:        &domain.StoreError{Kind: domain.StoreRequiredRelation, Code: "23502"},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Required relation violation", "code": "23502"},
		},
		{
			name:       "invalid data",
			err:        &domain.StoreError{Kind: domain.StoreInvalidData, Message: "bad encoding"},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Invalid data provided", "message": "bad encoding"},
		},
		{
			name:       "identified request error",
			err:        &domain.StoreError{Kind: domain.StoreRequest, Code: "42P01", Message: "relation does not exist"},
			wantStatus: http.StatusBadRequest,
			wantBody: map[string]any{
				"error":   "Database request error",
				"code":    "42P01",
				"message": "relation does not exist",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body, logs := translate(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
			assert.Empty(t, logs, "4xx outcomes must not be logged")
		})
	}
}

func TestFromStoreErrorConnectionFailure(t *testing.T) {
	status, body, logs := translate(t, &domain.StoreError{Kind: domain.StoreConnection, Message: "dial refused"})

	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, map[string]any{"error": "Database connection error"}, body)
	assert.Contains(t, logs, "database connection failure")
	assert.NotContains(t, body["error"], "dial refused", "cause must not leak to the caller")
}

func TestFromStoreErrorUnexpected(t *testing.T) {
	for _, err := range []error{errors.New("boom"), nil} {
		status, body, logs := translate(t, err)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, map[string]any{"error": "Internal server error"}, body)
		assert.Contains(t, logs, "unexpected error")
	}
}

func TestFromStoreErrorUnknownKind(t *testing.T) {
	status, body, logs := translate(t, &domain.StoreError{Kind: domain.StoreKind(99)})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, map[string]any{"error": "Internal server error"}, body)
	assert.Contains(t, logs, "unclassified store error")
}
