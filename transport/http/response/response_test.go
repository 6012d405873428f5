package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mountmix/shared/constant"
	"mountmix/shared/failure"
	"mountmix/transport/http/response"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.Error {
	t.Helper()

	var body response.Error
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	return body
}

func TestWithError_InternalErrorIsMasked(t *testing.T) {
	driverErr := errors.New("SQL logic error: no such table: bookings (1)")
	err := fmt.Errorf("failed to create booking: failed to insert data (booking): %w", driverErr)

	rec := httptest.NewRecorder()
	response.WithError(rec, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, constant.ResponseErrorInternal, *body.Error)
	assert.NotContains(t, rec.Body.String(), "SQL logic error")
	assert.NotContains(t, rec.Body.String(), "bookings")
}

func TestWithError_WrappedFailureInternalIsMasked(t *testing.T) {
	err := failure.InternalError(errors.New("dial tcp 127.0.0.1:4317: connection refused"))

	rec := httptest.NewRecorder()
	response.WithError(rec, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, constant.ResponseErrorInternal, *body.Error)
	assert.False(t, strings.Contains(rec.Body.String(), "dial tcp"))
}

func TestWithError_ClientErrorsKeepTheirMessage(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "not found",
			err:         failure.NotFound("booking not found"),
			wantStatus:  http.StatusNotFound,
			wantMessage: "booking not found",
		},
		{
			name:        "unauthorized",
			err:         failure.Unauthorized("Invalid email or password"),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid email or password",
		},
		{
			name:        "bad request",
			err:         failure.BadRequestFromString("Invalid booking id"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid booking id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decodeError(t, rec)
			assert.Equal(t, tt.wantMessage, *body.Error)
		})
	}
}

func TestWithError_ValidationCarriesFields(t *testing.T) {
	err := failure.Validation(map[string]string{
		"clientEmail": "clientEmail must be a valid email address",
	})

	rec := httptest.NewRecorder()
	response.WithError(rec, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "validation failed", *body.Error)
	assert.Equal(t, "clientEmail must be a valid email address", body.Fields["clientEmail"])
}
