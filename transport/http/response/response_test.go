package response_test

import (
	"errors"
	"hotelier/shared/failure"
	"hotelier/transport/http/response"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, []string{"a", "b"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `["a","b"]`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusCreated, "Subscribed successfully")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Subscribed successfully"}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expose   bool
		wantCode int
		wantBody string
	}{
		{
			name:     "not found",
			err:      failure.NotFound("Hotel not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Hotel not found"}`,
		},
		{
			name:     "internal hides cause",
			err:      failure.Internal("Failed to fetch hotels", errors.New("connection refused")),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to fetch hotels"}`,
		},
		{
			name:     "internal shows cause in development",
			err:      failure.Internal("Failed to fetch hotels", errors.New("connection refused")),
			expose:   true,
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to fetch hotels","detail":"connection refused"}`,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal Server Error"}`,
		},
		{
			name:     "plain error in development",
			err:      errors.New("boom"),
			expose:   true,
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal Server Error","detail":"boom"}`,
		},
		{
			name:     "client errors never carry detail",
			err:      failure.BadRequestFromString("email is required"),
			expose:   true,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"email is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response.ExposeDetails(tt.expose)
			t.Cleanup(func() { response.ExposeDetails(false) })

			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}
