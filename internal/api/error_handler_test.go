package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"duplicate user", domain.ErrUserExists, http.StatusBadRequest, "user already exists"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusBadRequest, "invalid credentials"},
		{"task not found", domain.ErrTaskNotFound, http.StatusNotFound, "task not found"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, domain.ErrInvalidToken.Error()},
		{"empty title", domain.ErrEmptyTitle, http.StatusUnprocessableEntity, domain.ErrEmptyTitle.Error()},
		{"invalid status", domain.ErrInvalidStatus, http.StatusUnprocessableEntity, domain.ErrInvalidStatus.Error()},
		{"empty patch", domain.ErrEmptyPatch, http.StatusUnprocessableEntity, domain.ErrEmptyPatch.Error()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if resp["error"] != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, resp["error"])
			}
		})
	}
}

// Unexpected errors must not leak their cause to the client.
func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("mongo: socket closed unexpectedly"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %q", resp["error"])
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"), c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp["error"] != "missing authorization header" {
		t.Fatalf("unexpected message: %q", resp["error"])
	}
}
