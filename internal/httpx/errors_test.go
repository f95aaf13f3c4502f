package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	err := ErrNotFound("visitor entry not found")
	if err.Error() != "code=3001, message=visitor entry not found" {
		t.Errorf("unexpected error string: %s", err.Error())
	}

	cause := errors.New("connection refused")
	err = ErrDatabaseError("query failed", cause)
	want := "code=5002, message=query failed, err=connection refused"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestConstructors_StatusAndCode(t *testing.T) {
	cases := []struct {
		name   string
		err    *AppError
		status int
		code   int
	}{
		{"unauthorized", ErrUnauthorized(""), http.StatusUnauthorized, CodeUnauthorized},
		{"invalid token", ErrInvalidToken(""), http.StatusUnauthorized, CodeInvalidToken},
		{"token expired", ErrTokenExpired(""), http.StatusUnauthorized, CodeTokenExpired},
		{"forbidden", ErrForbidden(""), http.StatusForbidden, CodeForbidden},
		{"param missing", ErrParamMissing(""), http.StatusBadRequest, CodeParamMissing},
		{"param invalid", ErrParamInvalid(""), http.StatusBadRequest, CodeParamInvalid},
		{"param illegal", ErrParamIllegal(""), http.StatusBadRequest, CodeParamIllegal},
		{"not found", ErrNotFound(""), http.StatusNotFound, CodeNotFound},
		{"already exists", ErrAlreadyExists(""), http.StatusConflict, CodeAlreadyExists},
		{"state conflict", ErrStateConflict(""), http.StatusConflict, CodeStateConflict},
		{"internal", ErrInternalError("", nil), http.StatusInternalServerError, CodeInternalError},
		{"database", ErrDatabaseError("", nil), http.StatusInternalServerError, CodeDatabaseError},
	}

	for _, tc := range cases {
		if tc.err.HTTPStatus != tc.status {
			t.Errorf("%s: expected status %d, got %d", tc.name, tc.status, tc.err.HTTPStatus)
		}
		if tc.err.Code != tc.code {
			t.Errorf("%s: expected code %d, got %d", tc.name, tc.code, tc.err.Code)
		}
		if tc.err.Message == "" {
			t.Errorf("%s: default message should not be empty", tc.name)
		}
	}
}

func TestAsAppError(t *testing.T) {
	ae := ErrStateConflict("entry already processed")
	got := AsAppError(ae)
	if got != ae {
		t.Error("AsAppError should return the original *AppError")
	}

	wrapped := fmt.Errorf("service: %w", ae)
	got = AsAppError(wrapped)
	if got.Code != CodeStateConflict {
		t.Errorf("expected code %d through wrapping, got %d", CodeStateConflict, got.Code)
	}

	plain := errors.New("dial tcp: connection refused")
	got = AsAppError(plain)
	if got.Code != CodeDatabaseError {
		t.Errorf("plain errors should map to database error, got code %d", got.Code)
	}
	if !errors.Is(got, plain) {
		t.Error("converted error should wrap the original cause")
	}
}
