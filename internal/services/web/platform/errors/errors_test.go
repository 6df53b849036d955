package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind Kind
		want int
	}{
		{KindInvalidInput, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindUnavailable, http.StatusServiceUnavailable},
		{KindNotFound, http.StatusNotFound},
		{KindUnknown, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(E(tc.kind, "boom")); got != tc.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestHTTPStatusHandlesUntypedErrors(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(fmt.Errorf("plain")); got != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus(plain) = %d, want 500", got)
	}
	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("HTTPStatus(nil) = %d, want 200", got)
	}
}

func TestHTTPStatusUnwrapsWrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("fetch clients: %w", E(KindUnauthorized, "session expired"))
	if got := HTTPStatus(wrapped); got != http.StatusUnauthorized {
		t.Fatalf("HTTPStatus(wrapped) = %d, want 401", got)
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(EK(KindNotFound, "error.client_not_found", "missing")); got != "error.client_not_found" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := LocalizationKey(fmt.Errorf("plain")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q, want empty", got)
	}
}

func TestKindFromHTTPStatus(t *testing.T) {
	t.Parallel()

	if got := KindFromHTTPStatus(http.StatusUnauthorized); got != KindUnauthorized {
		t.Fatalf("KindFromHTTPStatus(401) = %s", got)
	}
	if got := KindFromHTTPStatus(http.StatusBadGateway); got != KindUnavailable {
		t.Fatalf("KindFromHTTPStatus(502) = %s", got)
	}
	if got := KindFromHTTPStatus(http.StatusTeapot); got != KindUnknown {
		t.Fatalf("KindFromHTTPStatus(418) = %s", got)
	}
}
