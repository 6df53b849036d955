package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	module "github.com/aislehq/aisle/internal/services/web/module"
	apperrors "github.com/aislehq/aisle/internal/services/web/platform/errors"
)

func TestShouldRenderAppError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		statusCode int
		want       bool
	}{
		{http.StatusNotFound, true},
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusBadRequest, false},
		{http.StatusUnauthorized, false},
		{http.StatusForbidden, false},
	}
	for _, tc := range tests {
		if got := ShouldRenderAppError(tc.statusCode); got != tc.want {
			t.Fatalf("ShouldRenderAppError(%d) = %v, want %v", tc.statusCode, got, tc.want)
		}
	}
}

func TestPublicMessagePrefersLocalizationKey(t *testing.T) {
	t.Parallel()

	loc := message.NewPrinter(language.English)
	err := apperrors.EK(apperrors.KindUnavailable, "error.unavailable", "dial tcp: refused")

	got := PublicMessage(loc, err)
	if strings.Contains(got, "dial tcp") {
		t.Fatalf("PublicMessage leaked internal detail: %q", got)
	}
	if got == "" {
		t.Fatal("PublicMessage returned empty string")
	}
}

func TestPublicMessageFallsBackToStatusText(t *testing.T) {
	t.Parallel()

	got := PublicMessage(nil, errors.New("boom"))
	if got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("PublicMessage = %q", got)
	}
}

func TestWriteAppErrorRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/dashboard/clients/missing", nil)
	rr := httptest.NewRecorder()

	WriteAppError(rr, req, http.StatusNotFound, module.Dependencies{})

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "Page not found") {
		t.Fatalf("expected not found copy, got %q", rr.Body.String())
	}
}

func TestWriteModuleErrorUsesPlainTextForClientErrors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/dashboard/hotels", nil)
	rr := httptest.NewRecorder()

	WriteModuleError(rr, req, apperrors.E(apperrors.KindUnauthorized, "session expired"), module.Dependencies{})

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
	if strings.Contains(strings.ToLower(rr.Body.String()), "<!doctype html") {
		t.Fatalf("expected plain text body, got %q", rr.Body.String())
	}
}

func TestWriteModuleErrorEscalatesToAppErrorPage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/dashboard/hotels", nil)
	rr := httptest.NewRecorder()

	WriteModuleError(rr, req, apperrors.E(apperrors.KindNotFound, "client missing"), module.Dependencies{})

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(strings.ToLower(rr.Body.String()), "<!doctype html") {
		t.Fatalf("expected app shell page, got %q", rr.Body.String())
	}
}
