package requestmeta

import (
	"net/http/httptest"
	"testing"
)

func TestHasSameOriginProofMatchesOriginHeader(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("POST", "http://dash.example.com/logout", nil)
	r.Header.Set("Origin", "http://dash.example.com")
	if !HasSameOriginProof(r) {
		t.Fatal("HasSameOriginProof() = false, want true for matching origin")
	}
}

func TestHasSameOriginProofRejectsForeignOrigin(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("POST", "http://dash.example.com/logout", nil)
	r.Header.Set("Origin", "http://evil.example.net")
	if HasSameOriginProof(r) {
		t.Fatal("HasSameOriginProof() = true, want false for foreign origin")
	}
}

func TestHasSameOriginProofFallsBackToReferer(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("POST", "http://dash.example.com/logout", nil)
	r.Header.Set("Referer", "http://dash.example.com/dashboard/hotels/")
	if !HasSameOriginProof(r) {
		t.Fatal("HasSameOriginProof() = false, want true for same-origin referer")
	}
}

func TestHasSameOriginProofRequiresProof(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("POST", "http://dash.example.com/logout", nil)
	if HasSameOriginProof(r) {
		t.Fatal("HasSameOriginProof() = true, want false without origin headers")
	}
}

func TestIsHTTPSIgnoresForwardedProtoByDefault(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "http://dash.example.com/", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	if IsHTTPS(r) {
		t.Fatal("IsHTTPS() = true, want false when forwarded proto is untrusted")
	}
	if !IsHTTPSWithPolicy(r, SchemePolicy{TrustForwardedProto: true}) {
		t.Fatal("IsHTTPSWithPolicy(trusted) = false, want true")
	}
}
