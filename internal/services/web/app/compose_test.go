package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/aislehq/aisle/internal/services/web/module"
	"github.com/aislehq/aisle/internal/services/web/platform/sessioncookie"
	"github.com/aislehq/aisle/internal/services/web/routepath"
)

type stubModule struct {
	id     string
	prefix string
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount(module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(m.id))
	})
	return module.Mount{Prefix: m.prefix, Handler: mux}, nil
}

func TestComposeRejectsDuplicatePrefixes(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		ProtectedModules: []module.Module{
			stubModule{id: "a", prefix: "/dashboard/hotels/"},
			stubModule{id: "b", prefix: "/dashboard/hotels/"},
		},
	})
	if err == nil {
		t.Fatal("expected duplicate prefix error")
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		PublicModules: []module.Module{nil},
	})
	if err == nil {
		t.Fatal("expected nil module error")
	}
}

func TestComposeRejectsProtectedPrefixInPublicGroup(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		PublicModules: []module.Module{
			stubModule{id: "sneaky", prefix: "/dashboard/hotels/"},
		},
	})
	if err == nil {
		t.Fatal("expected protected prefix rejection")
	}
}

func TestComposeRejectsPublicPrefixInProtectedGroup(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		ProtectedModules: []module.Module{
			stubModule{id: "loose", prefix: "/elsewhere/"},
		},
	})
	if err == nil {
		t.Fatal("expected public prefix rejection")
	}
}

func TestComposeRedirectsUnauthedProtectedRequests(t *testing.T) {
	t.Parallel()

	handler, err := Compose(ComposeInput{
		AuthRequired: func(*http.Request) bool { return false },
		ProtectedModules: []module.Module{
			stubModule{id: "hotels", prefix: "/dashboard/hotels/"},
		},
	})
	if err != nil {
		t.Fatalf("Compose() = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard/hotels/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != routepath.Login {
		t.Fatalf("Location = %q, want %q", got, routepath.Login)
	}
}

func TestComposeBlocksCrossOriginMutations(t *testing.T) {
	t.Parallel()

	handler, err := Compose(ComposeInput{
		AuthRequired: func(*http.Request) bool { return true },
		ProtectedModules: []module.Module{
			stubModule{id: "hotels", prefix: "/dashboard/hotels/"},
		},
	})
	if err != nil {
		t.Fatalf("Compose() = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/dashboard/hotels/", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "token-1"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
}

func TestComposeAllowsSameOriginMutations(t *testing.T) {
	t.Parallel()

	handler, err := Compose(ComposeInput{
		AuthRequired: func(*http.Request) bool { return true },
		ProtectedModules: []module.Module{
			stubModule{id: "hotels", prefix: "/dashboard/hotels/"},
		},
	})
	if err != nil {
		t.Fatalf("Compose() = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "http://dash.example.com/dashboard/hotels/", nil)
	req.Host = "dash.example.com"
	req.Header.Set("Origin", "http://dash.example.com")
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "token-1"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestComposeNormalizesPrefixes(t *testing.T) {
	t.Parallel()

	handler, err := Compose(ComposeInput{
		AuthRequired: func(*http.Request) bool { return true },
		ProtectedModules: []module.Module{
			stubModule{id: "hotels", prefix: "/dashboard/hotels"},
		},
	})
	if err != nil {
		t.Fatalf("Compose() = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard/hotels/anything", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || rr.Body.String() != "hotels" {
		t.Fatalf("status = %d body = %q", rr.Code, rr.Body.String())
	}
}
