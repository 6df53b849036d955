// Package app composes dashboard modules into the root HTTP handler.
package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	module "github.com/aislehq/aisle/internal/services/web/module"
	"github.com/aislehq/aisle/internal/services/web/platform/requestmeta"
	"github.com/aislehq/aisle/internal/services/web/platform/sessioncookie"
	"github.com/aislehq/aisle/internal/services/web/routepath"
)

// ComposeInput carries the module groups and the shared contracts they
// mount with. Public modules serve as-is; protected modules sit behind the
// login redirect and the same-origin mutation check.
type ComposeInput struct {
	Dependencies     module.Dependencies
	AuthRequired     func(*http.Request) bool
	PublicModules    []module.Module
	ProtectedModules []module.Module
}

// Compose mounts each module on its own subtree of the root mux. Protected
// modules must live under the dashboard prefix; public modules must not.
func Compose(input ComposeInput) (http.Handler, error) {
	authed := input.AuthRequired
	if authed == nil {
		authed = func(*http.Request) bool { return false }
	}
	c := &composer{
		root:  http.NewServeMux(),
		deps:  input.Dependencies,
		owner: make(map[string]string),
		guard: guardChain(authed),
	}
	for _, mod := range input.PublicModules {
		if err := c.mountPublic(mod); err != nil {
			return nil, err
		}
	}
	for _, mod := range input.ProtectedModules {
		if err := c.mountProtected(mod); err != nil {
			return nil, err
		}
	}
	return c.root, nil
}

type composer struct {
	root  *http.ServeMux
	deps  module.Dependencies
	owner map[string]string
	guard func(http.Handler) http.Handler
}

func (c *composer) mountPublic(mod module.Module) error {
	prefix, handler, err := c.resolve(mod)
	if err != nil {
		return err
	}
	if strings.HasPrefix(prefix, routepath.DashboardPrefix) {
		return fmt.Errorf("module %q has protected prefix %q in public group", mod.ID(), prefix)
	}
	return c.claim(mod, prefix, handler)
}

func (c *composer) mountProtected(mod module.Module) error {
	prefix, handler, err := c.resolve(mod)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(prefix, routepath.DashboardPrefix) {
		return fmt.Errorf("module %q must mount under %s, got %q", mod.ID(), routepath.DashboardPrefix, prefix)
	}
	return c.claim(mod, prefix, c.guard(handler))
}

func (c *composer) resolve(mod module.Module) (string, http.Handler, error) {
	if mod == nil {
		return "", nil, errors.New("module is nil")
	}
	mount, err := mod.Mount(c.deps)
	if err != nil {
		return "", nil, fmt.Errorf("mount module %q: %w", mod.ID(), err)
	}
	prefix := normalizePrefix(mount.Prefix)
	if prefix == "" {
		return "", nil, fmt.Errorf("mount module %q: prefix is required", mod.ID())
	}
	if mount.Handler == nil {
		return "", nil, fmt.Errorf("mount module %q: handler is required", mod.ID())
	}
	return prefix, mount.Handler, nil
}

func (c *composer) claim(mod module.Module, prefix string, handler http.Handler) error {
	if previous, ok := c.owner[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", mod.ID(), prefix, previous)
	}
	c.owner[prefix] = mod.ID()
	c.root.Handle(prefix, handler)
	return nil
}

// normalizePrefix shapes a mount prefix into a ServeMux subtree pattern
// with leading and trailing slashes.
func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}

// guardChain layers the login redirect over the same-origin mutation check.
func guardChain(authed func(*http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		protected := requireSameOriginMutations(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authed(r) {
				http.Redirect(w, r, routepath.Login, http.StatusFound)
				return
			}
			protected.ServeHTTP(w, r)
		})
	}
}

// requireSameOriginMutations rejects cookie-authenticated mutations that
// carry no same-origin proof. Reads and tokenless requests pass through.
func requireSameOriginMutations(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isMutation(r) {
			if _, ok := sessioncookie.Read(r); ok && !requestmeta.HasSameOriginProof(r) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func isMutation(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
