// Package public mounts the unauthenticated surface: the landing page, the
// credential login flow, logout, and the health probe.
package public

import (
	"errors"
	"net/http"
	"strings"

	module "github.com/aislehq/aisle/internal/services/web/module"
	apperrors "github.com/aislehq/aisle/internal/services/web/platform/errors"
	"github.com/aislehq/aisle/internal/services/web/platform/httpx"
	webi18n "github.com/aislehq/aisle/internal/services/web/platform/i18n"
	"github.com/aislehq/aisle/internal/services/web/platform/pagerender"
	"github.com/aislehq/aisle/internal/services/web/platform/sessioncookie"
	"github.com/aislehq/aisle/internal/services/web/platform/weberror"
	"github.com/aislehq/aisle/internal/services/web/routepath"
	"github.com/aislehq/aisle/internal/services/web/templates"
)

// Module serves the public routes mounted at the site root.
type Module struct{}

// New returns the public module.
func New() *Module {
	return &Module{}
}

// ID identifies the module in composition wiring.
func (m *Module) ID() string { return "public" }

// Mount wires the public routes.
func (m *Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := &handler{deps: deps}

	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.landing)
	mux.HandleFunc(http.MethodGet+" "+routepath.Login, h.loginForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.Login, h.login)
	mux.HandleFunc(http.MethodPost+" "+routepath.Logout, h.logout)
	mux.Handle(http.MethodGet+" "+routepath.Logout, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.health)
	mux.HandleFunc(http.MethodGet+" "+routepath.Dashboard, h.dashboard)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardPrefix+"{$}", h.dashboard)
	mux.HandleFunc("/", h.notFound)

	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

type handler struct {
	deps module.Dependencies
}

func (h *handler) landing(w http.ResponseWriter, r *http.Request) {
	// Signed-in visitors land on the dashboard instead of the marketing page.
	if _, ok := sessioncookie.Read(r); ok {
		httpx.WriteRedirect(w, r, routepath.Hotels)
		return
	}
	loc := webi18n.Printer(webi18n.ResolveTag(r, h.deps.ResolveLanguage))
	page := pagerender.ModulePage{
		Title:    templates.T(loc, "landing.sign_in"),
		Fragment: templates.LandingPage(loc),
	}
	if err := pagerender.WriteModulePage(w, r, h.deps, page); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

func (h *handler) loginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessioncookie.Read(r); ok {
		httpx.WriteRedirect(w, r, routepath.Hotels)
		return
	}
	h.renderLogin(w, r, http.StatusOK, "")
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	if h.deps.SessionClient == nil {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindUnavailable, "session client is not configured"), h.deps)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, "")
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		loc := webi18n.Printer(webi18n.ResolveTag(r, h.deps.ResolveLanguage))
		h.renderLogin(w, r, http.StatusBadRequest, templates.T(loc, "login.error_invalid"))
		return
	}

	result, err := h.deps.SessionClient.CreateSession(r.Context(), email, password)
	if err != nil {
		loc := webi18n.Printer(webi18n.ResolveTag(r, h.deps.ResolveLanguage))
		var appErr apperrors.Error
		if errors.As(err, &appErr) && appErr.Kind == apperrors.KindUnauthorized {
			h.renderLogin(w, r, http.StatusUnauthorized, templates.T(loc, "login.error_invalid"))
			return
		}
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}

	sessioncookie.Write(w, r, result.Token)
	httpx.WriteRedirect(w, r, routepath.Hotels)
}

func (h *handler) logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := sessioncookie.Read(r); ok && h.deps.SessionClient != nil {
		// Revocation failures still clear the cookie; the session will
		// eventually expire server-side.
		_ = h.deps.SessionClient.RevokeSession(r.Context(), token)
	}
	sessioncookie.Clear(w, r)
	httpx.WriteRedirect(w, r, routepath.Root)
}

// dashboard forwards the bare dashboard path to the hotels landing area.
func (h *handler) dashboard(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.Hotels)
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *handler) notFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func (h *handler) renderLogin(w http.ResponseWriter, r *http.Request, statusCode int, errorMessage string) {
	loc := webi18n.Printer(webi18n.ResolveTag(r, h.deps.ResolveLanguage))
	page := pagerender.ModulePage{
		Title:      templates.T(loc, "login.heading"),
		StatusCode: statusCode,
		Fragment:   templates.LoginPage(loc, errorMessage),
	}
	if err := pagerender.WriteModulePage(w, r, h.deps, page); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}
