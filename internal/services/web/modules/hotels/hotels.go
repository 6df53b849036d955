// Package hotels mounts the dashboard landing area. The landing page renders
// a skeleton immediately and defers data loading to an HTMX fragment that
// resolves the session, the account, and the client roster in order.
package hotels

import (
	"context"
	"net/http"

	module "github.com/aislehq/aisle/internal/services/web/module"
	apperrors "github.com/aislehq/aisle/internal/services/web/platform/errors"
	"github.com/aislehq/aisle/internal/services/web/platform/httpx"
	webi18n "github.com/aislehq/aisle/internal/services/web/platform/i18n"
	"github.com/aislehq/aisle/internal/services/web/platform/pagerender"
	"github.com/aislehq/aisle/internal/services/web/platform/weberror"
	"github.com/aislehq/aisle/internal/services/web/routepath"
	"github.com/aislehq/aisle/internal/services/web/templates"
)

// Module serves the hotels landing area under /dashboard/hotels/.
type Module struct {
	guard *redirectGuard
}

// New returns the hotels module.
func New() *Module {
	return &Module{guard: newRedirectGuard()}
}

// ID identifies the module in composition wiring.
func (m *Module) ID() string { return "hotels" }

// Mount wires the hotels routes.
func (m *Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := &handler{deps: deps, guard: m.guard}

	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.HotelsPrefix+"{$}", h.landing)
	mux.HandleFunc(http.MethodGet+" "+routepath.HotelsFragment, h.fragment)

	return module.Mount{Prefix: routepath.HotelsPrefix, Handler: mux}, nil
}

type handler struct {
	deps  module.Dependencies
	guard *redirectGuard
}

// landing renders the page shell with a skeleton. The real content arrives
// via the fragment endpoint so first paint never blocks on the planner.
func (h *handler) landing(w http.ResponseWriter, r *http.Request) {
	loc := webi18n.Printer(webi18n.ResolveTag(r, h.deps.ResolveLanguage))
	page := pagerender.ModulePage{
		Title:     templates.T(loc, "hotels.title"),
		ActiveNav: templates.NavHotels,
		Fragment:  templates.HotelsLanding(loc),
	}
	if err := pagerender.WriteModulePage(w, r, h.deps, page); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

// fragment resolves the roster through the gated fetch chain and either
// navigates to the only client's hotels page or renders the fallback view.
func (h *handler) fragment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roster, err := h.resolveRoster(ctx, r)
	if err != nil {
		// A closed connection means nobody is waiting for the render.
		if ctx.Err() != nil {
			return
		}
		h.writeFragmentError(w, r, err)
		return
	}

	if len(roster.clients) == 1 {
		only := roster.clients[0]
		if h.guard.fire(roster.sessionID, rosterFingerprint(clientIDs(roster.clients))) {
			httpx.WriteRedirect(w, r, routepath.ClientHotels(only.ID))
			return
		}
	}

	loc := webi18n.Printer(webi18n.ResolveTag(r, h.deps.ResolveLanguage))
	page := pagerender.ModulePage{
		Title:     templates.T(loc, "hotels.title"),
		ActiveNav: templates.NavHotels,
		Fragment:  templates.HotelsFallback(loc, len(roster.clients)),
	}
	if err := pagerender.WriteModulePage(w, r, h.deps, page); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

type rosterResult struct {
	sessionID string
	clients   []module.Client
}

// resolveRoster runs the session, account, and client fetches in order. Each
// step gates the next, and the whole chain shares the request context so a
// navigation away cancels outstanding calls.
func (h *handler) resolveRoster(ctx context.Context, r *http.Request) (rosterResult, error) {
	if h.deps.SessionClient == nil || h.deps.AccountClient == nil || h.deps.DirectoryClient == nil {
		return rosterResult{}, apperrors.E(apperrors.KindUnavailable, "planner clients are not configured")
	}
	token, ok := resolveToken(h.deps, r)
	if !ok {
		return rosterResult{}, apperrors.EK(apperrors.KindUnauthorized, "error.unauthorized", "missing session token")
	}

	session, err := h.deps.SessionClient.GetCurrentSession(ctx, token)
	if err != nil {
		return rosterResult{}, err
	}
	account, err := h.deps.AccountClient.GetAccount(ctx, token, session.UserID)
	if err != nil {
		return rosterResult{}, err
	}
	clients, err := h.deps.DirectoryClient.ListClients(ctx, token, account.OrgID)
	if err != nil {
		return rosterResult{}, err
	}
	return rosterResult{sessionID: session.ID, clients: clients}, nil
}

func (h *handler) writeFragmentError(w http.ResponseWriter, r *http.Request, err error) {
	// Expired sessions restart the login flow instead of rendering an error.
	if apperrors.KindOf(err) == apperrors.KindUnauthorized {
		httpx.WriteRedirect(w, r, routepath.Login)
		return
	}
	loc := webi18n.Printer(webi18n.ResolveTag(r, h.deps.ResolveLanguage))
	page := pagerender.ModulePage{
		Title:      templates.T(loc, "hotels.title"),
		StatusCode: apperrors.HTTPStatus(err),
		ActiveNav:  templates.NavHotels,
		Fragment:   templates.ErrorState(loc, weberror.PublicMessage(loc, err), routepath.HotelsFragment),
	}
	if writeErr := pagerender.WriteModulePage(w, r, h.deps, page); writeErr != nil {
		weberror.WriteModuleError(w, r, writeErr, h.deps)
	}
}

func resolveToken(deps module.Dependencies, r *http.Request) (string, bool) {
	if deps.ResolveToken == nil {
		return "", false
	}
	return deps.ResolveToken(r)
}

func clientIDs(clients []module.Client) []string {
	ids := make([]string, 0, len(clients))
	for _, client := range clients {
		ids = append(ids, client.ID)
	}
	return ids
}
