// Package gifts mounts the org-wide gift overview. Per-client gift logs live
// under the clients module; this area is a placeholder until the aggregate
// view ships.
package gifts

import (
	"net/http"

	module "github.com/aislehq/aisle/internal/services/web/module"
	webi18n "github.com/aislehq/aisle/internal/services/web/platform/i18n"
	"github.com/aislehq/aisle/internal/services/web/platform/pagerender"
	"github.com/aislehq/aisle/internal/services/web/platform/weberror"
	"github.com/aislehq/aisle/internal/services/web/routepath"
	"github.com/aislehq/aisle/internal/services/web/templates"
)

// Module serves the gifts area under /dashboard/gifts/.
type Module struct{}

// New returns the gifts module.
func New() *Module {
	return &Module{}
}

// ID identifies the module in composition wiring.
func (m *Module) ID() string { return "gifts" }

// Mount wires the gifts routes.
func (m *Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := &handler{deps: deps}

	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.GiftsPrefix+"{$}", h.landing)

	return module.Mount{Prefix: routepath.GiftsPrefix, Handler: mux}, nil
}

type handler struct {
	deps module.Dependencies
}

func (h *handler) landing(w http.ResponseWriter, r *http.Request) {
	loc := webi18n.Printer(webi18n.ResolveTag(r, h.deps.ResolveLanguage))
	title := templates.T(loc, "gifts.title")
	page := pagerender.ModulePage{
		Title:     title,
		ActiveNav: templates.NavGifts,
		Fragment:  templates.ComingSoon(loc, title),
	}
	if err := pagerender.WriteModulePage(w, r, h.deps, page); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}
