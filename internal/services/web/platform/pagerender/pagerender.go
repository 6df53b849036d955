// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	module "github.com/aislehq/aisle/internal/services/web/module"
	"github.com/aislehq/aisle/internal/services/web/platform/httpx"
	webi18n "github.com/aislehq/aisle/internal/services/web/platform/i18n"
	"github.com/aislehq/aisle/internal/services/web/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	ActiveNav  string
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page using shared app-shell rendering contracts.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	loc, lang := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	ctx := requestContext(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if httpx.IsHTMXRequest(r) {
		return fragment.Render(ctx, w)
	}

	viewer := module.Viewer{}
	if deps.ResolveViewer != nil {
		viewer = deps.ResolveViewer(r)
	}
	layout := templates.AppLayout(templates.AppLayoutOptions{
		Title:     page.Title,
		Lang:      lang,
		Loc:       loc,
		Viewer:    templates.Viewer{DisplayName: viewer.DisplayName, Email: viewer.Email},
		ActiveNav: page.ActiveNav,
	})
	return layout.Render(templ.WithChildren(ctx, fragment), w)
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}
