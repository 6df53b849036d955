// Package templates renders the dashboard HTML using templ components.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/aislehq/aisle/internal/platform/branding"
	"github.com/aislehq/aisle/internal/services/web/routepath"
)

// Viewer carries the identity rendered in the app shell header.
type Viewer struct {
	DisplayName string
	Email       string
}

// AppLayoutOptions configures the dashboard page shell.
type AppLayoutOptions struct {
	// Title is the page title before branding is applied.
	Title string
	// Lang is the BCP 47 language tag for the html element.
	Lang string
	// Loc translates chrome labels.
	Loc Localizer
	// Viewer renders the signed-in identity when set.
	Viewer Viewer
	// ActiveNav highlights the matching navigation entry.
	ActiveNav string
}

// Navigation entry IDs for AppLayoutOptions.ActiveNav.
const (
	NavHotels  = "hotels"
	NavClients = "clients"
	NavGifts   = "gifts"
)

// ComposePageTitle appends the product name to a page title.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	if strings.HasSuffix(title, "| "+branding.AppName) {
		return title
	}
	return title + " | " + branding.AppName
}

type navEntry struct {
	ID    string
	Label string
	URL   string
}

func navEntries(loc Localizer) []navEntry {
	return []navEntry{
		{ID: NavHotels, Label: T(loc, "nav.hotels"), URL: routepath.Hotels},
		{ID: NavClients, Label: T(loc, "nav.clients"), URL: routepath.Clients},
		{ID: NavGifts, Label: T(loc, "nav.gifts"), URL: routepath.Gifts},
	}
}

// AppLayout renders the full dashboard shell around its children.
func AppLayout(opts AppLayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = "en"
		}

		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><script src="https://unpkg.com/htmx.org@1.9.12"></script></head><body>`,
			html.EscapeString(lang), html.EscapeString(ComposePageTitle(opts.Title))); err != nil {
			return err
		}

		if err := writeHeader(w, opts); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main id="app-main" class="app-main">`); err != nil {
			return err
		}
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func writeHeader(w io.Writer, opts AppLayoutOptions) error {
	if _, err := fmt.Fprintf(w, `<header class="app-header"><a class="app-brand" href="%s">%s</a><nav class="app-nav">`,
		routepath.Hotels, html.EscapeString(branding.AppName)); err != nil {
		return err
	}
	for _, entry := range navEntries(opts.Loc) {
		class := "app-nav-link"
		if entry.ID == opts.ActiveNav {
			class = "app-nav-link app-nav-link-active"
		}
		if _, err := fmt.Fprintf(w, `<a class="%s" href="%s">%s</a>`, class, entry.URL, html.EscapeString(entry.Label)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `</nav>`); err != nil {
		return err
	}
	if err := writeViewer(w, opts); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</header>`)
	return err
}

func writeViewer(w io.Writer, opts AppLayoutOptions) error {
	name := strings.TrimSpace(opts.Viewer.DisplayName)
	if name == "" {
		name = strings.TrimSpace(opts.Viewer.Email)
	}
	if name == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<div class="app-viewer"><span class="app-viewer-name">%s</span><form method="post" action="%s"><button type="submit" class="app-signout">%s</button></form></div>`,
		html.EscapeString(name), routepath.Logout, html.EscapeString(T(opts.Loc, "nav.sign_out")))
	return err
}

// PageWithLayout wraps content in the app shell.
func PageWithLayout(opts AppLayoutOptions, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return AppLayout(opts).Render(templ.WithChildren(ctx, content), w)
	})
}
