package templates

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// ErrorState renders a failure panel with an HTMX retry button.
//
// retryURL is the fragment endpoint the retry button re-requests; when empty
// the button is omitted.
func ErrorState(loc Localizer, message string, retryURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		text := strings.TrimSpace(message)
		if text == "" {
			text = T(loc, "error.generic")
		}
		if _, err := fmt.Fprintf(w, `<div class="error-state" role="alert"><h2>%s</h2><p>%s</p>`,
			html.EscapeString(T(loc, "error.title")), html.EscapeString(text)); err != nil {
			return err
		}
		if retryURL != "" {
			if _, err := fmt.Fprintf(w, `<button class="error-retry" hx-get="%s" hx-target="closest .error-state" hx-swap="outerHTML">%s</button>`,
				html.EscapeString(retryURL), html.EscapeString(T(loc, "error.retry"))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// SkeletonLoader renders a loading placeholder that swaps itself for the
// fragment at fragmentURL as soon as the page settles.
func SkeletonLoader(loc Localizer, fragmentURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="skeleton" hx-get="%s" hx-trigger="load" hx-swap="outerHTML" aria-busy="true"><div class="skeleton-bar"></div><div class="skeleton-bar"></div><div class="skeleton-bar"></div><span class="skeleton-label">%s</span></div>`,
			html.EscapeString(fragmentURL), html.EscapeString(T(loc, "loading.title")))
		return err
	})
}

// ClientCountPanel renders the roster summary with a link to the client list.
// Nothing is rendered when the roster is empty.
func ClientCountPanel(loc Localizer, count int, clientsURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if count <= 0 {
			return nil
		}
		_, err := fmt.Fprintf(w, `<section class="client-count-panel"><p class="client-count">%s</p><a class="client-count-action" href="%s">%s</a></section>`,
			html.EscapeString(T(loc, "hotels.client_count", count)),
			html.EscapeString(clientsURL),
			html.EscapeString(T(loc, "hotels.view_clients")))
		return err
	})
}

// ComingSoon renders a placeholder panel for unbuilt feature areas.
func ComingSoon(loc Localizer, title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="coming-soon"><h1>%s</h1><p>%s</p></section>`,
			html.EscapeString(title), html.EscapeString(T(loc, "coming_soon.message")))
		return err
	})
}

// AppErrorPageTitle resolves the page title for an error status.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if statusCode == 404 {
		return T(loc, "not_found.title")
	}
	return T(loc, "error.title")
}

// AppErrorState renders the shared error panel for an HTTP status.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	if statusCode == 404 {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := fmt.Fprintf(w, `<div class="error-state" role="alert"><h2>%s</h2><p>%s</p></div>`,
				html.EscapeString(T(loc, "not_found.title")),
				html.EscapeString(T(loc, "not_found.message")))
			return err
		})
	}
	return ErrorState(loc, T(loc, "error.generic"), "")
}

// EmptyState renders a muted message for lists with no rows.
func EmptyState(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p class="empty-state">%s</p>`, html.EscapeString(message))
		return err
	})
}
