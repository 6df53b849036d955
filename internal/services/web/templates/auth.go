package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/aislehq/aisle/internal/platform/branding"
	"github.com/aislehq/aisle/internal/services/web/routepath"
)

// LandingPage renders the signed-out marketing page.
func LandingPage(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="landing"><h1>%s</h1><p class="landing-tagline">%s</p><a class="landing-signin" href="%s">%s</a></section>`,
			html.EscapeString(branding.AppName),
			html.EscapeString(T(loc, "landing.tagline")),
			routepath.Login,
			html.EscapeString(T(loc, "landing.sign_in")))
		return err
	})
}

// LoginPage renders the credential form. errorMessage shows a failed attempt.
func LoginPage(loc Localizer, errorMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="login"><h1>%s</h1>`,
			html.EscapeString(T(loc, "login.heading"))); err != nil {
			return err
		}
		if errorMessage != "" {
			if _, err := fmt.Fprintf(w, `<p class="login-error" role="alert">%s</p>`, html.EscapeString(errorMessage)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `<form method="post" action="%s"><label for="email">%s</label><input id="email" name="email" type="email" autocomplete="email" required><label for="password">%s</label><input id="password" name="password" type="password" autocomplete="current-password" required><button type="submit">%s</button></form></section>`,
			routepath.Login,
			html.EscapeString(T(loc, "login.email")),
			html.EscapeString(T(loc, "login.password")),
			html.EscapeString(T(loc, "login.submit")))
		return err
	})
}

// NotFoundPage renders the dashboard 404 content.
func NotFoundPage(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="not-found"><h1>%s</h1><p>%s</p><a href="%s">%s</a></section>`,
			html.EscapeString(T(loc, "not_found.title")),
			html.EscapeString(T(loc, "not_found.message")),
			routepath.Hotels,
			html.EscapeString(T(loc, "not_found.back")))
		return err
	})
}
