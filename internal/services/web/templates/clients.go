package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// ClientRow is one wedding engagement rendered in the client picker.
type ClientRow struct {
	CoupleNames string
	WeddingDate string
	HotelsURL   string
	GiftsURL    string
	SmsURL      string
}

// ClientsList renders the client picker table.
func ClientsList(loc Localizer, rows []ClientRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="clients-list"><h1>%s</h1>`,
			html.EscapeString(T(loc, "clients.title"))); err != nil {
			return err
		}
		if len(rows) == 0 {
			if err := EmptyState(T(loc, "clients.empty")).Render(ctx, w); err != nil {
				return err
			}
			_, err := io.WriteString(w, `</section>`)
			return err
		}
		if _, err := fmt.Fprintf(w, `<table class="clients-table"><thead><tr><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			html.EscapeString(T(loc, "clients.column_couple")),
			html.EscapeString(T(loc, "clients.column_wedding_date")),
			html.EscapeString(T(loc, "clients.column_pages"))); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td><a href="%s">%s</a> <a href="%s">%s</a> <a href="%s">%s</a></td></tr>`,
				html.EscapeString(row.CoupleNames), html.EscapeString(row.WeddingDate),
				html.EscapeString(row.HotelsURL), html.EscapeString(T(loc, "nav.hotels")),
				html.EscapeString(row.GiftsURL), html.EscapeString(T(loc, "nav.gifts")),
				html.EscapeString(row.SmsURL), html.EscapeString(T(loc, "nav.sms"))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
}

// ClientPageHeading renders the shared heading for per-client pages. The
// couple line is omitted when the names are not yet known.
func ClientPageHeading(title string, coupleNames string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if coupleNames == "" {
			_, err := fmt.Fprintf(w, `<header class="client-page-heading"><h1>%s</h1></header>`,
				html.EscapeString(title))
			return err
		}
		_, err := fmt.Fprintf(w, `<header class="client-page-heading"><h1>%s</h1><p class="client-page-couple">%s</p></header>`,
			html.EscapeString(title), html.EscapeString(coupleNames))
		return err
	})
}
