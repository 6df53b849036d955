package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// GiftRow is one recorded guest gift.
type GiftRow struct {
	GuestName    string
	Description  string
	ReceivedAt   string
	ThankYouSent bool
}

// GiftsTable renders a client's gift log, most recent first.
func GiftsTable(loc Localizer, rows []GiftRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(rows) == 0 {
			return EmptyState(T(loc, "gifts.empty")).Render(ctx, w)
		}
		if _, err := fmt.Fprintf(w, `<table class="gifts-table"><thead><tr><th>%s</th><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			html.EscapeString(T(loc, "gifts.column_guest")),
			html.EscapeString(T(loc, "gifts.column_description")),
			html.EscapeString(T(loc, "gifts.column_received")),
			html.EscapeString(T(loc, "gifts.column_thank_you"))); err != nil {
			return err
		}
		for _, row := range rows {
			thankYou := T(loc, "gifts.thank_you_pending")
			if row.ThankYouSent {
				thankYou = T(loc, "gifts.thank_you_sent")
			}
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				html.EscapeString(row.GuestName), html.EscapeString(row.Description),
				html.EscapeString(row.ReceivedAt), html.EscapeString(thankYou)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}
