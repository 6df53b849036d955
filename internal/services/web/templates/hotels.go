package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/aislehq/aisle/internal/services/web/routepath"
)

// RoomBlockRow is one hotel room block rendered in the hotels table.
type RoomBlockRow struct {
	HotelName   string
	RoomCount   int
	NightlyRate string
	CutoffDate  string
	Notes       string
}

// HotelsLanding renders the hotels landing content. The skeleton swaps itself
// for the resolved fragment once the page loads.
func HotelsLanding(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="hotels-landing"><h1>%s</h1>`,
			html.EscapeString(T(loc, "hotels.title"))); err != nil {
			return err
		}
		if err := SkeletonLoader(loc, routepath.HotelsFragment).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// HotelsFallback renders the multi-client landing state: the roster count
// panel plus a prompt to pick a client.
func HotelsFallback(loc Localizer, clientCount int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="hotels-fallback">`); err != nil {
			return err
		}
		if err := ClientCountPanel(loc, clientCount, routepath.Clients).Render(ctx, w); err != nil {
			return err
		}
		message := T(loc, "hotels.fallback_pick_client")
		if clientCount == 0 {
			message = T(loc, "hotels.fallback_empty")
		}
		if _, err := fmt.Fprintf(w, `<p class="hotels-fallback-message">%s</p>`, html.EscapeString(message)); err != nil {
			return err
		}
		// The count panel carries its own link; with an empty roster the
		// action still has to be reachable.
		if clientCount == 0 {
			if _, err := fmt.Fprintf(w, `<a class="hotels-fallback-action" href="%s">%s</a>`,
				html.EscapeString(routepath.Clients), html.EscapeString(T(loc, "hotels.view_clients"))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// RoomBlocksTable renders a client's hotel room blocks.
func RoomBlocksTable(loc Localizer, rows []RoomBlockRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(rows) == 0 {
			return EmptyState(T(loc, "hotels.empty")).Render(ctx, w)
		}
		if _, err := fmt.Fprintf(w, `<table class="roomblocks-table"><thead><tr><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			html.EscapeString(T(loc, "hotels.column_hotel")),
			html.EscapeString(T(loc, "hotels.column_rooms")),
			html.EscapeString(T(loc, "hotels.column_rate")),
			html.EscapeString(T(loc, "hotels.column_cutoff")),
			html.EscapeString(T(loc, "hotels.column_notes"))); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%d</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				html.EscapeString(row.HotelName), row.RoomCount,
				html.EscapeString(row.NightlyRate), html.EscapeString(row.CutoffDate),
				html.EscapeString(row.Notes)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}
