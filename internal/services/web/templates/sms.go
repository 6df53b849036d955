package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// SmsStatsView aggregates an SMS log for the stat cards.
type SmsStatsView struct {
	Total        int
	Sent         int
	Delivered    int
	Failed       int
	DeliveryRate string
}

// SmsRow is one SMS log entry.
type SmsRow struct {
	PhoneNumber string
	Body        string
	Direction   string
	Status      string
	SentAt      string
}

// SmsStatsCards renders the summary cards above the SMS log.
func SmsStatsCards(loc Localizer, stats SmsStatsView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cards := []struct {
			Label string
			Value string
		}{
			{Label: T(loc, "sms.stat_total"), Value: fmt.Sprintf("%d", stats.Total)},
			{Label: T(loc, "sms.stat_sent"), Value: fmt.Sprintf("%d", stats.Sent)},
			{Label: T(loc, "sms.stat_delivered"), Value: fmt.Sprintf("%d", stats.Delivered)},
			{Label: T(loc, "sms.stat_failed"), Value: fmt.Sprintf("%d", stats.Failed)},
			{Label: T(loc, "sms.stat_delivery_rate"), Value: stats.DeliveryRate},
		}
		if _, err := io.WriteString(w, `<div class="sms-stats">`); err != nil {
			return err
		}
		for _, card := range cards {
			if _, err := fmt.Fprintf(w, `<div class="sms-stat-card"><span class="sms-stat-value">%s</span><span class="sms-stat-label">%s</span></div>`,
				html.EscapeString(card.Value), html.EscapeString(card.Label)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// SmsLogTable renders a client's SMS log, most recent first.
func SmsLogTable(loc Localizer, rows []SmsRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(rows) == 0 {
			return EmptyState(T(loc, "sms.empty")).Render(ctx, w)
		}
		if _, err := fmt.Fprintf(w, `<table class="sms-table"><thead><tr><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			html.EscapeString(T(loc, "sms.column_sent")),
			html.EscapeString(T(loc, "sms.column_direction")),
			html.EscapeString(T(loc, "sms.column_status")),
			html.EscapeString(T(loc, "sms.column_phone")),
			html.EscapeString(T(loc, "sms.column_body"))); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td><span class="sms-status sms-status-%s">%s</span></td><td>%s</td><td>%s</td></tr>`,
				html.EscapeString(row.SentAt), html.EscapeString(row.Direction),
				html.EscapeString(row.Status), html.EscapeString(row.Status),
				html.EscapeString(row.PhoneNumber), html.EscapeString(row.Body)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}
