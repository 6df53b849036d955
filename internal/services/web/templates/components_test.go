package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/aislehq/aisle/internal/services/web/routepath"
)

func render(t *testing.T, component templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := component.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	return b.String()
}

func TestSkeletonLoaderTargetsFragment(t *testing.T) {
	got := render(t, SkeletonLoader(testLocalizer(), routepath.HotelsFragment))
	if !strings.Contains(got, `hx-get="`+routepath.HotelsFragment+`"`) {
		t.Fatalf("expected fragment target, got %q", got)
	}
	if !strings.Contains(got, `hx-trigger="load"`) {
		t.Fatalf("expected load trigger, got %q", got)
	}
}

func TestClientCountPanel(t *testing.T) {
	t.Run("renders count and action", func(t *testing.T) {
		got := render(t, ClientCountPanel(testLocalizer(), 2, routepath.Clients))
		if !strings.Contains(got, "You have 2 clients") {
			t.Fatalf("expected client count, got %q", got)
		}
		if !strings.Contains(got, `href="`+routepath.Clients+`"`) {
			t.Fatalf("expected clients link, got %q", got)
		}
	})

	t.Run("hidden when roster is empty", func(t *testing.T) {
		if got := render(t, ClientCountPanel(testLocalizer(), 0, routepath.Clients)); got != "" {
			t.Fatalf("expected empty render, got %q", got)
		}
	})
}

func TestErrorStateRendersRetry(t *testing.T) {
	got := render(t, ErrorState(testLocalizer(), "planner unavailable", routepath.HotelsFragment))
	if !strings.Contains(got, "planner unavailable") {
		t.Fatalf("expected message, got %q", got)
	}
	if !strings.Contains(got, `hx-get="`+routepath.HotelsFragment+`"`) {
		t.Fatalf("expected retry target, got %q", got)
	}
}

func TestErrorStateOmitsRetryWithoutURL(t *testing.T) {
	got := render(t, ErrorState(testLocalizer(), "boom", ""))
	if strings.Contains(got, "hx-get") {
		t.Fatalf("expected no retry button, got %q", got)
	}
}

func TestHotelsFallbackStates(t *testing.T) {
	t.Run("multiple clients prompt a pick", func(t *testing.T) {
		got := render(t, HotelsFallback(testLocalizer(), 3))
		if !strings.Contains(got, "You have 3 clients") {
			t.Fatalf("expected count panel, got %q", got)
		}
		if !strings.Contains(got, "Pick a client") {
			t.Fatalf("expected pick prompt, got %q", got)
		}
	})

	t.Run("zero clients hide the panel", func(t *testing.T) {
		got := render(t, HotelsFallback(testLocalizer(), 0))
		if strings.Contains(got, "client-count-panel") {
			t.Fatalf("expected no count panel, got %q", got)
		}
		if !strings.Contains(got, "No clients yet") {
			t.Fatalf("expected empty prompt, got %q", got)
		}
		if !strings.Contains(got, `href="`+routepath.Clients+`"`) {
			t.Fatalf("expected view clients action, got %q", got)
		}
	})
}

func TestRoomBlocksTable(t *testing.T) {
	rows := []RoomBlockRow{
		{HotelName: "Grand Palms", RoomCount: 20, NightlyRate: "$189.00", CutoffDate: "2026-05-01", Notes: "ask for Maria"},
	}
	got := render(t, RoomBlocksTable(testLocalizer(), rows))
	for _, want := range []string{"Grand Palms", "20", "$189.00", "2026-05-01", "ask for Maria"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in table, got %q", want, got)
		}
	}
}

func TestRoomBlocksTableEmptyState(t *testing.T) {
	got := render(t, RoomBlocksTable(testLocalizer(), nil))
	if !strings.Contains(got, "No room blocks recorded") {
		t.Fatalf("expected empty state, got %q", got)
	}
}

func TestClientsListLinksPages(t *testing.T) {
	rows := []ClientRow{{
		CoupleNames: "Ana & Bruno",
		WeddingDate: "2026-09-12",
		HotelsURL:   routepath.ClientHotels("c1"),
		GiftsURL:    routepath.ClientGifts("c1"),
		SmsURL:      routepath.ClientSms("c1"),
	}}
	got := render(t, ClientsList(testLocalizer(), rows))
	if !strings.Contains(got, "Ana &amp; Bruno") {
		t.Fatalf("expected escaped couple names, got %q", got)
	}
	if !strings.Contains(got, `href="/dashboard/clients/c1/hotels"`) {
		t.Fatalf("expected hotels link, got %q", got)
	}
}

func TestSmsStatsCards(t *testing.T) {
	got := render(t, SmsStatsCards(testLocalizer(), SmsStatsView{
		Total: 6, Sent: 3, Delivered: 2, Failed: 1, DeliveryRate: "40%",
	}))
	for _, want := range []string{"Total", "Delivered", "40%"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in stats, got %q", want, got)
		}
	}
}

func TestSmsLogTableEscapesBody(t *testing.T) {
	rows := []SmsRow{{
		PhoneNumber: "+15550100",
		Body:        "<b>hi</b>",
		Direction:   "outbound",
		Status:      "delivered",
		SentAt:      "2026-08-01 10:00",
	}}
	got := render(t, SmsLogTable(testLocalizer(), rows))
	if strings.Contains(got, "<b>hi</b>") {
		t.Fatalf("expected escaped body, got %q", got)
	}
	if !strings.Contains(got, "sms-status-delivered") {
		t.Fatalf("expected status class, got %q", got)
	}
}

func TestGiftsTableThankYouStates(t *testing.T) {
	rows := []GiftRow{
		{GuestName: "Elena", Description: "Serving bowl", ReceivedAt: "2026-07-03", ThankYouSent: true},
		{GuestName: "Marcos", Description: "Wine set", ReceivedAt: "2026-07-01", ThankYouSent: false},
	}
	got := render(t, GiftsTable(testLocalizer(), rows))
	if !strings.Contains(got, "Sent") || !strings.Contains(got, "Pending") {
		t.Fatalf("expected thank-you states, got %q", got)
	}
}

func TestLoginPageShowsError(t *testing.T) {
	got := render(t, LoginPage(testLocalizer(), "Invalid email or password."))
	if !strings.Contains(got, "Invalid email or password.") {
		t.Fatalf("expected error message, got %q", got)
	}
	if !strings.Contains(got, `action="`+routepath.Login+`"`) {
		t.Fatalf("expected login form action, got %q", got)
	}
}
