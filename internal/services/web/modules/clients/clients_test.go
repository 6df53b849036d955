package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	module "github.com/aislehq/aisle/internal/services/web/module"
	apperrors "github.com/aislehq/aisle/internal/services/web/platform/errors"
	"github.com/aislehq/aisle/internal/services/web/routepath"
)

type fakeDirectory struct {
	clients []module.Client
	err     error
}

func (f *fakeDirectory) ListClients(context.Context, string, string) ([]module.Client, error) {
	return f.clients, f.err
}

func (f *fakeDirectory) GetClient(ctx context.Context, token string, clientID string) (module.Client, error) {
	if f.err != nil {
		return module.Client{}, f.err
	}
	for _, client := range f.clients {
		if client.ID == clientID {
			return client, nil
		}
	}
	return module.Client{}, apperrors.EK(apperrors.KindNotFound, "error.not_found", "client not found")
}

type fakeHotels struct {
	blocks []module.RoomBlock
	err    error
}

func (f *fakeHotels) ListRoomBlocks(context.Context, string, string) ([]module.RoomBlock, error) {
	return f.blocks, f.err
}

type fakeGifts struct {
	gifts []module.Gift
}

func (f *fakeGifts) ListGifts(context.Context, string, string) ([]module.Gift, error) {
	return f.gifts, nil
}

type fakeSms struct {
	messages  []module.SmsMessage
	stats     module.SmsStats
	lastLimit int
}

func (f *fakeSms) ListSmsMessages(ctx context.Context, token string, clientID string, limit int) ([]module.SmsMessage, error) {
	f.lastLimit = limit
	return f.messages, nil
}

func (f *fakeSms) SmsStats(context.Context, string, string) (module.SmsStats, error) {
	return f.stats, nil
}

func testDeps(directory *fakeDirectory, hotels *fakeHotels, gifts *fakeGifts, sms *fakeSms) module.Dependencies {
	return module.Dependencies{
		DirectoryClient: directory,
		HotelClient:     hotels,
		GiftClient:      gifts,
		SmsClient:       sms,
		ResolveAccount: func(*http.Request) (module.Account, bool) {
			return module.Account{ID: "u1", OrgID: "org-1", DisplayName: "Ana Souza"}, true
		},
		ResolveToken: func(*http.Request) (string, bool) {
			return "token-1", true
		},
	}
}

func mountHandler(t *testing.T, deps module.Dependencies) http.Handler {
	t.Helper()
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() = %v", err)
	}
	return mount.Handler
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func sampleClient() module.Client {
	return module.Client{
		ID:          "c1",
		OrgID:       "org-1",
		CoupleNames: "Ana & Bruno",
		WeddingDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}
}

func TestListRendersRoster(t *testing.T) {
	t.Parallel()

	directory := &fakeDirectory{clients: []module.Client{sampleClient()}}
	handler := mountHandler(t, testDeps(directory, &fakeHotels{}, &fakeGifts{}, &fakeSms{}))

	rr := get(handler, routepath.ClientsPrefix)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Ana &amp; Bruno") {
		t.Fatalf("expected couple names, got %q", body)
	}
	if !strings.Contains(body, "2026-09-12") {
		t.Fatalf("expected wedding date, got %q", body)
	}
	if !strings.Contains(body, `href="/dashboard/clients/c1/hotels"`) {
		t.Fatalf("expected hotels link, got %q", body)
	}
}

func TestDetailRedirectsToHotels(t *testing.T) {
	t.Parallel()

	directory := &fakeDirectory{clients: []module.Client{sampleClient()}}
	handler := mountHandler(t, testDeps(directory, &fakeHotels{}, &fakeGifts{}, &fakeSms{}))

	rr := get(handler, routepath.Client("c1"))
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/dashboard/clients/c1/hotels" {
		t.Fatalf("Location = %q", got)
	}
}

func TestHotelsPageRendersRoomBlocks(t *testing.T) {
	t.Parallel()

	directory := &fakeDirectory{clients: []module.Client{sampleClient()}}
	hotels := &fakeHotels{blocks: []module.RoomBlock{{
		HotelName:        "Grand Palms",
		RoomCount:        20,
		NightlyRateCents: 18900,
		CutoffDate:       time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Notes:            "ask for Maria",
	}}}
	handler := mountHandler(t, testDeps(directory, hotels, &fakeGifts{}, &fakeSms{}))

	rr := get(handler, routepath.ClientHotels("c1"))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{"Grand Palms", "$189.00", "2026-05-01", "Ana &amp; Bruno"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q, got %q", want, body)
		}
	}
}

func TestHotelsPageUnknownClientIs404(t *testing.T) {
	t.Parallel()

	directory := &fakeDirectory{clients: []module.Client{sampleClient()}}
	handler := mountHandler(t, testDeps(directory, &fakeHotels{}, &fakeGifts{}, &fakeSms{}))

	rr := get(handler, routepath.ClientHotels("missing"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestGiftsPageRendersThankYouStates(t *testing.T) {
	t.Parallel()

	directory := &fakeDirectory{clients: []module.Client{sampleClient()}}
	gifts := &fakeGifts{gifts: []module.Gift{
		{GuestName: "Elena", Description: "Serving bowl", ThankYouSent: true, ReceivedAt: time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC)},
		{GuestName: "Marcos", Description: "Wine set", ReceivedAt: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)},
	}}
	handler := mountHandler(t, testDeps(directory, &fakeHotels{}, gifts, &fakeSms{}))

	rr := get(handler, routepath.ClientGifts("c1"))
	body := rr.Body.String()
	if !strings.Contains(body, "Elena") || !strings.Contains(body, "Pending") {
		t.Fatalf("expected gift rows, got %q", body)
	}
}

func TestSmsPageRendersSkeleton(t *testing.T) {
	t.Parallel()

	directory := &fakeDirectory{clients: []module.Client{sampleClient()}}
	sms := &fakeSms{}
	handler := mountHandler(t, testDeps(directory, &fakeHotels{}, &fakeGifts{}, sms))

	rr := get(handler, routepath.ClientSms("c1"))
	body := rr.Body.String()
	if !strings.Contains(body, `hx-get="/dashboard/clients/c1/sms/fragment"`) {
		t.Fatalf("expected skeleton fragment target, got %q", body)
	}
	if sms.lastLimit != 0 {
		t.Fatalf("shell render called the log, limit = %d", sms.lastLimit)
	}
}

func TestSmsFragmentRendersStatsAndLog(t *testing.T) {
	t.Parallel()

	directory := &fakeDirectory{clients: []module.Client{sampleClient()}}
	sms := &fakeSms{
		stats: module.SmsStats{Total: 3, Sent: 1, Delivered: 1, Failed: 1, DeliveryRate: 0.5},
		messages: []module.SmsMessage{
			{PhoneNumber: "+15550100", Body: "See you soon", Direction: "outbound", Status: "delivered", SentAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
		},
	}
	handler := mountHandler(t, testDeps(directory, &fakeHotels{}, &fakeGifts{}, sms))

	rr := get(handler, routepath.ClientSmsFragment("c1"))
	body := rr.Body.String()
	if !strings.Contains(body, "50%") {
		t.Fatalf("expected delivery rate, got %q", body)
	}
	if !strings.Contains(body, "See you soon") {
		t.Fatalf("expected log entry, got %q", body)
	}
	if sms.lastLimit != smsLogLimit {
		t.Fatalf("limit = %d, want %d", sms.lastLimit, smsLogLimit)
	}
}

func TestUpstreamUnauthorizedRedirectsToLogin(t *testing.T) {
	t.Parallel()

	directory := &fakeDirectory{err: apperrors.EK(apperrors.KindUnauthorized, "error.unauthorized", "session expired")}
	handler := mountHandler(t, testDeps(directory, &fakeHotels{}, &fakeGifts{}, &fakeSms{}))

	rr := get(handler, routepath.ClientsPrefix)
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != routepath.Login {
		t.Fatalf("Location = %q, want %q", got, routepath.Login)
	}
}

func TestUnknownSubpageIs404(t *testing.T) {
	t.Parallel()

	directory := &fakeDirectory{clients: []module.Client{sampleClient()}}
	handler := mountHandler(t, testDeps(directory, &fakeHotels{}, &fakeGifts{}, &fakeSms{}))

	rr := get(handler, routepath.Client("c1")+"/unknown")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
