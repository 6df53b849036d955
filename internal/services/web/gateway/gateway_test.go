package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "github.com/aislehq/aisle/internal/services/web/platform/errors"
)

func newFakePlanner(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	requireBearer := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer token-1" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "session token is invalid"})
			return false
		}
		return true
	}

	mux.HandleFunc(http.MethodPost+" /v1/sessions", func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Email != "ana@example.com" || req.Password != "correct-horse-battery" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(loginResponse{
			Token:   "token-1",
			Session: sessionPayload{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)},
			User:    userPayload{ID: "u1", OrgID: "org-1", Email: "ana@example.com", DisplayName: "Ana Souza"},
		})
	})
	mux.HandleFunc(http.MethodGet+" /v1/sessions/current", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode(sessionPayload{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)})
	})
	mux.HandleFunc(http.MethodDelete+" /v1/sessions/current", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc(http.MethodGet+" /v1/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode(userPayload{ID: r.PathValue("id"), OrgID: "org-1", Email: "ana@example.com", DisplayName: "Ana Souza"})
	})
	mux.HandleFunc(http.MethodGet+" /v1/orgs/{orgID}/clients", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode(clientListResponse{Clients: []clientPayload{
			{ID: "c1", OrgID: r.PathValue("orgID"), CoupleNames: "Ana & Bruno"},
			{ID: "c2", OrgID: r.PathValue("orgID"), CoupleNames: "Carla & Davi"},
		}})
	})
	mux.HandleFunc(http.MethodGet+" /v1/clients/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		if r.PathValue("id") != "c1" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
			return
		}
		_ = json.NewEncoder(w).Encode(clientPayload{ID: "c1", OrgID: "org-1", CoupleNames: "Ana & Bruno"})
	})
	mux.HandleFunc(http.MethodGet+" /v1/clients/{id}/roomblocks", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode(roomBlockListResponse{RoomBlocks: []roomBlockPayload{
			{ID: "rb1", HotelName: "Grand Palms", RoomCount: 20, NightlyRateCents: 18900},
		}})
	})
	mux.HandleFunc(http.MethodGet+" /v1/clients/{id}/gifts", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode(giftListResponse{Gifts: []giftPayload{
			{ID: "g1", GuestName: "Elena", Description: "Serving bowl", ThankYouSent: true},
		}})
	})
	mux.HandleFunc(http.MethodGet+" /v1/clients/{id}/sms", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		messages := []smsMessagePayload{
			{ID: "m1", Direction: "outbound", Status: "delivered"},
			{ID: "m2", Direction: "outbound", Status: "failed"},
		}
		if r.URL.Query().Get("limit") == "1" {
			messages = messages[:1]
		}
		_ = json.NewEncoder(w).Encode(smsListResponse{Messages: messages})
	})
	mux.HandleFunc(http.MethodGet+" /v1/clients/{id}/sms/stats", func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode(smsStatsPayload{Total: 2, Delivered: 1, Failed: 1, DeliveryRate: 0.5})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	server := newFakePlanner(t)
	client, err := New(server.URL)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return client
}

func TestNewRequiresBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := New("   "); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestCreateSession(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	result, err := client.CreateSession(t.Context(), "ana@example.com", "correct-horse-battery")
	if err != nil {
		t.Fatalf("CreateSession() = %v", err)
	}
	if result.Token != "token-1" {
		t.Fatalf("token = %q, want %q", result.Token, "token-1")
	}
	if result.Account.OrgID != "org-1" {
		t.Fatalf("org = %q, want %q", result.Account.OrgID, "org-1")
	}
}

func TestCreateSessionInvalidCredentials(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	_, err := client.CreateSession(t.Context(), "ana@example.com", "wrong")
	if apperrors.KindOf(err) != apperrors.KindUnauthorized {
		t.Fatalf("kind = %v, want unauthorized", apperrors.KindOf(err))
	}
}

func TestGetCurrentSessionRejectsBadToken(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	_, err := client.GetCurrentSession(t.Context(), "bogus")
	if apperrors.KindOf(err) != apperrors.KindUnauthorized {
		t.Fatalf("kind = %v, want unauthorized", apperrors.KindOf(err))
	}
}

func TestListClients(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	clients, err := client.ListClients(t.Context(), "token-1", "org-1")
	if err != nil {
		t.Fatalf("ListClients() = %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("clients = %d, want 2", len(clients))
	}
	if clients[0].CoupleNames != "Ana & Bruno" {
		t.Fatalf("couple = %q", clients[0].CoupleNames)
	}
}

func TestGetClientNotFound(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	_, err := client.GetClient(t.Context(), "token-1", "missing")
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Fatalf("kind = %v, want not_found", apperrors.KindOf(err))
	}
}

func TestListSmsMessagesHonorsLimit(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	messages, err := client.ListSmsMessages(t.Context(), "token-1", "c1", 1)
	if err != nil {
		t.Fatalf("ListSmsMessages() = %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(messages))
	}
}

func TestSmsStats(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	stats, err := client.SmsStats(t.Context(), "token-1", "c1")
	if err != nil {
		t.Fatalf("SmsStats() = %v", err)
	}
	if stats.Total != 2 || stats.DeliveryRate != 0.5 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestSubresourceFlows(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	blocks, err := client.ListRoomBlocks(t.Context(), "token-1", "c1")
	if err != nil {
		t.Fatalf("ListRoomBlocks() = %v", err)
	}
	if len(blocks) != 1 || blocks[0].HotelName != "Grand Palms" {
		t.Fatalf("blocks = %+v", blocks)
	}

	gifts, err := client.ListGifts(t.Context(), "token-1", "c1")
	if err != nil {
		t.Fatalf("ListGifts() = %v", err)
	}
	if len(gifts) != 1 || !gifts[0].ThankYouSent {
		t.Fatalf("gifts = %+v", gifts)
	}

	if err := client.RevokeSession(t.Context(), "token-1"); err != nil {
		t.Fatalf("RevokeSession() = %v", err)
	}
}

func TestUnavailableUpstream(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client, err := New(server.URL)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	_, err = client.GetCurrentSession(t.Context(), "token-1")
	if apperrors.KindOf(err) != apperrors.KindUnavailable {
		t.Fatalf("kind = %v, want unavailable", apperrors.KindOf(err))
	}
	if !strings.Contains(err.Error(), http.StatusText(http.StatusBadGateway)) {
		t.Fatalf("message = %q", err.Error())
	}
}
