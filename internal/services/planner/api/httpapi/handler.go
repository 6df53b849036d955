// Package httpapi exposes the planner service as a JSON HTTP API.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/cors"

	"github.com/aislehq/aisle/internal/services/planner/domain"
	"github.com/aislehq/aisle/internal/services/planner/storage"
)

// Handler serves the planner JSON API.
type Handler struct {
	service *domain.Service
	metrics *Metrics
}

// New wires the planner API routes, middleware, and scrape endpoint into
// one http.Handler.
func New(service *domain.Service) http.Handler {
	handler := &Handler{service: service, metrics: NewMetrics()}

	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodPost+" /v1/sessions", handler.handleLogin)
	mux.HandleFunc(http.MethodGet+" /v1/sessions/current", handler.requireSession(handler.handleCurrentSession))
	mux.HandleFunc(http.MethodDelete+" /v1/sessions/current", handler.handleLogout)
	mux.HandleFunc(http.MethodGet+" /v1/users/{id}", handler.requireSession(handler.handleGetUser))
	mux.HandleFunc(http.MethodGet+" /v1/orgs/{orgID}/clients", handler.requireSession(handler.handleListClients))
	mux.HandleFunc(http.MethodGet+" /v1/clients/{id}", handler.requireSession(handler.handleGetClient))
	mux.HandleFunc(http.MethodGet+" /v1/clients/{id}/roomblocks", handler.requireSession(handler.handleListRoomBlocks))
	mux.HandleFunc(http.MethodGet+" /v1/clients/{id}/gifts", handler.requireSession(handler.handleListGifts))
	mux.HandleFunc(http.MethodGet+" /v1/clients/{id}/sms", handler.requireSession(handler.handleListSms))
	mux.HandleFunc(http.MethodGet+" /v1/clients/{id}/sms/stats", handler.requireSession(handler.handleSmsStats))
	mux.Handle(http.MethodGet+" /metrics", handler.metrics.Handler())
	mux.HandleFunc(http.MethodGet+" /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", requestIDHeader},
		MaxAge:         86400,
	})

	var root http.Handler = mux
	root = withObservability(handler.metrics, root)
	root = withRequestID(root)
	root = withRecovery(root)
	return corsHandler.Handler(root)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	session, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	user, err := h.service.GetUser(r.Context(), session.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		Token:   token,
		Session: toSessionPayload(session),
		User:    toUserPayload(user),
	})
}

func (h *Handler) handleCurrentSession(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing session"})
		return
	}
	writeJSON(w, http.StatusOK, toSessionPayload(session))
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), bearerToken(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFromContext(r.Context())
	userID := r.PathValue("id")
	// Accounts can only read themselves; there is no cross-account surface.
	if userID != session.UserID {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
		return
	}
	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserPayload(user))
}

func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	caller, err := h.callerUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	orgID := r.PathValue("orgID")
	if orgID != caller.OrgID {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
		return
	}
	clients, err := h.service.ListClients(r.Context(), orgID)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := clientListResponse{Clients: make([]clientPayload, 0, len(clients))}
	for _, client := range clients {
		resp.Clients = append(resp.Clients, toClientPayload(client))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.tenantClient(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toClientPayload(client))
}

func (h *Handler) handleListRoomBlocks(w http.ResponseWriter, r *http.Request) {
	client, err := h.tenantClient(r)
	if err != nil {
		writeError(w, err)
		return
	}
	blocks, err := h.service.ListRoomBlocks(r.Context(), client.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := roomBlockListResponse{RoomBlocks: make([]roomBlockPayload, 0, len(blocks))}
	for _, block := range blocks {
		resp.RoomBlocks = append(resp.RoomBlocks, toRoomBlockPayload(block))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListGifts(w http.ResponseWriter, r *http.Request) {
	client, err := h.tenantClient(r)
	if err != nil {
		writeError(w, err)
		return
	}
	gifts, err := h.service.ListGifts(r.Context(), client.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := giftListResponse{Gifts: make([]giftPayload, 0, len(gifts))}
	for _, gift := range gifts {
		resp.Gifts = append(resp.Gifts, toGiftPayload(gift))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListSms(w http.ResponseWriter, r *http.Request) {
	client, err := h.tenantClient(r)
	if err != nil {
		writeError(w, err)
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be an integer"})
			return
		}
		limit = parsed
	}
	messages, err := h.service.ListSmsMessages(r.Context(), client.ID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := smsListResponse{Messages: make([]smsMessagePayload, 0, len(messages))}
	for _, message := range messages {
		resp.Messages = append(resp.Messages, toSmsMessagePayload(message))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSmsStats(w http.ResponseWriter, r *http.Request) {
	client, err := h.tenantClient(r)
	if err != nil {
		writeError(w, err)
		return
	}
	stats, err := h.service.SmsStats(r.Context(), client.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSmsStatsPayload(stats))
}

// callerUser resolves the account behind the authenticated session.
func (h *Handler) callerUser(r *http.Request) (domain.User, error) {
	session, _ := sessionFromContext(r.Context())
	return h.service.GetUser(r.Context(), session.UserID)
}

// tenantClient loads the client addressed by the route and confirms it
// belongs to the caller's org. Cross-tenant reads report not found so that
// client IDs cannot be probed across orgs.
func (h *Handler) tenantClient(r *http.Request) (domain.Client, error) {
	caller, err := h.callerUser(r)
	if err != nil {
		return domain.Client{}, err
	}
	client, err := h.service.GetClient(r.Context(), r.PathValue("id"))
	if err != nil {
		return domain.Client{}, err
	}
	if client.OrgID != caller.OrgID {
		return domain.Client{}, storage.ErrNotFound
	}
	return client, nil
}
