// Package gateway implements the planner API clients consumed by dashboard
// modules. Every call is a JSON round trip against the planner service and
// upstream failures surface as typed application errors.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aislehq/aisle/internal/platform/timeouts"
	module "github.com/aislehq/aisle/internal/services/web/module"
	apperrors "github.com/aislehq/aisle/internal/services/web/platform/errors"
)

// Client talks to the planner JSON API. It implements every module client
// interface so modules can share one gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a gateway client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// New builds a gateway client for the planner base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("planner base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse planner base URL: %w", err)
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeouts.APIRequest},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Wire payloads mirror the planner API responses.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionPayload struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type userPayload struct {
	ID          string `json:"id"`
	OrgID       string `json:"org_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Locale      string `json:"locale"`
}

type loginResponse struct {
	Token   string         `json:"token"`
	Session sessionPayload `json:"session"`
	User    userPayload    `json:"user"`
}

type clientPayload struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"org_id"`
	CoupleNames string    `json:"couple_names"`
	WeddingDate time.Time `json:"wedding_date"`
}

type clientListResponse struct {
	Clients []clientPayload `json:"clients"`
}

type roomBlockPayload struct {
	ID               string    `json:"id"`
	HotelName        string    `json:"hotel_name"`
	RoomCount        int       `json:"room_count"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	CutoffDate       time.Time `json:"cutoff_date"`
	Notes            string    `json:"notes"`
}

type roomBlockListResponse struct {
	RoomBlocks []roomBlockPayload `json:"room_blocks"`
}

type giftPayload struct {
	ID           string    `json:"id"`
	GuestName    string    `json:"guest_name"`
	Description  string    `json:"description"`
	ThankYouSent bool      `json:"thank_you_sent"`
	ReceivedAt   time.Time `json:"received_at"`
}

type giftListResponse struct {
	Gifts []giftPayload `json:"gifts"`
}

type smsMessagePayload struct {
	ID          string    `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Body        string    `json:"body"`
	Direction   string    `json:"direction"`
	Status      string    `json:"status"`
	SentAt      time.Time `json:"sent_at"`
}

type smsListResponse struct {
	Messages []smsMessagePayload `json:"messages"`
}

type smsStatsPayload struct {
	Total        int     `json:"total"`
	Sent         int     `json:"sent"`
	Delivered    int     `json:"delivered"`
	Failed       int     `json:"failed"`
	DeliveryRate float64 `json:"delivery_rate"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// CreateSession exchanges credentials for a session token.
func (c *Client) CreateSession(ctx context.Context, email string, password string) (module.LoginResult, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return module.LoginResult{}, fmt.Errorf("encode login request: %w", err)
	}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/v1/sessions", "", bytes.NewReader(body), &resp); err != nil {
		return module.LoginResult{}, err
	}
	return module.LoginResult{
		Token:   resp.Token,
		Session: toSession(resp.Session),
		Account: toAccount(resp.User),
	}, nil
}

// GetCurrentSession resolves the session behind a token.
func (c *Client) GetCurrentSession(ctx context.Context, token string) (module.Session, error) {
	var resp sessionPayload
	if err := c.do(ctx, http.MethodGet, "/v1/sessions/current", token, nil, &resp); err != nil {
		return module.Session{}, err
	}
	return toSession(resp), nil
}

// RevokeSession deletes the session behind a token.
func (c *Client) RevokeSession(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/v1/sessions/current", token, nil, nil)
}

// GetAccount reads the planner account for a user ID.
func (c *Client) GetAccount(ctx context.Context, token string, userID string) (module.Account, error) {
	var resp userPayload
	if err := c.do(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(userID), token, nil, &resp); err != nil {
		return module.Account{}, err
	}
	return toAccount(resp), nil
}

// ListClients reads the org's client roster.
func (c *Client) ListClients(ctx context.Context, token string, orgID string) ([]module.Client, error) {
	var resp clientListResponse
	if err := c.do(ctx, http.MethodGet, "/v1/orgs/"+url.PathEscape(orgID)+"/clients", token, nil, &resp); err != nil {
		return nil, err
	}
	clients := make([]module.Client, 0, len(resp.Clients))
	for _, entry := range resp.Clients {
		clients = append(clients, module.Client{
			ID:          entry.ID,
			OrgID:       entry.OrgID,
			CoupleNames: entry.CoupleNames,
			WeddingDate: entry.WeddingDate,
		})
	}
	return clients, nil
}

// GetClient reads one client.
func (c *Client) GetClient(ctx context.Context, token string, clientID string) (module.Client, error) {
	var resp clientPayload
	if err := c.do(ctx, http.MethodGet, "/v1/clients/"+url.PathEscape(clientID), token, nil, &resp); err != nil {
		return module.Client{}, err
	}
	return module.Client{
		ID:          resp.ID,
		OrgID:       resp.OrgID,
		CoupleNames: resp.CoupleNames,
		WeddingDate: resp.WeddingDate,
	}, nil
}

// ListRoomBlocks reads a client's hotel room blocks.
func (c *Client) ListRoomBlocks(ctx context.Context, token string, clientID string) ([]module.RoomBlock, error) {
	var resp roomBlockListResponse
	if err := c.do(ctx, http.MethodGet, "/v1/clients/"+url.PathEscape(clientID)+"/roomblocks", token, nil, &resp); err != nil {
		return nil, err
	}
	blocks := make([]module.RoomBlock, 0, len(resp.RoomBlocks))
	for _, entry := range resp.RoomBlocks {
		blocks = append(blocks, module.RoomBlock{
			ID:               entry.ID,
			HotelName:        entry.HotelName,
			RoomCount:        entry.RoomCount,
			NightlyRateCents: entry.NightlyRateCents,
			CutoffDate:       entry.CutoffDate,
			Notes:            entry.Notes,
		})
	}
	return blocks, nil
}

// ListGifts reads a client's recorded gifts.
func (c *Client) ListGifts(ctx context.Context, token string, clientID string) ([]module.Gift, error) {
	var resp giftListResponse
	if err := c.do(ctx, http.MethodGet, "/v1/clients/"+url.PathEscape(clientID)+"/gifts", token, nil, &resp); err != nil {
		return nil, err
	}
	gifts := make([]module.Gift, 0, len(resp.Gifts))
	for _, entry := range resp.Gifts {
		gifts = append(gifts, module.Gift{
			ID:           entry.ID,
			GuestName:    entry.GuestName,
			Description:  entry.Description,
			ThankYouSent: entry.ThankYouSent,
			ReceivedAt:   entry.ReceivedAt,
		})
	}
	return gifts, nil
}

// ListSmsMessages reads a client's SMS log. limit caps the page size when
// positive.
func (c *Client) ListSmsMessages(ctx context.Context, token string, clientID string, limit int) ([]module.SmsMessage, error) {
	path := "/v1/clients/" + url.PathEscape(clientID) + "/sms"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var resp smsListResponse
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}
	messages := make([]module.SmsMessage, 0, len(resp.Messages))
	for _, entry := range resp.Messages {
		messages = append(messages, module.SmsMessage{
			ID:          entry.ID,
			PhoneNumber: entry.PhoneNumber,
			Body:        entry.Body,
			Direction:   entry.Direction,
			Status:      entry.Status,
			SentAt:      entry.SentAt,
		})
	}
	return messages, nil
}

// SmsStats reads a client's SMS aggregates.
func (c *Client) SmsStats(ctx context.Context, token string, clientID string) (module.SmsStats, error) {
	var resp smsStatsPayload
	if err := c.do(ctx, http.MethodGet, "/v1/clients/"+url.PathEscape(clientID)+"/sms/stats", token, nil, &resp); err != nil {
		return module.SmsStats{}, err
	}
	return module.SmsStats{
		Total:        resp.Total,
		Sent:         resp.Sent,
		Delivered:    resp.Delivered,
		Failed:       resp.Failed,
		DeliveryRate: resp.DeliveryRate,
	}, nil
}

func (c *Client) do(ctx context.Context, method string, path string, token string, body io.Reader, out any) error {
	if c == nil || c.httpClient == nil {
		return apperrors.E(apperrors.KindUnavailable, "planner gateway is not configured")
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build planner request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.EK(apperrors.KindUnavailable, "error.unavailable", fmt.Sprintf("planner request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return upstreamError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.EK(apperrors.KindUnavailable, "error.unavailable", fmt.Sprintf("decode planner response: %v", err))
	}
	return nil
}

func upstreamError(resp *http.Response) error {
	kind := apperrors.KindFromHTTPStatus(resp.StatusCode)
	message := http.StatusText(resp.StatusCode)
	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&payload); err == nil {
		if trimmed := strings.TrimSpace(payload.Error); trimmed != "" {
			message = trimmed
		}
	}
	return apperrors.EK(kind, localizationKeyForKind(kind), message)
}

func localizationKeyForKind(kind apperrors.Kind) string {
	switch kind {
	case apperrors.KindUnauthorized:
		return "error.unauthorized"
	case apperrors.KindForbidden:
		return "error.forbidden"
	case apperrors.KindNotFound:
		return "error.not_found"
	case apperrors.KindUnavailable:
		return "error.unavailable"
	case apperrors.KindInvalidInput:
		return "error.invalid_input"
	default:
		return ""
	}
}

func toSession(payload sessionPayload) module.Session {
	return module.Session{
		ID:        payload.ID,
		UserID:    payload.UserID,
		ExpiresAt: payload.ExpiresAt,
	}
}

func toAccount(payload userPayload) module.Account {
	return module.Account{
		ID:          payload.ID,
		OrgID:       payload.OrgID,
		Email:       payload.Email,
		DisplayName: payload.DisplayName,
		Locale:      payload.Locale,
	}
}

// Compile-time checks that the gateway satisfies every module client seam.
var (
	_ module.SessionClient   = (*Client)(nil)
	_ module.AccountClient   = (*Client)(nil)
	_ module.DirectoryClient = (*Client)(nil)
	_ module.HotelClient     = (*Client)(nil)
	_ module.GiftClient      = (*Client)(nil)
	_ module.SmsClient       = (*Client)(nil)
)
