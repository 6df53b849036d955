// Package module defines the composition contracts shared by web dashboard
// modules.
package module

import (
	"context"
	"net/http"
	"time"
)

// Session is the resolved login session behind a dashboard request.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}

// Account is the planner account rendering a dashboard.
type Account struct {
	ID          string
	OrgID       string
	Email       string
	DisplayName string
	Locale      string
}

// Client is one wedding engagement visible to the account's org.
type Client struct {
	ID          string
	OrgID       string
	CoupleNames string
	WeddingDate time.Time
}

// RoomBlock is a reserved set of hotel rooms for a client.
type RoomBlock struct {
	ID               string
	HotelName        string
	RoomCount        int
	NightlyRateCents int64
	CutoffDate       time.Time
	Notes            string
}

// Gift is one guest gift recorded for a client.
type Gift struct {
	ID           string
	GuestName    string
	Description  string
	ThankYouSent bool
	ReceivedAt   time.Time
}

// SmsMessage is one entry of a client's SMS log.
type SmsMessage struct {
	ID          string
	PhoneNumber string
	Body        string
	Direction   string
	Status      string
	SentAt      time.Time
}

// SmsStats aggregates a client's SMS log for the stat cards.
type SmsStats struct {
	Total        int
	Sent         int
	Delivered    int
	Failed       int
	DeliveryRate float64
}

// LoginResult carries the outcome of a successful credential exchange.
type LoginResult struct {
	Token   string
	Session Session
	Account Account
}

// SessionClient exchanges credentials and resolves session tokens against
// the planner service.
type SessionClient interface {
	CreateSession(ctx context.Context, email string, password string) (LoginResult, error)
	GetCurrentSession(ctx context.Context, token string) (Session, error)
	RevokeSession(ctx context.Context, token string) error
}

// AccountClient reads planner accounts.
type AccountClient interface {
	GetAccount(ctx context.Context, token string, userID string) (Account, error)
}

// DirectoryClient reads the org's client roster.
type DirectoryClient interface {
	ListClients(ctx context.Context, token string, orgID string) ([]Client, error)
	GetClient(ctx context.Context, token string, clientID string) (Client, error)
}

// HotelClient reads a client's hotel room blocks.
type HotelClient interface {
	ListRoomBlocks(ctx context.Context, token string, clientID string) ([]RoomBlock, error)
}

// GiftClient reads a client's guest gifts.
type GiftClient interface {
	ListGifts(ctx context.Context, token string, clientID string) ([]Gift, error)
}

// SmsClient reads a client's SMS log and aggregates.
type SmsClient interface {
	ListSmsMessages(ctx context.Context, token string, clientID string, limit int) ([]SmsMessage, error)
	SmsStats(ctx context.Context, token string, clientID string) (SmsStats, error)
}

// Viewer carries the identity rendered in the app shell.
type Viewer struct {
	DisplayName string
	Email       string
}

// ResolveViewer resolves the request viewer for shell rendering.
type ResolveViewer func(*http.Request) Viewer

// ResolveAccount resolves the authenticated account for a request. The bool
// reports whether a live session backed the request.
type ResolveAccount func(*http.Request) (Account, bool)

// ResolveToken returns the raw session token carried by the request cookie.
type ResolveToken func(*http.Request) (string, bool)

// ResolveLanguage resolves the preferred language for a request.
type ResolveLanguage func(*http.Request) string

// Dependencies carries shared clients and resolution seams into module mounts.
type Dependencies struct {
	SessionClient   SessionClient
	AccountClient   AccountClient
	DirectoryClient DirectoryClient
	HotelClient     HotelClient
	GiftClient      GiftClient
	SmsClient       SmsClient

	ResolveViewer   ResolveViewer
	ResolveAccount  ResolveAccount
	ResolveToken    ResolveToken
	ResolveLanguage ResolveLanguage
}

// Mount describes where a module attaches to the root mux.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is one mountable dashboard feature area.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
