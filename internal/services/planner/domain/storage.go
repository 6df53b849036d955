package domain

import (
	"context"
	"errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// UserStore persists planner accounts.
type UserStore interface {
	PutUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, id string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
}

// OrgStore persists planning organizations.
type OrgStore interface {
	PutOrg(ctx context.Context, org Org) error
	GetOrg(ctx context.Context, id string) (Org, error)
}

// SessionStore persists login sessions.
type SessionStore interface {
	PutSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, id string) (Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// ClientStore persists client (tenant) records.
type ClientStore interface {
	PutClient(ctx context.Context, client Client) error
	GetClient(ctx context.Context, id string) (Client, error)
	ListClientsByOrg(ctx context.Context, orgID string) ([]Client, error)
}

// RoomBlockStore persists hotel room blocks.
type RoomBlockStore interface {
	PutRoomBlock(ctx context.Context, block RoomBlock) error
	ListRoomBlocksByClient(ctx context.Context, clientID string) ([]RoomBlock, error)
}

// GiftStore persists guest gift records.
type GiftStore interface {
	PutGift(ctx context.Context, gift Gift) error
	ListGiftsByClient(ctx context.Context, clientID string) ([]Gift, error)
}

// SmsStore persists SMS communication logs.
type SmsStore interface {
	PutSmsMessage(ctx context.Context, message SmsMessage) error
	ListSmsMessagesByClient(ctx context.Context, clientID string, limit int) ([]SmsMessage, error)
}

// Store is a composite interface for planner storage concerns.
type Store interface {
	OrgStore
	UserStore
	SessionStore
	ClientStore
	RoomBlockStore
	GiftStore
	SmsStore
	Close() error
}
