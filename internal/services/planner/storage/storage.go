package storage

import (
	"github.com/aislehq/aisle/internal/services/planner/domain"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = domain.ErrNotFound

// UserStore persists planner accounts.
type UserStore = domain.UserStore

// OrgStore persists planning organizations.
type OrgStore = domain.OrgStore

// SessionStore persists login sessions.
type SessionStore = domain.SessionStore

// ClientStore persists client (tenant) records.
type ClientStore = domain.ClientStore

// RoomBlockStore persists hotel room blocks.
type RoomBlockStore = domain.RoomBlockStore

// GiftStore persists guest gift records.
type GiftStore = domain.GiftStore

// SmsStore persists SMS communication logs.
type SmsStore = domain.SmsStore

// Store is a composite interface for planner storage concerns.
type Store = domain.Store
