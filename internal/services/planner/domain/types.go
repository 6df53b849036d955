package domain

import "time"

// Org is a planning agency. Every planner account and client belongs to
// exactly one org.
type Org struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// User is a planner account within an org.
type User struct {
	ID           string
	OrgID        string
	Email        string
	DisplayName  string
	PasswordHash string
	Locale       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Client is a tenant-scoped wedding engagement managed by an org.
type Client struct {
	ID          string
	OrgID       string
	CoupleNames string
	WeddingDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RoomBlock reserves a set of hotel rooms for a client's guests.
type RoomBlock struct {
	ID               string
	ClientID         string
	HotelName        string
	RoomCount        int
	NightlyRateCents int64
	CutoffDate       time.Time
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Gift records a guest gift received by a client.
type Gift struct {
	ID           string
	ClientID     string
	GuestName    string
	Description  string
	ThankYouSent bool
	ReceivedAt   time.Time
	CreatedAt    time.Time
}

// SmsDirection distinguishes messages sent to guests from replies.
type SmsDirection string

const (
	SmsDirectionOutbound SmsDirection = "outbound"
	SmsDirectionInbound  SmsDirection = "inbound"
)

// SmsStatus tracks the delivery lifecycle of a message.
type SmsStatus string

const (
	SmsStatusQueued    SmsStatus = "queued"
	SmsStatusSent      SmsStatus = "sent"
	SmsStatusDelivered SmsStatus = "delivered"
	SmsStatusFailed    SmsStatus = "failed"
)

// SmsMessage is one entry in a client's SMS communication log.
type SmsMessage struct {
	ID          string
	ClientID    string
	PhoneNumber string
	Body        string
	Direction   SmsDirection
	Status      SmsStatus
	SentAt      time.Time
	CreatedAt   time.Time
}

// Session is a server-side login session for a planner account.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
