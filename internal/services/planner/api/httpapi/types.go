package httpapi

import (
	"time"

	"github.com/aislehq/aisle/internal/services/planner/domain"
)

// Wire payloads for the planner JSON API. Timestamps travel as RFC 3339.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string         `json:"token"`
	Session sessionPayload `json:"session"`
	User    userPayload    `json:"user"`
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

type clientPayload struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"org_id"`
	CoupleNames string    `json:"couple_names"`
	WeddingDate time.Time `json:"wedding_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type clientListResponse struct {
	Clients []clientPayload `json:"clients"`
}

type roomBlockPayload struct {
	ID               string    `json:"id"`
	ClientID         string    `json:"client_id"`
	HotelName        string    `json:"hotel_name"`
	RoomCount        int       `json:"room_count"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	CutoffDate       time.Time `json:"cutoff_date"`
	Notes            string    `json:"notes,omitempty"`
}

type roomBlockListResponse struct {
	RoomBlocks []roomBlockPayload `json:"room_blocks"`
}

type giftPayload struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"client_id"`
	GuestName    string    `json:"guest_name"`
	Description  string    `json:"description,omitempty"`
	ThankYouSent bool      `json:"thank_you_sent"`
	ReceivedAt   time.Time `json:"received_at"`
}

type giftListResponse struct {
	Gifts []giftPayload `json:"gifts"`
}

type smsMessagePayload struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
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

func toSessionPayload(session domain.Session) sessionPayload {
	return sessionPayload{
		ID:        session.ID,
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}
}

func toUserPayload(user domain.User) userPayload {
	return userPayload{
		ID:          user.ID,
		OrgID:       user.OrgID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Locale:      user.Locale,
	}
}

func toClientPayload(client domain.Client) clientPayload {
	return clientPayload{
		ID:          client.ID,
		OrgID:       client.OrgID,
		CoupleNames: client.CoupleNames,
		WeddingDate: client.WeddingDate,
		CreatedAt:   client.CreatedAt,
	}
}

func toRoomBlockPayload(block domain.RoomBlock) roomBlockPayload {
	return roomBlockPayload{
		ID:               block.ID,
		ClientID:         block.ClientID,
		HotelName:        block.HotelName,
		RoomCount:        block.RoomCount,
		NightlyRateCents: block.NightlyRateCents,
		CutoffDate:       block.CutoffDate,
		Notes:            block.Notes,
	}
}

func toGiftPayload(gift domain.Gift) giftPayload {
	return giftPayload{
		ID:           gift.ID,
		ClientID:     gift.ClientID,
		GuestName:    gift.GuestName,
		Description:  gift.Description,
		ThankYouSent: gift.ThankYouSent,
		ReceivedAt:   gift.ReceivedAt,
	}
}

func toSmsMessagePayload(message domain.SmsMessage) smsMessagePayload {
	return smsMessagePayload{
		ID:          message.ID,
		ClientID:    message.ClientID,
		PhoneNumber: message.PhoneNumber,
		Body:        message.Body,
		Direction:   string(message.Direction),
		Status:      string(message.Status),
		SentAt:      message.SentAt,
	}
}

func toSmsStatsPayload(stats domain.SmsStats) smsStatsPayload {
	return smsStatsPayload{
		Total:        stats.Total,
		Sent:         stats.Sent,
		Delivered:    stats.Delivered,
		Failed:       stats.Failed,
		DeliveryRate: stats.DeliveryRate,
	}
}
