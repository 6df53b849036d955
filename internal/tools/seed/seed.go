// Package seed loads demo fixtures into a planner database for local
// development.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aislehq/aisle/internal/platform/id"
	"github.com/aislehq/aisle/internal/services/planner/domain"
	"github.com/aislehq/aisle/internal/services/planner/storage"
	plannersqlite "github.com/aislehq/aisle/internal/services/planner/storage/sqlite"
)

// Config controls where fixtures are written and which planner account owns
// them.
type Config struct {
	DBPath   string
	Email    string
	Password string
	Verbose  bool
}

// DefaultConfig returns the local-development defaults.
func DefaultConfig() Config {
	return Config{
		DBPath:   "data/planner.db",
		Email:    "ana@example.com",
		Password: "aisle-demo",
	}
}

// Run opens the planner database and writes the demo fixtures. Running twice
// against the same database fails rather than duplicating records.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return errors.New("database path is required")
	}
	if strings.TrimSpace(cfg.Email) == "" {
		return errors.New("planner email is required")
	}
	if strings.TrimSpace(cfg.Password) == "" {
		return errors.New("planner password is required")
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir %s: %w", dir, err)
		}
	}
	store, err := plannersqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open planner store: %w", err)
	}
	defer func() { _ = store.Close() }()

	return Seed(ctx, store, cfg, out)
}

// Seed writes the demo org, planner account, clients, and per-client records
// into the provided store.
func Seed(ctx context.Context, store storage.Store, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	if _, err := store.GetUserByEmail(ctx, cfg.Email); err == nil {
		return fmt.Errorf("planner %s already exists; point the seeder at a fresh database", cfg.Email)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("check existing planner: %w", err)
	}

	now := time.Now().UTC()

	orgID, err := id.NewID()
	if err != nil {
		return err
	}
	org := domain.Org{ID: orgID, Name: "Willow & Wren Events", CreatedAt: now}
	if err := store.PutOrg(ctx, org); err != nil {
		return fmt.Errorf("seed org: %w", err)
	}

	hash, err := domain.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("hash planner password: %w", err)
	}
	userID, err := id.NewID()
	if err != nil {
		return err
	}
	user := domain.User{
		ID:           userID,
		OrgID:        orgID,
		Email:        cfg.Email,
		DisplayName:  "Ana Souza",
		PasswordHash: hash,
		Locale:       "pt-BR",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := store.PutUser(ctx, user); err != nil {
		return fmt.Errorf("seed planner account: %w", err)
	}
	fmt.Fprintf(out, "planner %s (org %s)\n", user.Email, org.Name)

	for _, fixture := range demoClients(now) {
		clientID, err := id.NewID()
		if err != nil {
			return err
		}
		client := fixture.client
		client.ID = clientID
		client.OrgID = orgID
		client.CreatedAt = now
		client.UpdatedAt = now
		if err := store.PutClient(ctx, client); err != nil {
			return fmt.Errorf("seed client %s: %w", client.CoupleNames, err)
		}

		for _, block := range fixture.roomBlocks {
			blockID, err := id.NewID()
			if err != nil {
				return err
			}
			block.ID = blockID
			block.ClientID = clientID
			block.CreatedAt = now
			block.UpdatedAt = now
			if err := store.PutRoomBlock(ctx, block); err != nil {
				return fmt.Errorf("seed room block %s: %w", block.HotelName, err)
			}
		}
		for _, gift := range fixture.gifts {
			giftID, err := id.NewID()
			if err != nil {
				return err
			}
			gift.ID = giftID
			gift.ClientID = clientID
			gift.CreatedAt = now
			if err := store.PutGift(ctx, gift); err != nil {
				return fmt.Errorf("seed gift from %s: %w", gift.GuestName, err)
			}
		}
		for _, message := range fixture.smsMessages {
			messageID, err := id.NewID()
			if err != nil {
				return err
			}
			message.ID = messageID
			message.ClientID = clientID
			message.CreatedAt = now
			if err := store.PutSmsMessage(ctx, message); err != nil {
				return fmt.Errorf("seed sms message to %s: %w", message.PhoneNumber, err)
			}
		}

		if cfg.Verbose {
			fmt.Fprintf(out, "  client %s: %d room blocks, %d gifts, %d sms messages\n",
				client.CoupleNames, len(fixture.roomBlocks), len(fixture.gifts), len(fixture.smsMessages))
		} else {
			fmt.Fprintf(out, "  client %s\n", client.CoupleNames)
		}
	}

	fmt.Fprintf(out, "sign in with %s / %s\n", cfg.Email, cfg.Password)
	return nil
}

type clientFixture struct {
	client      domain.Client
	roomBlocks  []domain.RoomBlock
	gifts       []domain.Gift
	smsMessages []domain.SmsMessage
}

func demoClients(now time.Time) []clientFixture {
	return []clientFixture{
		{
			client: domain.Client{
				CoupleNames: "Maya & Collins",
				WeddingDate: date(now, 4, 12),
			},
			roomBlocks: []domain.RoomBlock{
				{
					HotelName:        "The Grand Atlantic",
					RoomCount:        20,
					NightlyRateCents: 18900,
					CutoffDate:       date(now, 3, 12),
					Notes:            "Ocean-view wing, shuttle included",
				},
				{
					HotelName:        "Harbor House Inn",
					RoomCount:        8,
					NightlyRateCents: 12500,
					CutoffDate:       date(now, 3, 1),
				},
			},
			gifts: []domain.Gift{
				{GuestName: "The Parkers", Description: "Cast iron dutch oven", ThankYouSent: true, ReceivedAt: now.AddDate(0, 0, -12)},
				{GuestName: "June Okafor", Description: "Crystal vase", ReceivedAt: now.AddDate(0, 0, -5)},
			},
			smsMessages: []domain.SmsMessage{
				{PhoneNumber: "+15550100", Body: "Reminder: room block at The Grand Atlantic closes soon!", Direction: domain.SmsDirectionOutbound, Status: domain.SmsStatusDelivered, SentAt: now.AddDate(0, 0, -7)},
				{PhoneNumber: "+15550101", Body: "Booked! Thanks for the heads up.", Direction: domain.SmsDirectionInbound, Status: domain.SmsStatusDelivered, SentAt: now.AddDate(0, 0, -6)},
				{PhoneNumber: "+15550102", Body: "Shuttle schedule attached.", Direction: domain.SmsDirectionOutbound, Status: domain.SmsStatusFailed, SentAt: now.AddDate(0, 0, -2)},
			},
		},
		{
			client: domain.Client{
				CoupleNames: "Priya & Tom",
				WeddingDate: date(now, 7, 3),
			},
			roomBlocks: []domain.RoomBlock{
				{
					HotelName:        "Juniper Lodge",
					RoomCount:        15,
					NightlyRateCents: 15900,
					CutoffDate:       date(now, 6, 1),
					Notes:            "Mountain-side rooms, late checkout",
				},
			},
			gifts: []domain.Gift{
				{GuestName: "Sam Whitfield", Description: "Espresso machine", ReceivedAt: now.AddDate(0, 0, -3)},
			},
			smsMessages: []domain.SmsMessage{
				{PhoneNumber: "+15550110", Body: "Save the date: welcome dinner Friday 6pm.", Direction: domain.SmsDirectionOutbound, Status: domain.SmsStatusSent, SentAt: now.AddDate(0, 0, -1)},
			},
		},
		{
			client: domain.Client{
				CoupleNames: "Dana & Alex",
				WeddingDate: date(now, 10, 24),
			},
		},
	}
}

func date(now time.Time, monthsAhead int, day int) time.Time {
	base := now.AddDate(0, monthsAhead, 0)
	return time.Date(base.Year(), base.Month(), day, 0, 0, 0, 0, time.UTC)
}
