package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aislehq/aisle/internal/platform/id"
)

// sessionTTL bounds how long a login session stays valid.
const sessionTTL = 24 * time.Hour

// defaultSmsPageSize caps SMS log reads when the caller does not ask for a limit.
const defaultSmsPageSize = 50

// maxSmsPageSize is the hard ceiling for one SMS log read.
const maxSmsPageSize = 200

var (
	// ErrInvalidCredentials indicates an unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionExpired indicates the session exists but is past its expiry.
	ErrSessionExpired = errors.New("session expired")
	// ErrServiceNotConfigured indicates the planner service is missing dependencies.
	ErrServiceNotConfigured = errors.New("planner service is not configured")
)

// Service implements planner operations on top of the storage interfaces.
type Service struct {
	store       Store
	signer      *TokenSigner
	clock       func() time.Time
	idGenerator func() (string, error)
}

// NewService creates a planner Service with default dependencies.
func NewService(store Store, signer *TokenSigner) *Service {
	return &Service{
		store:       store,
		signer:      signer,
		clock:       time.Now,
		idGenerator: id.NewID,
	}
}

// Login verifies credentials and opens a session, returning the session and
// its signed token.
func (s *Service) Login(ctx context.Context, email string, password string) (Session, string, error) {
	if s == nil || s.store == nil || s.signer == nil {
		return Session{}, "", ErrServiceNotConfigured
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Session{}, "", ErrInvalidCredentials
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, "", ErrInvalidCredentials
		}
		return Session{}, "", fmt.Errorf("load user: %w", err)
	}
	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, ErrPasswordMismatch) {
			return Session{}, "", ErrInvalidCredentials
		}
		return Session{}, "", fmt.Errorf("verify password: %w", err)
	}

	sessionID, err := s.idGenerator()
	if err != nil {
		return Session{}, "", fmt.Errorf("generate session id: %w", err)
	}
	now := s.clock().UTC()
	session := Session{
		ID:        sessionID,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := s.store.PutSession(ctx, session); err != nil {
		return Session{}, "", fmt.Errorf("persist session: %w", err)
	}
	token, err := s.signer.Sign(session)
	if err != nil {
		return Session{}, "", err
	}
	return session, token, nil
}

// SessionFromToken verifies the token signature and resolves the live
// session record. Expired or revoked sessions fail closed.
func (s *Service) SessionFromToken(ctx context.Context, token string) (Session, error) {
	if s == nil || s.store == nil || s.signer == nil {
		return Session{}, ErrServiceNotConfigured
	}
	sessionID, err := s.signer.SessionID(token)
	if err != nil {
		return Session{}, err
	}
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrInvalidToken
		}
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	if session.Expired(s.clock().UTC()) {
		return Session{}, ErrSessionExpired
	}
	return session, nil
}

// Logout revokes the session behind a token. Unknown tokens are not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if s == nil || s.store == nil || s.signer == nil {
		return ErrServiceNotConfigured
	}
	sessionID, err := s.signer.SessionID(token)
	if err != nil {
		return nil
	}
	if err := s.store.DeleteSession(ctx, sessionID); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// GetUser loads one planner account.
func (s *Service) GetUser(ctx context.Context, userID string) (User, error) {
	if s == nil || s.store == nil {
		return User{}, ErrServiceNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return User{}, ErrNotFound
	}
	return s.store.GetUser(ctx, userID)
}

// ListClients returns the clients belonging to an org, ordered by creation.
func (s *Service) ListClients(ctx context.Context, orgID string) ([]Client, error) {
	if s == nil || s.store == nil {
		return nil, ErrServiceNotConfigured
	}
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		return nil, errors.New("org id is required")
	}
	return s.store.ListClientsByOrg(ctx, orgID)
}

// GetClient loads one client record.
func (s *Service) GetClient(ctx context.Context, clientID string) (Client, error) {
	if s == nil || s.store == nil {
		return Client{}, ErrServiceNotConfigured
	}
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return Client{}, ErrNotFound
	}
	return s.store.GetClient(ctx, clientID)
}

// ListRoomBlocks returns a client's hotel room blocks.
func (s *Service) ListRoomBlocks(ctx context.Context, clientID string) ([]RoomBlock, error) {
	if s == nil || s.store == nil {
		return nil, ErrServiceNotConfigured
	}
	if _, err := s.GetClient(ctx, clientID); err != nil {
		return nil, err
	}
	return s.store.ListRoomBlocksByClient(ctx, clientID)
}

// ListGifts returns a client's guest gifts.
func (s *Service) ListGifts(ctx context.Context, clientID string) ([]Gift, error) {
	if s == nil || s.store == nil {
		return nil, ErrServiceNotConfigured
	}
	if _, err := s.GetClient(ctx, clientID); err != nil {
		return nil, err
	}
	return s.store.ListGiftsByClient(ctx, clientID)
}

// ListSmsMessages returns a client's most recent SMS log entries.
func (s *Service) ListSmsMessages(ctx context.Context, clientID string, limit int) ([]SmsMessage, error) {
	if s == nil || s.store == nil {
		return nil, ErrServiceNotConfigured
	}
	if _, err := s.GetClient(ctx, clientID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultSmsPageSize
	}
	if limit > maxSmsPageSize {
		limit = maxSmsPageSize
	}
	return s.store.ListSmsMessagesByClient(ctx, clientID, limit)
}

// SmsStats aggregates a client's full SMS log.
func (s *Service) SmsStats(ctx context.Context, clientID string) (SmsStats, error) {
	if s == nil || s.store == nil {
		return SmsStats{}, ErrServiceNotConfigured
	}
	if _, err := s.GetClient(ctx, clientID); err != nil {
		return SmsStats{}, err
	}
	messages, err := s.store.ListSmsMessagesByClient(ctx, clientID, 0)
	if err != nil {
		return SmsStats{}, err
	}
	return ComputeSmsStats(messages), nil
}
