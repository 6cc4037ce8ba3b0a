package service

import (
	"time"

	"github.com/WatchBeam/clock"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/crypto"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/model"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/repository"
)

// SessionService issues anonymous sessions and the tokens that scope
// history access to them.
type SessionService struct {
	store     *repository.SessionStore
	clock     clock.Clock
	jwtSecret string
	jwtExpiry time.Duration
}

// NewSessionService creates a new SessionService.
func NewSessionService(store *repository.SessionStore, clk clock.Clock, secret string, expiry time.Duration) *SessionService {
	return &SessionService{
		store:     store,
		clock:     clk,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Create registers a fresh session and returns its signed access token.
func (s *SessionService) Create() (model.SessionResponse, error) {
	sess := s.store.Create()

	token, err := crypto.NewSessionToken(sess.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.SessionResponse{}, err
	}

	return model.SessionResponse{
		SessionID: sess.ID,
		Token:     token,
		ExpiresAt: s.clock.Now().Add(s.jwtExpiry).UTC(),
	}, nil
}
