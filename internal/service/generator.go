package service

import (
	"errors"
	"log/slog"

	"github.com/WatchBeam/clock"
	"github.com/google/uuid"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/history"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/model"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/password"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/repository"
)

var (
	ErrLengthTooShort = errors.New("length must be at least 1")
	ErrLengthTooLong  = errors.New("length must be at most 128")
	ErrNoCategories   = errors.New("at least one character category must be enabled")
)

const (
	MinLength     = 1
	MaxLength     = 128
	DefaultLength = 16
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	rand  password.Source
	clock clock.Clock
	store *repository.SessionStore
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(src password.Source, clk clock.Clock, store *repository.SessionStore) *GeneratorService {
	return &GeneratorService{rand: src, clock: clk, store: store}
}

// Generate produces a password based on the given request. When sessionID is
// non-empty the result is also recorded in that session's history; a missing
// session is logged and skipped rather than failing the generation.
func (s *GeneratorService) Generate(sessionID string, req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg := password.Config{
		Length:           req.Length,
		Uppercase:        boolOrDefault(req.Uppercase, true),
		Lowercase:        boolOrDefault(req.Lowercase, true),
		Digits:           boolOrDefault(req.Digits, true),
		Symbols:          boolOrDefault(req.Symbols, true),
		ExcludeAmbiguous: req.ExcludeAmbiguous,
	}

	if cfg.Length == 0 {
		cfg.Length = DefaultLength
	}
	if cfg.Length < MinLength {
		return model.GenerateResponse{}, ErrLengthTooShort
	}
	if cfg.Length > MaxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	text := password.Generate(cfg, s.rand)
	if text == "" {
		return model.GenerateResponse{}, ErrNoCategories
	}

	strength := password.Evaluate(text)
	now := s.clock.Now().UTC()

	if sessionID != "" {
		entry := history.Entry{
			ID:        uuid.New().String(),
			Password:  text,
			Score:     strength.Score,
			Label:     string(strength.Label),
			CreatedAt: now,
		}
		if err := s.store.Record(sessionID, entry); err != nil {
			slog.Warn("password not recorded to history", "session_id", sessionID, "error", err)
		}
	}

	return model.GenerateResponse{
		Password:  text,
		Length:    len(text),
		Score:     strength.Score,
		Label:     string(strength.Label),
		CreatedAt: now,
	}, nil
}

// Evaluate scores a password without generating or recording anything.
// Empty input is valid and scores zero.
func (s *GeneratorService) Evaluate(req model.StrengthRequest) model.StrengthResponse {
	strength := password.Evaluate(req.Password)
	return model.StrengthResponse{
		Score: strength.Score,
		Label: string(strength.Label),
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
