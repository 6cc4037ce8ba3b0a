package service

import (
	"errors"

	"github.com/WatchBeam/clock"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/export"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/model"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/repository"
)

var ErrSessionNotFound = errors.New("session not found")

// HistoryService reads and manages a session's password history.
type HistoryService struct {
	store *repository.SessionStore
	clock clock.Clock
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(store *repository.SessionStore, clk clock.Clock) *HistoryService {
	return &HistoryService{store: store, clock: clk}
}

// List returns the session's history, newest first.
func (s *HistoryService) List(sessionID string) (model.HistoryResponse, error) {
	entries, err := s.store.Entries(sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return model.HistoryResponse{}, ErrSessionNotFound
		}
		return model.HistoryResponse{}, err
	}

	resp := model.HistoryResponse{
		Entries:  make([]model.HistoryEntry, len(entries)),
		Count:    len(entries),
		Capacity: s.store.Capacity(),
	}
	for i, e := range entries {
		resp.Entries[i] = model.HistoryEntry{
			ID:        e.ID,
			Password:  e.Password,
			Score:     e.Score,
			Label:     e.Label,
			CreatedAt: e.CreatedAt,
		}
	}
	return resp, nil
}

// Clear empties the session's history.
func (s *HistoryService) Clear(sessionID string) error {
	err := s.store.Clear(sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return ErrSessionNotFound
	}
	return err
}

// ExportFile is a rendered history download.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Export renders the session's history in the named format. The format
// string is parsed leniently ("", "txt", "text", "csv", "json", "md",
// "markdown").
func (s *HistoryService) Export(sessionID, format string) (ExportFile, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return ExportFile{}, err
	}

	entries, err := s.store.Entries(sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ExportFile{}, ErrSessionNotFound
		}
		return ExportFile{}, err
	}

	data, err := export.Render(f, entries)
	if err != nil {
		return ExportFile{}, err
	}

	return ExportFile{
		Name:        export.Filename(f, s.clock.Now().UTC()),
		ContentType: export.ContentType(f),
		Data:        data,
	}, nil
}
