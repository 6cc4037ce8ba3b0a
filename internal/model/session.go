package model

import "time"

// SessionResponse represents a freshly created anonymous session. The token
// authorizes access to that session's history.
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
