package model

import "time"

// HistoryEntry represents one remembered password in API responses.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Password  string    `json:"password"`
	Score     int       `json:"score"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResponse represents the session's history, newest first.
type HistoryResponse struct {
	Entries  []HistoryEntry `json:"entries"`
	Count    int            `json:"count"`
	Capacity int            `json:"capacity"`
}
