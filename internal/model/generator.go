package model

import "time"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length           int   `json:"length"`
	Uppercase        *bool `json:"uppercase"`
	Lowercase        *bool `json:"lowercase"`
	Digits           *bool `json:"digits"`
	Symbols          *bool `json:"symbols"`
	ExcludeAmbiguous bool  `json:"exclude_ambiguous"`
}

// GenerateResponse represents a password generation response, including the
// strength verdict computed for the fresh password.
type GenerateResponse struct {
	Password  string    `json:"password"`
	Length    int       `json:"length"`
	Score     int       `json:"score"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// StrengthRequest represents a standalone strength check request.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse represents a strength check response.
type StrengthResponse struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}
