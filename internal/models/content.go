package models

import "time"

// SavedContent is a content draft scored and saved from the content page.
type SavedContent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Keyword   string    `json:"keyword,omitempty"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
