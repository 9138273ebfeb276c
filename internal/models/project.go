package models

import "time"

// Project is a tracked site the user re-analyzes over time.
type Project struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	URL            string    `json:"url"`
	TargetKeywords []string  `json:"target_keywords,omitempty"`
	LastScore      *int      `json:"last_score,omitempty"` // nil until first analysis completes
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
