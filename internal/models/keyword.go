package models

import "time"

// SavedKeyword is a researched keyword pinned by the user, with the metrics
// the SEO data provider returned at save time.
type SavedKeyword struct {
	ID           string    `json:"id"`
	Keyword      string    `json:"keyword"`
	SearchVolume int       `json:"search_volume"`
	Difficulty   int       `json:"difficulty"` // 0-100
	CPC          float64   `json:"cpc"`
	Country      string    `json:"country"`
	Language     string    `json:"language"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
