package models

import "time"

// CompetitorRow is one ranked competitor for a keyword.
type CompetitorRow struct {
	Position int    `json:"position"`
	Domain   string `json:"domain"`
	URL      string `json:"url"`
	Title    string `json:"title"`
	Score    int    `json:"score"` // provider rank score, 0-100
}

// CompetitorAnalysis is a saved SERP comparison for one keyword.
type CompetitorAnalysis struct {
	ID        string          `json:"id"`
	Keyword   string          `json:"keyword"`
	Rows      []CompetitorRow `json:"rows"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
