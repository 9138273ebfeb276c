package models

import (
	"time"

	"seoscope/internal/scoring"
)

// Analysis sources.
const (
	SourcePage    = "page"    // fetched and parsed from a live URL
	SourceContent = "content" // pasted content snippet, no page-level factors
)

// PageSignals are the raw values extracted from a fetched page, kept with
// the analysis so the UI can show what each score was derived from.
type PageSignals struct {
	Title           string            `json:"title"`
	MetaDescription string            `json:"meta_description"`
	Canonical       string            `json:"canonical,omitempty"`
	Headings        []scoring.Heading `json:"headings,omitempty"`
	WordCount       int               `json:"word_count"`
	ParagraphCount  int               `json:"paragraph_count"`
	InternalLinks   int               `json:"internal_links"`
	ExternalLinks   int               `json:"external_links"`
	ImagesTotal     int               `json:"images_total"`
	ImagesWithAlt   int               `json:"images_with_alt"`
	HasViewport     bool              `json:"has_viewport"`
	HTTPS           bool              `json:"https"`
	OpenGraphTags   int               `json:"open_graph_tags"`
	TwitterTags     int               `json:"twitter_tags"`
	ResponseMillis  int64             `json:"response_millis"`
	BodyBytes       int               `json:"body_bytes"`
}

// Recommendation is one advice entry attached to an analysis.
type Recommendation struct {
	Factor string `json:"factor"`
	Score  int    `json:"score"`
	Level  string `json:"level"`
	Text   string `json:"text"`
}

// AnalysisResult is one scored analysis of a URL or content snippet.
type AnalysisResult struct {
	ID              string           `json:"id"`
	ProjectID       string           `json:"project_id,omitempty"`
	Source          string           `json:"source"`
	URL             string           `json:"url,omitempty"`
	TargetKeywords  []string         `json:"target_keywords,omitempty"`
	FactorScores    map[string]int   `json:"factor_scores"`
	OverallScore    int              `json:"overall_score"`
	Category        string           `json:"category"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Signals         *PageSignals     `json:"signals,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// Score returns the stored score for a factor, and whether it was measured.
func (a *AnalysisResult) Score(factor string) (int, bool) {
	s, ok := a.FactorScores[factor]
	return s, ok
}
