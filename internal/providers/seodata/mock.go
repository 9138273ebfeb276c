package seodata

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"seoscope/internal/models"
)

// Mock simulates the provider for development mode, when no credentials are
// configured. Values are random; only the shapes are stable, so nothing may
// assert on the numbers it returns.
type Mock struct{}

// NewMock creates the development-mode provider.
func NewMock() *Mock {
	slog.Info("seodata provider running in mock mode")
	return &Mock{}
}

var mockDomains = []string{
	"wikipedia.org",
	"medium.com",
	"dev.to",
	"stackoverflow.com",
	"github.com",
	"reddit.com",
	"hubspot.com",
	"moz.com",
	"ahrefs.com",
	"semrush.com",
}

// KeywordMetrics fabricates plausible metrics for each keyword.
func (m *Mock) KeywordMetrics(_ context.Context, keywords []string, _, _ string) ([]KeywordMetrics, error) {
	slog.Debug("mock keyword metrics", "keywords", len(keywords))

	metrics := make([]KeywordMetrics, 0, len(keywords))
	for _, kw := range keywords {
		metrics = append(metrics, KeywordMetrics{
			Keyword:      kw,
			SearchVolume: 100 + rand.Intn(50000),
			Difficulty:   rand.Intn(101),
			CPC:          float64(rand.Intn(900)+10) / 100,
		})
	}
	return metrics, nil
}

// Competitors fabricates a ten-row SERP for the keyword.
func (m *Mock) Competitors(_ context.Context, keyword, _, _ string) ([]models.CompetitorRow, error) {
	slog.Debug("mock competitors", "keyword", keyword)

	slug := strings.ReplaceAll(strings.ToLower(keyword), " ", "-")
	rows := make([]models.CompetitorRow, 0, len(mockDomains))
	for i, domain := range mockDomains {
		pos := i + 1
		rows = append(rows, models.CompetitorRow{
			Position: pos,
			Domain:   domain,
			URL:      fmt.Sprintf("https://%s/%s", domain, slug),
			Title:    fmt.Sprintf("%s - %s", titleCase(keyword), domain),
			Score:    rankScore(pos),
		})
	}
	return rows, nil
}

// titleCase uppercases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
