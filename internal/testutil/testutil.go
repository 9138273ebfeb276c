// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"testing"

	"seoscope/internal/models"
	"seoscope/internal/store"
)

// TestStore creates a store over a fresh in-memory backend. The backend is
// closed when the test finishes.
func TestStore(t *testing.T) *store.Store {
	t.Helper()

	st := store.New(store.NewMemory())
	t.Cleanup(func() { st.Close() })
	return st
}

// SeedProject saves a project and returns it with its assigned id.
func SeedProject(t *testing.T, st *store.Store, name, url string) models.Project {
	t.Helper()

	project := models.Project{Name: name, URL: url}
	if err := st.SaveProject(context.Background(), &project); err != nil {
		t.Fatalf("seeding project %q: %v", name, err)
	}
	return project
}

// SeedAnalysis saves a minimal stored analysis and returns it.
func SeedAnalysis(t *testing.T, st *store.Store, url string, score int) models.AnalysisResult {
	t.Helper()

	analysis := models.AnalysisResult{
		Source:       models.SourcePage,
		URL:          url,
		OverallScore: score,
		FactorScores: map[string]int{},
	}
	if err := st.SaveAnalysis(context.Background(), &analysis); err != nil {
		t.Fatalf("seeding analysis for %q: %v", url, err)
	}
	return analysis
}
