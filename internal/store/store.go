// Package store persists the application's typed collections in a
// key-value backend. Each collection lives under one fixed key as a single
// JSON blob. Reads never fail: a missing key, backend error, or malformed
// blob logs a warning and yields the collection's default. Writes propagate
// errors so callers can surface a save failure.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"seoscope/internal/models"
)

// Fixed storage keys, one per collection.
const (
	keyProjects    = "seoscope:projects"
	keyAnalyses    = "seoscope:analyses"
	keyKeywords    = "seoscope:keywords"
	keyContents    = "seoscope:contents"
	keyCompetitors = "seoscope:competitors"
	keySettings    = "seoscope:settings"
)

// MaxAnalyses caps the analyses collection. The newest entry is kept at the
// front; saving past the cap evicts from the tail.
const MaxAnalyses = 10

// Store wraps a fiber.Storage backend with typed collection operations.
type Store struct {
	storage fiber.Storage
	now     func() time.Time
}

// New creates a store over the given backend.
func New(storage fiber.Storage) *Store {
	return &Store{storage: storage, now: time.Now}
}

// Close releases the underlying backend.
func (s *Store) Close() error {
	return s.storage.Close()
}

// getList reads and decodes a collection, returning an empty (non-nil)
// slice on any read failure.
func getList[T any](ctx context.Context, s *Store, key string) []T {
	raw, err := s.storage.GetWithContext(ctx, key)
	if err != nil {
		slog.Warn("store read failed, returning default", "key", key, "error", err)
		return []T{}
	}
	if len(raw) == 0 {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("store blob malformed, returning default", "key", key, "error", err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// putList encodes and writes a collection. Write failures are logged and
// returned.
func putList[T any](ctx context.Context, s *Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.storage.SetWithContext(ctx, key, raw, 0); err != nil {
		slog.Error("store write failed", "key", key, "error", err)
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Projects

// GetProjects returns all saved projects.
func (s *Store) GetProjects(ctx context.Context) []models.Project {
	return getList[models.Project](ctx, s, keyProjects)
}

// GetProject returns the project with the given id.
func (s *Store) GetProject(ctx context.Context, id string) (models.Project, bool) {
	for _, p := range s.GetProjects(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// SaveProject updates the project in place when its id already exists,
// otherwise appends it. Assigns an id and timestamps as needed.
func (s *Store) SaveProject(ctx context.Context, p *models.Project) error {
	now := s.now().UTC()
	if p.ID == "" {
		p.ID = GenerateID()
	}

	items := s.GetProjects(ctx)
	replaced := false
	for i := range items {
		if items[i].ID == p.ID {
			p.CreatedAt = items[i].CreatedAt
			p.UpdatedAt = now
			items[i] = *p
			replaced = true
			break
		}
	}
	if !replaced {
		p.CreatedAt = now
		p.UpdatedAt = now
		items = append(items, *p)
	}

	return putList(ctx, s, keyProjects, items)
}

// DeleteProject removes the project with the given id; absent ids are a no-op.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	items := s.GetProjects(ctx)
	kept := items[:0]
	for _, p := range items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return putList(ctx, s, keyProjects, kept)
}

// Analyses

// GetAnalyses returns stored analyses, most recent first.
func (s *Store) GetAnalyses(ctx context.Context) []models.AnalysisResult {
	return getList[models.AnalysisResult](ctx, s, keyAnalyses)
}

// GetAnalysis returns the analysis with the given id.
func (s *Store) GetAnalysis(ctx context.Context, id string) (models.AnalysisResult, bool) {
	for _, a := range s.GetAnalyses(ctx) {
		if a.ID == id {
			return a, true
		}
	}
	return models.AnalysisResult{}, false
}

// LatestAnalysisForProject returns the most recent stored analysis for a
// project, if any.
func (s *Store) LatestAnalysisForProject(ctx context.Context, projectID string) (models.AnalysisResult, bool) {
	for _, a := range s.GetAnalyses(ctx) {
		if a.ProjectID == projectID {
			return a, true
		}
	}
	return models.AnalysisResult{}, false
}

// SaveAnalysis updates a matching analysis in place, or inserts the new one
// at the front and truncates the collection to MaxAnalyses entries.
func (s *Store) SaveAnalysis(ctx context.Context, a *models.AnalysisResult) error {
	now := s.now().UTC()
	if a.ID == "" {
		a.ID = GenerateID()
	}

	items := s.GetAnalyses(ctx)
	replaced := false
	for i := range items {
		if items[i].ID == a.ID {
			a.CreatedAt = items[i].CreatedAt
			a.UpdatedAt = now
			items[i] = *a
			replaced = true
			break
		}
	}
	if !replaced {
		a.CreatedAt = now
		a.UpdatedAt = now
		items = append([]models.AnalysisResult{*a}, items...)
		if len(items) > MaxAnalyses {
			items = items[:MaxAnalyses]
		}
	}

	return putList(ctx, s, keyAnalyses, items)
}

// DeleteAnalysis removes the analysis with the given id.
func (s *Store) DeleteAnalysis(ctx context.Context, id string) error {
	items := s.GetAnalyses(ctx)
	kept := items[:0]
	for _, a := range items {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return putList(ctx, s, keyAnalyses, kept)
}

// Keywords

// GetKeywords returns all saved keywords.
func (s *Store) GetKeywords(ctx context.Context) []models.SavedKeyword {
	return getList[models.SavedKeyword](ctx, s, keyKeywords)
}

// SaveKeyword updates a matching keyword in place or appends it.
func (s *Store) SaveKeyword(ctx context.Context, k *models.SavedKeyword) error {
	now := s.now().UTC()
	if k.ID == "" {
		k.ID = GenerateID()
	}

	items := s.GetKeywords(ctx)
	replaced := false
	for i := range items {
		if items[i].ID == k.ID {
			k.CreatedAt = items[i].CreatedAt
			k.UpdatedAt = now
			items[i] = *k
			replaced = true
			break
		}
	}
	if !replaced {
		k.CreatedAt = now
		k.UpdatedAt = now
		items = append(items, *k)
	}

	return putList(ctx, s, keyKeywords, items)
}

// DeleteKeyword removes the keyword with the given id.
func (s *Store) DeleteKeyword(ctx context.Context, id string) error {
	items := s.GetKeywords(ctx)
	kept := items[:0]
	for _, k := range items {
		if k.ID != id {
			kept = append(kept, k)
		}
	}
	return putList(ctx, s, keyKeywords, kept)
}

// Contents

// GetContents returns all saved content drafts.
func (s *Store) GetContents(ctx context.Context) []models.SavedContent {
	return getList[models.SavedContent](ctx, s, keyContents)
}

// SaveContent updates a matching draft in place or appends it.
func (s *Store) SaveContent(ctx context.Context, c *models.SavedContent) error {
	now := s.now().UTC()
	if c.ID == "" {
		c.ID = GenerateID()
	}

	items := s.GetContents(ctx)
	replaced := false
	for i := range items {
		if items[i].ID == c.ID {
			c.CreatedAt = items[i].CreatedAt
			c.UpdatedAt = now
			items[i] = *c
			replaced = true
			break
		}
	}
	if !replaced {
		c.CreatedAt = now
		c.UpdatedAt = now
		items = append(items, *c)
	}

	return putList(ctx, s, keyContents, items)
}

// DeleteContent removes the draft with the given id.
func (s *Store) DeleteContent(ctx context.Context, id string) error {
	items := s.GetContents(ctx)
	kept := items[:0]
	for _, c := range items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return putList(ctx, s, keyContents, kept)
}

// Competitor analyses

// GetCompetitorAnalyses returns all saved competitor comparisons.
func (s *Store) GetCompetitorAnalyses(ctx context.Context) []models.CompetitorAnalysis {
	return getList[models.CompetitorAnalysis](ctx, s, keyCompetitors)
}

// SaveCompetitorAnalysis updates a matching comparison in place or appends it.
func (s *Store) SaveCompetitorAnalysis(ctx context.Context, ca *models.CompetitorAnalysis) error {
	now := s.now().UTC()
	if ca.ID == "" {
		ca.ID = GenerateID()
	}

	items := s.GetCompetitorAnalyses(ctx)
	replaced := false
	for i := range items {
		if items[i].ID == ca.ID {
			ca.CreatedAt = items[i].CreatedAt
			ca.UpdatedAt = now
			items[i] = *ca
			replaced = true
			break
		}
	}
	if !replaced {
		ca.CreatedAt = now
		ca.UpdatedAt = now
		items = append(items, *ca)
	}

	return putList(ctx, s, keyCompetitors, items)
}

// DeleteCompetitorAnalysis removes the comparison with the given id.
func (s *Store) DeleteCompetitorAnalysis(ctx context.Context, id string) error {
	items := s.GetCompetitorAnalyses(ctx)
	kept := items[:0]
	for _, ca := range items {
		if ca.ID != id {
			kept = append(kept, ca)
		}
	}
	return putList(ctx, s, keyCompetitors, kept)
}

// Settings

// GetSettings returns the settings object, or defaults when nothing has
// been saved yet or the blob is unreadable.
func (s *Store) GetSettings(ctx context.Context) models.UserSettings {
	raw, err := s.storage.GetWithContext(ctx, keySettings)
	if err != nil {
		slog.Warn("store read failed, returning default settings", "error", err)
		return models.DefaultSettings()
	}
	if len(raw) == 0 {
		return models.DefaultSettings()
	}

	var settings models.UserSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		slog.Warn("settings blob malformed, returning default settings", "error", err)
		return models.DefaultSettings()
	}
	return settings
}

// SaveSettings replaces the settings object.
func (s *Store) SaveSettings(ctx context.Context, settings *models.UserSettings) error {
	settings.UpdatedAt = s.now().UTC()

	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.storage.SetWithContext(ctx, keySettings, raw, 0); err != nil {
		slog.Error("store write failed", "key", keySettings, "error", err)
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// CollectionSizes reports the number of records per collection, for metrics.
func (s *Store) CollectionSizes(ctx context.Context) map[string]int {
	return map[string]int{
		"projects":    len(s.GetProjects(ctx)),
		"analyses":    len(s.GetAnalyses(ctx)),
		"keywords":    len(s.GetKeywords(ctx)),
		"contents":    len(s.GetContents(ctx)),
		"competitors": len(s.GetCompetitorAnalyses(ctx)),
	}
}
