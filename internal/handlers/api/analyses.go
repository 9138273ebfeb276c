package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"seoscope/internal/analyzer"
	"seoscope/internal/metrics"
	"seoscope/internal/models"
	"seoscope/internal/store"
	"seoscope/internal/validation"
)

// AnalysisHandler serves analysis operations over JSON.
type AnalysisHandler struct {
	store    *store.Store
	analyzer *analyzer.Analyzer
}

// NewAnalysisHandler creates a new API analysis handler.
func NewAnalysisHandler(st *store.Store, a *analyzer.Analyzer) *AnalysisHandler {
	return &AnalysisHandler{store: st, analyzer: a}
}

// analyzeRequest is the POST /api/v1/analyses body. Exactly one of URL or
// Content must be set.
type analyzeRequest struct {
	URL       string   `json:"url"`
	Keywords  []string `json:"keywords"`
	Content   string   `json:"content"`
	Keyword   string   `json:"keyword"`
	ProjectID string   `json:"project_id"`
}

// List returns stored analyses, most recent first.
func (h *AnalysisHandler) List(c fiber.Ctx) error {
	return jsonSuccess(c, h.store.GetAnalyses(c.Context()))
}

// Get returns one stored analysis by id.
func (h *AnalysisHandler) Get(c fiber.Ctx) error {
	result, ok := h.store.GetAnalysis(c.Context(), c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "analysis not found")
	}
	return jsonSuccess(c, result)
}

// Create runs a new analysis from a URL or a content snippet and stores it.
func (h *AnalysisHandler) Create(c fiber.Ctx) error {
	var req analyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	hasURL := strings.TrimSpace(req.URL) != ""
	hasContent := strings.TrimSpace(req.Content) != ""
	if hasURL == hasContent {
		return jsonError(c, fiber.StatusBadRequest, "provide exactly one of url or content")
	}

	var result *models.AnalysisResult
	if hasURL {
		if valid, msg := validation.ValidateURL(req.URL); !valid {
			return jsonError(c, fiber.StatusBadRequest, msg)
		}

		start := time.Now()
		var err error
		result, err = h.analyzer.Analyze(c.Context(), req.URL, req.Keywords)
		if err != nil {
			metrics.RecordAnalysis(models.SourcePage, "error", time.Since(start))
			if errors.Is(err, analyzer.ErrUnsafeURL) {
				return jsonError(c, fiber.StatusBadRequest, "that URL cannot be analyzed")
			}
			return jsonError(c, fiber.StatusBadGateway, "failed to fetch the page")
		}
		metrics.RecordAnalysis(models.SourcePage, "ok", time.Since(start))
	} else {
		keyword := validation.NormalizeKeyword(req.Keyword)
		if keyword != "" && !validation.ValidateKeyword(keyword) {
			return jsonError(c, fiber.StatusBadRequest, "invalid keyword")
		}

		start := time.Now()
		result = h.analyzer.AnalyzeContent(req.Content, keyword)
		metrics.RecordAnalysis(models.SourceContent, "ok", time.Since(start))
	}

	if req.ProjectID != "" {
		if _, ok := h.store.GetProject(c.Context(), req.ProjectID); !ok {
			return jsonError(c, fiber.StatusBadRequest, "unknown project_id")
		}
		result.ProjectID = req.ProjectID
	}

	if err := h.store.SaveAnalysis(c.Context(), result); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save analysis")
	}

	if result.ProjectID != "" {
		if project, ok := h.store.GetProject(c.Context(), result.ProjectID); ok {
			score := result.OverallScore
			project.LastScore = &score
			_ = h.store.SaveProject(c.Context(), &project)
		}
	}

	return jsonSuccess(c, result)
}

// Delete removes a stored analysis. Deleting an unknown id is a no-op.
func (h *AnalysisHandler) Delete(c fiber.Ctx) error {
	if err := h.store.DeleteAnalysis(c.Context(), c.Params("id")); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete analysis")
	}
	return jsonSuccess(c, fiber.Map{"deleted": c.Params("id")})
}
