package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"seoscope/internal/analyzer"
	"seoscope/internal/metrics"
	"seoscope/internal/models"
	"seoscope/internal/store"
	"seoscope/internal/validation"
)

// ContentHandler serves content draft scoring and storage over JSON.
type ContentHandler struct {
	store    *store.Store
	analyzer *analyzer.Analyzer
}

// NewContentHandler creates a new API content handler.
func NewContentHandler(st *store.Store, a *analyzer.Analyzer) *ContentHandler {
	return &ContentHandler{store: st, analyzer: a}
}

type contentRequest struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Keyword string `json:"keyword"`
}

// List returns all saved drafts.
func (h *ContentHandler) List(c fiber.Ctx) error {
	return jsonSuccess(c, h.store.GetContents(c.Context()))
}

// Score scores a draft without storing it.
func (h *ContentHandler) Score(c fiber.Ctx) error {
	var req contentRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Body) == "" {
		return jsonError(c, fiber.StatusBadRequest, "body is required")
	}

	keyword := validation.NormalizeKeyword(req.Keyword)
	if keyword != "" && !validation.ValidateKeyword(keyword) {
		return jsonError(c, fiber.StatusBadRequest, "invalid keyword")
	}

	start := time.Now()
	result := h.analyzer.AnalyzeContent(req.Body, keyword)
	metrics.RecordAnalysis(models.SourceContent, "ok", time.Since(start))

	return jsonSuccess(c, result)
}

// Save scores and stores a draft. A request carrying an existing id updates
// that draft in place.
func (h *ContentHandler) Save(c fiber.Ctx) error {
	var req contentRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return jsonError(c, fiber.StatusBadRequest, "title is required")
	}
	if strings.TrimSpace(req.Body) == "" {
		return jsonError(c, fiber.StatusBadRequest, "body is required")
	}

	keyword := validation.NormalizeKeyword(req.Keyword)
	result := h.analyzer.AnalyzeContent(req.Body, keyword)

	draft := &models.SavedContent{
		ID:      strings.TrimSpace(req.ID),
		Title:   req.Title,
		Body:    req.Body,
		Keyword: keyword,
		Score:   result.OverallScore,
	}
	if err := h.store.SaveContent(c.Context(), draft); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save draft")
	}
	return jsonSuccess(c, draft)
}

// Delete removes a saved draft.
func (h *ContentHandler) Delete(c fiber.Ctx) error {
	if err := h.store.DeleteContent(c.Context(), c.Params("id")); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete draft")
	}
	return jsonSuccess(c, fiber.Map{"deleted": c.Params("id")})
}
