package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"seoscope/internal/analyzer"
	"seoscope/internal/config"
	"seoscope/internal/metrics"
	"seoscope/internal/models"
	"seoscope/internal/scoring"
	"seoscope/internal/store"
	"seoscope/internal/validation"
)

// ContentHandler handles the content editor: scoring drafts and the saved
// draft list.
type ContentHandler struct {
	store    *store.Store
	analyzer *analyzer.Analyzer
	cfg      *config.Config
}

// NewContentHandler creates a new content handler.
func NewContentHandler(st *store.Store, a *analyzer.Analyzer, cfg *config.Config) *ContentHandler {
	return &ContentHandler{store: st, analyzer: a, cfg: cfg}
}

// Index renders the content editor with saved drafts.
func (h *ContentHandler) Index(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	data := MergeBranding(fiber.Map{
		"User":     user,
		"Contents": h.store.GetContents(c.Context()),
	}, h.cfg)

	return c.Render("content", data)
}

// Score scores the pasted draft and renders the result as an HTMX partial.
func (h *ContentHandler) Score(c fiber.Ctx) error {
	body := c.FormValue("body")
	keyword := validation.NormalizeKeyword(c.FormValue("keyword"))

	if strings.TrimSpace(body) == "" {
		return htmxError(c, "paste some content to score")
	}
	if keyword != "" && !validation.ValidateKeyword(keyword) {
		return htmxError(c, "invalid keyword")
	}

	start := time.Now()
	result := h.analyzer.AnalyzeContent(body, keyword)
	metrics.RecordAnalysis(models.SourceContent, "ok", time.Since(start))

	return c.Render("partials/content_score", fiber.Map{
		"Result":   result,
		"Class":    scoring.Class(result.OverallScore),
		"Category": result.Category,
	}, "")
}

// Save scores and stores the draft.
func (h *ContentHandler) Save(c fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	body := c.FormValue("body")
	keyword := validation.NormalizeKeyword(c.FormValue("keyword"))

	if title == "" {
		return htmxError(c, "draft title is required")
	}
	if strings.TrimSpace(body) == "" {
		return htmxError(c, "draft body is empty")
	}

	result := h.analyzer.AnalyzeContent(body, keyword)

	draft := &models.SavedContent{
		ID:      strings.TrimSpace(c.FormValue("id")),
		Title:   title,
		Body:    body,
		Keyword: keyword,
		Score:   result.OverallScore,
	}
	if err := h.store.SaveContent(c.Context(), draft); err != nil {
		return htmxError(c, "failed to save draft")
	}

	c.Set("HX-Redirect", "/content")
	return c.Redirect().To("/content")
}

// Delete removes a saved draft.
func (h *ContentHandler) Delete(c fiber.Ctx) error {
	if err := h.store.DeleteContent(c.Context(), c.Params("id")); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete draft")
	}
	return c.SendString("")
}
