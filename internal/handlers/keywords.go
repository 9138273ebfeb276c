package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"seoscope/internal/config"
	"seoscope/internal/models"
	"seoscope/internal/providers/seodata"
	"seoscope/internal/scoring"
	"seoscope/internal/store"
	"seoscope/internal/validation"
)

// KeywordHandler handles keyword research and the saved keyword list.
type KeywordHandler struct {
	store *store.Store
	cfg   *config.Config
}

// NewKeywordHandler creates a new keyword handler.
func NewKeywordHandler(st *store.Store, cfg *config.Config) *KeywordHandler {
	return &KeywordHandler{store: st, cfg: cfg}
}

// Index renders the keyword research page with the saved list.
func (h *KeywordHandler) Index(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	data := MergeBranding(fiber.Map{
		"User":     user,
		"Keywords": h.store.GetKeywords(c.Context()),
	}, h.cfg)

	return c.Render("keywords", data)
}

// ResearchRow is one researched keyword with its difficulty label.
type ResearchRow struct {
	Metrics seodata.KeywordMetrics
	Class   string
}

// Research looks up metrics for the submitted keywords and renders the
// result rows as an HTMX partial.
func (h *KeywordHandler) Research(c fiber.Ctx) error {
	keywords := splitKeywords(c.FormValue("keywords"))
	if len(keywords) == 0 {
		return htmxError(c, "enter at least one keyword")
	}
	for i, kw := range keywords {
		kw = validation.NormalizeKeyword(kw)
		if !validation.ValidateKeyword(kw) {
			return htmxError(c, "invalid keyword: "+kw)
		}
		keywords[i] = kw
	}

	settings := h.store.GetSettings(c.Context())
	provider, err := ProviderFor(c.Context(), h.store, h.cfg)
	if err != nil {
		return htmxError(c, "SEO data provider is not configured; add credentials on the settings page")
	}

	metrics, err := provider.KeywordMetrics(c.Context(), keywords, settings.Language, settings.Country)
	if err != nil {
		return htmxError(c, "keyword lookup failed: "+err.Error())
	}

	rows := make([]ResearchRow, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, ResearchRow{Metrics: m, Class: scoring.Class(m.Difficulty)})
	}

	// Explicit empty layout keeps the fragment bare for HTMX swaps.
	return c.Render("partials/keyword_results", fiber.Map{"Rows": rows}, "")
}

// Save pins a researched keyword to the saved list.
func (h *KeywordHandler) Save(c fiber.Ctx) error {
	keyword := validation.NormalizeKeyword(c.FormValue("keyword"))
	if !validation.ValidateKeyword(keyword) {
		return htmxError(c, "invalid keyword")
	}

	volume, _ := strconv.Atoi(c.FormValue("search_volume"))
	difficulty, _ := strconv.Atoi(c.FormValue("difficulty"))
	cpc, _ := strconv.ParseFloat(c.FormValue("cpc"), 64)

	settings := h.store.GetSettings(c.Context())
	saved := &models.SavedKeyword{
		ID:           strings.TrimSpace(c.FormValue("id")),
		Keyword:      keyword,
		SearchVolume: volume,
		Difficulty:   difficulty,
		CPC:          cpc,
		Country:      settings.Country,
		Language:     settings.Language,
	}
	if err := h.store.SaveKeyword(c.Context(), saved); err != nil {
		return htmxError(c, "failed to save keyword")
	}

	c.Set("HX-Redirect", "/keywords")
	return c.Redirect().To("/keywords")
}

// Delete removes a saved keyword.
func (h *KeywordHandler) Delete(c fiber.Ctx) error {
	if err := h.store.DeleteKeyword(c.Context(), c.Params("id")); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete keyword")
	}
	return c.SendString("")
}
