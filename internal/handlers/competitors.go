package handlers

import (
	"github.com/gofiber/fiber/v3"

	"seoscope/internal/config"
	"seoscope/internal/models"
	"seoscope/internal/store"
	"seoscope/internal/validation"
)

// CompetitorHandler handles SERP competitor comparisons.
type CompetitorHandler struct {
	store *store.Store
	cfg   *config.Config
}

// NewCompetitorHandler creates a new competitor handler.
func NewCompetitorHandler(st *store.Store, cfg *config.Config) *CompetitorHandler {
	return &CompetitorHandler{store: st, cfg: cfg}
}

// Index renders the competitor page with saved comparisons.
func (h *CompetitorHandler) Index(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	data := MergeBranding(fiber.Map{
		"User":        user,
		"Comparisons": h.store.GetCompetitorAnalyses(c.Context()),
	}, h.cfg)

	return c.Render("competitors", data)
}

// Compare fetches the current SERP for a keyword, saves the comparison, and
// renders the rows as an HTMX partial.
func (h *CompetitorHandler) Compare(c fiber.Ctx) error {
	keyword := validation.NormalizeKeyword(c.FormValue("keyword"))
	if !validation.ValidateKeyword(keyword) {
		return htmxError(c, "invalid keyword")
	}

	settings := h.store.GetSettings(c.Context())
	provider, err := ProviderFor(c.Context(), h.store, h.cfg)
	if err != nil {
		return htmxError(c, "SEO data provider is not configured; add credentials on the settings page")
	}

	rows, err := provider.Competitors(c.Context(), keyword, settings.Language, settings.Country)
	if err != nil {
		return htmxError(c, "competitor lookup failed: "+err.Error())
	}

	comparison := &models.CompetitorAnalysis{
		Keyword: keyword,
		Rows:    rows,
	}
	if err := h.store.SaveCompetitorAnalysis(c.Context(), comparison); err != nil {
		return htmxError(c, "failed to save comparison")
	}

	return c.Render("partials/competitor_rows", fiber.Map{
		"Comparison": comparison,
	}, "")
}

// Delete removes a saved comparison.
func (h *CompetitorHandler) Delete(c fiber.Ctx) error {
	if err := h.store.DeleteCompetitorAnalysis(c.Context(), c.Params("id")); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete comparison")
	}
	return c.SendString("")
}
