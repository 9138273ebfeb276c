package api

import (
	"github.com/gofiber/fiber/v3"

	"seoscope/internal/config"
	"seoscope/internal/handlers"
	"seoscope/internal/models"
	"seoscope/internal/store"
	"seoscope/internal/validation"
)

// KeywordHandler serves keyword research and the saved list over JSON.
type KeywordHandler struct {
	store *store.Store
	cfg   *config.Config
}

// NewKeywordHandler creates a new API keyword handler.
func NewKeywordHandler(st *store.Store, cfg *config.Config) *KeywordHandler {
	return &KeywordHandler{store: st, cfg: cfg}
}

type researchRequest struct {
	Keywords []string `json:"keywords"`
}

// List returns all saved keywords.
func (h *KeywordHandler) List(c fiber.Ctx) error {
	return jsonSuccess(c, h.store.GetKeywords(c.Context()))
}

// Research looks up provider metrics for the requested keywords.
func (h *KeywordHandler) Research(c fiber.Ctx) error {
	var req researchRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Keywords) == 0 {
		return jsonError(c, fiber.StatusBadRequest, "keywords is required")
	}
	for i, kw := range req.Keywords {
		kw = validation.NormalizeKeyword(kw)
		if !validation.ValidateKeyword(kw) {
			return jsonError(c, fiber.StatusBadRequest, "invalid keyword: "+kw)
		}
		req.Keywords[i] = kw
	}

	settings := h.store.GetSettings(c.Context())
	provider, err := handlers.ProviderFor(c.Context(), h.store, h.cfg)
	if err != nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "seo data provider not configured")
	}

	metrics, err := provider.KeywordMetrics(c.Context(), req.Keywords, settings.Language, settings.Country)
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, "keyword lookup failed")
	}
	return jsonSuccess(c, metrics)
}

// Save pins a keyword with its metrics.
func (h *KeywordHandler) Save(c fiber.Ctx) error {
	var saved models.SavedKeyword
	if err := c.Bind().Body(&saved); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	saved.Keyword = validation.NormalizeKeyword(saved.Keyword)
	if !validation.ValidateKeyword(saved.Keyword) {
		return jsonError(c, fiber.StatusBadRequest, "invalid keyword")
	}

	settings := h.store.GetSettings(c.Context())
	if saved.Country == "" {
		saved.Country = settings.Country
	}
	if saved.Language == "" {
		saved.Language = settings.Language
	}

	if err := h.store.SaveKeyword(c.Context(), &saved); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save keyword")
	}
	return jsonSuccess(c, saved)
}

// Delete removes a saved keyword.
func (h *KeywordHandler) Delete(c fiber.Ctx) error {
	if err := h.store.DeleteKeyword(c.Context(), c.Params("id")); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete keyword")
	}
	return jsonSuccess(c, fiber.Map{"deleted": c.Params("id")})
}
