package api

import (
	"github.com/gofiber/fiber/v3"

	"seoscope/internal/config"
	"seoscope/internal/store"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	store *store.Store
	cfg   *config.Config
}

// NewHealthHandler creates a new API health handler.
func NewHealthHandler(st *store.Store, cfg *config.Config) *HealthHandler {
	return &HealthHandler{store: st, cfg: cfg}
}

// Check reports service status and collection sizes.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	settings := h.store.GetSettings(c.Context())

	providerConfigured := h.cfg.HasProviderCredentials() ||
		(settings.Credentials.SEODataLogin != "" && settings.Credentials.SEODataPassword != "")

	return jsonSuccess(c, fiber.Map{
		"status":              "healthy",
		"collections":         h.store.CollectionSizes(c.Context()),
		"provider_configured": providerConfigured,
		"email_enabled":       h.cfg.IsEmailEnabled(),
	})
}
