package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"seoscope/internal/config"
	"seoscope/internal/models"
	"seoscope/internal/store"
)

// SettingsHandler handles the settings page.
type SettingsHandler struct {
	store *store.Store
	cfg   *config.Config
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(st *store.Store, cfg *config.Config) *SettingsHandler {
	return &SettingsHandler{store: st, cfg: cfg}
}

// Show renders the settings form with the current values.
func (h *SettingsHandler) Show(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)
	settings := h.store.GetSettings(c.Context())

	data := MergeBranding(fiber.Map{
		"User":          user,
		"Settings":      settings,
		"HasEnvCreds":   h.cfg.HasProviderCredentials(),
		"EmailEnabled":  h.cfg.IsEmailEnabled(),
		"GeminiFromEnv": h.cfg.GeminiAPIKey != "",
	}, h.cfg)

	return c.Render("settings", data)
}

// Update saves the settings form. Blank fields keep the stored value, so a
// save never wipes secrets the form does not echo back nor values a partial
// form omits.
func (h *SettingsHandler) Update(c fiber.Ctx) error {
	settings := h.store.GetSettings(c.Context())

	if lang := strings.TrimSpace(c.FormValue("language")); lang != "" {
		settings.Language = strings.ToLower(lang)
	}
	if country := strings.TrimSpace(c.FormValue("country")); country != "" {
		settings.Country = strings.ToLower(country)
	}
	if minWords, err := strconv.Atoi(c.FormValue("min_words")); err == nil && minWords > 0 {
		settings.MinWords = minWords
	}

	applyCredential(&settings.Credentials.SEODataLogin, c.FormValue("seodata_login"))
	applyCredential(&settings.Credentials.SEODataPassword, c.FormValue("seodata_password"))
	applyCredential(&settings.Credentials.GeminiAPIKey, c.FormValue("gemini_api_key"))
	// Blank keeps the stored endpoint, like every other field here; clearing
	// a sandbox override goes through the JSON API, which distinguishes an
	// absent field from an explicit empty string.
	if endpoint := strings.TrimSpace(c.FormValue("seodata_endpoint")); endpoint != "" {
		settings.Endpoints.SEOData = endpoint
	}

	if err := h.store.SaveSettings(c.Context(), &settings); err != nil {
		return htmxError(c, "failed to save settings")
	}

	c.Set("HX-Redirect", "/settings")
	return c.Redirect().To("/settings")
}

func applyCredential(target *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*target = value
	}
}
