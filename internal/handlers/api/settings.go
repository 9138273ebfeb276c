package api

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"seoscope/internal/models"
	"seoscope/internal/store"
)

// SettingsHandler serves settings over JSON.
type SettingsHandler struct {
	store *store.Store
}

// NewSettingsHandler creates a new API settings handler.
func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{store: st}
}

// redacted masks a secret for responses, keeping just enough to recognize it.
func redacted(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:2] + strings.Repeat("*", len(secret)-4) + secret[len(secret)-2:]
}

// settingsView is the response shape: credentials are masked.
type settingsView struct {
	models.UserSettings
	Credentials models.Credentials `json:"credentials"`
}

func view(s models.UserSettings) settingsView {
	return settingsView{
		UserSettings: s,
		Credentials: models.Credentials{
			SEODataLogin:    s.Credentials.SEODataLogin,
			SEODataPassword: redacted(s.Credentials.SEODataPassword),
			GeminiAPIKey:    redacted(s.Credentials.GeminiAPIKey),
		},
	}
}

// Get returns the current settings with masked secrets.
func (h *SettingsHandler) Get(c fiber.Ctx) error {
	return jsonSuccess(c, view(h.store.GetSettings(c.Context())))
}

type settingsRequest struct {
	Language        *string `json:"language"`
	Country         *string `json:"country"`
	MinWords        *int    `json:"min_words"`
	SEODataLogin    *string `json:"seodata_login"`
	SEODataPassword *string `json:"seodata_password"`
	GeminiAPIKey    *string `json:"gemini_api_key"`
	SEODataEndpoint *string `json:"seodata_endpoint"`
}

// Update applies a partial settings change. Absent fields keep their stored
// values.
func (h *SettingsHandler) Update(c fiber.Ctx) error {
	var req settingsRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	settings := h.store.GetSettings(c.Context())

	if req.Language != nil && *req.Language != "" {
		settings.Language = strings.ToLower(strings.TrimSpace(*req.Language))
	}
	if req.Country != nil && *req.Country != "" {
		settings.Country = strings.ToLower(strings.TrimSpace(*req.Country))
	}
	if req.MinWords != nil && *req.MinWords > 0 {
		settings.MinWords = *req.MinWords
	}
	if req.SEODataLogin != nil {
		settings.Credentials.SEODataLogin = strings.TrimSpace(*req.SEODataLogin)
	}
	if req.SEODataPassword != nil {
		settings.Credentials.SEODataPassword = strings.TrimSpace(*req.SEODataPassword)
	}
	if req.GeminiAPIKey != nil {
		settings.Credentials.GeminiAPIKey = strings.TrimSpace(*req.GeminiAPIKey)
	}
	if req.SEODataEndpoint != nil {
		settings.Endpoints.SEOData = strings.TrimSpace(*req.SEODataEndpoint)
	}

	if err := h.store.SaveSettings(c.Context(), &settings); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save settings")
	}
	return jsonSuccess(c, view(settings))
}
