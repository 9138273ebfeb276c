package handlers

import (
	"context"
	"html"

	"github.com/gofiber/fiber/v3"

	"seoscope/internal/config"
	"seoscope/internal/providers/seodata"
	"seoscope/internal/store"
)

// BrandingData contains site branding information for templates.
type BrandingData struct {
	SiteTitle   string
	SiteTagline string
	SiteFooter  string
	SiteLogoURL string
}

// GetBrandingData returns branding data from config for template rendering.
func GetBrandingData(cfg *config.Config) BrandingData {
	return BrandingData{
		SiteTitle:   cfg.SiteTitle,
		SiteTagline: cfg.SiteTagline,
		SiteFooter:  cfg.SiteFooter,
		SiteLogoURL: cfg.SiteLogoURL,
	}
}

// MergeBranding adds branding data to a fiber.Map for template rendering.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	branding := GetBrandingData(cfg)
	data["SiteTitle"] = branding.SiteTitle
	data["SiteTagline"] = branding.SiteTagline
	data["SiteFooter"] = branding.SiteFooter
	data["SiteLogoURL"] = branding.SiteLogoURL
	return data
}

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div class="p-3 rounded-lg bg-red-50 dark:bg-red-900/30 text-red-700 dark:text-red-300 text-sm">` + html.EscapeString(message) + `</div>`,
	)
}

// ProviderFor picks the SEO data provider for a request. Credentials saved
// on the settings page win over environment credentials. Without any
// credentials the mock provider serves canned data, but only in development;
// everywhere else the caller gets seodata.ErrNotConfigured rather than
// fabricated metrics.
func ProviderFor(ctx context.Context, st *store.Store, cfg *config.Config) (seodata.Provider, error) {
	settings := st.GetSettings(ctx)

	login := settings.Credentials.SEODataLogin
	password := settings.Credentials.SEODataPassword
	if login == "" || password == "" {
		login = cfg.SEODataLogin
		password = cfg.SEODataPassword
	}
	if login == "" || password == "" {
		if cfg.IsDev() {
			return seodata.NewMock(), nil
		}
		return nil, seodata.ErrNotConfigured
	}

	baseURL := settings.Endpoints.SEOData
	if baseURL == "" {
		baseURL = cfg.SEODataBaseURL
	}
	return seodata.NewClient(baseURL, login, password), nil
}
