package models

import "time"

// Credentials hold per-provider secrets entered on the settings page.
// Stored as-is in the single-tenant store; there is no server-side
// encryption layer.
type Credentials struct {
	SEODataLogin    string `json:"seodata_login"`
	SEODataPassword string `json:"seodata_password"`
	GeminiAPIKey    string `json:"gemini_api_key"`
}

// APIEndpoints are provider base URLs, overridable for sandboxes.
type APIEndpoints struct {
	SEOData string `json:"seodata"`
}

// UserSettings is the flat settings object kept under the settings key.
type UserSettings struct {
	Language    string       `json:"language"`
	Country     string       `json:"country"`
	MinWords    int          `json:"min_words"`
	Credentials Credentials  `json:"credentials"`
	Endpoints   APIEndpoints `json:"endpoints"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// DefaultSettings is what GetSettings returns before the user saves anything.
func DefaultSettings() UserSettings {
	return UserSettings{
		Language: "en",
		Country:  "us",
		MinWords: 300,
	}
}
