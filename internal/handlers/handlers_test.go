package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"seoscope/internal/config"
	"seoscope/internal/models"
	"seoscope/internal/providers/seodata"
	"seoscope/internal/testutil"
)

func TestProviderFor(t *testing.T) {
	ctx := context.Background()

	t.Run("mock without credentials in development", func(t *testing.T) {
		st := testutil.TestStore(t)
		provider, err := ProviderFor(ctx, st, &config.Config{Env: "development"})
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := provider.(*seodata.Mock); !ok {
			t.Errorf("provider = %T, want *seodata.Mock", provider)
		}
	})

	t.Run("no mock without credentials in production", func(t *testing.T) {
		st := testutil.TestStore(t)
		provider, err := ProviderFor(ctx, st, &config.Config{Env: "production"})
		if !errors.Is(err, seodata.ErrNotConfigured) {
			t.Fatalf("err = %v, want seodata.ErrNotConfigured", err)
		}
		if provider != nil {
			t.Errorf("provider = %T, want nil", provider)
		}
	})

	t.Run("client with env credentials", func(t *testing.T) {
		st := testutil.TestStore(t)
		cfg := &config.Config{SEODataLogin: "login", SEODataPassword: "pass"}
		provider, err := ProviderFor(ctx, st, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := provider.(*seodata.Client); !ok {
			t.Errorf("provider = %T, want *seodata.Client", provider)
		}
	})

	t.Run("settings credentials win over env", func(t *testing.T) {
		st := testutil.TestStore(t)
		settings := st.GetSettings(ctx)
		settings.Credentials.SEODataLogin = "settings-login"
		settings.Credentials.SEODataPassword = "settings-pass"
		if err := st.SaveSettings(ctx, &settings); err != nil {
			t.Fatal(err)
		}

		provider, err := ProviderFor(ctx, st, &config.Config{})
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := provider.(*seodata.Client); !ok {
			t.Errorf("provider = %T, want *seodata.Client", provider)
		}
	})
}

func TestSplitKeywords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"golang", []string{"golang"}},
		{"go, testing , fiber", []string{"go", "testing", "fiber"}},
		{" , ,", []string{}},
	}
	for _, tt := range tests {
		got := splitKeywords(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitKeywords(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProjectCreateValidatesForm(t *testing.T) {
	st := testutil.TestStore(t)
	h := NewProjectHandler(st, &config.Config{})

	app := fiber.New()
	app.Post("/projects", h.Create)

	tests := []struct {
		name string
		form url.Values
	}{
		{"missing name", url.Values{"url": {"https://example.com"}}},
		{"bad scheme", url.Values{"name": {"x"}, "url": {"ftp://example.com"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest("POST", "/projects", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != 200 {
				t.Fatalf("status = %d, want 200 error fragment", resp.StatusCode)
			}
		})
	}

	if got := len(st.GetProjects(context.Background())); got != 0 {
		t.Errorf("invalid forms saved %d projects", got)
	}

	form := url.Values{"name": {"Blog"}, "url": {"https://blog.example.com"}, "keywords": {"go, fiber"}}
	req, _ := http.NewRequest("POST", "/projects", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("valid form: status = %d, want 302", resp.StatusCode)
	}

	projects := st.GetProjects(context.Background())
	if len(projects) != 1 {
		t.Fatalf("projects = %d, want 1", len(projects))
	}
	if !reflect.DeepEqual(projects[0].TargetKeywords, []string{"go", "fiber"}) {
		t.Errorf("keywords = %v", projects[0].TargetKeywords)
	}
}

func TestAnalysisDeleteRemovesEntry(t *testing.T) {
	st := testutil.TestStore(t)
	seeded := testutil.SeedAnalysis(t, st, "https://example.com", 60)

	h := NewAnalysisHandler(st, nil, nil, &config.Config{})
	app := fiber.New()
	app.Delete("/analyses/:id", h.Delete)

	req, _ := http.NewRequest("DELETE", "/analyses/"+seeded.ID, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if _, ok := st.GetAnalysis(context.Background(), seeded.ID); ok {
		t.Error("analysis still present after delete")
	}
}

func TestFactorRowsOrdered(t *testing.T) {
	result := models.AnalysisResult{
		FactorScores: map[string]int{
			"contentQuality": 60,
			"metaTitle":      80,
			"security":       100,
		},
	}
	rows := factorRows(&result)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	// Weight-table order, not map order.
	if rows[0].Factor != "metaTitle" || rows[1].Factor != "contentQuality" || rows[2].Factor != "security" {
		t.Errorf("order = %s, %s, %s", rows[0].Factor, rows[1].Factor, rows[2].Factor)
	}
	if rows[2].Level != "excellent" {
		t.Errorf("security level = %q", rows[2].Level)
	}
}

func TestSettingsUpdateKeepsStoredValuesOnBlank(t *testing.T) {
	ctx := context.Background()
	st := testutil.TestStore(t)

	settings := st.GetSettings(ctx)
	settings.Credentials.SEODataLogin = "login"
	settings.Credentials.SEODataPassword = "pass"
	settings.Endpoints.SEOData = "https://sandbox.dataforseo.com/v3"
	if err := st.SaveSettings(ctx, &settings); err != nil {
		t.Fatal(err)
	}

	h := NewSettingsHandler(st, &config.Config{})
	app := fiber.New()
	app.Post("/settings", h.Update)

	post := func(t *testing.T, form url.Values) {
		t.Helper()
		req, _ := http.NewRequest("POST", "/settings", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusFound {
			t.Fatalf("status = %d, want 302", resp.StatusCode)
		}
	}

	// A partial form that omits the endpoint and credential fields.
	post(t, url.Values{"language": {"de"}})

	got := st.GetSettings(ctx)
	if got.Language != "de" {
		t.Errorf("language = %q, want %q", got.Language, "de")
	}
	if got.Endpoints.SEOData != "https://sandbox.dataforseo.com/v3" {
		t.Errorf("endpoint cleared by partial form: %q", got.Endpoints.SEOData)
	}
	if got.Credentials.SEODataLogin != "login" || got.Credentials.SEODataPassword != "pass" {
		t.Errorf("credentials changed by partial form: %+v", got.Credentials)
	}

	// A non-blank endpoint still updates.
	post(t, url.Values{"seodata_endpoint": {"https://api.dataforseo.com/v3"}})
	if got := st.GetSettings(ctx); got.Endpoints.SEOData != "https://api.dataforseo.com/v3" {
		t.Errorf("endpoint = %q, want updated value", got.Endpoints.SEOData)
	}
}
