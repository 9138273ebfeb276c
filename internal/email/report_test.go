package email

import (
	"strings"
	"testing"

	"seoscope/internal/config"
	"seoscope/internal/models"
)

func sampleReport() *ScoreReport {
	return &ScoreReport{
		Project:  models.Project{Name: "Docs Site", URL: "https://example.com"},
		Previous: 72,
		Current:  61,
		Analysis: &models.AnalysisResult{
			Recommendations: []models.Recommendation{
				{Factor: "headings", Score: 25, Level: "critical", Text: "Add exactly one H1."},
				{Factor: "metaDescription", Score: 40, Level: "low", Text: "Add a meta description."},
				{Factor: "contentQuality", Score: 55, Level: "medium", Text: "Expand the content."},
				{Factor: "metaTitle", Score: 90, Level: "excellent", Text: "Title is fine."},
			},
		},
	}
}

func TestScoreReport_Subject(t *testing.T) {
	r := sampleReport()
	subject := r.Subject()
	if !strings.Contains(subject, "dropped") {
		t.Errorf("subject = %q, want 'dropped' for negative delta", subject)
	}
	if !strings.Contains(subject, "72") || !strings.Contains(subject, "61") {
		t.Errorf("subject = %q, want both scores", subject)
	}

	r.Current = 90
	if !strings.Contains(r.Subject(), "improved") {
		t.Errorf("subject = %q, want 'improved' for positive delta", r.Subject())
	}
}

func TestScoreReport_Bodies(t *testing.T) {
	r := sampleReport()

	text := r.Text()
	if !strings.Contains(text, "change -11") {
		t.Errorf("text body missing signed delta:\n%s", text)
	}
	// Only the top three recommendations make the report.
	if strings.Contains(text, "Title is fine") {
		t.Errorf("text body includes 4th recommendation:\n%s", text)
	}

	html := r.HTML()
	if !strings.Contains(html, "<strong>61</strong>") {
		t.Errorf("html body missing current score:\n%s", html)
	}
	if !strings.Contains(html, "Add exactly one H1.") {
		t.Errorf("html body missing top recommendation:\n%s", html)
	}
}

func TestDisabledServiceDropsSends(t *testing.T) {
	s := NewService(&config.Config{}) // no SMTP configured
	if s.IsEnabled() {
		t.Fatal("service should be disabled without SMTP config")
	}
	if err := s.SendScoreReport([]string{"ops@example.com"}, sampleReport()); err != nil {
		t.Errorf("disabled send returned error: %v", err)
	}
}
