package analyzer

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"seoscope/internal/models"
	"seoscope/internal/scoring"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head>
	<title>Practical Guide To Technical SEO Audits In 2026</title>
	<meta name="description" content="` + "A hands-on walkthrough of technical SEO audits: crawling, indexing, page speed, and structured data, with checklists you can apply to any site today ok" + `">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<link rel="canonical" href="https://example.com/guide">
	<meta property="og:title" content="Practical Guide">
	<meta property="og:description" content="Technical SEO audits">
	<meta property="og:image" content="https://example.com/cover.png">
	<meta name="twitter:card" content="summary">
	<meta name="twitter:title" content="Practical Guide">
	<script>var tracked = "this text must not count as content";</script>
</head>
<body>
	<h1>Technical SEO Audits</h1>
	<h2>Crawling</h2>
	<h2>Indexing</h2>
	<p>Audits start small. They grow from there into a full inventory of everything a crawler sees when it visits your site for the first time.</p>
	<p>Second paragraph with some more words about crawling and indexing behavior.</p>
	<p>Third paragraph closes out the article with a short summary.</p>
	<a href="/internal-one">internal</a>
	<a href="#section">anchor</a>
	<a href="https://example.com/internal-two">absolute internal</a>
	<a href="https://other.example.org/out">external</a>
	<a href="mailto:team@example.com">mail</a>
	<img src="/a.png" alt="diagram of a crawl budget">
	<img src="/b.png">
</body>
</html>`

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestExtractSignals(t *testing.T) {
	base := mustParse(t, "https://example.com/guide")

	signals, content, err := ExtractSignals(base, strings.NewReader(sampleHTML))
	if err != nil {
		t.Fatal(err)
	}

	if signals.Title != "Practical Guide To Technical SEO Audits In 2026" {
		t.Errorf("Title = %q", signals.Title)
	}
	if !strings.HasPrefix(signals.MetaDescription, "A hands-on walkthrough") {
		t.Errorf("MetaDescription = %q", signals.MetaDescription)
	}
	if signals.Canonical != "https://example.com/guide" {
		t.Errorf("Canonical = %q", signals.Canonical)
	}

	wantHeadings := []string{"h1", "h2", "h2"}
	if len(signals.Headings) != len(wantHeadings) {
		t.Fatalf("headings = %v", signals.Headings)
	}
	for i, h := range signals.Headings {
		if h.Tag != wantHeadings[i] {
			t.Errorf("heading %d tag = %q, want %q", i, h.Tag, wantHeadings[i])
		}
	}

	if signals.ParagraphCount != 3 {
		t.Errorf("ParagraphCount = %d, want 3", signals.ParagraphCount)
	}
	// internal: path link, anchor, same-host absolute. external: other host, mailto.
	if signals.InternalLinks != 3 {
		t.Errorf("InternalLinks = %d, want 3", signals.InternalLinks)
	}
	if signals.ExternalLinks != 2 {
		t.Errorf("ExternalLinks = %d, want 2", signals.ExternalLinks)
	}
	if signals.ImagesTotal != 2 || signals.ImagesWithAlt != 1 {
		t.Errorf("images = %d/%d, want 1/2 with alt", signals.ImagesWithAlt, signals.ImagesTotal)
	}
	if !signals.HasViewport {
		t.Error("HasViewport = false")
	}
	if signals.OpenGraphTags != 3 || signals.TwitterTags != 2 {
		t.Errorf("social tags = og:%d twitter:%d", signals.OpenGraphTags, signals.TwitterTags)
	}
	if !signals.HTTPS {
		t.Error("HTTPS = false for https base URL")
	}

	if strings.Contains(content, "must not count") {
		t.Error("script text leaked into content")
	}
	if !strings.Contains(content, "Audits start small") {
		t.Errorf("content missing paragraph text: %q", content)
	}
	if signals.WordCount == 0 {
		t.Error("WordCount = 0")
	}
}

func TestPageFactors(t *testing.T) {
	base := mustParse(t, "https://example.com/guide")
	signals, content, err := ExtractSignals(base, strings.NewReader(sampleHTML))
	if err != nil {
		t.Fatal(err)
	}
	signals.ResponseMillis = 300

	a := New()
	factors := a.pageFactors(signals, content, []string{"seo"})

	for _, f := range scoring.Factors() {
		score, ok := factors[f]
		if !ok {
			t.Errorf("factor %s not measured", f)
			continue
		}
		if score < 0 || score > 100 {
			t.Errorf("factor %s = %d, out of range", f, score)
		}
	}

	if got := factors[scoring.FactorSecurity]; got != 100 {
		t.Errorf("security = %d, want 100 for https", got)
	}
	if got := factors[scoring.FactorMobileCompatibility]; got != 100 {
		t.Errorf("mobile = %d, want 100 with viewport", got)
	}
	if got := factors[scoring.FactorSocialMetadata]; got != 100 {
		t.Errorf("social = %d, want 100 with full og+twitter", got)
	}
	if got := factors[scoring.FactorPageSpeed]; got != 100 {
		t.Errorf("pageSpeed = %d, want 100 for 300ms", got)
	}
	// Exactly one h1 plus h2s.
	if got := factors[scoring.FactorHeadings]; got != 100 {
		t.Errorf("headings = %d, want 100", got)
	}
}

func TestAnalyzeContent(t *testing.T) {
	a := New()

	content := "go hosting guide. " + strings.Repeat("word ", 60)
	result := a.AnalyzeContent(content, "Hosting")

	if result.Source != models.SourceContent {
		t.Errorf("Source = %q", result.Source)
	}
	if len(result.FactorScores) != 2 {
		t.Fatalf("FactorScores = %v, want contentQuality and keywordDensity only", result.FactorScores)
	}
	if _, ok := result.FactorScores[scoring.FactorContentQuality]; !ok {
		t.Error("missing contentQuality factor")
	}
	if _, ok := result.FactorScores[scoring.FactorKeywordDensity]; !ok {
		t.Error("missing keywordDensity factor")
	}
	if result.OverallScore < 0 || result.OverallScore > 100 {
		t.Errorf("OverallScore = %d", result.OverallScore)
	}
	if result.Category == "" {
		t.Error("Category empty")
	}
	if len(result.Recommendations) != 2 {
		t.Errorf("Recommendations = %d, want 2", len(result.Recommendations))
	}
}

func TestAnalyzeContent_NoKeyword(t *testing.T) {
	a := New()
	result := a.AnalyzeContent("some short draft", "")

	if len(result.FactorScores) != 1 {
		t.Fatalf("FactorScores = %v, want contentQuality only", result.FactorScores)
	}
	if len(result.TargetKeywords) != 0 {
		t.Errorf("TargetKeywords = %v, want empty", result.TargetKeywords)
	}
}

func TestAnalyze_RejectsUnsafeURLs(t *testing.T) {
	a := New()

	for _, raw := range []string{
		"http://127.0.0.1/",
		"http://localhost:8080/",
		"http://169.254.169.254/latest/meta-data",
		"javascript:alert(1)",
	} {
		_, err := a.Analyze(context.Background(), raw, nil)
		if err == nil {
			t.Errorf("Analyze(%q) succeeded, want safety rejection", raw)
			continue
		}
		if !errors.Is(err, ErrUnsafeURL) {
			t.Errorf("Analyze(%q) error = %v, want ErrUnsafeURL", raw, err)
		}
	}
}

func TestBuildRecommendations_WorstFirst(t *testing.T) {
	factors := map[string]int{
		scoring.FactorMetaTitle:      90,
		scoring.FactorHeadings:       20,
		scoring.FactorContentQuality: 55,
	}

	recs := buildRecommendations(factors)
	if len(recs) != 3 {
		t.Fatalf("len = %d, want 3", len(recs))
	}
	if recs[0].Factor != scoring.FactorHeadings {
		t.Errorf("worst factor first: got %s", recs[0].Factor)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score < recs[i-1].Score {
			t.Errorf("recommendations not sorted ascending by score: %v", recs)
		}
	}
	for _, r := range recs {
		if r.Text == "" || r.Level == "" {
			t.Errorf("incomplete recommendation: %+v", r)
		}
	}
}
