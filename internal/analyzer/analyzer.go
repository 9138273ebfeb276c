// Package analyzer turns a live URL or a pasted content snippet into a
// scored analysis. Fetching is SSRF-guarded and size-capped; everything
// downstream of the fetch is pure scoring.
package analyzer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"seoscope/internal/models"
	"seoscope/internal/scoring"
	"seoscope/internal/validation"
)

const (
	defaultTimeout      = 15 * time.Second
	defaultMaxBodyBytes = 2 << 20 // 2 MiB is plenty for scoring signals
	userAgent           = "SEOScope-Analyzer/1.0"
)

// ErrUnsafeURL is returned when a URL fails the fetch safety checks.
var ErrUnsafeURL = errors.New("url failed safety validation")

// Analyzer fetches and scores pages.
type Analyzer struct {
	client       *http.Client
	maxBodyBytes int64
	minWords     int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClient overrides the HTTP client, mainly for tests.
func WithClient(c *http.Client) Option {
	return func(a *Analyzer) { a.client = c }
}

// WithTimeout overrides the per-fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(a *Analyzer) {
		if d > 0 {
			a.client.Timeout = d
		}
	}
}

// WithMaxBodyBytes caps how much of a response body is parsed.
func WithMaxBodyBytes(n int64) Option {
	return func(a *Analyzer) { a.maxBodyBytes = n }
}

// WithMinWords overrides the content-length threshold.
func WithMinWords(n int) Option {
	return func(a *Analyzer) { a.minWords = n }
}

// New creates an analyzer with sane fetch limits.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		client: &http.Client{
			Timeout: defaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
		maxBodyBytes: defaultMaxBodyBytes,
		minWords:     scoring.DefaultMinWords,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze fetches rawURL and produces a full page analysis. One attempt, no
// retries; any fetch problem is returned to the caller as-is.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string, targetKeywords []string) (*models.AnalysisResult, error) {
	if ok, msg := validation.ValidateURLForFetch(rawURL); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsafeURL, msg)
	}

	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	start := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, a.maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	elapsed := time.Since(start)

	signals, content, err := ExtractSignals(base, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	signals.ResponseMillis = elapsed.Milliseconds()
	signals.BodyBytes = len(body)

	factors := a.pageFactors(signals, content, targetKeywords)
	overall := scoring.OverallScore(factors)

	return &models.AnalysisResult{
		Source:          models.SourcePage,
		URL:             rawURL,
		TargetKeywords:  targetKeywords,
		FactorScores:    factors,
		OverallScore:    overall,
		Category:        scoring.Category(overall),
		Recommendations: buildRecommendations(factors),
		Signals:         signals,
	}, nil
}

// AnalyzeContent scores a pasted snippet. Only the content-side factors are
// measured; the overall score renormalizes over the weights present.
func (a *Analyzer) AnalyzeContent(content, keyword string) *models.AnalysisResult {
	keyword = validation.NormalizeKeyword(keyword)

	factors := map[string]int{
		scoring.FactorContentQuality: scoring.ContentScore(content, a.minWords),
	}
	var keywords []string
	if keyword != "" {
		keywords = []string{keyword}
		factors[scoring.FactorKeywordDensity] = scoring.KeywordDensityScore(content, keyword)
	}

	overall := scoring.OverallScore(factors)
	return &models.AnalysisResult{
		Source:          models.SourceContent,
		TargetKeywords:  keywords,
		FactorScores:    factors,
		OverallScore:    overall,
		Category:        scoring.Category(overall),
		Recommendations: buildRecommendations(factors),
	}
}

// pageFactors computes all twelve factor scores from extracted signals.
func (a *Analyzer) pageFactors(signals *models.PageSignals, content string, targetKeywords []string) map[string]int {
	factors := map[string]int{
		scoring.FactorMetaTitle:           scoring.TitleScore(signals.Title, targetKeywords),
		scoring.FactorMetaDescription:     scoring.DescriptionScore(signals.MetaDescription, targetKeywords),
		scoring.FactorHeadings:            scoring.HeadingsScore(signals.Headings),
		scoring.FactorContentQuality:      scoring.ContentScore(content, a.minWords),
		scoring.FactorInternalLinks:       linkCountScore(signals.InternalLinks, 3, 10),
		scoring.FactorExternalLinks:       linkCountScore(signals.ExternalLinks, 1, 3),
		scoring.FactorImagesAlt:           imagesAltScore(signals.ImagesTotal, signals.ImagesWithAlt),
		scoring.FactorPageSpeed:           pageSpeedScore(signals.ResponseMillis),
		scoring.FactorMobileCompatibility: boolScore(signals.HasViewport, 100, 30),
		scoring.FactorSecurity:            boolScore(signals.HTTPS, 100, 20),
		scoring.FactorSocialMetadata:      socialScore(signals.OpenGraphTags, signals.TwitterTags),
	}

	if len(targetKeywords) > 0 {
		factors[scoring.FactorKeywordDensity] = scoring.KeywordDensityScore(content, targetKeywords[0])
	}

	return factors
}

// buildRecommendations attaches catalog advice to each measured factor,
// worst factors first, in the stable order of the factor list.
func buildRecommendations(factors map[string]int) []models.Recommendation {
	var recs []models.Recommendation
	for _, f := range scoring.Factors() {
		score, ok := factors[f]
		if !ok {
			continue
		}
		recs = append(recs, models.Recommendation{
			Factor: f,
			Score:  score,
			Level:  scoring.Level(score),
			Text:   scoring.Recommendation(f, score),
		})
	}

	// Worst first so the UI lists the most urgent advice at the top.
	// Stable insertion sort keeps equal scores in factor-list order.
	for i := 1; i < len(recs); i++ {
		for j := i; j > 0 && recs[j].Score < recs[j-1].Score; j-- {
			recs[j], recs[j-1] = recs[j-1], recs[j]
		}
	}
	return recs
}

// linkCountScore bands a link count: none is poor, a few is decent, at or
// past `good` is full marks.
func linkCountScore(count, some, good int) int {
	switch {
	case count >= good:
		return 100
	case count >= some:
		return 80
	case count > 0:
		return 50
	}
	return 20
}

// imagesAltScore is the alt-text coverage ratio; a page with no images has
// nothing to fix.
func imagesAltScore(total, withAlt int) int {
	if total == 0 {
		return 100
	}
	return withAlt * 100 / total
}

// pageSpeedScore bands the time-to-body as a crude speed proxy.
func pageSpeedScore(millis int64) int {
	switch {
	case millis < 500:
		return 100
	case millis < 1000:
		return 80
	case millis < 2000:
		return 60
	case millis < 4000:
		return 40
	}
	return 20
}

func socialScore(ogTags, twitterTags int) int {
	switch {
	case ogTags >= 3 && twitterTags >= 2:
		return 100
	case ogTags > 0 || twitterTags > 0:
		return 60
	}
	return 20
}

func boolScore(ok bool, yes, no int) int {
	if ok {
		return yes
	}
	return no
}
