package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"seoscope/internal/analyzer"
	"seoscope/internal/config"
	"seoscope/internal/metrics"
	"seoscope/internal/models"
	"seoscope/internal/providers/llm"
	"seoscope/internal/scoring"
	"seoscope/internal/store"
	"seoscope/internal/validation"
)

// AnalysisHandler handles page analysis: running, viewing, and deleting.
type AnalysisHandler struct {
	store    *store.Store
	analyzer *analyzer.Analyzer
	rewriter *llm.Rewriter
	cfg      *config.Config
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(st *store.Store, a *analyzer.Analyzer, rw *llm.Rewriter, cfg *config.Config) *AnalysisHandler {
	return &AnalysisHandler{store: st, analyzer: a, rewriter: rw, cfg: cfg}
}

// New renders the analyze form.
func (h *AnalysisHandler) New(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	data := MergeBranding(fiber.Map{
		"User":     user,
		"Projects": h.store.GetProjects(c.Context()),
	}, h.cfg)

	return c.Render("analyze", data)
}

// Create runs an analysis for the submitted URL and redirects to the result.
func (h *AnalysisHandler) Create(c fiber.Ctx) error {
	rawURL := strings.TrimSpace(c.FormValue("url"))
	keywords := splitKeywords(c.FormValue("keywords"))
	projectID := c.FormValue("project_id")

	if valid, msg := validation.ValidateURL(rawURL); !valid {
		return htmxError(c, msg)
	}

	start := time.Now()
	result, err := h.analyzer.Analyze(c.Context(), rawURL, keywords)
	if err != nil {
		metrics.RecordAnalysis(models.SourcePage, "error", time.Since(start))
		if errors.Is(err, analyzer.ErrUnsafeURL) {
			return htmxError(c, "that URL cannot be analyzed")
		}
		return htmxError(c, "failed to fetch the page: "+err.Error())
	}
	metrics.RecordAnalysis(models.SourcePage, "ok", time.Since(start))

	h.enhanceRecommendations(c, result)

	if projectID != "" {
		if _, ok := h.store.GetProject(c.Context(), projectID); ok {
			result.ProjectID = projectID
		}
	}

	if err := h.store.SaveAnalysis(c.Context(), result); err != nil {
		return htmxError(c, "analysis completed but could not be saved")
	}

	if result.ProjectID != "" {
		h.updateProjectScore(c, result)
	}

	// HTMX-submitted forms follow HX-Redirect; plain forms get a 302.
	c.Set("HX-Redirect", "/analyses/"+result.ID)
	return c.Redirect().To("/analyses/" + result.ID)
}

// Show renders one stored analysis.
func (h *AnalysisHandler) Show(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	result, ok := h.store.GetAnalysis(c.Context(), c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "analysis not found")
	}

	data := MergeBranding(fiber.Map{
		"User":     user,
		"Analysis": result,
		"Factors":  factorRows(&result),
	}, h.cfg)

	return c.Render("analysis", data)
}

// List renders the stored analyses, most recent first.
func (h *AnalysisHandler) List(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	data := MergeBranding(fiber.Map{
		"User":     user,
		"Analyses": h.store.GetAnalyses(c.Context()),
		"Cap":      store.MaxAnalyses,
	}, h.cfg)

	return c.Render("analyses", data)
}

// Delete removes a stored analysis. Returns an empty body so HTMX drops
// the row.
func (h *AnalysisHandler) Delete(c fiber.Ctx) error {
	if err := h.store.DeleteAnalysis(c.Context(), c.Params("id")); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete analysis")
	}
	return c.SendString("")
}

// enhanceRecommendations asks the LLM rewriter to expand the worst
// recommendation. Best effort: the static text stays when the rewriter is
// disabled or fails.
func (h *AnalysisHandler) enhanceRecommendations(c fiber.Ctx, result *models.AnalysisResult) {
	if h.rewriter == nil || !h.rewriter.Enabled() || len(result.Recommendations) == 0 {
		return
	}
	rec := &result.Recommendations[0]
	rec.Text = h.rewriter.Enhance(c.Context(), result.URL, rec.Factor, rec.Score, rec.Text)
}

// updateProjectScore stamps the project with the fresh overall score.
func (h *AnalysisHandler) updateProjectScore(c fiber.Ctx, result *models.AnalysisResult) {
	project, ok := h.store.GetProject(c.Context(), result.ProjectID)
	if !ok {
		return
	}
	score := result.OverallScore
	project.LastScore = &score
	if err := h.store.SaveProject(c.Context(), &project); err != nil {
		// The analysis itself is saved; a stale badge is acceptable.
		return
	}
}

// FactorRow is one factor line on the analysis page.
type FactorRow struct {
	Factor string
	Score  int
	Level  string
}

// factorRows orders the measured factors the way the weight table does.
func factorRows(result *models.AnalysisResult) []FactorRow {
	rows := make([]FactorRow, 0, len(result.FactorScores))
	for _, factor := range scoring.Factors() {
		score, ok := result.Score(factor)
		if !ok {
			continue
		}
		rows = append(rows, FactorRow{
			Factor: factor,
			Score:  score,
			Level:  scoring.Level(score),
		})
	}
	return rows
}

// splitKeywords turns a comma-separated form field into trimmed keywords.
func splitKeywords(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keywords = append(keywords, p)
		}
	}
	return keywords
}
