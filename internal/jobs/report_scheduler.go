package jobs

import (
	"context"
	"log"
	"time"

	"seoscope/internal/analyzer"
	"seoscope/internal/email"
	"seoscope/internal/metrics"
	"seoscope/internal/models"
	"seoscope/internal/store"
)

// ReportScheduler periodically re-analyzes every saved project and emails a
// report when a project's overall score moves by at least minDelta.
type ReportScheduler struct {
	store      *store.Store
	analyzer   *analyzer.Analyzer
	mailer     *email.Service
	recipients []string
	interval   time.Duration
	minDelta   int
}

// NewReportScheduler creates a scheduler. An interval of zero disables it.
func NewReportScheduler(s *store.Store, a *analyzer.Analyzer, mailer *email.Service, recipients []string, interval time.Duration, minDelta int) *ReportScheduler {
	return &ReportScheduler{
		store:      s,
		analyzer:   a,
		mailer:     mailer,
		recipients: recipients,
		interval:   interval,
		minDelta:   minDelta,
	}
}

// Start begins the background re-analysis loop and blocks until ctx is done.
func (r *ReportScheduler) Start(ctx context.Context) {
	if r.interval <= 0 {
		log.Println("Report scheduler disabled")
		return
	}

	log.Printf("Report scheduler started (interval: %v, min delta: %d)", r.interval, r.minDelta)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Report scheduler stopped")
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

// runOnce re-analyzes every project sequentially.
func (r *ReportScheduler) runOnce(ctx context.Context) {
	projects := r.store.GetProjects(ctx)
	if len(projects) == 0 {
		return
	}

	log.Printf("Report scheduler: re-analyzing %d projects", len(projects))

	for _, project := range projects {
		select {
		case <-ctx.Done():
			return
		default:
		}

		r.checkProject(ctx, project)

		// Delay between fetches to avoid hammering external sites.
		time.Sleep(1 * time.Second)
	}
}

// checkProject analyzes one project, stores the result, and reports a
// significant score change.
func (r *ReportScheduler) checkProject(ctx context.Context, project models.Project) {
	previous, hadPrevious := r.store.LatestAnalysisForProject(ctx, project.ID)

	start := time.Now()
	result, err := r.analyzer.Analyze(ctx, project.URL, project.TargetKeywords)
	if err != nil {
		metrics.RecordAnalysis(models.SourcePage, "error", time.Since(start))
		log.Printf("Report scheduler: analyze %s failed: %v", project.URL, err)
		return
	}
	metrics.RecordAnalysis(models.SourcePage, "ok", time.Since(start))

	result.ProjectID = project.ID
	if err := r.store.SaveAnalysis(ctx, result); err != nil {
		log.Printf("Report scheduler: save analysis for %s failed: %v", project.Name, err)
		return
	}

	score := result.OverallScore
	project.LastScore = &score
	if err := r.store.SaveProject(ctx, &project); err != nil {
		log.Printf("Report scheduler: update project %s failed: %v", project.Name, err)
	}

	if !hadPrevious {
		return
	}

	delta := score - previous.OverallScore
	if delta < 0 {
		delta = -delta
	}
	if delta < r.minDelta {
		return
	}

	report := &email.ScoreReport{
		Project:  project,
		Previous: previous.OverallScore,
		Current:  score,
		Analysis: result,
	}
	if err := r.mailer.SendScoreReport(r.recipients, report); err != nil {
		log.Printf("Report scheduler: send report for %s failed: %v", project.Name, err)
	}
}
