package email

import (
	"fmt"
	"html"
	"strings"

	"seoscope/internal/models"
)

// ScoreReport is the data behind one score-change notification.
type ScoreReport struct {
	Project  models.Project
	Previous int
	Current  int
	Analysis *models.AnalysisResult
}

// Delta returns the signed score change.
func (r *ScoreReport) Delta() int {
	return r.Current - r.Previous
}

// Subject renders the email subject line.
func (r *ScoreReport) Subject() string {
	direction := "improved"
	if r.Delta() < 0 {
		direction = "dropped"
	}
	return fmt.Sprintf("[SEOScope] %s %s: %d → %d", r.Project.Name, direction, r.Previous, r.Current)
}

// Text renders the plain-text body.
func (r *ScoreReport) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s\n", r.Project.Name)
	fmt.Fprintf(&b, "URL: %s\n", r.Project.URL)
	fmt.Fprintf(&b, "Overall score: %d (was %d, change %+d)\n\n", r.Current, r.Previous, r.Delta())

	if r.Analysis != nil && len(r.Analysis.Recommendations) > 0 {
		b.WriteString("Top recommendations:\n")
		for i, rec := range r.Analysis.Recommendations {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "  %d. [%s] %s\n", i+1, rec.Factor, rec.Text)
		}
	}
	return b.String()
}

// HTML renders the HTML body.
func (r *ScoreReport) HTML() string {
	var b strings.Builder
	b.WriteString("<h2>" + html.EscapeString(r.Project.Name) + "</h2>")
	fmt.Fprintf(&b, `<p><a href="%s">%s</a></p>`,
		html.EscapeString(r.Project.URL), html.EscapeString(r.Project.URL))
	fmt.Fprintf(&b, "<p>Overall score: <strong>%d</strong> (was %d, change %+d)</p>", r.Current, r.Previous, r.Delta())

	if r.Analysis != nil && len(r.Analysis.Recommendations) > 0 {
		b.WriteString("<ol>")
		for i, rec := range r.Analysis.Recommendations {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "<li><strong>%s</strong>: %s</li>",
				html.EscapeString(rec.Factor), html.EscapeString(rec.Text))
		}
		b.WriteString("</ol>")
	}
	return b.String()
}

// SendScoreReport sends a score-change notification to the recipients.
func (s *Service) SendScoreReport(to []string, report *ScoreReport) error {
	return s.Send(to, report.Subject(), report.HTML(), report.Text())
}
