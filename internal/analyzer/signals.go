package analyzer

import (
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"seoscope/internal/models"
	"seoscope/internal/scoring"
)

// ExtractSignals parses an HTML document and pulls out every raw value the
// scoring engine consumes. It also returns the visible text content with
// paragraph breaks preserved, for the content and keyword-density factors.
func ExtractSignals(base *url.URL, r io.Reader) (*models.PageSignals, string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, "", err
	}

	// Script/style text would pollute word counts.
	doc.Find("script, style, noscript, template").Remove()

	signals := &models.PageSignals{
		Title:           strings.TrimSpace(doc.Find("title").First().Text()),
		MetaDescription: strings.TrimSpace(attrOr(doc, `meta[name="description"]`, "content")),
		Canonical:       strings.TrimSpace(attrOr(doc, `link[rel="canonical"]`, "href")),
		HasViewport:     doc.Find(`meta[name="viewport"]`).Length() > 0,
		OpenGraphTags:   doc.Find(`meta[property^="og:"]`).Length(),
		TwitterTags:     doc.Find(`meta[name^="twitter:"]`).Length(),
	}

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		signals.Headings = append(signals.Headings, scoring.Heading{
			Tag:  goquery.NodeName(sel),
			Text: strings.TrimSpace(sel.Text()),
		})
	})

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	signals.ParagraphCount = len(paragraphs)

	content := strings.Join(paragraphs, "\n\n")
	if content == "" {
		content = strings.TrimSpace(doc.Find("body").Text())
	}
	signals.WordCount = len(strings.Fields(content))

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if isInternalLink(base, href) {
			signals.InternalLinks++
		} else {
			signals.ExternalLinks++
		}
	})

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		signals.ImagesTotal++
		if alt, ok := sel.Attr("alt"); ok && strings.TrimSpace(alt) != "" {
			signals.ImagesWithAlt++
		}
	})

	if base != nil {
		signals.HTTPS = base.Scheme == "https"
	}

	return signals, content, nil
}

// attrOr returns the attribute of the first match, or "".
func attrOr(doc *goquery.Document, selector, attr string) string {
	value, _ := doc.Find(selector).First().Attr(attr)
	return value
}

// isInternalLink classifies an href relative to the page's host. Fragments,
// relative paths, and same-host absolute URLs count as internal;
// unparseable hrefs and non-http schemes (mailto, tel) count as external.
func isInternalLink(base *url.URL, href string) bool {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return true
	}

	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if u.Host == "" {
		return true
	}
	return base != nil && strings.EqualFold(u.Host, base.Host)
}
