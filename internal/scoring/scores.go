// Package scoring converts raw page and content signals into 0-100 SEO
// quality scores. All functions are pure and total: malformed or absent
// input degrades to 0 (or a documented default), never an error.
package scoring

import (
	"regexp"
	"strings"
)

// Heading is a single document heading in source order.
type Heading struct {
	Tag  string `json:"tag"`  // "h1".."h6"
	Text string `json:"text"`
}

// DefaultMinWords is the word count threshold for full content-length credit.
const DefaultMinWords = 300

// TitleScore scores a title tag against length bands and optional target
// keywords. With keywords present the result is the average of the length
// subscore and the keyword subscore; with an empty keyword list only the
// length subscore applies. That asymmetry is intentional: a non-matching
// keyword list scores lower than no keyword list at all.
func TitleScore(title string, targetKeywords []string) int {
	if title == "" {
		return 0
	}

	length := len(title)
	lengthScore := 40
	switch {
	case length >= 50 && length <= 60:
		lengthScore = 100
	case length >= 40 && length <= 70:
		lengthScore = 70
	}

	if len(targetKeywords) == 0 {
		return clamp(lengthScore)
	}

	keywordScore := 0
	if containsAnyKeyword(title, targetKeywords) {
		keywordScore = 100
	}

	return clamp((lengthScore + keywordScore) / 2)
}

// DescriptionScore scores a meta description. Same shape as TitleScore with
// an ideal band of 150-160 characters and an acceptable band of 120-170.
func DescriptionScore(description string, targetKeywords []string) int {
	if description == "" {
		return 0
	}

	length := len(description)
	lengthScore := 40
	switch {
	case length >= 150 && length <= 160:
		lengthScore = 100
	case length >= 120 && length <= 170:
		lengthScore = 70
	}

	if len(targetKeywords) == 0 {
		return clamp(lengthScore)
	}

	keywordScore := 0
	if containsAnyKeyword(description, targetKeywords) {
		keywordScore = 100
	}

	return clamp((lengthScore + keywordScore) / 2)
}

// HeadingsScore scores the heading structure: +50 for any H1, +25 for any
// H2, +25 for exactly one H1, and a 25 point penalty for duplicate H1s.
func HeadingsScore(headings []Heading) int {
	h1Count := 0
	h2Count := 0
	for _, h := range headings {
		switch strings.ToLower(h.Tag) {
		case "h1":
			h1Count++
		case "h2":
			h2Count++
		}
	}

	score := 0
	if h1Count >= 1 {
		score += 50
	}
	if h2Count >= 1 {
		score += 25
	}
	if h1Count == 1 {
		score += 25
	} else if h1Count > 1 {
		score -= 25
	}

	return clamp(score)
}

// ContentScore scores body content on length, paragraph structure, and
// sentence variety. minWords <= 0 falls back to DefaultMinWords. The length
// branches are mutually exclusive, so the raw maximum is 60+20+20.
func ContentScore(content string, minWords int) int {
	if minWords <= 0 {
		minWords = DefaultMinWords
	}

	wordCount := len(strings.Fields(content))

	score := 0
	if wordCount >= minWords {
		score += 60
	} else if wordCount >= minWords/2 {
		score += 30
	}

	if countParagraphs(content) >= 3 {
		score += 20
	}

	if hasSentenceVariety(content) {
		score += 20
	}

	return clamp(score)
}

// KeywordDensityScore scores how often keyword appears in content as a
// case-insensitive substring (matches inside larger words count too).
// Density is occurrences * wordsInKeyword / totalWords * 100; the sweet
// spot is 1-3%.
func KeywordDensityScore(content, keyword string) int {
	if content == "" || keyword == "" {
		return 0
	}

	totalWords := len(strings.Fields(content))
	if totalWords == 0 {
		return 0
	}

	occurrences := strings.Count(strings.ToLower(content), strings.ToLower(keyword))
	keywordWords := len(strings.Fields(keyword))

	density := float64(occurrences*keywordWords) / float64(totalWords) * 100

	switch {
	case density >= 1 && density <= 3:
		return 100
	case density > 0 && density < 1:
		return 70
	case density > 3 && density <= 5:
		return 50
	case density > 5:
		return 30
	}
	return 0
}

// containsAnyKeyword reports whether any keyword is a case-insensitive
// substring of text.
func containsAnyKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// countParagraphs counts non-empty blocks separated by blank lines.
func countParagraphs(content string) int {
	count := 0
	for _, block := range paragraphBreak.Split(content, -1) {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	return count
}

// hasSentenceVariety reports whether content mixes short (<=10 words) and
// long (>15 words) sentences.
func hasSentenceVariety(content string) bool {
	hasShort := false
	hasLong := false
	for _, sentence := range splitSentences(content) {
		words := len(strings.Fields(sentence))
		if words == 0 {
			continue
		}
		if words <= 10 {
			hasShort = true
		}
		if words > 15 {
			hasLong = true
		}
	}
	return hasShort && hasLong
}

// splitSentences splits on sentence-ending punctuation.
func splitSentences(content string) []string {
	return strings.FieldsFunc(content, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

// clamp bounds a score to [0,100].
func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
