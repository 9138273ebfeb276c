package scoring

import (
	"strings"
	"testing"
)

func TestTitleScore(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		keywords []string
		expected int
	}{
		{"empty title", "", nil, 0},
		{"empty title with keywords", "", []string{"go"}, 0},
		{"ideal length no keywords", strings.Repeat("x", 55), nil, 100},
		{"ideal length empty keyword slice", strings.Repeat("x", 55), []string{}, 100},
		{"acceptable length no keywords", strings.Repeat("x", 45), nil, 70},
		{"short title no keywords", "short", nil, 40},
		{"long title no keywords", strings.Repeat("x", 90), nil, 40},
		{"ideal length keyword miss", strings.Repeat("x", 55), []string{"y"}, 50},
		{"ideal length keyword hit", strings.Repeat("x", 55) + " y", []string{"y"}, 100},
		{"keyword hit case insensitive", "Best Go Tutorials For Beginners And Professionals Now", []string{"GO"}, 100},
		{"short title keyword hit", "go guide", []string{"go"}, 70},
		{"short title keyword miss", "go guide", []string{"rust"}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleScore(tt.title, tt.keywords); got != tt.expected {
				t.Errorf("TitleScore(%q, %v) = %d, want %d", tt.title, tt.keywords, got, tt.expected)
			}
		})
	}
}

// The keyword-miss discontinuity is current behavior the UI depends on:
// passing no keywords scores strictly higher than passing keywords that
// don't match, for the identical title.
func TestTitleScore_KeywordMissDiscontinuity(t *testing.T) {
	title := strings.Repeat("x", 55)

	without := TitleScore(title, nil)
	withMiss := TitleScore(title, []string{"unrelated"})

	if without <= withMiss {
		t.Errorf("expected no-keyword score (%d) > keyword-miss score (%d)", without, withMiss)
	}
}

func TestDescriptionScore(t *testing.T) {
	tests := []struct {
		name     string
		desc     string
		keywords []string
		expected int
	}{
		{"empty", "", nil, 0},
		{"ideal length", strings.Repeat("x", 155), nil, 100},
		{"acceptable length", strings.Repeat("x", 130), nil, 70},
		{"too short", strings.Repeat("x", 50), nil, 40},
		{"too long", strings.Repeat("x", 250), nil, 40},
		{"ideal with keyword hit", strings.Repeat("x", 150) + " seo", []string{"seo"}, 100},
		{"ideal with keyword miss", strings.Repeat("x", 155), []string{"seo"}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescriptionScore(tt.desc, tt.keywords); got != tt.expected {
				t.Errorf("DescriptionScore(len=%d, %v) = %d, want %d", len(tt.desc), tt.keywords, got, tt.expected)
			}
		})
	}
}

func TestHeadingsScore(t *testing.T) {
	tests := []struct {
		name     string
		headings []Heading
		expected int
	}{
		{"no headings", nil, 0},
		{"single h1", []Heading{{Tag: "h1"}}, 75},
		{"single h1 with h2", []Heading{{Tag: "h1"}, {Tag: "h2"}}, 100},
		{"duplicate h1 with h2", []Heading{{Tag: "h1"}, {Tag: "h1"}, {Tag: "h2"}}, 50},
		{"duplicate h1 only", []Heading{{Tag: "h1"}, {Tag: "h1"}}, 25},
		{"h2 only", []Heading{{Tag: "h2"}}, 25},
		{"uppercase tags", []Heading{{Tag: "H1"}, {Tag: "H2"}}, 100},
		{"h3 ignored", []Heading{{Tag: "h3"}, {Tag: "h4"}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeadingsScore(tt.headings); got != tt.expected {
				t.Errorf("HeadingsScore() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestContentScore(t *testing.T) {
	longContent := buildContent(320, 3, true)

	tests := []struct {
		name     string
		content  string
		minWords int
		expected int
	}{
		{"empty", "", 300, 0},
		{"full marks", longContent, 300, 100},
		{"half word count", buildContent(160, 3, true), 300, 70},
		{"below half word count", buildContent(100, 3, true), 300, 40},
		{"no paragraph structure", buildContent(320, 1, true), 300, 80},
		{"no sentence variety", buildContent(320, 3, false), 300, 80},
		{"zero minWords uses default", longContent, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentScore(tt.content, tt.minWords); got != tt.expected {
				t.Errorf("ContentScore() = %d, want %d", got, tt.expected)
			}
		})
	}
}

// buildContent produces text with roughly the requested word count, spread
// over the requested number of paragraphs. With variety it mixes a short
// and a long sentence; without it every sentence is 12 words.
func buildContent(words, paragraphs int, variety bool) string {
	var sentences []string
	if variety {
		sentences = append(sentences, "Short sentence here.")
		sentences = append(sentences, strings.TrimSpace(strings.Repeat("word ", 20))+".")
		words -= 23
	}
	for words > 0 {
		sentences = append(sentences, strings.TrimSpace(strings.Repeat("word ", 12))+".")
		words -= 12
	}

	perParagraph := (len(sentences) + paragraphs - 1) / paragraphs
	var blocks []string
	for start := 0; start < len(sentences); start += perParagraph {
		end := start + perParagraph
		if end > len(sentences) {
			end = len(sentences)
		}
		blocks = append(blocks, strings.Join(sentences[start:end], " "))
	}
	return strings.Join(blocks, "\n\n")
}

func TestKeywordDensityScore(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		keyword  string
		expected int
	}{
		{"empty content", "", "go", 0},
		{"empty keyword", "some content here", "", 0},
		{"zero occurrences", strings.Repeat("word ", 100), "go", 0},
		{"ideal density", "go " + strings.Repeat("word ", 49), "go", 100},
		{"low density", "go " + strings.Repeat("word ", 199), "go", 70},
		{"high density", "go go go go " + strings.Repeat("word ", 96), "go", 50},
		{"stuffed", "a a a a a a a a a a b", "a", 30},
		{"substring match inside words", "golang golang " + strings.Repeat("word ", 98), "go", 100},
		{"case insensitive", "Go gO " + strings.Repeat("word ", 98), "go", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeywordDensityScore(tt.content, tt.keyword); got != tt.expected {
				t.Errorf("KeywordDensityScore(%q) = %d, want %d", tt.keyword, got, tt.expected)
			}
		})
	}
}

// Every scoring function is pure; identical input must give identical output.
func TestScoring_Idempotent(t *testing.T) {
	title := "A Reasonably Sized Title About Search Optimization"
	content := buildContent(320, 3, true)
	headings := []Heading{{Tag: "h1"}, {Tag: "h2"}}

	for i := 0; i < 3; i++ {
		if a, b := TitleScore(title, []string{"search"}), TitleScore(title, []string{"search"}); a != b {
			t.Fatalf("TitleScore not stable: %d vs %d", a, b)
		}
		if a, b := ContentScore(content, 300), ContentScore(content, 300); a != b {
			t.Fatalf("ContentScore not stable: %d vs %d", a, b)
		}
		if a, b := HeadingsScore(headings), HeadingsScore(headings); a != b {
			t.Fatalf("HeadingsScore not stable: %d vs %d", a, b)
		}
	}
}

// All scores stay within [0,100] across adversarial inputs.
func TestScoring_Bounds(t *testing.T) {
	inputs := []string{"", " ", "a", strings.Repeat("x", 10000), "go go go go go"}
	keywordSets := [][]string{nil, {}, {""}, {"go"}, {"go", "golang", "gopher"}}

	for _, in := range inputs {
		for _, kws := range keywordSets {
			for _, s := range []int{
				TitleScore(in, kws),
				DescriptionScore(in, kws),
				ContentScore(in, 300),
				KeywordDensityScore(in, "go"),
			} {
				if s < 0 || s > 100 {
					t.Fatalf("score %d out of range for input %q keywords %v", s, in, kws)
				}
			}
		}
	}

	manyH1 := make([]Heading, 50)
	for i := range manyH1 {
		manyH1[i] = Heading{Tag: "h1"}
	}
	if s := HeadingsScore(manyH1); s < 0 || s > 100 {
		t.Fatalf("HeadingsScore out of range: %d", s)
	}
}
