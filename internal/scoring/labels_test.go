package scoring

import "testing"

func TestCategory(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "excellent"},
		{85, "excellent"},
		{84, "good"},
		{70, "good"},
		{69, "average"},
		{50, "average"},
		{49, "poor"},
		{30, "poor"},
		{29, "bad"},
		{0, "bad"},
	}

	for _, tt := range tests {
		if got := Category(tt.score); got != tt.expected {
			t.Errorf("Category(%d) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}

func TestClass(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "good"},
		{70, "good"},
		{69, "average"},
		{50, "average"},
		{49, "poor"},
		{0, "poor"},
	}

	for _, tt := range tests {
		if got := Class(tt.score); got != tt.expected {
			t.Errorf("Class(%d) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "excellent"},
		{80, "excellent"},
		{79, "good"},
		{70, "good"},
		{69, "medium"},
		{50, "medium"},
		{49, "low"},
		{30, "low"},
		{29, "critical"},
		{0, "critical"},
	}

	for _, tt := range tests {
		if got := Level(tt.score); got != tt.expected {
			t.Errorf("Level(%d) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}

// Category and Level disagree in the 80-84 band; both mappings are consumed
// by different parts of the UI and must stay distinct.
func TestLabelMappingsAreDistinct(t *testing.T) {
	if Category(82) == Level(82) {
		t.Errorf("expected Category(82) != Level(82), both %q", Category(82))
	}
}

func TestRecommendation(t *testing.T) {
	tests := []struct {
		name   string
		factor string
		score  int
	}{
		{"known factor low", FactorMetaTitle, 10},
		{"known factor medium", FactorMetaTitle, 60},
		{"known factor high", FactorMetaTitle, 90},
		{"boundary low to medium", FactorHeadings, 50},
		{"boundary medium to high", FactorHeadings, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Recommendation(tt.factor, tt.score); got == "" || got == fallbackRecommendation {
				t.Errorf("Recommendation(%q, %d) = %q, want catalog text", tt.factor, tt.score, got)
			}
		})
	}

	if got := Recommendation("noSuchFactor", 50); got != fallbackRecommendation {
		t.Errorf("unknown factor: got %q, want fallback", got)
	}

	// Every factor has text for every bucket.
	for _, f := range Factors() {
		for _, score := range []int{0, 50, 100} {
			if Recommendation(f, score) == "" {
				t.Errorf("missing recommendation for %s at score %d", f, score)
			}
		}
	}
}
