package scoring

import "testing"

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name     string
		factors  map[string]int
		expected int
	}{
		{"no factors", nil, 0},
		{"empty map", map[string]int{}, 0},
		{
			// 0.10+0.12 = 0.22 applied -> renormalized:
			// round((80*0.10 + 60*0.12) / 0.22) = round(69.09) = 69
			"two factors renormalized",
			map[string]int{FactorMetaTitle: 80, FactorContentQuality: 60},
			69,
		},
		{
			"single factor renormalizes to itself",
			map[string]int{FactorHeadings: 73},
			73,
		},
		{
			"unknown keys ignored",
			map[string]int{FactorMetaTitle: 80, FactorContentQuality: 60, "bounceRate": 5},
			69,
		},
		{
			"only unknown keys",
			map[string]int{"bounceRate": 90},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverallScore(tt.factors); got != tt.expected {
				t.Errorf("OverallScore(%v) = %d, want %d", tt.factors, got, tt.expected)
			}
		})
	}
}

// The weight table intentionally sums to 1.05. With every factor present the
// sum is not renormalized, so a perfect page would compute to 105; the final
// clamp keeps the published score at 100.
func TestOverallScore_FullWeightTableNotRenormalized(t *testing.T) {
	total := 0.0
	full := make(map[string]int)
	for _, f := range Factors() {
		total += Weight(f)
		full[f] = 100
	}

	if total <= 1.04 || total >= 1.06 {
		t.Fatalf("weight table sum = %v, want the preserved 1.05", total)
	}

	if got := OverallScore(full); got != 100 {
		t.Errorf("OverallScore(all 100) = %d, want clamped 100", got)
	}

	// Mid-range scores expose the uncorrected 1.05 multiplier directly:
	// all factors at 60 -> round(60 * 1.05) = 63, not 60.
	mid := make(map[string]int)
	for _, f := range Factors() {
		mid[f] = 60
	}
	if got := OverallScore(mid); got != 63 {
		t.Errorf("OverallScore(all 60) = %d, want 63", got)
	}
}

func TestOverallScore_Bounds(t *testing.T) {
	cases := []map[string]int{
		{FactorMetaTitle: 0},
		{FactorMetaTitle: 100, FactorSecurity: 100},
	}
	full := make(map[string]int)
	for _, f := range Factors() {
		full[f] = 100
	}
	cases = append(cases, full)

	for _, factors := range cases {
		if s := OverallScore(factors); s < 0 || s > 100 {
			t.Errorf("OverallScore(%v) = %d, out of range", factors, s)
		}
	}
}
