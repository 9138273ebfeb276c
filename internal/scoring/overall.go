package scoring

import "math"

// Factor name constants. These are the keys of the overall weight table and
// the recommendation catalog, and the JSON field names stored with each
// analysis.
const (
	FactorMetaTitle           = "metaTitle"
	FactorMetaDescription     = "metaDescription"
	FactorHeadings            = "headings"
	FactorContentQuality      = "contentQuality"
	FactorKeywordDensity      = "keywordDensity"
	FactorInternalLinks       = "internalLinks"
	FactorExternalLinks       = "externalLinks"
	FactorImagesAlt           = "imagesAlt"
	FactorPageSpeed           = "pageSpeed"
	FactorMobileCompatibility = "mobileCompatibility"
	FactorSecurity            = "security"
	FactorSocialMetadata      = "socialMetadata"
)

// factorWeights is the fixed weight table for the overall score.
//
// The weights sum to 1.05, not 1.0. That matches the behavior this engine
// is compatibility-tested against, so it is preserved verbatim; the final
// score is clamped rather than renormalized when every factor is present.
var factorWeights = map[string]float64{
	FactorMetaTitle:           0.10,
	FactorMetaDescription:     0.10,
	FactorHeadings:            0.08,
	FactorContentQuality:      0.12,
	FactorKeywordDensity:      0.10,
	FactorInternalLinks:       0.08,
	FactorExternalLinks:       0.05,
	FactorImagesAlt:           0.05,
	FactorPageSpeed:           0.10,
	FactorMobileCompatibility: 0.08,
	FactorSecurity:            0.07,
	FactorSocialMetadata:      0.07,
}

// Factors lists every known factor name in display order.
func Factors() []string {
	return []string{
		FactorMetaTitle,
		FactorMetaDescription,
		FactorHeadings,
		FactorContentQuality,
		FactorKeywordDensity,
		FactorInternalLinks,
		FactorExternalLinks,
		FactorImagesAlt,
		FactorPageSpeed,
		FactorMobileCompatibility,
		FactorSecurity,
		FactorSocialMetadata,
	}
}

// Weight returns the overall-score weight for a factor name, or 0 for an
// unknown factor.
func Weight(factor string) float64 {
	return factorWeights[factor]
}

// OverallScore combines per-factor scores into one weighted 0-100 score.
// Unknown factor keys are ignored. When only a subset of factors is present
// the weighted sum is renormalized by the weight actually applied, so a
// partial analysis still lands on the same scale.
func OverallScore(factors map[string]int) int {
	sum := 0.0
	applied := 0.0
	for name, score := range factors {
		w, ok := factorWeights[name]
		if !ok {
			continue
		}
		sum += float64(score) * w
		applied += w
	}

	if applied > 0 && applied < 1 {
		sum /= applied
	}

	return clamp(int(math.Round(sum)))
}
