package scoring

// Recommendation buckets.
const (
	bucketLow    = "low"    // score < 50
	bucketMedium = "medium" // 50 <= score < 70
	bucketHigh   = "high"   // score >= 70
)

// fallbackRecommendation is returned for factor names not in the catalog.
const fallbackRecommendation = "Review this factor and compare it against current SEO best practices."

// recommendations is the static advice catalog, keyed by factor and bucket.
var recommendations = map[string]map[string]string{
	FactorMetaTitle: {
		bucketLow:    "Write a title tag of 50-60 characters that includes your primary keyword near the beginning.",
		bucketMedium: "Adjust the title length toward 50-60 characters and make sure the primary keyword appears in it.",
		bucketHigh:   "The title tag is in good shape. Keep the primary keyword near the front when you revise it.",
	},
	FactorMetaDescription: {
		bucketLow:    "Add a meta description of 150-160 characters that summarizes the page and contains the target keyword.",
		bucketMedium: "Bring the meta description into the 150-160 character range and include a clear call to action.",
		bucketHigh:   "The meta description is solid. Refresh it when the page content changes materially.",
	},
	FactorHeadings: {
		bucketLow:    "Add exactly one H1 describing the page topic and break sections up with H2 headings.",
		bucketMedium: "Use a single H1 and structure the rest of the page with H2/H3 subheadings.",
		bucketHigh:   "Heading structure looks good. Keep one H1 per page.",
	},
	FactorContentQuality: {
		bucketLow:    "Expand the content to at least 300 words, split it into paragraphs, and vary sentence length.",
		bucketMedium: "Add more depth to the content and break long passages into shorter paragraphs.",
		bucketHigh:   "Content length and structure are good. Keep it updated to maintain freshness.",
	},
	FactorKeywordDensity: {
		bucketLow:    "Work the target keyword into the copy naturally until it reaches roughly 1-3% of the text.",
		bucketMedium: "Adjust keyword usage toward the 1-3% range; avoid forcing it into every paragraph.",
		bucketHigh:   "Keyword usage is balanced. Watch that future edits do not push it into stuffing territory.",
	},
	FactorInternalLinks: {
		bucketLow:    "Add internal links to related pages so crawlers and readers can navigate the site.",
		bucketMedium: "Add a few more contextual internal links with descriptive anchor text.",
		bucketHigh:   "Internal linking is healthy.",
	},
	FactorExternalLinks: {
		bucketLow:    "Link out to a few authoritative sources that support the content.",
		bucketMedium: "Review outbound links and replace any low-quality destinations with authoritative ones.",
		bucketHigh:   "External linking looks reasonable.",
	},
	FactorImagesAlt: {
		bucketLow:    "Add descriptive alt text to every image; include the keyword where it fits naturally.",
		bucketMedium: "Fill in alt text for the remaining images without keyword stuffing.",
		bucketHigh:   "Image alt coverage is good.",
	},
	FactorPageSpeed: {
		bucketLow:    "Reduce page weight: compress images, minify assets, and enable caching.",
		bucketMedium: "Trim remaining render-blocking resources and oversized images.",
		bucketHigh:   "Page speed is acceptable. Re-test after large layout or asset changes.",
	},
	FactorMobileCompatibility: {
		bucketLow:    "Add a responsive viewport meta tag and test the layout on small screens.",
		bucketMedium: "Fix remaining mobile layout issues such as tap target size and horizontal scrolling.",
		bucketHigh:   "The page appears mobile friendly.",
	},
	FactorSecurity: {
		bucketLow:    "Serve the site over HTTPS and redirect all HTTP traffic.",
		bucketMedium: "Make sure every resource loads over HTTPS to avoid mixed-content warnings.",
		bucketHigh:   "Transport security looks fine.",
	},
	FactorSocialMetadata: {
		bucketLow:    "Add Open Graph and Twitter Card tags so shared links render with a title, description, and image.",
		bucketMedium: "Complete the missing social tags (og:image in particular drives click-through).",
		bucketHigh:   "Social metadata is present.",
	},
}

// Recommendation returns advice text for a factor at a given score. Unknown
// factors get a generic fallback so callers never have to special-case.
func Recommendation(factor string, score int) string {
	byBucket, ok := recommendations[factor]
	if !ok {
		return fallbackRecommendation
	}
	return byBucket[bucket(score)]
}

// bucket maps a score to a recommendation bucket.
func bucket(score int) string {
	switch {
	case score < 50:
		return bucketLow
	case score < 70:
		return bucketMedium
	}
	return bucketHigh
}
