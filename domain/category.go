package domain

import "strings"

// categoryEquivalents maps each canonical category key to the display-name
// variants accepted for it. Stored categories are free text in English or
// Hindi, so browsing by key must accept every variant. The table is static
// process-wide configuration: loaded once, read-only thereafter.
var categoryEquivalents = map[string][]string{
	"national":      {"National", "राष्ट्रीय", "India", "भारत", "Nation"},
	"world":         {"World", "विश्व", "International"},
	"politics":      {"Politics", "राजनीति"},
	"business":      {"Business", "व्यापार", "Finance", "वित्त"},
	"entertainment": {"Entertainment", "मनोरंजन", "Bollywood", "Cinema"},
	"sports":        {"Sports", "खेल", "Cricket"},
	"education":     {"Education", "शिक्षा", "Career"},
	"health":        {"Health", "स्वास्थ्य", "Lifestyle"},
	"tech":          {"Tech", "टेक", "Technology", "Gadgets"},
	"religion":      {"Religion", "धर्म", "Astrology"},
	"environment":   {"Environment", "पर्यावरण"},
	"crime":         {"Crime", "क्राइम"},
	"opinion":       {"Opinion", "विचार", "Editorial"},
	"uttar-pradesh": {"Uttar Pradesh", "उत्तर प्रदेश", "UP"},
}

// HomeFeedSections is the fixed ordered list of section categories the home
// feed assembler queries, in display order.
var HomeFeedSections = []string{
	"Sports", "Business", "Tech", "Education",
	"Health", "Environment", "Opinion", "National", "World",
}

// IngestionCategories is the fixed list the scheduled external-news job
// walks through every run.
var IngestionCategories = []string{
	"National", "World", "Politics", "Business",
	"Entertainment", "Sports", "Education", "Health",
	"Tech", "Religion", "Environment", "Crime", "Opinion",
}

// SitemapCategories lists the category pages emitted into the sitemap.
var SitemapCategories = []string{
	"national", "politics", "business", "entertainment", "sports",
	"world", "education", "health", "religion", "crime", "poetry-corner",
}

// ResolveCategoryKey looks up the canonical key whose variant set contains
// the given display name, case-insensitively. The second return value is
// false when no key matches; callers then treat the raw input as its own
// single-variant set, which keeps the lookup total.
func ResolveCategoryKey(name string) (string, bool) {
	for key, variants := range categoryEquivalents {
		for _, variant := range variants {
			if strings.EqualFold(variant, name) {
				return key, true
			}
		}
	}
	return "", false
}

// CategoryVariants returns the accepted display names for a canonical key.
// The returned slice is a copy; the table itself is never mutated.
func CategoryVariants(key string) []string {
	variants, ok := categoryEquivalents[key]
	if !ok {
		return nil
	}
	out := make([]string, len(variants))
	copy(out, variants)
	return out
}

// newsSourceTopics is the external source's topic allow-list.
var newsSourceTopics = map[string]struct{}{
	"world": {}, "nation": {}, "business": {}, "technology": {},
	"entertainment": {}, "sports": {}, "science": {}, "health": {},
}

// NewsTopicFor maps a site category to the external source's topic token.
// National and Politics both land on the source's "nation" topic; categories
// outside the allow-list have no topic and are skipped by ingestion.
func NewsTopicFor(category string) (string, bool) {
	topic := strings.ToLower(category)
	if topic == "national" || topic == "politics" {
		topic = "nation"
	}
	if _, ok := newsSourceTopics[topic]; !ok {
		return "", false
	}
	return topic, true
}
