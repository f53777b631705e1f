package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectMatches walks a condition tree and returns every Match node.
func collectMatches(c Condition) []Match {
	var out []Match
	switch node := c.(type) {
	case And:
		for _, child := range node {
			out = append(out, collectMatches(child)...)
		}
	case Or:
		for _, child := range node {
			out = append(out, collectMatches(child)...)
		}
	case Match:
		out = append(out, node)
	}
	return out
}

func categoryPatterns(c Condition) []string {
	var out []string
	for _, m := range collectMatches(c) {
		if m.Field == FieldCategory {
			out = append(out, m.Pattern)
		}
	}
	return out
}

func TestComposeCategoryQuery_KnownKeyAcceptsAllVariants(t *testing.T) {
	q := ComposeCategoryQuery(CategoryRequest{Category: "business"})

	patterns := categoryPatterns(q.Filter)
	require.Len(t, patterns, 4)
	assert.Contains(t, patterns, SmartMatchPattern("Business"))
	assert.Contains(t, patterns, SmartMatchPattern("व्यापार"))
	assert.Contains(t, patterns, SmartMatchPattern("Finance"))
	assert.Contains(t, patterns, SmartMatchPattern("वित्त"))
}

func TestComposeCategoryQuery_VariantInputResolvesSameKey(t *testing.T) {
	// Filtering by any variant of a key, in any case, yields the same
	// category disjunction.
	byKey := categoryPatterns(ComposeCategoryQuery(CategoryRequest{Category: "business"}).Filter)
	byVariant := categoryPatterns(ComposeCategoryQuery(CategoryRequest{Category: "FINANCE"}).Filter)
	assert.Equal(t, byKey, byVariant)
}

func TestComposeCategoryQuery_VariantMatchIsAnchored(t *testing.T) {
	// A stored value "वित्त" (a business variant) matches; the superstring
	// "वित्त विभाग" must not.
	q := ComposeCategoryQuery(CategoryRequest{Category: "business"})

	matched, superstring := false, false
	for _, p := range categoryPatterns(q.Filter) {
		if SmartMatchFromPattern(p).MatchString("वित्त") {
			matched = true
		}
		if SmartMatchFromPattern(p).MatchString("वित्त विभाग") {
			superstring = true
		}
	}
	assert.True(t, matched)
	assert.False(t, superstring)
}

func TestComposeCategoryQuery_UnknownCategoryFallsBack(t *testing.T) {
	q := ComposeCategoryQuery(CategoryRequest{Category: "Poetry Corner"})

	patterns := categoryPatterns(q.Filter)
	require.Len(t, patterns, 1)
	assert.Equal(t, SmartMatchPattern("Poetry Corner"), patterns[0])
}

func TestComposeCategoryQuery_RejectsOtherKeysVariants(t *testing.T) {
	q := ComposeCategoryQuery(CategoryRequest{Category: "sports"})
	for _, p := range categoryPatterns(q.Filter) {
		assert.False(t, SmartMatchFromPattern(p).MatchString("Business"))
		assert.False(t, SmartMatchFromPattern(p).MatchString("व्यापार"))
	}
}

func TestComposeCategoryQuery_WorldTechOverride(t *testing.T) {
	// world/tech accepts World+Tech records AND records tagged Tech or टेक
	// directly as the category, with no separate subcategory filter.
	q := ComposeCategoryQuery(CategoryRequest{Category: "world", Subcategory: "tech"})

	and, ok := q.Filter.(And)
	require.True(t, ok)

	var override Or
	for _, child := range and {
		if or, isOr := child.(Or); isOr {
			for _, grandchild := range or {
				if _, isAnd := grandchild.(And); isAnd {
					override = or
				}
			}
		}
	}
	require.NotNil(t, override, "expected cross-listing override disjunction")
	require.Len(t, override, 3)

	crossListed, isAnd := override[0].(And)
	require.True(t, isAnd)
	assert.Equal(t, Eq{Field: FieldCategory, Value: "World"}, crossListed[0])
	assert.Equal(t, Match{Field: FieldSubcategory, Pattern: SmartMatchPattern("Tech")}, crossListed[1])

	assert.Equal(t, Match{Field: FieldCategory, Pattern: SmartMatchPattern("Tech")}, override[1])
	assert.Equal(t, Match{Field: FieldCategory, Pattern: SmartMatchPattern("टेक")}, override[2])

	// No generic subcategory refinement alongside the override.
	for _, m := range collectMatches(q.Filter) {
		if m.Field == FieldSubcategory {
			assert.Equal(t, SmartMatchPattern("Tech"), m.Pattern,
				"only the override's subcategory match may appear")
		}
	}
}

func TestComposeCategoryQuery_WorldEnvironmentOverride(t *testing.T) {
	q := ComposeCategoryQuery(CategoryRequest{Category: "World", Subcategory: "Environment"})

	patterns := categoryPatterns(q.Filter)
	assert.Contains(t, patterns, SmartMatchPattern("Environment"))
	assert.Contains(t, patterns, SmartMatchPattern("पर्यावरण"))
}

func TestComposeCategoryQuery_SubcategoryAndDistrictSlugs(t *testing.T) {
	q := ComposeCategoryQuery(CategoryRequest{
		Category:    "uttar-pradesh",
		Subcategory: "east-up",
		District:    "gautam-buddh-nagar",
	})

	var subPattern, districtPattern string
	for _, m := range collectMatches(q.Filter) {
		switch m.Field {
		case FieldSubcategory:
			subPattern = m.Pattern
		case FieldDistrict:
			districtPattern = m.Pattern
		}
	}
	assert.Equal(t, SmartMatchPattern("east up"), subPattern)
	assert.Equal(t, SmartMatchPattern("gautam buddh nagar"), districtPattern)
}

func TestComposeCategoryQuery_StatusPolicy(t *testing.T) {
	q := ComposeCategoryQuery(CategoryRequest{Category: "sports"})

	and, ok := q.Filter.(And)
	require.True(t, ok)

	status, ok := and[0].(Or)
	require.True(t, ok, "default status policy is published-or-missing")
	assert.Contains(t, status, Condition(Eq{Field: FieldStatus, Value: "published"}))
	assert.Contains(t, status, Condition(IsMissing{Field: FieldStatus}))
}

func TestComposeCategoryQuery_LanguagePartition(t *testing.T) {
	t.Run("hindi edition includes category field", func(t *testing.T) {
		q := ComposeCategoryQuery(CategoryRequest{Category: "sports", Lang: LangHindi})
		and := q.Filter.(And)

		langCond, ok := and[len(and)-1].(Or)
		require.True(t, ok)
		assert.Contains(t, langCond, Condition(HasDevanagari{Field: FieldCategory}))
	})

	t.Run("default edition negates headline fields only", func(t *testing.T) {
		q := ComposeCategoryQuery(CategoryRequest{Category: "sports"})
		and := q.Filter.(And)

		langCond, ok := and[len(and)-1].(And)
		require.True(t, ok)
		assert.Len(t, langCond, 3)
		for _, c := range langCond {
			neg, isNeg := c.(NoDevanagari)
			require.True(t, isNeg)
			assert.NotEqual(t, FieldCategory, neg.Field)
		}
	})
}

func TestComposeCategoryQuery_AlwaysBounded(t *testing.T) {
	assert.Equal(t, CategoryPageLimit, ComposeCategoryQuery(CategoryRequest{Category: "x"}).Limit)
	assert.Equal(t, 50, ComposeCategoryQuery(CategoryRequest{Category: "x", Limit: 50}).Limit)
}

func TestComposeRelatedQuery(t *testing.T) {
	q := ComposeRelatedQuery("Sports", "current-story", "", 0)
	assert.Equal(t, RelatedLimit, q.Limit)

	and := q.Filter.(And)
	assert.Equal(t, Match{Field: FieldCategory, Pattern: SmartMatchPattern("Sports")}, and[0])
	assert.Equal(t, NotEq{Field: FieldSlug, Value: "current-story"}, and[1])
	assert.Equal(t, Condition(Eq{Field: FieldStatus, Value: "published"}), and[2])
}

func TestComposeTopNewsQuery(t *testing.T) {
	t.Run("without exclusion", func(t *testing.T) {
		q := ComposeTopNewsQuery("", "")
		assert.Equal(t, TopNewsLimit, q.Limit)
		for _, m := range collectMatches(q.Filter) {
			assert.NotEqual(t, FieldSlug, m.Field)
		}
	})

	t.Run("with exclusion", func(t *testing.T) {
		q := ComposeTopNewsQuery(LangHindi, "front-page-story")
		and := q.Filter.(And)
		assert.Contains(t, and, Condition(NotEq{Field: FieldSlug, Value: "front-page-story"}))
	})
}

func TestComposeLatestQuery(t *testing.T) {
	lead := ComposeLatestQuery("", 0, 1, ProjectionLead)
	assert.Equal(t, 1, lead.Limit)
	assert.Equal(t, 0, lead.Skip)

	rest := ComposeLatestQuery("", 1, HomeFeedLatest, ProjectionFeed)
	assert.Equal(t, HomeFeedLatest, rest.Limit)
	assert.Equal(t, 1, rest.Skip)
}

func TestComposeSearchQuery(t *testing.T) {
	q := ComposeSearchQuery("चुनाव")
	assert.Equal(t, SearchLimit, q.Limit)

	and := q.Filter.(And)
	or, ok := and[1].(Or)
	require.True(t, ok)
	assert.Len(t, or, 6)
}
