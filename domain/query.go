package domain

import "strings"

// Field names an article attribute a condition applies to.
type Field string

const (
	FieldCategory      Field = "category"
	FieldSubcategory   Field = "subcategory"
	FieldDistrict      Field = "district"
	FieldStatus        Field = "status"
	FieldSlug          Field = "slug"
	FieldTitleEN       Field = "title_en"
	FieldTitleHI       Field = "title_hi"
	FieldSummaryEN     Field = "summary_en"
	FieldSummaryHI     Field = "summary_hi"
	FieldLongHeadline  Field = "long_headline"
	FieldShortHeadline Field = "short_headline"
	FieldLegacyTitle   Field = "title"
)

// Condition is one node of an article filter tree. The tree is a pure value:
// the store driver renders it into its own query language, so composition
// stays independently testable.
type Condition interface{ condition() }

// And is satisfied when every child condition is.
type And []Condition

// Or is satisfied when at least one child condition is.
type Or []Condition

// Match applies a smart-match pattern (anchored, case-insensitive,
// whitespace-tolerant) to a field. Absent fields never match.
type Match struct {
	Field   Field
	Pattern string
}

// Substring applies a case-insensitive literal substring match, used by
// search. The needle is escaped at render time, never interpreted as a
// pattern.
type Substring struct {
	Field  Field
	Needle string
}

// Eq requires exact equality with a value.
type Eq struct {
	Field Field
	Value string
}

// NotEq excludes records whose field equals the value; absent fields pass.
type NotEq struct {
	Field Field
	Value string
}

// IsMissing is satisfied when the field is absent.
type IsMissing struct {
	Field Field
}

// HasDevanagari is satisfied when the field contains at least one code point
// in the Devanagari block. Absent fields do not satisfy it.
type HasDevanagari struct {
	Field Field
}

// NoDevanagari is satisfied when the field contains no Devanagari code
// point. Absent fields satisfy it.
type NoDevanagari struct {
	Field Field
}

func (And) condition()           {}
func (Or) condition()            {}
func (Match) condition()         {}
func (Substring) condition()     {}
func (Eq) condition()            {}
func (NotEq) condition()         {}
func (IsMissing) condition()     {}
func (HasDevanagari) condition() {}
func (NoDevanagari) condition()  {}

// StatusPolicy selects which editorial states a query accepts.
type StatusPolicy int

const (
	// StatusPublishedOrLegacy accepts published records plus legacy records
	// with no status at all. This is the reader-facing default.
	StatusPublishedOrLegacy StatusPolicy = iota
	// StatusPublishedOnly accepts explicitly published records.
	StatusPublishedOnly
	// StatusAny applies no status filter; admin views use it.
	StatusAny
)

// StatusCondition renders a status policy as a condition, or nil for
// StatusAny.
func StatusCondition(policy StatusPolicy) Condition {
	switch policy {
	case StatusPublishedOrLegacy:
		return Or{
			Eq{Field: FieldStatus, Value: string(StatusPublished)},
			IsMissing{Field: FieldStatus},
		}
	case StatusPublishedOnly:
		return Eq{Field: FieldStatus, Value: string(StatusPublished)}
	default:
		return nil
	}
}

// Projection selects which field set a query returns.
type Projection int

const (
	// ProjectionFull returns every field.
	ProjectionFull Projection = iota
	// ProjectionList drops the content bodies; listing endpoints use it to
	// keep payloads small.
	ProjectionList
	// ProjectionFeed drops content bodies and keywords (home feed lists).
	ProjectionFeed
	// ProjectionLead drops only keywords; the home feed lead story keeps its
	// content.
	ProjectionLead
	// ProjectionAdminList additionally drops summaries and gallery images
	// for the admin dashboard table.
	ProjectionAdminList
)

// ArticleQuery is the composed request issued against the article store:
// a filter tree, a bounded result window, and a projection. Results are
// always sorted newest first by creation time.
type ArticleQuery struct {
	Filter     Condition
	Skip       int
	Limit      int
	Projection Projection
}

// homeFeedLangFields are the candidate fields the home feed scans for
// Devanagari, legacy title included.
var homeFeedLangFields = []Field{
	FieldLongHeadline, FieldTitleEN, FieldShortHeadline, FieldLegacyTitle,
}

// browseLangFields are the headline fields the category browse and the
// related/top queries scan.
var browseLangFields = []Field{
	FieldLongHeadline, FieldTitleEN, FieldShortHeadline,
}

// worldCrossListings names the subcategories of the world desk whose content
// is also published directly under the bare subcategory name, in English or
// Hindi. Browsing world/<sub> must pick up both taggings.
var worldCrossListings = map[string][]string{
	"environment": {"Environment", "पर्यावरण"},
	"tech":        {"Tech", "टेक"},
}

// CategoryRequest is the inbound shape of a category browse.
type CategoryRequest struct {
	Category    string
	Subcategory string
	District    string
	Lang        string
	Status      StatusPolicy
	Limit       int
}

// ComposeCategoryQuery assembles the full filter for a category browse:
// status policy, category equivalence (with the world-desk cross-listing
// override), subcategory/district refinement, and language partition, all
// conjoined. URL slugs arrive hyphenated; stored values are space-separated.
func ComposeCategoryQuery(req CategoryRequest) ArticleQuery {
	and := And{}

	if status := StatusCondition(req.Status); status != nil {
		and = append(and, status)
	}

	key, known := ResolveCategoryKey(req.Category)
	sub := strings.ToLower(req.Subcategory)

	if known && key == "world" && worldCrossListings[sub] != nil {
		// Cross-listed world-desk content: accept records filed under
		// World with the matching subcategory, or tagged with the bare
		// subcategory name directly as their category. This override
		// replaces the generic subcategory/district refinement below.
		names := worldCrossListings[sub]
		or := Or{
			And{
				Eq{Field: FieldCategory, Value: "World"},
				Match{Field: FieldSubcategory, Pattern: SmartMatchPattern(names[0])},
			},
		}
		for _, name := range names {
			or = append(or, Match{Field: FieldCategory, Pattern: SmartMatchPattern(name)})
		}
		and = append(and, or)
	} else {
		and = append(and, categoryCondition(req.Category, key, known))

		if req.Subcategory != "" {
			and = append(and, Match{
				Field:   FieldSubcategory,
				Pattern: SmartMatchPattern(slugToName(req.Subcategory)),
			})
		}
		if req.District != "" {
			and = append(and, Match{
				Field:   FieldDistrict,
				Pattern: SmartMatchPattern(slugToName(req.District)),
			})
		}
	}

	if req.Lang == LangHindi {
		// The category field joins the Hindi-side scan here: a record filed
		// under a Devanagari category belongs to the Hindi edition even if
		// its headlines are English.
		and = append(and, HindiCondition(append(append([]Field{}, browseLangFields...), FieldCategory)...))
	} else {
		and = append(and, NonHindiCondition(browseLangFields...))
	}

	limit := req.Limit
	if limit <= 0 {
		limit = CategoryPageLimit
	}

	return ArticleQuery{Filter: and, Limit: limit, Projection: ProjectionList}
}

// categoryCondition matches stored categories against every variant of the
// resolved key, or against the raw input when no key matches.
func categoryCondition(raw, key string, known bool) Condition {
	if !known {
		return Match{Field: FieldCategory, Pattern: SmartMatchPattern(raw)}
	}
	variants := CategoryVariants(key)
	or := make(Or, 0, len(variants))
	for _, variant := range variants {
		or = append(or, Match{Field: FieldCategory, Pattern: SmartMatchPattern(variant)})
	}
	return or
}

// Result caps per call site. Every store query is bounded.
const (
	CategoryPageLimit = 300
	HomeFeedLatest    = 19
	SectionLimit      = 6
	TopNewsLimit      = 6
	RelatedLimit      = 6
	SearchLimit       = 20
	RSSItemLimit      = 20
	PublicListLimit   = 300
)

// ComposeSectionQuery builds one home-feed section query: published-or-legacy
// records of the section category in the requested language edition, capped
// small.
func ComposeSectionQuery(section, lang string, limit int) ArticleQuery {
	key, known := ResolveCategoryKey(section)
	and := And{
		StatusCondition(StatusPublishedOrLegacy),
		categoryCondition(section, key, known),
		feedLanguageCondition(lang),
	}
	return ArticleQuery{Filter: and, Limit: limit, Projection: ProjectionFeed}
}

// ComposeLatestQuery builds the home-feed lead/latest queries over all
// categories.
func ComposeLatestQuery(lang string, skip, limit int, projection Projection) ArticleQuery {
	and := And{
		StatusCondition(StatusPublishedOrLegacy),
		feedLanguageCondition(lang),
	}
	return ArticleQuery{Filter: and, Skip: skip, Limit: limit, Projection: projection}
}

func feedLanguageCondition(lang string) Condition {
	if lang == LangHindi {
		return HindiCondition(homeFeedLangFields...)
	}
	return NonHindiCondition(homeFeedLangFields...)
}

// ComposeRelatedQuery builds the related-articles query: same smart-matched
// category, excluding the article being read, published only.
func ComposeRelatedQuery(category, excludeSlug, lang string, limit int) ArticleQuery {
	if limit <= 0 {
		limit = RelatedLimit
	}
	and := And{
		Match{Field: FieldCategory, Pattern: SmartMatchPattern(category)},
		NotEq{Field: FieldSlug, Value: excludeSlug},
		StatusCondition(StatusPublishedOnly),
		browseLanguageCondition(lang),
	}
	return ArticleQuery{Filter: and, Limit: limit, Projection: ProjectionList}
}

// ComposeTopNewsQuery builds the top-news strip query.
func ComposeTopNewsQuery(lang, excludeSlug string) ArticleQuery {
	and := And{StatusCondition(StatusPublishedOnly)}
	if excludeSlug != "" {
		and = append(and, NotEq{Field: FieldSlug, Value: excludeSlug})
	}
	and = append(and, browseLanguageCondition(lang))
	return ArticleQuery{Filter: and, Limit: TopNewsLimit, Projection: ProjectionList}
}

func browseLanguageCondition(lang string) Condition {
	if lang == LangHindi {
		return HindiCondition(browseLangFields...)
	}
	return NonHindiCondition(browseLangFields...)
}

// ComposeSearchQuery builds the public search: a case-insensitive literal
// substring scan over titles, summaries, headline, and district, published
// only.
func ComposeSearchQuery(q string) ArticleQuery {
	and := And{
		StatusCondition(StatusPublishedOnly),
		Or{
			Substring{Field: FieldTitleEN, Needle: q},
			Substring{Field: FieldTitleHI, Needle: q},
			Substring{Field: FieldSummaryEN, Needle: q},
			Substring{Field: FieldSummaryHI, Needle: q},
			Substring{Field: FieldLongHeadline, Needle: q},
			Substring{Field: FieldDistrict, Needle: q},
		},
	}
	return ArticleQuery{Filter: and, Limit: SearchLimit, Projection: ProjectionList}
}

// ComposePublicListQuery builds the public "all articles" listing.
func ComposePublicListQuery() ArticleQuery {
	return ArticleQuery{
		Filter:     And{StatusCondition(StatusPublishedOrLegacy)},
		Limit:      PublicListLimit,
		Projection: ProjectionList,
	}
}

// ComposeAdminListQuery builds the admin dashboard listing across every
// editorial state.
func ComposeAdminListQuery(limit int) ArticleQuery {
	if limit <= 0 {
		limit = PublicListLimit
	}
	return ArticleQuery{Filter: And{}, Limit: limit, Projection: ProjectionAdminList}
}

// slugToName turns a hyphenated URL segment back into the space-separated
// stored form.
func slugToName(segment string) string {
	return strings.ReplaceAll(segment, "-", " ")
}
