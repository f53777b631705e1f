package news_db

import (
	"fmt"
	"strings"

	"khabar/domain"
)

// devanagariClass is the character class the language partition matches
// against (the Devanagari Unicode block).
const devanagariClass = "[ऀ-ॿ]"

// columnFor maps a domain field to its articles column. Fields and columns
// share names except the legacy title.
func columnFor(f domain.Field) string {
	return string(f)
}

// sqlBuilder accumulates positional arguments while a condition tree is
// rendered.
type sqlBuilder struct {
	args []any
}

func (b *sqlBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// render turns a condition tree into a SQL predicate. Every textual match
// goes through a bound parameter; the only literals are column names and
// operators.
func (b *sqlBuilder) render(c domain.Condition) string {
	switch node := c.(type) {
	case domain.And:
		if len(node) == 0 {
			return "TRUE"
		}
		parts := make([]string, 0, len(node))
		for _, child := range node {
			parts = append(parts, b.render(child))
		}
		return "(" + strings.Join(parts, " AND ") + ")"

	case domain.Or:
		if len(node) == 0 {
			return "FALSE"
		}
		parts := make([]string, 0, len(node))
		for _, child := range node {
			parts = append(parts, b.render(child))
		}
		return "(" + strings.Join(parts, " OR ") + ")"

	case domain.Match:
		// Case-insensitive anchored regex; absent values become '' and the
		// pattern's \s* tolerance still requires an exact name.
		return fmt.Sprintf("COALESCE(%s, '') ~* %s", columnFor(node.Field), b.bind(node.Pattern))

	case domain.Substring:
		return fmt.Sprintf("COALESCE(%s, '') ILIKE '%%' || %s || '%%'",
			columnFor(node.Field), b.bind(escapeLike(node.Needle)))

	case domain.Eq:
		return fmt.Sprintf("%s = %s", columnFor(node.Field), b.bind(node.Value))

	case domain.NotEq:
		return fmt.Sprintf("COALESCE(%s, '') <> %s", columnFor(node.Field), b.bind(node.Value))

	case domain.IsMissing:
		return fmt.Sprintf("%s IS NULL", columnFor(node.Field))

	case domain.HasDevanagari:
		// NULL ~ pattern is NULL, which a WHERE treats as false: absent
		// fields are never Hindi.
		return fmt.Sprintf("%s ~ %s", columnFor(node.Field), b.bind(devanagariClass))

	case domain.NoDevanagari:
		// Absent fields count as free of Devanagari.
		return fmt.Sprintf("COALESCE(%s, '') !~ %s", columnFor(node.Field), b.bind(devanagariClass))

	default:
		// Unknown nodes must never silently widen a filter.
		return "FALSE"
	}
}

// escapeLike neutralizes LIKE wildcards so search needles stay literal.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// selectColumns returns the projection's select list. Excluded heavy fields
// are replaced with typed empty literals so one scan path serves every
// projection.
func selectColumns(p domain.Projection) string {
	content := "content_en, content_hi"
	summaries := "summary_en, summary_hi"
	keywords := "COALESCE(keywords, '{}') AS keywords"
	gallery := "COALESCE(gallery_images, '[]'::jsonb) AS gallery_images"

	switch p {
	case domain.ProjectionList:
		content = "'' AS content_en, '' AS content_hi"
	case domain.ProjectionFeed:
		content = "'' AS content_en, '' AS content_hi"
		keywords = "'{}'::text[] AS keywords"
	case domain.ProjectionLead:
		keywords = "'{}'::text[] AS keywords"
	case domain.ProjectionAdminList:
		content = "'' AS content_en, '' AS content_hi"
		summaries = "'' AS summary_en, '' AS summary_hi"
		keywords = "'{}'::text[] AS keywords"
		gallery = "'[]'::jsonb AS gallery_images"
	}

	return strings.Join([]string{
		"id::text AS id",
		"title_en",
		"title_hi",
		summaries,
		content,
		"url_headline",
		"slug",
		"short_headline",
		"long_headline",
		"kicker",
		"COALESCE(title, '') AS title",
		keywords,
		"author",
		"source_url",
		"category",
		"COALESCE(subcategory, '') AS subcategory",
		"COALESCE(district, '') AS district",
		"featured_image",
		"thumbnail_caption",
		gallery,
		"views",
		"likes",
		"status",
		"user_id::text AS user_id",
		"created_at",
		"updated_at",
	}, ",\n\t\t\t")
}

// BuildArticleSelect renders a composed article query into SQL plus bound
// arguments. Results are newest first; the limit is always applied.
func BuildArticleSelect(q domain.ArticleQuery) (string, []any) {
	b := &sqlBuilder{}

	filter := "TRUE"
	if q.Filter != nil {
		filter = b.render(q.Filter)
	}

	sql := fmt.Sprintf(`
		SELECT
			%s
		FROM articles
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT %s`,
		selectColumns(q.Projection), filter, b.bind(q.Limit))

	if q.Skip > 0 {
		sql += fmt.Sprintf(" OFFSET %s", b.bind(q.Skip))
	}

	return sql, b.args
}
