package domain

import "time"

// ArticleStatus is the editorial state of an article. Legacy records predate
// the approval workflow and carry no status at all; they are treated as
// published everywhere a reader-facing query runs.
type ArticleStatus string

const (
	StatusPublished ArticleStatus = "published"
	StatusPending   ArticleStatus = "pending"
	StatusDraft     ArticleStatus = "draft"
	StatusRejected  ArticleStatus = "rejected"
	StatusScheduled ArticleStatus = "scheduled"
)

// ValidStatus reports whether s is one of the known editorial states.
func ValidStatus(s ArticleStatus) bool {
	switch s {
	case StatusPublished, StatusPending, StatusDraft, StatusRejected, StatusScheduled:
		return true
	}
	return false
}

// GalleryImage is one entry of an article's image gallery.
type GalleryImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// Article is the bilingual news record. Display fields exist in English and
// Hindi pairs; the stored category is a free-text display string matched
// against the category equivalence table, not a normalized key.
type Article struct {
	ID string `json:"id"`

	TitleEN   string `json:"title_en"`
	TitleHI   string `json:"title_hi"`
	SummaryEN string `json:"summary_en"`
	SummaryHI string `json:"summary_hi"`
	ContentEN string `json:"content_en"`
	ContentHI string `json:"content_hi"`

	URLHeadline   string `json:"url_headline"`
	Slug          string `json:"slug"`
	ShortHeadline string `json:"short_headline"`
	LongHeadline  string `json:"long_headline"`
	Kicker        string `json:"kicker"`
	// LegacyTitle carries the pre-bilingual title field still present on old
	// records. It participates in language classification.
	LegacyTitle string `json:"title,omitempty"`

	Keywords  []string `json:"keywords"`
	Author    string   `json:"author"`
	SourceURL string   `json:"source_url"`

	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	District    string `json:"district"`

	FeaturedImage    string         `json:"featured_image"`
	ThumbnailCaption string         `json:"thumbnail_caption"`
	GalleryImages    []GalleryImage `json:"gallery_images"`

	Views int `json:"views"`
	Likes int `json:"likes"`

	// Status is empty for legacy records.
	Status ArticleStatus `json:"status,omitempty"`

	UserID string `json:"user_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasContent reports whether the record carries a content body in either
// language. The home feed uses it to keep the richest projection when the
// same article shows up in more than one fan-out query.
func (a *Article) HasContent() bool {
	return a.ContentEN != "" || a.ContentHI != ""
}

// LanguageFields returns the candidate text fields scanned for Devanagari
// when classifying the record's language edition.
func (a *Article) LanguageFields() []string {
	return []string{a.LongHeadline, a.TitleEN, a.ShortHeadline, a.LegacyTitle}
}

// ExternalArticle is a candidate record returned by the external news source.
type ExternalArticle struct {
	Title       string
	Description string
	ImageURL    string
	SourceName  string
	URL         string
	PublishedAt time.Time
}
