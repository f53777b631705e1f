package domain

import "time"

// ArticleUpdate is a partial update: nil fields are left untouched. It
// mirrors the editorial edit form, which sends only what changed.
type ArticleUpdate struct {
	TitleEN          *string
	TitleHI          *string
	SummaryEN        *string
	SummaryHI        *string
	ContentEN        *string
	ContentHI        *string
	ShortHeadline    *string
	LongHeadline     *string
	Kicker           *string
	Keywords         *[]string
	Author           *string
	SourceURL        *string
	Category         *string
	Subcategory      *string
	District         *string
	FeaturedImage    *string
	ThumbnailCaption *string
	GalleryImages    *[]GalleryImage
}

// UserUpdate is a partial account update. PasswordHash is set only when the
// caller supplied a new password.
type UserUpdate struct {
	Name         *string
	Email        *string
	Role         *Role
	PasswordHash *string
}

// SitemapEntry is the slim projection the sitemap generator reads.
type SitemapEntry struct {
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
