package rest

import "khabar/domain"

// CreateArticleRequest is the editorial create/update payload. Field names
// match what the CMS frontend has always sent.
type CreateArticleRequest struct {
	TitleEN          string                `json:"title_en"`
	TitleHI          string                `json:"title_hi"`
	SummaryEN        string                `json:"summary_en"`
	SummaryHI        string                `json:"summary_hi"`
	ContentEN        string                `json:"content_en"`
	ContentHI        string                `json:"content_hi"`
	URLHeadline      string                `json:"urlHeadline"`
	ShortHeadline    string                `json:"shortHeadline"`
	LongHeadline     string                `json:"longHeadline"`
	Kicker           string                `json:"kicker"`
	Keywords         []string              `json:"keywords"`
	Author           string                `json:"author"`
	SourceURL        string                `json:"sourceUrl"`
	Category         string                `json:"category"`
	Subcategory      string                `json:"subcategory"`
	District         string                `json:"district"`
	FeaturedImage    string                `json:"featuredImage"`
	ThumbnailCaption string                `json:"thumbnailCaption"`
	GalleryImages    []domain.GalleryImage `json:"galleryImages"`
}

// UpdateArticleRequest is a partial edit: absent fields stay untouched.
type UpdateArticleRequest struct {
	TitleEN          *string                `json:"title_en"`
	TitleHI          *string                `json:"title_hi"`
	SummaryEN        *string                `json:"summary_en"`
	SummaryHI        *string                `json:"summary_hi"`
	ContentEN        *string                `json:"content_en"`
	ContentHI        *string                `json:"content_hi"`
	ShortHeadline    *string                `json:"shortHeadline"`
	LongHeadline     *string                `json:"longHeadline"`
	Kicker           *string                `json:"kicker"`
	Keywords         *[]string              `json:"keywords"`
	Author           *string                `json:"author"`
	SourceURL        *string                `json:"sourceUrl"`
	Category         *string                `json:"category"`
	Subcategory      *string                `json:"subcategory"`
	District         *string                `json:"district"`
	FeaturedImage    *string                `json:"featuredImage"`
	ThumbnailCaption *string                `json:"thumbnailCaption"`
	GalleryImages    *[]domain.GalleryImage `json:"galleryImages"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Password string  `json:"password"`
}

type SubscribeRequest struct {
	Email string `json:"email"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// article converts the create payload into the domain record.
func (r *CreateArticleRequest) article() *domain.Article {
	return &domain.Article{
		TitleEN:          r.TitleEN,
		TitleHI:          r.TitleHI,
		SummaryEN:        r.SummaryEN,
		SummaryHI:        r.SummaryHI,
		ContentEN:        r.ContentEN,
		ContentHI:        r.ContentHI,
		URLHeadline:      r.URLHeadline,
		ShortHeadline:    r.ShortHeadline,
		LongHeadline:     r.LongHeadline,
		Kicker:           r.Kicker,
		Keywords:         r.Keywords,
		Author:           r.Author,
		SourceURL:        r.SourceURL,
		Category:         r.Category,
		Subcategory:      r.Subcategory,
		District:         r.District,
		FeaturedImage:    r.FeaturedImage,
		ThumbnailCaption: r.ThumbnailCaption,
		GalleryImages:    r.GalleryImages,
	}
}

// update converts the partial payload into the domain update.
func (r *UpdateArticleRequest) update() domain.ArticleUpdate {
	return domain.ArticleUpdate{
		TitleEN:          r.TitleEN,
		TitleHI:          r.TitleHI,
		SummaryEN:        r.SummaryEN,
		SummaryHI:        r.SummaryHI,
		ContentEN:        r.ContentEN,
		ContentHI:        r.ContentHI,
		ShortHeadline:    r.ShortHeadline,
		LongHeadline:     r.LongHeadline,
		Kicker:           r.Kicker,
		Keywords:         r.Keywords,
		Author:           r.Author,
		SourceURL:        r.SourceURL,
		Category:         r.Category,
		Subcategory:      r.Subcategory,
		District:         r.District,
		FeaturedImage:    r.FeaturedImage,
		ThumbnailCaption: r.ThumbnailCaption,
		GalleryImages:    r.GalleryImages,
	}
}
