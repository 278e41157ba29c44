package content

import (
	"time"

	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/domain/content"
)

// CreateBannerRequest adds a home-page carousel slide
type CreateBannerRequest struct {
	Title     string `json:"title" binding:"max=200"`
	ImagePath string `json:"image_path" binding:"required,max=500"`
	LinkURL   string `json:"link_url" binding:"max=500"`
	Position  int    `json:"position"`
}

// BannerResponse represents a carousel slide in API responses
type BannerResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title,omitempty"`
	ImagePath string    `json:"image_path"`
	LinkURL   string    `json:"link_url,omitempty"`
	Position  int       `json:"position"`
	Active    bool      `json:"active"`
}

// ToBannerResponse maps a banner to its response shape
func ToBannerResponse(b *content.Banner) BannerResponse {
	return BannerResponse{
		ID:        b.ID,
		Title:     b.Title,
		ImagePath: b.ImagePath,
		LinkURL:   b.LinkURL,
		Position:  b.Position,
		Active:    b.Active,
	}
}

// CreateNewsRequest drafts an article
type CreateNewsRequest struct {
	Title      string `json:"title" binding:"required,max=250"`
	Slug       string `json:"slug" binding:"max=270"`
	Summary    string `json:"summary" binding:"max=500"`
	Body       string `json:"body" binding:"required"`
	CoverImage string `json:"cover_image" binding:"max=500"`
	Publish    bool   `json:"publish"`
}

// NewsResponse represents an article in API responses
type NewsResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Summary     string     `json:"summary,omitempty"`
	Body        string     `json:"body"`
	CoverImage  string     `json:"cover_image,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToNewsResponse maps an article to its response shape
func ToNewsResponse(n *content.News) NewsResponse {
	return NewsResponse{
		ID:          n.ID,
		Title:       n.Title,
		Slug:        n.Slug,
		Summary:     n.Summary,
		Body:        n.Body,
		CoverImage:  n.CoverImage,
		PublishedAt: n.PublishedAt,
		CreatedAt:   n.CreatedAt,
	}
}

// SubmitQuestionRequest records a customer question
type SubmitQuestionRequest struct {
	Question string `json:"question" binding:"required,max=500"`
}

// AnswerRequest records or replaces the staff answer
type AnswerRequest struct {
	Answer  string `json:"answer" binding:"required"`
	Publish bool   `json:"publish"`
}

// FAQResponse represents a question in API responses. Status is derived
// from the answer.
type FAQResponse struct {
	ID        uuid.UUID         `json:"id"`
	Question  string            `json:"question"`
	Answer    string            `json:"answer,omitempty"`
	Status    content.FAQStatus `json:"status"`
	Published bool              `json:"published"`
	CreatedAt time.Time         `json:"created_at"`
}

// ToFAQResponse maps a question to its response shape
func ToFAQResponse(f *content.FAQ) FAQResponse {
	return FAQResponse{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		Status:    f.Status(),
		Published: f.Published,
		CreatedAt: f.CreatedAt,
	}
}
