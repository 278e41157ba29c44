package content

import (
	"strings"
	"time"

	"github.com/pizzeria/backend/internal/domain/shared"
)

// Banner is a home-page carousel slide
type Banner struct {
	shared.BaseAggregateRoot
	Title     string `gorm:"type:varchar(200)"`
	ImagePath string `gorm:"type:varchar(500);not null"`
	LinkURL   string `gorm:"type:varchar(500)"`
	Position  int    `gorm:"not null;default:0"`
	Active    bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Banner) TableName() string {
	return "banners"
}

// NewBanner creates a carousel slide
func NewBanner(title, imagePath, linkURL string, position int) (*Banner, error) {
	if strings.TrimSpace(imagePath) == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Banner image is required")
	}
	return &Banner{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             strings.TrimSpace(title),
		ImagePath:         imagePath,
		LinkURL:           linkURL,
		Position:          position,
		Active:            true,
	}, nil
}

// Deactivate removes the slide from the carousel
func (b *Banner) Deactivate() {
	b.Active = false
	b.Touch()
}

// News is a blog-style article on the storefront
type News struct {
	shared.BaseAggregateRoot
	Title       string     `gorm:"type:varchar(250);not null"`
	Slug        string     `gorm:"type:varchar(270);not null;uniqueIndex"`
	Summary     string     `gorm:"type:varchar(500)"`
	Body        string     `gorm:"type:text;not null"`
	CoverImage  string     `gorm:"type:varchar(500)"`
	PublishedAt *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (News) TableName() string {
	return "news"
}

// NewNews drafts an article. It stays invisible until published.
func NewNews(title, slug, summary, body, coverImage string) (*News, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "News title cannot be empty")
	}
	if strings.TrimSpace(body) == "" {
		return nil, shared.NewDomainError("INVALID_BODY", "News body cannot be empty")
	}
	if slug == "" {
		slug = slugify(title)
	}
	return &News{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Slug:              slug,
		Summary:           summary,
		Body:              body,
		CoverImage:        coverImage,
	}, nil
}

// Publish makes the article visible from now on
func (n *News) Publish(at time.Time) {
	n.PublishedAt = &at
	n.Touch()
}

// Unpublish pulls the article back to draft
func (n *News) Unpublish() {
	n.PublishedAt = nil
	n.Touch()
}

// IsPublished reports whether the article is visible at the given time
func (n *News) IsPublished(at time.Time) bool {
	return n.PublishedAt != nil && !at.Before(*n.PublishedAt)
}

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Join(strings.Fields(slug), "-")
	var b strings.Builder
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-")
}
