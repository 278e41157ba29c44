package catalog

import (
	"strings"

	"github.com/pizzeria/backend/internal/domain/shared"
)

// Category groups products on the storefront. The category strip on the
// home page uses the banner image; selecting a category drives the
// banner lookup only, not the product grid.
type Category struct {
	shared.BaseAggregateRoot
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug        string `gorm:"type:varchar(120);not null;uniqueIndex"`
	BannerImage string `gorm:"type:varchar(500)"`
	Position    int    `gorm:"not null;default:0"`
	Active      bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name, slug, bannerImage string, position int) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if slug == "" {
		slug = Slugify(name)
	}
	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              slug,
		BannerImage:       bannerImage,
		Position:          position,
		Active:            true,
	}, nil
}

// Rename changes the category name and regenerates the slug
func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	c.Name = name
	c.Slug = Slugify(name)
	c.Touch()
	return nil
}

// SetBanner updates the banner image path
func (c *Category) SetBanner(imagePath string) {
	c.BannerImage = imagePath
	c.Touch()
}

// Deactivate hides the category from the storefront
func (c *Category) Deactivate() {
	c.Active = false
	c.Touch()
}

// Activate shows the category on the storefront
func (c *Category) Activate() {
	c.Active = true
	c.Touch()
}

// Slugify converts a display name into a URL slug
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
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
