package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// Variant is one sellable configuration of a product. For pizzas it
// carries a size and a crust; drinks and sides typically have a single
// variant with neither option set.
type Variant struct {
	shared.BaseEntity
	ProductID uuid.UUID             `gorm:"type:uuid;not null;index"`
	SizeID    *uuid.UUID            `gorm:"type:uuid;index"`
	CrustID   *uuid.UUID            `gorm:"type:uuid;index"`
	Price     valueobject.Money     `gorm:"type:decimal(15,2);not null"`
	SKU       string                `gorm:"type:varchar(50)"`
	Position  int                   `gorm:"not null;default:0"`
	Active    bool                  `gorm:"not null;default:true"`
	Size      *Size                 `gorm:"foreignKey:SizeID"`
	Crust     *Crust                `gorm:"foreignKey:CrustID"`
}

// TableName returns the table name for GORM
func (Variant) TableName() string {
	return "product_variants"
}

// HasOptions reports whether the variant carries a size or crust tag
func (v Variant) HasOptions() bool {
	return v.SizeID != nil || v.CrustID != nil
}

// Product is the catalog aggregate. Variants are ordered by position and
// the first one is the default shown on cards and detail pages.
type Product struct {
	shared.BaseAggregateRoot
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Slug        string    `gorm:"type:varchar(220);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	ImagePath   string    `gorm:"type:varchar(500)"`
	Featured    bool      `gorm:"not null;default:false"`
	Active      bool      `gorm:"not null;default:true"`
	Variants    []Variant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product in the given category
func NewProduct(categoryID uuid.UUID, name, description, imagePath string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Product must belong to a category")
	}
	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CategoryID:        categoryID,
		Name:              name,
		Slug:              Slugify(name),
		Description:       description,
		ImagePath:         imagePath,
		Active:            true,
	}, nil
}

// AddVariant appends a sellable configuration. A (size, crust) pair may
// appear at most once per product.
func (p *Product) AddVariant(sizeID, crustID *uuid.UUID, price valueobject.Money, sku string) (*Variant, error) {
	if !price.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Variant price must be positive")
	}
	for _, v := range p.Variants {
		if uuidPtrEqual(v.SizeID, sizeID) && uuidPtrEqual(v.CrustID, crustID) {
			return nil, shared.ErrAlreadyExists
		}
	}
	variant := Variant{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  p.ID,
		SizeID:     sizeID,
		CrustID:    crustID,
		Price:      price,
		SKU:        sku,
		Position:   len(p.Variants),
		Active:     true,
	}
	p.Variants = append(p.Variants, variant)
	p.Touch()
	return &p.Variants[len(p.Variants)-1], nil
}

// UpdateVariantPrice changes the price of an existing variant
func (p *Product) UpdateVariantPrice(variantID uuid.UUID, price valueobject.Money) error {
	if !price.IsPositive() {
		return shared.NewDomainError("INVALID_PRICE", "Variant price must be positive")
	}
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			p.Variants[i].Price = price
			p.Variants[i].Touch()
			p.Touch()
			return nil
		}
	}
	return shared.ErrNotFound
}

// RemoveVariant drops a variant from the product
func (p *Product) RemoveVariant(variantID uuid.UUID) error {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			p.Variants = append(p.Variants[:i], p.Variants[i+1:]...)
			p.Touch()
			return nil
		}
	}
	return shared.ErrNotFound
}

// HasOptions reports whether any variant carries a size or crust tag.
// Products where no variant does are variant-less: the storefront shows
// no selectors and the first variant is always the one sold.
func (p *Product) HasOptions() bool {
	for _, v := range p.Variants {
		if v.HasOptions() {
			return true
		}
	}
	return false
}

// DefaultVariant returns the first variant in display order
func (p *Product) DefaultVariant() (*Variant, error) {
	if len(p.Variants) == 0 {
		return nil, shared.NewDomainError("NO_VARIANTS", "Product has no sellable variants")
	}
	return &p.Variants[0], nil
}

// ResolveVariant finds the variant matching the selected size and crust.
// Both ids must match exactly, a nil selection matching a variant with
// no tag on that axis. Variant-less products resolve to the first
// variant regardless of selection.
func (p *Product) ResolveVariant(sizeID, crustID *uuid.UUID) (*Variant, error) {
	if !p.HasOptions() {
		return p.DefaultVariant()
	}
	for i := range p.Variants {
		v := &p.Variants[i]
		if uuidPtrEqual(v.SizeID, sizeID) && uuidPtrEqual(v.CrustID, crustID) {
			return v, nil
		}
	}
	return nil, shared.NewDomainError("VARIANT_NOT_FOUND", "No variant matches the selected size and crust")
}

// AvailableSizes lists the distinct size ids across variants, in variant
// display order
func (p *Product) AvailableSizes() []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var sizes []uuid.UUID
	for _, v := range p.Variants {
		if v.SizeID != nil && !seen[*v.SizeID] {
			seen[*v.SizeID] = true
			sizes = append(sizes, *v.SizeID)
		}
	}
	return sizes
}

// CrustsForSize lists the distinct crust ids offered for the given size,
// in variant display order. The crust selector re-populates from this
// whenever the size selection changes.
func (p *Product) CrustsForSize(sizeID uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var crusts []uuid.UUID
	for _, v := range p.Variants {
		if v.SizeID == nil || *v.SizeID != sizeID {
			continue
		}
		if v.CrustID != nil && !seen[*v.CrustID] {
			seen[*v.CrustID] = true
			crusts = append(crusts, *v.CrustID)
		}
	}
	return crusts
}

// PriceRange returns the lowest and highest variant price
func (p *Product) PriceRange() (valueobject.Money, valueobject.Money, error) {
	if len(p.Variants) == 0 {
		return valueobject.Money{}, valueobject.Money{}, shared.NewDomainError("NO_VARIANTS", "Product has no sellable variants")
	}
	min, max := p.Variants[0].Price, p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price.LessThan(min) {
			min = v.Price
		}
		if v.Price.GreaterThan(max) {
			max = v.Price
		}
	}
	return min, max, nil
}

// Update changes the display fields and regenerates the slug
func (p *Product) Update(name, description, imagePath string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	p.Name = name
	p.Slug = Slugify(name)
	p.Description = description
	p.ImagePath = imagePath
	p.Touch()
	return nil
}

// SetFeatured toggles the home-page featured flag
func (p *Product) SetFeatured(featured bool) {
	p.Featured = featured
	p.Touch()
}

// MoveToCategory reassigns the product to another category
func (p *Product) MoveToCategory(categoryID uuid.UUID) error {
	if categoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_CATEGORY", "Product must belong to a category")
	}
	p.CategoryID = categoryID
	p.Touch()
	return nil
}

// Deactivate hides the product from the storefront
func (p *Product) Deactivate() {
	p.Active = false
	p.Touch()
}

// Activate shows the product on the storefront
func (p *Product) Activate() {
	p.Active = true
	p.Touch()
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
