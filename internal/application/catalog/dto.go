package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Slug        string `json:"slug" binding:"max=120"`
	BannerImage string `json:"banner_image" binding:"max=500"`
	Position    int    `json:"position"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	BannerImage *string `json:"banner_image" binding:"omitempty,max=500"`
	Position    *int    `json:"position"`
	Active      *bool   `json:"active"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	BannerImage string    `json:"banner_image"`
	Position    int       `json:"position"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToCategoryResponse maps a category aggregate to its response shape
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		BannerImage: c.BannerImage,
		Position:    c.Position,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
	}
}

// CreateVariantRequest is one sellable configuration in a create or
// add-variant request
type CreateVariantRequest struct {
	SizeID  *uuid.UUID      `json:"size_id"`
	CrustID *uuid.UUID      `json:"crust_id"`
	Price   decimal.Decimal `json:"price" binding:"required"`
	SKU     string          `json:"sku" binding:"max=50"`
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	CategoryID  uuid.UUID              `json:"category_id" binding:"required"`
	Name        string                 `json:"name" binding:"required,min=1,max=200"`
	Description string                 `json:"description" binding:"max=5000"`
	ImagePath   string                 `json:"image_path" binding:"max=500"`
	Featured    bool                   `json:"featured"`
	Variants    []CreateVariantRequest `json:"variants" binding:"required,min=1"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=5000"`
	ImagePath   *string    `json:"image_path" binding:"omitempty,max=500"`
	Featured    *bool      `json:"featured"`
	Active      *bool      `json:"active"`
}

// VariantResponse represents a variant in API responses
type VariantResponse struct {
	ID        uuid.UUID         `json:"id"`
	SizeID    *uuid.UUID        `json:"size_id,omitempty"`
	SizeName  string            `json:"size_name,omitempty"`
	CrustID   *uuid.UUID        `json:"crust_id,omitempty"`
	CrustName string            `json:"crust_name,omitempty"`
	Price     valueobject.Money `json:"price"`
	SKU       string            `json:"sku,omitempty"`
}

// ToVariantResponse maps a variant to its response shape
func ToVariantResponse(v *catalog.Variant) VariantResponse {
	resp := VariantResponse{
		ID:      v.ID,
		SizeID:  v.SizeID,
		CrustID: v.CrustID,
		Price:   v.Price,
		SKU:     v.SKU,
	}
	if v.Size != nil {
		resp.SizeName = v.Size.Name
	}
	if v.Crust != nil {
		resp.CrustName = v.Crust.Name
	}
	return resp
}

// ProductResponse represents a product in API responses. PriceFrom and
// PriceTo bound the variant prices for the storefront card.
type ProductResponse struct {
	ID          uuid.UUID         `json:"id"`
	CategoryID  uuid.UUID         `json:"category_id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	ImagePath   string            `json:"image_path"`
	Featured    bool              `json:"featured"`
	Active      bool              `json:"active"`
	HasOptions  bool              `json:"has_options"`
	PriceFrom   valueobject.Money `json:"price_from"`
	PriceTo     valueobject.Money `json:"price_to"`
	Variants    []VariantResponse `json:"variants"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ToProductResponse maps a product aggregate to its response shape
func ToProductResponse(p *catalog.Product) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		ImagePath:   p.ImagePath,
		Featured:    p.Featured,
		Active:      p.Active,
		HasOptions:  p.HasOptions(),
		Variants:    make([]VariantResponse, 0, len(p.Variants)),
	}
	if from, to, err := p.PriceRange(); err == nil {
		resp.PriceFrom = from
		resp.PriceTo = to
	}
	for i := range p.Variants {
		resp.Variants = append(resp.Variants, ToVariantResponse(&p.Variants[i]))
	}
	resp.CreatedAt = p.CreatedAt
	return resp
}

// OptionResponse is one selectable size or crust
type OptionResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Position int       `json:"position"`
}

// ProductOptionsResponse drives the size and crust selectors on the
// product detail page. CrustsBySize is keyed by size id; the crust
// selector re-populates from it when the size selection changes.
type ProductOptionsResponse struct {
	HasOptions   bool                           `json:"has_options"`
	Sizes        []OptionResponse               `json:"sizes"`
	CrustsBySize map[uuid.UUID][]OptionResponse `json:"crusts_by_size"`
}

// CreateComboRequest represents a request to create a combo
type CreateComboRequest struct {
	Name        string             `json:"name" binding:"required,min=1,max=200"`
	Description string             `json:"description" binding:"max=5000"`
	ImagePath   string             `json:"image_path" binding:"max=500"`
	Price       decimal.Decimal    `json:"price" binding:"required"`
	StartsAt    time.Time          `json:"starts_at" binding:"required"`
	EndsAt      time.Time          `json:"ends_at" binding:"required"`
	Items       []ComboItemRequest `json:"items" binding:"required,min=1"`
}

// ComboItemRequest pins one variant line onto a combo
type ComboItemRequest struct {
	VariantID uuid.UUID `json:"variant_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// ComboItemResponse represents a combo line in API responses
type ComboItemResponse struct {
	VariantID uuid.UUID        `json:"variant_id"`
	Quantity  int              `json:"quantity"`
	Variant   *VariantResponse `json:"variant,omitempty"`
}

// ComboResponse represents a combo in API responses
type ComboResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Slug        string              `json:"slug"`
	Description string              `json:"description"`
	ImagePath   string              `json:"image_path"`
	Price       valueobject.Money   `json:"price"`
	StartsAt    time.Time           `json:"starts_at"`
	EndsAt      time.Time           `json:"ends_at"`
	Active      bool                `json:"active"`
	Items       []ComboItemResponse `json:"items"`
}

// ToComboResponse maps a combo aggregate to its response shape
func ToComboResponse(c *catalog.Combo) ComboResponse {
	resp := ComboResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		ImagePath:   c.ImagePath,
		Price:       c.Price,
		StartsAt:    c.StartsAt,
		EndsAt:      c.EndsAt,
		Active:      c.Active,
		Items:       make([]ComboItemResponse, 0, len(c.Items)),
	}
	for i := range c.Items {
		item := ComboItemResponse{
			VariantID: c.Items[i].VariantID,
			Quantity:  c.Items[i].Quantity,
		}
		if c.Items[i].Variant != nil {
			v := ToVariantResponse(c.Items[i].Variant)
			item.Variant = &v
		}
		resp.Items = append(resp.Items, item)
	}
	return resp
}
