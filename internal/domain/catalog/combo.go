package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// ComboItem is one fixed line of a combo, pinned to a concrete product
// variant so the bundle price stays meaningful.
type ComboItem struct {
	shared.BaseEntity
	ComboID   uuid.UUID `gorm:"type:uuid;not null;index"`
	VariantID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null;default:1"`
	Variant   *Variant  `gorm:"foreignKey:VariantID"`
}

// TableName returns the table name for GORM
func (ComboItem) TableName() string {
	return "combo_items"
}

// Combo is a fixed bundle of variants sold at a single price during an
// active window. A combo goes into the cart as one line; its contents
// are not editable there.
type Combo struct {
	shared.BaseAggregateRoot
	Name        string            `gorm:"type:varchar(200);not null"`
	Slug        string            `gorm:"type:varchar(220);not null;uniqueIndex"`
	Description string            `gorm:"type:text"`
	ImagePath   string            `gorm:"type:varchar(500)"`
	Price       valueobject.Money `gorm:"type:decimal(15,2);not null"`
	StartsAt    time.Time         `gorm:"not null"`
	EndsAt      time.Time         `gorm:"not null"`
	Active      bool              `gorm:"not null;default:true"`
	Items       []ComboItem       `gorm:"foreignKey:ComboID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Combo) TableName() string {
	return "combos"
}

// NewCombo creates a new combo with an active window
func NewCombo(name, description, imagePath string, price valueobject.Money, startsAt, endsAt time.Time) (*Combo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Combo name cannot be empty")
	}
	if !price.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Combo price must be positive")
	}
	if !endsAt.After(startsAt) {
		return nil, shared.NewDomainError("INVALID_WINDOW", "Combo end must be after start")
	}
	return &Combo{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              Slugify(name),
		Description:       description,
		ImagePath:         imagePath,
		Price:             price,
		StartsAt:          startsAt,
		EndsAt:            endsAt,
		Active:            true,
	}, nil
}

// AddItem pins a variant line onto the combo
func (c *Combo) AddItem(variantID uuid.UUID, quantity int) error {
	if variantID == uuid.Nil {
		return shared.NewDomainError("INVALID_VARIANT", "Combo item must reference a variant")
	}
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].VariantID == variantID {
			c.Items[i].Quantity += quantity
			c.Items[i].Touch()
			c.Touch()
			return nil
		}
	}
	c.Items = append(c.Items, ComboItem{
		BaseEntity: shared.NewBaseEntity(),
		ComboID:    c.ID,
		VariantID:  variantID,
		Quantity:   quantity,
	})
	c.Touch()
	return nil
}

// RemoveItem drops a variant line from the combo
func (c *Combo) RemoveItem(variantID uuid.UUID) error {
	for i := range c.Items {
		if c.Items[i].VariantID == variantID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.Touch()
			return nil
		}
	}
	return shared.ErrNotFound
}

// IsActiveAt reports whether the combo can be sold at the given instant
func (c *Combo) IsActiveAt(t time.Time) bool {
	return c.Active && !t.Before(c.StartsAt) && t.Before(c.EndsAt)
}

// Deactivate pulls the combo from sale regardless of its window
func (c *Combo) Deactivate() {
	c.Active = false
	c.Touch()
}
