package ordering

import (
	"github.com/google/uuid"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// CartItemType discriminates variant lines from combo lines
type CartItemType string

const (
	CartItemVariant CartItemType = "variant"
	CartItemCombo   CartItemType = "combo"
)

// CartItem is one line of the cart. The name and unit price are
// snapshotted at add time so the line keeps rendering after catalog
// edits; checkout re-reads live prices.
type CartItem struct {
	shared.BaseEntity
	CartID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	ItemType  CartItemType      `gorm:"type:varchar(20);not null"`
	VariantID *uuid.UUID        `gorm:"type:uuid"`
	ComboID   *uuid.UUID        `gorm:"type:uuid"`
	Name      string            `gorm:"type:varchar(250);not null"`
	Options   string            `gorm:"type:varchar(200)"`
	ImagePath string            `gorm:"type:varchar(500)"`
	UnitPrice valueobject.Money `gorm:"type:decimal(15,2);not null"`
	Quantity  int               `gorm:"not null;default:1"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// LineTotal is the unit price times the quantity
func (i CartItem) LineTotal() valueobject.Money {
	return i.UnitPrice.MulInt(int64(i.Quantity))
}

// Matches reports whether the item refers to the same catalog line as
// the given type and reference. Equal lines merge instead of duplicating.
func (i CartItem) Matches(itemType CartItemType, refID uuid.UUID) bool {
	if i.ItemType != itemType {
		return false
	}
	switch itemType {
	case CartItemVariant:
		return i.VariantID != nil && *i.VariantID == refID
	case CartItemCombo:
		return i.ComboID != nil && *i.ComboID == refID
	}
	return false
}

// Cart is the server-side cart aggregate, one per customer. Subtotal is
// recomputed inside every mutation so it always equals the sum of line
// totals.
type Cart struct {
	shared.BaseAggregateRoot
	CustomerID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex"`
	Subtotal   valueobject.Money `gorm:"type:decimal(15,2);not null"`
	Items      []CartItem        `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Cart) TableName() string {
	return "carts"
}

// NewCart creates an empty cart for the customer
func NewCart(customerID uuid.UUID) (*Cart, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Cart must belong to a customer")
	}
	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Subtotal:          valueobject.ZeroVND(),
	}, nil
}

// AddVariantLine adds a product variant to the cart, merging quantities
// when the variant is already present
func (c *Cart) AddVariantLine(variantID uuid.UUID, name, options, imagePath string, unitPrice valueobject.Money, quantity int) error {
	return c.addLine(CartItemVariant, variantID, name, options, imagePath, unitPrice, quantity)
}

// AddComboLine adds a combo to the cart as a single line
func (c *Cart) AddComboLine(comboID uuid.UUID, name, imagePath string, unitPrice valueobject.Money, quantity int) error {
	return c.addLine(CartItemCombo, comboID, name, "", imagePath, unitPrice, quantity)
}

func (c *Cart) addLine(itemType CartItemType, refID uuid.UUID, name, options, imagePath string, unitPrice valueobject.Money, quantity int) error {
	if refID == uuid.Nil {
		return shared.NewDomainError("INVALID_ITEM", "Cart line must reference a catalog item")
	}
	if quantity < 1 {
		quantity = 1
	}
	for idx := range c.Items {
		if c.Items[idx].Matches(itemType, refID) {
			c.Items[idx].Quantity += quantity
			c.Items[idx].Touch()
			c.recompute()
			return nil
		}
	}
	item := CartItem{
		BaseEntity: shared.NewBaseEntity(),
		CartID:     c.ID,
		ItemType:   itemType,
		Name:       name,
		Options:    options,
		ImagePath:  imagePath,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
	}
	switch itemType {
	case CartItemVariant:
		item.VariantID = &refID
	case CartItemCombo:
		item.ComboID = &refID
	}
	c.Items = append(c.Items, item)
	c.recompute()
	return nil
}

// UpdateItemQuantity sets the quantity of a line, clamping to one
func (c *Cart) UpdateItemQuantity(itemID uuid.UUID, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	for idx := range c.Items {
		if c.Items[idx].ID == itemID {
			c.Items[idx].Quantity = quantity
			c.Items[idx].Touch()
			c.recompute()
			return nil
		}
	}
	return shared.ErrNotFound
}

// RemoveItem deletes a line from the cart
func (c *Cart) RemoveItem(itemID uuid.UUID) error {
	for idx := range c.Items {
		if c.Items[idx].ID == itemID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			c.recompute()
			return nil
		}
	}
	return shared.ErrNotFound
}

// Clear empties the cart. Checkout calls this after the order row exists.
func (c *Cart) Clear() {
	c.Items = nil
	c.recompute()
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount is the total quantity across lines, shown on the cart badge
func (c *Cart) ItemCount() int {
	count := 0
	for _, i := range c.Items {
		count += i.Quantity
	}
	return count
}

func (c *Cart) recompute() {
	subtotal := valueobject.ZeroVND()
	for _, item := range c.Items {
		sum, err := subtotal.Add(item.LineTotal())
		if err != nil {
			continue
		}
		subtotal = sum
	}
	c.Subtotal = subtotal
	c.Touch()
}
