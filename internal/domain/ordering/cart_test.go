package ordering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

func vnd(amount int64) valueobject.Money {
	return valueobject.NewMoneyVNDFromInt(amount)
}

func newTestCart(t *testing.T) *Cart {
	t.Helper()
	c, err := NewCart(uuid.New())
	require.NoError(t, err)
	return c
}

func TestNewCart(t *testing.T) {
	_, err := NewCart(uuid.Nil)
	assert.Error(t, err)

	c := newTestCart(t)
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Subtotal.IsZero())
}

func TestCart_AddVariantLine(t *testing.T) {
	c := newTestCart(t)
	variantID := uuid.New()

	require.NoError(t, c.AddVariantLine(variantID, "Pizza Hai San (L, Thin)", "L / Thin", "/img/haisan.jpg", vnd(150000), 2))
	assert.Len(t, c.Items, 1)
	assert.True(t, c.Subtotal.Equals(vnd(300000)))

	// Same variant merges into the existing line.
	require.NoError(t, c.AddVariantLine(variantID, "Pizza Hai San (L, Thin)", "L / Thin", "/img/haisan.jpg", vnd(150000), 1))
	assert.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.True(t, c.Subtotal.Equals(vnd(450000)))

	// Quantity below one is clamped.
	require.NoError(t, c.AddVariantLine(uuid.New(), "Coca Cola", "", "", vnd(25000), 0))
	assert.Equal(t, 1, c.Items[1].Quantity)
	assert.True(t, c.Subtotal.Equals(vnd(475000)))

	assert.Error(t, c.AddVariantLine(uuid.Nil, "x", "", "", vnd(1000), 1))
}

func TestCart_ComboAndVariantDoNotMerge(t *testing.T) {
	c := newTestCart(t)
	sharedID := uuid.New()

	require.NoError(t, c.AddVariantLine(sharedID, "Pizza", "", "", vnd(100000), 1))
	require.NoError(t, c.AddComboLine(sharedID, "Combo", "", vnd(399000), 1))
	assert.Len(t, c.Items, 2)
	assert.True(t, c.Subtotal.Equals(vnd(499000)))
}

func TestCart_UpdateItemQuantity(t *testing.T) {
	c := newTestCart(t)
	require.NoError(t, c.AddVariantLine(uuid.New(), "Pizza", "", "", vnd(150000), 2))
	itemID := c.Items[0].ID

	require.NoError(t, c.UpdateItemQuantity(itemID, 5))
	assert.True(t, c.Subtotal.Equals(vnd(750000)))

	require.NoError(t, c.UpdateItemQuantity(itemID, -3))
	assert.Equal(t, 1, c.Items[0].Quantity, "quantity is clamped to one")
	assert.True(t, c.Subtotal.Equals(vnd(150000)))

	assert.Error(t, c.UpdateItemQuantity(uuid.New(), 2))
}

func TestCart_RemoveAndClear(t *testing.T) {
	c := newTestCart(t)
	require.NoError(t, c.AddVariantLine(uuid.New(), "Pizza", "", "", vnd(150000), 1))
	require.NoError(t, c.AddComboLine(uuid.New(), "Combo", "", vnd(399000), 1))

	require.NoError(t, c.RemoveItem(c.Items[0].ID))
	assert.Len(t, c.Items, 1)
	assert.True(t, c.Subtotal.Equals(vnd(399000)))

	assert.Error(t, c.RemoveItem(uuid.New()))

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Subtotal.IsZero())
}

func TestCart_ItemCount(t *testing.T) {
	c := newTestCart(t)
	require.NoError(t, c.AddVariantLine(uuid.New(), "Pizza", "", "", vnd(150000), 2))
	require.NoError(t, c.AddComboLine(uuid.New(), "Combo", "", vnd(399000), 3))
	assert.Equal(t, 5, c.ItemCount())
}
