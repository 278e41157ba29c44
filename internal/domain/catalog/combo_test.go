package catalog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

func newTestCombo(t *testing.T, start, end time.Time) *Combo {
	t.Helper()
	c, err := NewCombo("Combo Gia Dinh", "2 pizzas + drink", "/img/combo.jpg",
		valueobject.NewMoneyVNDFromInt(399000), start, end)
	require.NoError(t, err)
	return c
}

func TestNewCombo_Validation(t *testing.T) {
	now := time.Now()

	_, err := NewCombo("", "", "", valueobject.NewMoneyVNDFromInt(1000), now, now.Add(time.Hour))
	assert.Error(t, err)

	_, err = NewCombo("Combo", "", "", valueobject.ZeroVND(), now, now.Add(time.Hour))
	assert.Error(t, err)

	_, err = NewCombo("Combo", "", "", valueobject.NewMoneyVNDFromInt(1000), now, now)
	assert.Error(t, err, "window must have positive length")
}

func TestCombo_IsActiveAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	c := newTestCombo(t, start, end)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before window", start.Add(-time.Minute), false},
		{"at start", start, true},
		{"inside window", start.AddDate(0, 0, 15), true},
		{"at end", end, false},
		{"after window", end.Add(time.Minute), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsActiveAt(tt.at))
		})
	}

	c.Deactivate()
	assert.False(t, c.IsActiveAt(start.AddDate(0, 0, 15)), "deactivated combo is never active")
}

func TestCombo_Items(t *testing.T) {
	now := time.Now()
	c := newTestCombo(t, now, now.Add(24*time.Hour))
	variantA, variantB := uuid.New(), uuid.New()

	require.NoError(t, c.AddItem(variantA, 2))
	require.NoError(t, c.AddItem(variantB, 0))
	assert.Len(t, c.Items, 2)
	assert.Equal(t, 1, c.Items[1].Quantity, "quantity below one is clamped")

	// Re-adding an existing variant merges into the line.
	require.NoError(t, c.AddItem(variantA, 1))
	assert.Len(t, c.Items, 2)
	assert.Equal(t, 3, c.Items[0].Quantity)

	require.NoError(t, c.RemoveItem(variantB))
	assert.Len(t, c.Items, 1)
	assert.Error(t, c.RemoveItem(variantB))

	assert.Error(t, c.AddItem(uuid.Nil, 1))
}
