package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Arithmetic(t *testing.T) {
	a := NewMoneyVNDFromInt(150000)
	b := NewMoneyVNDFromInt(50000)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.NewFromInt(200000)))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount().Equal(decimal.NewFromInt(100000)))

	doubled := a.MulInt(2)
	assert.True(t, doubled.Amount().Equal(decimal.NewFromInt(300000)))
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	vnd := NewMoneyVNDFromInt(1000)
	usd, err := NewMoney(decimal.NewFromInt(10), USD)
	require.NoError(t, err)

	_, err = vnd.Add(usd)
	assert.Error(t, err)

	_, err = vnd.Sub(usd)
	assert.Error(t, err)

	assert.False(t, vnd.LessThan(usd))
	assert.False(t, vnd.GreaterThan(usd))
}

func TestMoney_Comparisons(t *testing.T) {
	small := NewMoneyVNDFromInt(1000)
	big := NewMoneyVNDFromInt(2000)

	assert.True(t, small.LessThan(big))
	assert.True(t, big.GreaterThan(small))
	assert.True(t, small.Equals(NewMoneyVNDFromInt(1000)))
	assert.True(t, ZeroVND().IsZero())
	assert.True(t, big.IsPositive())
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := NewMoneyVNDFromInt(99000)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}

func TestNewMoney_EmptyCurrency(t *testing.T) {
	_, err := NewMoney(decimal.NewFromInt(1), "")
	assert.Error(t, err)
}
