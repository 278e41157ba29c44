package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullAddress() ShippingAddress {
	return NewShippingAddress(
		AdminUnit{Code: "79", Name: "Ho Chi Minh"},
		AdminUnit{Code: "760", Name: "Quan 1"},
		AdminUnit{Code: "26734", Name: "Phuong Ben Nghe"},
		"12 Le Loi",
	)
}

func TestShippingAddress_Complete(t *testing.T) {
	assert.True(t, fullAddress().Complete())

	tests := []struct {
		name   string
		mutate func(*ShippingAddress)
	}{
		{"missing province", func(a *ShippingAddress) { a.ProvinceCode = "" }},
		{"missing district", func(a *ShippingAddress) { a.DistrictCode = "" }},
		{"missing ward", func(a *ShippingAddress) { a.WardCode = "" }},
		{"missing detail", func(a *ShippingAddress) { a.Detail = "" }},
		{"blank detail", func(a *ShippingAddress) { a.Detail = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := fullAddress()
			tt.mutate(&addr)
			assert.False(t, addr.Complete())
			assert.NotEmpty(t, addr.MissingFields())
		})
	}
}

func TestShippingAddress_MissingFields(t *testing.T) {
	var empty ShippingAddress
	assert.Equal(t, []string{"province", "district", "ward", "detail"}, empty.MissingFields())
	assert.Nil(t, fullAddress().MissingFields())
}

func TestShippingAddress_String(t *testing.T) {
	assert.Equal(t, "12 Le Loi, Phuong Ben Nghe, Quan 1, Ho Chi Minh", fullAddress().String())
}
