package valueobject

import (
	"strings"
)

// AdminUnit is one level of the administrative-geography hierarchy
// (province, district or ward), identified by the code of the public
// geography service
type AdminUnit struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// IsZero returns true when no unit has been selected
func (u AdminUnit) IsZero() bool {
	return u.Code == ""
}

// ShippingAddress is the delivery address assembled from the three
// cascading selectors plus a free-form detail line.
// It is stored flattened on the order row.
type ShippingAddress struct {
	ProvinceCode string `json:"province_code" gorm:"type:varchar(20)"`
	ProvinceName string `json:"province_name" gorm:"type:varchar(100)"`
	DistrictCode string `json:"district_code" gorm:"type:varchar(20)"`
	DistrictName string `json:"district_name" gorm:"type:varchar(100)"`
	WardCode     string `json:"ward_code" gorm:"type:varchar(20)"`
	WardName     string `json:"ward_name" gorm:"type:varchar(100)"`
	Detail       string `json:"detail" gorm:"type:varchar(500)"`
}

// NewShippingAddress builds a shipping address from the three selected
// units and the detail line
func NewShippingAddress(province, district, ward AdminUnit, detail string) ShippingAddress {
	return ShippingAddress{
		ProvinceCode: province.Code,
		ProvinceName: province.Name,
		DistrictCode: district.Code,
		DistrictName: district.Name,
		WardCode:     ward.Code,
		WardName:     ward.Name,
		Detail:       strings.TrimSpace(detail),
	}
}

// Complete reports whether every level has been selected and the detail
// line is non-empty. Order submission must be rejected before any side
// effect when this is false.
func (a ShippingAddress) Complete() bool {
	return a.ProvinceCode != "" &&
		a.DistrictCode != "" &&
		a.WardCode != "" &&
		strings.TrimSpace(a.Detail) != ""
}

// MissingFields lists the empty components, in selector order
func (a ShippingAddress) MissingFields() []string {
	var missing []string
	if a.ProvinceCode == "" {
		missing = append(missing, "province")
	}
	if a.DistrictCode == "" {
		missing = append(missing, "district")
	}
	if a.WardCode == "" {
		missing = append(missing, "ward")
	}
	if strings.TrimSpace(a.Detail) == "" {
		missing = append(missing, "detail")
	}
	return missing
}

// String renders the address as a single display line
func (a ShippingAddress) String() string {
	parts := make([]string, 0, 4)
	if a.Detail != "" {
		parts = append(parts, a.Detail)
	}
	for _, name := range []string{a.WardName, a.DistrictName, a.ProvinceName} {
		if name != "" {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}
